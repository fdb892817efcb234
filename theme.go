package uxsettings

// ThemesInput lists theme names per mode; a nil list keeps the default.
type ThemesInput struct {
	Light []string `json:"light,omitempty" yaml:"light,omitempty"`
	Dark  []string `json:"dark,omitempty" yaml:"dark,omitempty"`
}

// Themes is the resolved light/dark name lists.
type Themes struct {
	Light []string `json:"light" yaml:"light"`
	Dark  []string `json:"dark" yaml:"dark"`
}

func (t Themes) clone() Themes {
	return Themes{
		Light: append([]string(nil), t.Light...),
		Dark:  append([]string(nil), t.Dark...),
	}
}

// ThemeInput is the theme part of an Input.
type ThemeInput struct {
	Themes       *ThemesInput
	CurrentTheme *ThemeStore
}

// ThemeConfig is the resolved theme part of Settings.
type ThemeConfig struct {
	Themes       Themes
	CurrentTheme *ThemeStore
}

// ThemeStoreFactory builds the store for a subtree that has none yet.
type ThemeStoreFactory func(themes Themes) *ThemeStore

var (
	defaultLightThemes = []string{"light"}
	defaultDarkThemes  = []string{"dark"}
)

// DefaultThemes returns the built-in name lists.
func DefaultThemes() Themes {
	return Themes{
		Light: append([]string(nil), defaultLightThemes...),
		Dark:  append([]string(nil), defaultDarkThemes...),
	}
}

// ResolveTheme resolves the name lists and the theme store.
//
// A non-nil in.CurrentTheme is owned by whoever created it and is returned
// untouched; factory is only called when no store exists. A second store for
// the same subtree would diverge from the first on every update, so callers
// re-resolving inside a subtree must pass the existing handle.
func ResolveTheme(in ThemeInput, factory ThemeStoreFactory) ThemeConfig {
	themes := DefaultThemes()
	if in.Themes != nil {
		if in.Themes.Light != nil {
			themes.Light = append([]string(nil), in.Themes.Light...)
		}
		if in.Themes.Dark != nil {
			themes.Dark = append([]string(nil), in.Themes.Dark...)
		}
	}

	store := in.CurrentTheme
	if store == nil {
		if factory == nil {
			factory = NewThemeStore
		}
		store = factory(themes.clone())
	}

	return ThemeConfig{
		Themes:       themes,
		CurrentTheme: store,
	}
}
