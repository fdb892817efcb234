package uxsettings

// FormatsInput groups the number and date overrides.
type FormatsInput struct {
	Numbers *NumbersInput `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Dates   *DateInput    `json:"dates,omitempty" yaml:"dates,omitempty"`
}

// Input is the partial settings a subtree root publishes. Every field is
// optional.
type Input struct {
	Formats    FormatsInput     `json:"formats,omitempty" yaml:"formats,omitempty"`
	Classes    ComponentClasses `json:"classes,omitempty" yaml:"classes,omitempty"`
	Themes     *ThemesInput     `json:"themes,omitempty" yaml:"themes,omitempty"`
	Dictionary *DictionaryInput `json:"dictionary,omitempty" yaml:"dictionary,omitempty"`

	// CurrentTheme passes an existing store through; it is never decoded.
	CurrentTheme *ThemeStore `json:"-" yaml:"-"`
}

// Formats holds the eagerly resolved number and date settings.
type Formats struct {
	Numbers NumberFormat `json:"numbers" yaml:"numbers"`
	Dates   DateSettings `json:"dates" yaml:"dates"`
}

// Settings is the resolved, read-only value shared with a subtree. Every field
// is populated.
type Settings struct {
	Formats      Formats          `json:"formats" yaml:"formats"`
	Classes      ComponentClasses `json:"classes" yaml:"classes"`
	Themes       Themes           `json:"themes" yaml:"themes"`
	CurrentTheme *ThemeStore      `json:"-" yaml:"-"`
	Dictionary   Dictionary       `json:"dictionary" yaml:"dictionary"`

	numbers  *NumbersInput
	dates    *DateInput
	resolver *Resolver
}

// Resolve builds Settings from in with the default resolver.
func Resolve(in Input) *Settings {
	return defaultResolver.Resolve(in)
}

// Defaults returns fully defaulted Settings with a fresh theme store.
func Defaults() *Settings {
	return defaultResolver.Defaults()
}

// Resolve composes the dictionary, theme, number and date resolvers into one
// Settings value. Number and date settings are resolved eagerly and stay
// available per call through FormatNumber and FormatDate.
func (r *Resolver) Resolve(in Input) *Settings {
	r = r.orDefault()

	theme := r.Theme(ThemeInput{
		Themes:       in.Themes,
		CurrentTheme: in.CurrentTheme,
	})

	s := &Settings{
		Classes:      in.Classes.clone(),
		Themes:       theme.Themes,
		CurrentTheme: theme.CurrentTheme,
		Dictionary:   ResolveDictionary(in.Dictionary),
		numbers:      in.Formats.Numbers.clone(),
		dates:        MergeDateInput(in.Formats.Dates, nil),
		resolver:     r,
	}
	s.Formats = Formats{
		Numbers: s.FormatNumber(StyleCurrency),
		Dates:   s.FormatDate(nil),
	}

	return s
}

// clone copies every map and slice of s. The theme store, the only shared
// mutable part, stays shared.
func (s *Settings) clone() *Settings {
	if s == nil {
		return nil
	}
	out := *s
	out.Formats.Dates = s.Formats.Dates.clone()
	out.Classes = s.Classes.clone()
	out.Themes = s.Themes.clone()
	return &out
}

// Defaults returns Settings resolved from an empty Input.
func (r *Resolver) Defaults() *Settings {
	return r.Resolve(Input{})
}

// FormatNumber returns the number options for style, layered over the
// published number overrides.
func (s *Settings) FormatNumber(style NumberStyle) NumberFormat {
	if s == nil {
		return ResolveNumberFormat(nil, style)
	}
	return ResolveNumberFormat(s.numbers, style)
}

// FormatDate resolves date settings with override layered over the published
// date input. It does not modify s.
func (s *Settings) FormatDate(override *DateInput) DateSettings {
	if s == nil {
		return ResolveDateFormat(override)
	}
	return s.resolver.DateFormat(MergeDateInput(s.dates, override))
}

// ThemeInput returns the theme part of s for nested re-resolution, carrying
// the existing store.
func (s *Settings) ThemeInput() ThemeInput {
	themes := s.Themes.clone()
	return ThemeInput{
		Themes:       &ThemesInput{Light: themes.Light, Dark: themes.Dark},
		CurrentTheme: s.CurrentTheme,
	}
}
