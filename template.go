package uxsettings

// HelperConfig configures template helper exports
type HelperConfig struct {
	// Prefix is prepended to every helper name, e.g. "ux_".
	Prefix string
}

// TemplateHelpers exposes settings backed helpers for text/template and
// html/template FuncMaps. A nil settings value uses the defaults.
func TemplateHelpers(settings *Settings, cfg HelperConfig) map[string]any {
	if settings == nil {
		settings = Defaults()
	}

	helpers := map[string]any{
		"format_number": func(value float64, style string) string {
			numberStyle := NumberStyle(style)
			return settings.FormatNumber(numberStyle).Format(value, numberStyle)
		},
		"ordinal": func(n int) string {
			return settings.Formats.Dates.Ordinal(n)
		},
		"label": func(key string) string {
			label, ok := settings.Dictionary.Label(key)
			if !ok {
				return key
			}
			return label
		},
		"date_format": func(granularity string) string {
			format, custom := settings.Formats.Dates.ActiveFormat(Granularity(granularity))
			if format == nil {
				return custom
			}
			return format.String()
		},
	}

	if cfg.Prefix == "" {
		return helpers
	}

	prefixed := make(map[string]any, len(helpers))
	for name, fn := range helpers {
		prefixed[cfg.Prefix+name] = fn
	}
	return prefixed
}
