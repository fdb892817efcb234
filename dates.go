package uxsettings

// DateInput carries optional date formatting overrides. Empty strings, nil
// pointers and nil maps keep the defaults.
type DateInput struct {
	Locales         string                      `json:"locales,omitempty" yaml:"locales,omitempty"`
	BaseParsing     string                      `json:"baseParsing,omitempty" yaml:"baseParsing,omitempty"`
	WeekStartsOn    *DayOfWeek                  `json:"weekStartsOn,omitempty" yaml:"weekStartsOn,omitempty"`
	Variant         DateFormatVariant           `json:"variant,omitempty" yaml:"variant,omitempty"`
	Custom          string                      `json:"custom,omitempty" yaml:"custom,omitempty"`
	OrdinalSuffixes map[string]OrdinalSuffixes  `json:"ordinalSuffixes,omitempty" yaml:"ordinalSuffixes,omitempty"`
	Presets         map[Granularity]PresetInput `json:"presets,omitempty" yaml:"presets,omitempty"`
}

// DateSettings is the fully resolved date formatting configuration.
type DateSettings struct {
	Locales         string                     `json:"locales" yaml:"locales"`
	BaseParsing     string                     `json:"baseParsing" yaml:"baseParsing"`
	WeekStartsOn    DayOfWeek                  `json:"weekStartsOn" yaml:"weekStartsOn"`
	Variant         DateFormatVariant          `json:"variant" yaml:"variant"`
	Custom          string                     `json:"custom" yaml:"custom"`
	Presets         DatePresets                `json:"presets" yaml:"presets"`
	OrdinalSuffixes map[string]OrdinalSuffixes `json:"ordinalSuffixes" yaml:"ordinalSuffixes"`
	DictionaryDate  DateDictionary             `json:"dictionaryDate" yaml:"dictionaryDate"`
}

const (
	defaultDateLocale  = "en"
	defaultBaseParsing = "yyyy-MM-dd"
)

// DefaultDateSettings returns the defaults for locale ("en" when empty),
// with the week start taken from lookup.
func DefaultDateSettings(locale string, lookup WeekStartLookup) DateSettings {
	locale = stringOr(locale, defaultDateLocale)

	return DateSettings{
		Locales:         locale,
		BaseParsing:     defaultBaseParsing,
		WeekStartsOn:    lookupWeekStart(lookup, locale),
		Variant:         VariantDefault,
		Custom:          "",
		Presets:         DefaultDatePresets(),
		OrdinalSuffixes: defaultOrdinalSuffixes(),
		DictionaryDate:  ResolveDictionary(nil).Date,
	}
}

// ResolveDateFormat resolves in with the region based week start lookup.
func ResolveDateFormat(in *DateInput) DateSettings {
	return resolveDateFormat(in, RegionWeekStart{})
}

func resolveDateFormat(in *DateInput, lookup WeekStartLookup) DateSettings {
	if in == nil {
		in = &DateInput{}
	}

	def := DefaultDateSettings(in.Locales, lookup)

	return DateSettings{
		Locales:         def.Locales,
		BaseParsing:     stringOr(in.BaseParsing, def.BaseParsing),
		WeekStartsOn:    valueOr(in.WeekStartsOn, def.WeekStartsOn),
		Variant:         resolveVariant(in),
		Custom:          in.Custom,
		Presets:         resolvePresets(in.Presets, def.Presets, in.Custom),
		OrdinalSuffixes: mergeOrdinalSuffixes(def.OrdinalSuffixes, in.OrdinalSuffixes),
		// Date labels are resolved from an empty dictionary here; dictionary
		// overrides given to the aggregator do not reach this field.
		DictionaryDate: ResolveDictionary(nil).Date,
	}
}

// resolveVariant applies the implicit custom rule: a custom pattern selects
// the custom variant unless the caller pinned a variant explicitly.
func resolveVariant(in *DateInput) DateFormatVariant {
	if in.Custom != "" && in.Variant == "" {
		return VariantCustom
	}
	return DateFormatVariant(stringOr(string(in.Variant), string(VariantDefault)))
}

func resolvePresets(in map[Granularity]PresetInput, def DatePresets, custom string) DatePresets {
	out := make(DatePresets, len(def))
	for _, granularity := range Granularities() {
		base := def[granularity]
		override := presetInput(in, granularity)
		out[granularity] = DatePreset{
			Short:   formatOr(override.Short, base.Short),
			Default: formatOr(override.Default, base.Default),
			Long:    formatOr(override.Long, base.Long),
			Custom:  custom,
		}
	}
	return out
}

// presetInput returns the override for granularity. monthYear also answers to
// the historical "monthsYear" key; the canonical key wins per variant.
func presetInput(in map[Granularity]PresetInput, granularity Granularity) PresetInput {
	override := in[granularity]
	if granularity != GranularityMonthYear {
		return override
	}

	legacy, ok := in[granularityMonthsYear]
	if !ok {
		return override
	}
	return PresetInput{
		Short:   firstFormat(override.Short, legacy.Short),
		Default: firstFormat(override.Default, legacy.Default),
		Long:    firstFormat(override.Long, legacy.Long),
	}
}

func firstFormat(formats ...DateFormat) DateFormat {
	for _, format := range formats {
		if format != nil {
			return format
		}
	}
	return nil
}

func lookupWeekStart(lookup WeekStartLookup, locale string) DayOfWeek {
	if lookup == nil {
		return Sunday
	}
	if day, ok := lookup.WeekStartsOn(locale); ok && day.Valid() {
		return day
	}
	return Sunday
}

func (d DateSettings) clone() DateSettings {
	out := d
	out.Presets = d.Presets.clone()
	out.OrdinalSuffixes = mergeOrdinalSuffixes(d.OrdinalSuffixes)
	return out
}

// Preset returns the preset table entry for granularity.
func (d DateSettings) Preset(granularity Granularity) (DatePreset, bool) {
	preset, ok := d.Presets[granularity]
	if !ok {
		return DatePreset{}, false
	}
	return preset.clone(), true
}

// ActiveFormat returns the token sequence of the active variant for
// granularity. For the custom variant it returns the custom pattern instead.
func (d DateSettings) ActiveFormat(granularity Granularity) (format DateFormat, custom string) {
	preset, ok := d.Presets[granularity]
	if !ok {
		return nil, ""
	}
	if tokens, ok := preset.Format(d.Variant); ok {
		return tokens, ""
	}
	return nil, preset.Custom
}

// MergeDateInput layers over on top of base and returns a new input. Fields
// set in over win; ordinal suffix and preset maps merge per key, presets per
// variant.
func MergeDateInput(base, over *DateInput) *DateInput {
	if base == nil && over == nil {
		return nil
	}
	if base == nil {
		base = &DateInput{}
	}
	if over == nil {
		over = &DateInput{}
	}

	merged := &DateInput{
		Locales:      stringOr(over.Locales, base.Locales),
		BaseParsing:  stringOr(over.BaseParsing, base.BaseParsing),
		WeekStartsOn: firstPtr(over.WeekStartsOn, base.WeekStartsOn),
		Variant:      DateFormatVariant(stringOr(string(over.Variant), string(base.Variant))),
		Custom:       stringOr(over.Custom, base.Custom),
	}

	if len(base.OrdinalSuffixes) > 0 || len(over.OrdinalSuffixes) > 0 {
		merged.OrdinalSuffixes = mergeOrdinalSuffixes(base.OrdinalSuffixes, over.OrdinalSuffixes)
	}

	if len(base.Presets) > 0 || len(over.Presets) > 0 {
		merged.Presets = make(map[Granularity]PresetInput, len(base.Presets)+len(over.Presets))
		for granularity, preset := range base.Presets {
			merged.Presets[granularity] = preset
		}
		for granularity, preset := range over.Presets {
			current := merged.Presets[granularity]
			merged.Presets[granularity] = PresetInput{
				Short:   firstFormat(preset.Short, current.Short),
				Default: firstFormat(preset.Default, current.Default),
				Long:    firstFormat(preset.Long, current.Long),
			}
		}
	}

	return merged
}
