package uxsettings

// DatePreset holds the formats of one granularity. Custom always mirrors the
// top-level custom pattern.
type DatePreset struct {
	Short   DateFormat `json:"short" yaml:"short"`
	Default DateFormat `json:"default" yaml:"default"`
	Long    DateFormat `json:"long" yaml:"long"`
	Custom  string     `json:"custom" yaml:"custom"`
}

// Format returns the token sequence for variant. The custom variant has no
// token sequence; ok is false and callers use Custom instead.
func (p DatePreset) Format(variant DateFormatVariant) (DateFormat, bool) {
	switch variant {
	case VariantShort:
		return p.Short.clone(), true
	case VariantDefault, "":
		return p.Default.clone(), true
	case VariantLong:
		return p.Long.clone(), true
	default:
		return nil, false
	}
}

func (p DatePreset) clone() DatePreset {
	return DatePreset{
		Short:   p.Short.clone(),
		Default: p.Default.clone(),
		Long:    p.Long.clone(),
		Custom:  p.Custom,
	}
}

// DatePresets is the preset table keyed by granularity.
type DatePresets map[Granularity]DatePreset

func (p DatePresets) clone() DatePresets {
	if p == nil {
		return nil
	}
	out := make(DatePresets, len(p))
	for granularity, preset := range p {
		out[granularity] = preset.clone()
	}
	return out
}

// PresetInput overrides individual variants of a granularity; nil keeps the default.
type PresetInput struct {
	Short   DateFormat `json:"short,omitempty" yaml:"short,omitempty"`
	Default DateFormat `json:"default,omitempty" yaml:"default,omitempty"`
	Long    DateFormat `json:"long,omitempty" yaml:"long,omitempty"`
}

// DefaultDatePresets returns the built-in preset table with an empty custom slot.
func DefaultDatePresets() DatePresets {
	return DatePresets{
		GranularityDay: {
			Short:   DateFormat{DayOfMonthNumeric, MonthNumeric},
			Default: DateFormat{DayOfMonthNumeric, MonthNumeric, YearNumeric},
			Long:    DateFormat{DayOfMonthNumeric, MonthShort, YearNumeric},
		},
		GranularityDayTime: {
			Short:   DateFormat{DayOfMonthNumeric, MonthNumeric, YearNumeric, HourNumeric, MinuteNumeric},
			Default: DateFormat{DayOfMonthNumeric, MonthNumeric, YearNumeric, Hour2Digit, Minute2Digit},
			Long:    DateFormat{DayOfMonthNumeric, MonthNumeric, YearNumeric, Hour2Digit, Minute2Digit, Second2Digit},
		},
		GranularityTimeOnly: {
			Short:   DateFormat{HourNumeric, MinuteNumeric},
			Default: DateFormat{Hour2Digit, Minute2Digit, Second2Digit},
			Long:    DateFormat{Hour2Digit, Minute2Digit, Second2Digit, Millisecond3},
		},
		GranularityWeek: {
			Short:   DateFormat{DayOfMonthNumeric, MonthNumeric},
			Default: DateFormat{DayOfMonthNumeric, MonthNumeric, YearNumeric},
			Long:    DateFormat{DayOfMonthNumeric, MonthNumeric, YearNumeric},
		},
		GranularityMonth: {
			Short:   DateFormat{MonthShort},
			Default: DateFormat{MonthShort},
			Long:    DateFormat{MonthLong},
		},
		GranularityMonthYear: {
			Short:   DateFormat{MonthShort, Year2Digit},
			Default: DateFormat{MonthLong, YearNumeric},
			Long:    DateFormat{MonthLong, YearNumeric},
		},
		GranularityYear: {
			Short:   DateFormat{Year2Digit},
			Default: DateFormat{YearNumeric},
			Long:    DateFormat{YearNumeric},
		},
	}
}
