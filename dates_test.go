package uxsettings

import (
	"reflect"
	"testing"
)

func TestResolveDateFormatDefaults(t *testing.T) {
	got := ResolveDateFormat(nil)

	if got.Locales != "en" {
		t.Fatalf("Locales = %q", got.Locales)
	}
	if got.BaseParsing != "yyyy-MM-dd" {
		t.Fatalf("BaseParsing = %q", got.BaseParsing)
	}
	if got.WeekStartsOn != Sunday {
		t.Fatalf("WeekStartsOn = %v, want Sunday", got.WeekStartsOn)
	}
	if got.Variant != VariantDefault {
		t.Fatalf("Variant = %q", got.Variant)
	}
	if got.Custom != "" {
		t.Fatalf("Custom = %q", got.Custom)
	}
	if !reflect.DeepEqual(got.Presets, DefaultDatePresets()) {
		t.Fatalf("Presets = %+v", got.Presets)
	}
	if got.DictionaryDate != DefaultDictionary().Date {
		t.Fatalf("DictionaryDate = %+v", got.DictionaryDate)
	}
	if _, ok := got.OrdinalSuffixes["en"]; !ok || len(got.OrdinalSuffixes) != 1 {
		t.Fatalf("OrdinalSuffixes = %+v", got.OrdinalSuffixes)
	}
}

func TestDefaultDatePresetsTable(t *testing.T) {
	presets := DefaultDatePresets()

	tests := []struct {
		granularity Granularity
		want        DatePreset
	}{
		{GranularityDay, DatePreset{
			Short:   DateFormat{"d", "M"},
			Default: DateFormat{"d", "M", "yyy"},
			Long:    DateFormat{"d", "MMM", "yyy"},
		}},
		{GranularityDayTime, DatePreset{
			Short:   DateFormat{"d", "M", "yyy", "h", "m"},
			Default: DateFormat{"d", "M", "yyy", "hh", "mm"},
			Long:    DateFormat{"d", "M", "yyy", "hh", "mm", "ss"},
		}},
		{GranularityTimeOnly, DatePreset{
			Short:   DateFormat{"h", "m"},
			Default: DateFormat{"hh", "mm", "ss"},
			Long:    DateFormat{"hh", "mm", "ss", "SSS"},
		}},
		{GranularityWeek, DatePreset{
			Short:   DateFormat{"d", "M"},
			Default: DateFormat{"d", "M", "yyy"},
			Long:    DateFormat{"d", "M", "yyy"},
		}},
		{GranularityMonth, DatePreset{
			Short:   DateFormat{"MMM"},
			Default: DateFormat{"MMM"},
			Long:    DateFormat{"MMMM"},
		}},
		{GranularityMonthYear, DatePreset{
			Short:   DateFormat{"MMM", "yy"},
			Default: DateFormat{"MMMM", "yyy"},
			Long:    DateFormat{"MMMM", "yyy"},
		}},
		{GranularityYear, DatePreset{
			Short:   DateFormat{"yy"},
			Default: DateFormat{"yyy"},
			Long:    DateFormat{"yyy"},
		}},
	}

	if len(presets) != len(tests) {
		t.Fatalf("preset count = %d, want %d", len(presets), len(tests))
	}

	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			if got := presets[tt.granularity]; !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("preset = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveDateFormatVariant(t *testing.T) {
	tests := []struct {
		name  string
		input *DateInput
		want  DateFormatVariant
	}{
		{name: "default", input: &DateInput{}, want: VariantDefault},
		{name: "custom implies custom variant", input: &DateInput{Custom: "EEE"}, want: VariantCustom},
		{name: "explicit variant wins over custom", input: &DateInput{Custom: "EEE", Variant: VariantLong}, want: VariantLong},
		{name: "explicit default wins over custom", input: &DateInput{Custom: "EEE", Variant: VariantDefault}, want: VariantDefault},
		{name: "explicit variant", input: &DateInput{Variant: VariantShort}, want: VariantShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDateFormat(tt.input)
			if got.Variant != tt.want {
				t.Fatalf("Variant = %q, want %q", got.Variant, tt.want)
			}
		})
	}
}

func TestResolveDateFormatCustomSlots(t *testing.T) {
	got := ResolveDateFormat(&DateInput{Custom: "EEE, MMM d"})

	if got.Custom != "EEE, MMM d" {
		t.Fatalf("Custom = %q", got.Custom)
	}
	for _, granularity := range Granularities() {
		if got.Presets[granularity].Custom != "EEE, MMM d" {
			t.Fatalf("%s custom = %q", granularity, got.Presets[granularity].Custom)
		}
	}

	format, custom := got.ActiveFormat(GranularityDay)
	if format != nil || custom != "EEE, MMM d" {
		t.Fatalf("ActiveFormat(day) = %v, %q", format, custom)
	}
}

func TestResolveDateFormatWeekStart(t *testing.T) {
	monday := Monday
	never := WeekStartLookupFunc(func(string) (DayOfWeek, bool) { return Saturday, false })
	always := WeekStartLookupFunc(func(string) (DayOfWeek, bool) { return Thursday, true })

	tests := []struct {
		name   string
		input  *DateInput
		lookup WeekStartLookup
		want   DayOfWeek
	}{
		{name: "en from region", input: nil, lookup: RegionWeekStart{}, want: Sunday},
		{name: "fr from region", input: &DateInput{Locales: "fr"}, lookup: RegionWeekStart{}, want: Monday},
		{name: "explicit input wins", input: &DateInput{WeekStartsOn: &monday}, lookup: always, want: Monday},
		{name: "lookup value", input: &DateInput{Locales: "xx"}, lookup: always, want: Thursday},
		{name: "lookup miss falls back to sunday", input: nil, lookup: never, want: Sunday},
		{name: "nil lookup falls back to sunday", input: nil, lookup: nil, want: Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDateFormat(tt.input, tt.lookup)
			if got.WeekStartsOn != tt.want {
				t.Fatalf("WeekStartsOn = %v, want %v", got.WeekStartsOn, tt.want)
			}
		})
	}
}

func TestResolveDateFormatOrdinalSuffixesAreAdditive(t *testing.T) {
	fr := OrdinalSuffixes{One: "er", Two: "e", Few: "e", Other: "e"}
	got := ResolveDateFormat(&DateInput{
		OrdinalSuffixes: map[string]OrdinalSuffixes{"fr": fr},
	})

	want := map[string]OrdinalSuffixes{
		"en": {One: "st", Two: "nd", Few: "rd", Other: "th"},
		"fr": fr,
	}
	if !reflect.DeepEqual(got.OrdinalSuffixes, want) {
		t.Fatalf("OrdinalSuffixes = %+v, want %+v", got.OrdinalSuffixes, want)
	}
}

func TestResolveDateFormatPresetOverride(t *testing.T) {
	got := ResolveDateFormat(&DateInput{
		Presets: map[Granularity]PresetInput{
			GranularityMonth: {Short: DateFormat{"MMM"}},
			GranularityDay:   {Long: DateFormat{"EEEE", "d"}},
		},
	})

	wantMonth := DatePreset{
		Short:   DateFormat{"MMM"},
		Default: DateFormat{"MMM"},
		Long:    DateFormat{"MMMM"},
		Custom:  "",
	}
	if !reflect.DeepEqual(got.Presets[GranularityMonth], wantMonth) {
		t.Fatalf("month = %+v, want %+v", got.Presets[GranularityMonth], wantMonth)
	}

	day := got.Presets[GranularityDay]
	if !reflect.DeepEqual(day.Long, DateFormat{"EEEE", "d"}) {
		t.Fatalf("day.Long = %v", day.Long)
	}
	if !reflect.DeepEqual(day.Short, DefaultDatePresets()[GranularityDay].Short) {
		t.Fatalf("day.Short = %v", day.Short)
	}
}

func TestResolveDateFormatMonthYearKeys(t *testing.T) {
	tests := []struct {
		name    string
		presets map[Granularity]PresetInput
		want    DatePreset
	}{
		{
			name: "canonical key",
			presets: map[Granularity]PresetInput{
				GranularityMonthYear: {Short: DateFormat{"MM", "yy"}},
			},
			want: DatePreset{Short: DateFormat{"MM", "yy"}, Default: DateFormat{"MMMM", "yyy"}, Long: DateFormat{"MMMM", "yyy"}},
		},
		{
			name: "legacy key",
			presets: map[Granularity]PresetInput{
				"monthsYear": {Long: DateFormat{"MMMM", "yy"}},
			},
			want: DatePreset{Short: DateFormat{"MMM", "yy"}, Default: DateFormat{"MMMM", "yyy"}, Long: DateFormat{"MMMM", "yy"}},
		},
		{
			name: "canonical wins per variant",
			presets: map[Granularity]PresetInput{
				"monthsYear":         {Short: DateFormat{"M", "yy"}, Default: DateFormat{"MMM", "yyy"}},
				GranularityMonthYear: {Short: DateFormat{"MM", "yy"}},
			},
			want: DatePreset{Short: DateFormat{"MM", "yy"}, Default: DateFormat{"MMM", "yyy"}, Long: DateFormat{"MMMM", "yyy"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDateFormat(&DateInput{Presets: tt.presets})
			if !reflect.DeepEqual(got.Presets[GranularityMonthYear], tt.want) {
				t.Fatalf("monthYear = %+v, want %+v", got.Presets[GranularityMonthYear], tt.want)
			}
			if _, ok := got.Presets["monthsYear"]; ok {
				t.Fatal("legacy key leaked into the resolved table")
			}
		})
	}
}

func TestResolveDateFormatDoesNotAliasDefaults(t *testing.T) {
	first := ResolveDateFormat(nil)
	first.Presets[GranularityDay].Short[0] = "X"

	second := ResolveDateFormat(nil)
	if second.Presets[GranularityDay].Short[0] != DayOfMonthNumeric {
		t.Fatalf("defaults mutated through a resolved value: %v", second.Presets[GranularityDay].Short)
	}
}

func TestDateSettingsActiveFormat(t *testing.T) {
	got := ResolveDateFormat(&DateInput{Variant: VariantLong})

	format, custom := got.ActiveFormat(GranularityTimeOnly)
	if custom != "" {
		t.Fatalf("custom = %q", custom)
	}
	if !reflect.DeepEqual(format, DateFormat{Hour2Digit, Minute2Digit, Second2Digit, Millisecond3}) {
		t.Fatalf("format = %v", format)
	}

	if token, ok := got.Presets[GranularityYear].Default.Single(); !ok || token != YearNumeric {
		t.Fatalf("year default = %v, %v", token, ok)
	}

	if _, ok := got.Preset("decade"); ok {
		t.Fatal("expected unknown granularity to be missing")
	}
}

func TestMergeDateInput(t *testing.T) {
	monday := Monday
	base := &DateInput{
		Locales:      "en-GB",
		WeekStartsOn: &monday,
		Custom:       "EEE",
		OrdinalSuffixes: map[string]OrdinalSuffixes{
			"fr": {One: "er", Other: "e"},
		},
		Presets: map[Granularity]PresetInput{
			GranularityDay: {Short: DateFormat{"dd"}, Long: DateFormat{"dd", "MMMM"}},
		},
	}
	over := &DateInput{
		Variant: VariantLong,
		Presets: map[Granularity]PresetInput{
			GranularityDay: {Short: DateFormat{"d"}},
		},
	}

	merged := MergeDateInput(base, over)

	if merged.Locales != "en-GB" || merged.Custom != "EEE" || merged.Variant != VariantLong {
		t.Fatalf("merged scalars = %+v", merged)
	}
	if merged.WeekStartsOn == nil || *merged.WeekStartsOn != Monday {
		t.Fatalf("WeekStartsOn = %v", merged.WeekStartsOn)
	}
	if _, ok := merged.OrdinalSuffixes["fr"]; !ok {
		t.Fatal("expected fr suffixes to survive the merge")
	}
	day := merged.Presets[GranularityDay]
	if !reflect.DeepEqual(day.Short, DateFormat{"d"}) || !reflect.DeepEqual(day.Long, DateFormat{"dd", "MMMM"}) {
		t.Fatalf("day preset = %+v", day)
	}

	if base.Variant != "" || !reflect.DeepEqual(base.Presets[GranularityDay].Short, DateFormat{"dd"}) {
		t.Fatalf("base mutated: %+v", base)
	}

	if MergeDateInput(nil, nil) != nil {
		t.Fatal("expected nil for two nil inputs")
	}
}
