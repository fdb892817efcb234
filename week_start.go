package uxsettings

import (
	"golang.org/x/text/language"
)

// WeekStartLookup reports the first day of the week for a locale.
type WeekStartLookup interface {
	WeekStartsOn(locale string) (DayOfWeek, bool)
}

// WeekStartLookupFunc adapts a bare function to WeekStartLookup.
type WeekStartLookupFunc func(locale string) (DayOfWeek, bool)

// WeekStartsOn implements WeekStartLookup for WeekStartLookupFunc
func (fn WeekStartLookupFunc) WeekStartsOn(locale string) (DayOfWeek, bool) {
	return fn(locale)
}

// CLDR weekData firstDay values; every region not listed starts on Monday.
var regionFirstDay = map[string]DayOfWeek{
	"AG": Sunday, "AS": Sunday, "AU": Sunday, "BD": Sunday, "BR": Sunday,
	"BS": Sunday, "BT": Sunday, "BW": Sunday, "BZ": Sunday, "CA": Sunday,
	"CN": Sunday, "CO": Sunday, "DM": Sunday, "DO": Sunday, "ET": Sunday,
	"GT": Sunday, "GU": Sunday, "HK": Sunday, "HN": Sunday, "ID": Sunday,
	"IL": Sunday, "IN": Sunday, "JM": Sunday, "JP": Sunday, "KE": Sunday,
	"KH": Sunday, "KR": Sunday, "LA": Sunday, "MH": Sunday, "MM": Sunday,
	"MO": Sunday, "MT": Sunday, "MX": Sunday, "MZ": Sunday, "NI": Sunday,
	"NP": Sunday, "PA": Sunday, "PE": Sunday, "PH": Sunday, "PK": Sunday,
	"PR": Sunday, "PT": Sunday, "PY": Sunday, "SA": Sunday, "SG": Sunday,
	"SV": Sunday, "TH": Sunday, "TT": Sunday, "TW": Sunday, "UM": Sunday,
	"US": Sunday, "VE": Sunday, "VI": Sunday, "WS": Sunday, "YE": Sunday,
	"ZA": Sunday, "ZW": Sunday,

	"AE": Saturday, "AF": Saturday, "BH": Saturday, "DJ": Saturday,
	"DZ": Saturday, "EG": Saturday, "IQ": Saturday, "IR": Saturday,
	"JO": Saturday, "KW": Saturday, "LY": Saturday, "OM": Saturday,
	"QA": Saturday, "SD": Saturday, "SY": Saturday,

	"MV": Friday,
}

// RegionWeekStart derives the week start from the locale's region, inferring
// the most likely region when the tag has none ("en" -> US).
type RegionWeekStart struct{}

var _ WeekStartLookup = RegionWeekStart{}

// WeekStartsOn implements WeekStartLookup.
func (RegionWeekStart) WeekStartsOn(locale string) (DayOfWeek, bool) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return Sunday, false
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return Sunday, false
	}

	region, confidence := tag.Region()
	if confidence == language.No {
		return Sunday, false
	}

	if day, ok := regionFirstDay[region.String()]; ok {
		return day, true
	}
	return Monday, true
}

// StaticWeekStart answers from a fixed locale table, walking parent locales,
// and defers to Next for anything it does not know.
type StaticWeekStart struct {
	days map[string]DayOfWeek
	Next WeekStartLookup
}

// NewStaticWeekStart builds an empty table that defers to next.
func NewStaticWeekStart(next WeekStartLookup) *StaticWeekStart {
	return &StaticWeekStart{
		days: make(map[string]DayOfWeek),
		Next: next,
	}
}

// Set registers the week start for locale.
func (s *StaticWeekStart) Set(locale string, day DayOfWeek) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return
	}
	if s.days == nil {
		s.days = make(map[string]DayOfWeek)
	}
	s.days[normalized] = day
}

// WeekStartsOn implements WeekStartLookup.
func (s *StaticWeekStart) WeekStartsOn(locale string) (DayOfWeek, bool) {
	if s == nil {
		return Sunday, false
	}

	for _, candidate := range localeCandidates(locale) {
		if day, ok := s.days[candidate]; ok {
			return day, true
		}
	}

	if s.Next != nil {
		return s.Next.WeekStartsOn(locale)
	}
	return Sunday, false
}
