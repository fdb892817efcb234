package uxsettings

import (
	"math"
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// OrdinalSuffixes maps CLDR ordinal categories to the suffix appended to a
// number. Categories a locale does not use fall back to Other.
type OrdinalSuffixes struct {
	One   string `json:"one" yaml:"one"`
	Two   string `json:"two" yaml:"two"`
	Few   string `json:"few" yaml:"few"`
	Other string `json:"other" yaml:"other"`
}

// Suffix returns the suffix for the plural form.
func (s OrdinalSuffixes) Suffix(form plural.Form) string {
	switch form {
	case plural.One:
		return stringOr(s.One, s.Other)
	case plural.Two:
		return stringOr(s.Two, s.Other)
	case plural.Few:
		return stringOr(s.Few, s.Other)
	default:
		return s.Other
	}
}

func defaultOrdinalSuffixes() map[string]OrdinalSuffixes {
	return map[string]OrdinalSuffixes{
		"en": {
			One:   "st",
			Two:   "nd",
			Few:   "rd",
			Other: "th",
		},
	}
}

// mergeOrdinalSuffixes unions the tables left to right; later tables win per
// locale and nothing is ever removed.
func mergeOrdinalSuffixes(tables ...map[string]OrdinalSuffixes) map[string]OrdinalSuffixes {
	size := 0
	for _, table := range tables {
		size += len(table)
	}

	merged := make(map[string]OrdinalSuffixes, size)
	for _, table := range tables {
		for locale, suffixes := range table {
			merged[locale] = suffixes
		}
	}
	return merged
}

// OrdinalSuffix returns the suffix for n in the settings locale. The suffix
// set is looked up by locale, then its parents, then "en".
func (d DateSettings) OrdinalSuffix(n int) string {
	suffixes, locale := d.ordinalSuffixesFor(d.Locales)
	return suffixes.Suffix(ordinalForm(locale, n))
}

// Ordinal renders n with its ordinal suffix, e.g. 22 -> "22nd".
func (d DateSettings) Ordinal(n int) string {
	return strconv.Itoa(n) + d.OrdinalSuffix(n)
}

func (d DateSettings) ordinalSuffixesFor(locale string) (OrdinalSuffixes, string) {
	for _, candidate := range localeCandidates(locale) {
		if suffixes, ok := d.OrdinalSuffixes[candidate]; ok {
			return suffixes, candidate
		}
	}
	if suffixes, ok := d.OrdinalSuffixes[defaultDateLocale]; ok {
		return suffixes, defaultDateLocale
	}
	return defaultOrdinalSuffixes()[defaultDateLocale], defaultDateLocale
}

func ordinalForm(locale string, n int) plural.Form {
	if n == math.MinInt {
		// -MinInt overflows; the low digits decide the category.
		n %= 1_000_000_000
	}
	if n < 0 {
		n = -n
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return plural.Ordinal.MatchPlural(tag, n, 0, 0, 0, 0)
}
