package uxsettings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DayOfWeek follows time.Weekday numbering: Sunday is 0, Saturday is 6.
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Valid reports whether d is within Sunday..Saturday.
func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d DayOfWeek) String() string {
	if !d.Valid() {
		return "DayOfWeek(" + strconv.Itoa(int(d)) + ")"
	}
	return time.Weekday(d).String()
}

// Weekday converts d to the time package equivalent.
func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday(d)
}

// ParseDayOfWeek accepts a day name ("monday", "Mon") or its number ("1").
func ParseDayOfWeek(value string) (DayOfWeek, error) {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.Atoi(trimmed); err == nil {
		day := DayOfWeek(n)
		if !day.Valid() {
			return Sunday, fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, n)
		}
		return day, nil
	}

	lowered := strings.ToLower(trimmed)
	for day := Sunday; day <= Saturday; day++ {
		name := strings.ToLower(day.String())
		if lowered == name || (len(lowered) >= 3 && strings.HasPrefix(name, lowered)) {
			return day, nil
		}
	}
	return Sunday, fmt.Errorf("%w: %q", ErrInvalidDayOfWeek, value)
}

func (d DayOfWeek) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(d))
}

func (d *DayOfWeek) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		day := DayOfWeek(n)
		if !day.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, n)
		}
		*d = day
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDayOfWeek, string(data))
	}
	day, err := ParseDayOfWeek(name)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

func (d *DayOfWeek) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: line %d", ErrInvalidDayOfWeek, value.Line)
	}
	day, err := ParseDayOfWeek(raw)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// DateFormatVariant selects which preset tier is active
type DateFormatVariant string

const (
	VariantShort   DateFormatVariant = "short"
	VariantDefault DateFormatVariant = "default"
	VariantLong    DateFormatVariant = "long"
	VariantCustom  DateFormatVariant = "custom"
)

// DateToken is a date-fns style format directive.
type DateToken string

const (
	YearNumeric       DateToken = "yyy"
	Year2Digit        DateToken = "yy"
	MonthLong         DateToken = "MMMM"
	MonthShort        DateToken = "MMM"
	Month2Digit       DateToken = "MM"
	MonthNumeric      DateToken = "M"
	HourNumeric       DateToken = "h"
	Hour2Digit        DateToken = "hh"
	HourWithAMPM      DateToken = "a"
	HourWithoutAMPM   DateToken = "aaaaaa"
	MinuteNumeric     DateToken = "m"
	Minute2Digit      DateToken = "mm"
	SecondNumeric     DateToken = "s"
	Second2Digit      DateToken = "ss"
	Millisecond3      DateToken = "SSS"
	DayOfMonthNumeric DateToken = "d"
	DayOfMonth2Digit  DateToken = "dd"
	DayOfMonthOrdinal DateToken = "do"
	DayOfWeekNarrow   DateToken = "eeeee"
	DayOfWeekLong     DateToken = "eeee"
	DayOfWeekShort    DateToken = "r"
)

// DateFormat is an ordered token sequence. Single-token presets (month, year)
// are one-element formats.
type DateFormat []DateToken

// Single returns the token of a one-element format.
func (f DateFormat) Single() (DateToken, bool) {
	if len(f) != 1 {
		return "", false
	}
	return f[0], true
}

func (f DateFormat) String() string {
	parts := make([]string, len(f))
	for i, token := range f {
		parts[i] = string(token)
	}
	return strings.Join(parts, " ")
}

func (f DateFormat) clone() DateFormat {
	if f == nil {
		return nil
	}
	out := make(DateFormat, len(f))
	copy(out, f)
	return out
}

// Granularity is a class of date display with its own presets.
type Granularity string

const (
	GranularityDay       Granularity = "day"
	GranularityDayTime   Granularity = "dayTime"
	GranularityTimeOnly  Granularity = "timeOnly"
	GranularityWeek      Granularity = "week"
	GranularityMonth     Granularity = "month"
	GranularityMonthYear Granularity = "monthYear"
	GranularityYear      Granularity = "year"

	// granularityMonthsYear is the historical spelling of the monthYear input key.
	granularityMonthsYear Granularity = "monthsYear"
)

// Granularities lists every granularity in display order.
func Granularities() []Granularity {
	return []Granularity{
		GranularityDay,
		GranularityDayTime,
		GranularityTimeOnly,
		GranularityWeek,
		GranularityMonth,
		GranularityMonthYear,
		GranularityYear,
	}
}

// ComponentClasses maps a component name to its class overrides. Values are
// passed through untouched.
type ComponentClasses map[string]any

func (c ComponentClasses) clone() ComponentClasses {
	out := make(ComponentClasses, len(c))
	for name, value := range c {
		out[name] = cloneValue(value)
	}
	return out
}

// Ptr returns a pointer to v, handy for optional input fields.
func Ptr[T any](v T) *T {
	return &v
}

// UnmarshalJSON accepts a token list or a single token string. null leaves f
// untouched so the default applies.
func (f *DateFormat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var tokens []DateToken
	if err := json.Unmarshal(data, &tokens); err == nil {
		if tokens == nil {
			tokens = []DateToken{}
		}
		*f = tokens
		return nil
	}

	var token DateToken
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("date format: %w", err)
	}
	*f = DateFormat{token}
	return nil
}

// UnmarshalYAML accepts a token sequence or a single token scalar.
func (f *DateFormat) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var token string
		if err := value.Decode(&token); err != nil {
			return fmt.Errorf("date format: %w", err)
		}
		*f = DateFormat{DateToken(token)}
		return nil
	}

	var tokens []DateToken
	if err := value.Decode(&tokens); err != nil {
		return fmt.Errorf("date format: %w", err)
	}
	if tokens == nil {
		tokens = []DateToken{}
	}
	*f = tokens
	return nil
}
