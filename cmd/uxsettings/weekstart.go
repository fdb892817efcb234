package main

import (
	"fmt"
	"strings"

	uxsettings "github.com/goliatone/go-ux-settings"
)

// weekStartOption parses a "locale=day" flag value.
func weekStartOption(entry string) (uxsettings.Option, error) {
	locale, day, ok := strings.Cut(entry, "=")
	if !ok || strings.TrimSpace(locale) == "" {
		return nil, fmt.Errorf("invalid --week-start %q, want locale=day", entry)
	}

	parsed, err := uxsettings.ParseDayOfWeek(day)
	if err != nil {
		return nil, err
	}
	return uxsettings.WithWeekStart(strings.TrimSpace(locale), parsed), nil
}
