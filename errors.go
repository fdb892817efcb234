package uxsettings

import "errors"

// ErrUnknownTheme indicates that a theme name is in neither the light nor the dark list.
var ErrUnknownTheme = errors.New("uxsettings: unknown theme")

// ErrInvalidDayOfWeek marks a week start outside Sunday..Saturday
var ErrInvalidDayOfWeek = errors.New("uxsettings: invalid day of week")

// ErrUnsupportedFormat is returned by loaders for unknown document extensions
var ErrUnsupportedFormat = errors.New("uxsettings: unsupported input format")
