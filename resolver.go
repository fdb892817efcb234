package uxsettings

import (
	"fmt"
	"log/slog"
)

// Resolver captures the collaborators used to build Settings
type Resolver struct {
	weekStart    WeekStartLookup
	storeFactory ThemeStoreFactory
	logger       *slog.Logger

	weekStartOverrides map[string]DayOfWeek
}

// Option mutates a Resolver during construction
type Option func(*Resolver) error

// NewResolver builds a Resolver via supplied options
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.weekStart == nil {
		r.weekStart = RegionWeekStart{}
	}

	if len(r.weekStartOverrides) > 0 {
		static := NewStaticWeekStart(r.weekStart)
		for locale, day := range r.weekStartOverrides {
			static.Set(locale, day)
		}
		r.weekStart = static
	}

	if r.storeFactory == nil {
		r.storeFactory = NewThemeStore
	}

	if r.logger == nil {
		r.logger = slog.Default().With("component", "uxsettings")
	}

	return r, nil
}

// WithWeekStartLookup replaces the locale week start lookup.
func WithWeekStartLookup(lookup WeekStartLookup) Option {
	return func(r *Resolver) error {
		r.weekStart = lookup
		return nil
	}
}

// WithWeekStart pins the week start for a locale and its sub-locales, ahead
// of the configured lookup.
func WithWeekStart(locale string, day DayOfWeek) Option {
	return func(r *Resolver) error {
		if !day.Valid() {
			return fmt.Errorf("%w: %d for locale %q", ErrInvalidDayOfWeek, int(day), locale)
		}
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return nil
		}
		if r.weekStartOverrides == nil {
			r.weekStartOverrides = make(map[string]DayOfWeek)
		}
		r.weekStartOverrides[normalized] = day
		return nil
	}
}

func WithThemeStoreFactory(factory ThemeStoreFactory) Option {
	return func(r *Resolver) error {
		r.storeFactory = factory
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) error {
		r.logger = logger
		return nil
	}
}

// Logger returns the resolver logger.
func (r *Resolver) Logger() *slog.Logger {
	return r.orDefault().logger
}

// DateFormat resolves date settings with the resolver's week start lookup.
func (r *Resolver) DateFormat(in *DateInput) DateSettings {
	return resolveDateFormat(in, r.orDefault().weekStart)
}

// Theme resolves the theme part with the resolver's store factory.
func (r *Resolver) Theme(in ThemeInput) ThemeConfig {
	return ResolveTheme(in, r.orDefault().storeFactory)
}

var defaultResolver = mustResolver()

func mustResolver(opts ...Option) *Resolver {
	r, err := NewResolver(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultResolver returns the package level resolver used by Get and Resolve.
func DefaultResolver() *Resolver {
	return defaultResolver
}

func (r *Resolver) orDefault() *Resolver {
	if r == nil {
		return defaultResolver
	}
	return r
}
