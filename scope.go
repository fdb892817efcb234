package uxsettings

import (
	"context"
	"sync"
)

// Scope is a node of the component tree. Settings published on a scope are
// visible to the scope and its descendants, never to ancestors or siblings.
type Scope struct {
	parent   *Scope
	resolver *Resolver

	mu       sync.RWMutex
	settings *Settings
}

// NewScope creates a child of parent, or a root scope when parent is nil.
// A child inherits its parent's resolver.
func NewScope(parent *Scope) *Scope {
	s := &Scope{parent: parent}
	if parent != nil {
		s.resolver = parent.resolver
	}
	return s
}

// NewRootScope creates a root scope that resolves with r.
func NewRootScope(r *Resolver) *Scope {
	return &Scope{resolver: r}
}

// Parent returns the parent scope, or nil for a root.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// Publish resolves in and stores the result on s. When in carries no theme
// store, the store of the nearest published ancestor (or of a previous
// publish on s) is reused so a subtree never ends up with two stores.
func (s *Scope) Publish(in Input) *Settings {
	if s == nil {
		return s.resolverOrDefault().Resolve(in)
	}

	logger := s.resolverOrDefault().Logger()

	if in.CurrentTheme == nil {
		if existing := s.lookup(); existing != nil {
			in.CurrentTheme = existing.CurrentTheme
			logger.Debug("reusing theme store from enclosing settings")
		}
	}

	settings := s.resolverOrDefault().Resolve(in)

	s.mu.Lock()
	replaced := s.settings != nil
	s.settings = settings
	s.mu.Unlock()

	logger.Debug("settings published",
		"replaced", replaced,
		"locale", settings.Formats.Dates.Locales,
		"variant", settings.Formats.Dates.Variant,
	)

	return settings.clone()
}

// Settings returns a copy of the nearest published settings, or defaults when
// nothing is published above s. It never returns nil. Writes to the copy do
// not reach the published value; the theme store is shared.
func (s *Scope) Settings() (settings *Settings) {
	resolver := s.resolverOrDefault()

	defer func() {
		if recovered := recover(); recovered != nil {
			resolver.Logger().Warn("settings lookup failed, using defaults", "error", recovered)
			settings = resolver.Defaults()
		}
	}()

	if found := s.lookup(); found != nil {
		return found.clone()
	}
	return resolver.Defaults()
}

// Published reports whether s itself holds published settings.
func (s *Scope) Published() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings != nil
}

func (s *Scope) lookup() *Settings {
	for current := s; current != nil; current = current.parent {
		current.mu.RLock()
		found := current.settings
		current.mu.RUnlock()
		if found != nil {
			return found
		}
	}
	return nil
}

func (s *Scope) resolverOrDefault() *Resolver {
	if s == nil || s.resolver == nil {
		return defaultResolver
	}
	return s.resolver
}

// Publish publishes in on scope.
func Publish(scope *Scope, in Input) *Settings {
	return scope.Publish(in)
}

// Get returns the settings visible from scope; a nil scope yields defaults.
func Get(scope *Scope) *Settings {
	return scope.Settings()
}

type scopeContextKey struct{}

// ContextWithScope returns a copy of ctx that carries scope.
func ContextWithScope(ctx context.Context, scope *Scope) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

// ScopeFromContext returns the scope carried by ctx, if any.
func ScopeFromContext(ctx context.Context) (*Scope, bool) {
	if ctx == nil {
		return nil, false
	}
	scope, ok := ctx.Value(scopeContextKey{}).(*Scope)
	return scope, ok && scope != nil
}

// FromContext returns the settings visible from the scope carried by ctx, or
// defaults when ctx carries none.
func FromContext(ctx context.Context) *Settings {
	scope, _ := ScopeFromContext(ctx)
	return scope.Settings()
}
