package convert

import (
	"cmp"
	"reflect"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Neumenon/variant/variant"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// Registry maps source types to converters, delegating misses to an
// optional parent. Lookups and registrations are safe for concurrent use;
// registering several types is not atomic as a batch.
type Registry struct {
	parent *Registry
	logger *zap.Logger

	mu         sync.RWMutex
	converters map[reflect.Type]Converter
}

// NewRegistry creates a registry whose misses fall through to parent,
// which may be nil.
func NewRegistry(parent *Registry, opts ...Option) *Registry {
	r := &Registry{
		parent:     parent,
		logger:     zap.NewNop(),
		converters: make(map[reflect.Type]Converter),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parent returns the registry consulted on a local miss, or nil.
func (r *Registry) Parent() *Registry { return r.parent }

// Find returns the converter for t from the nearest registry in the parent
// chain that has one.
func (r *Registry) Find(t reflect.Type) (Converter, bool) {
	for cur := r; cur != nil; cur = cur.parent {
		if c, ok := cur.local(t); ok {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) local(t reflect.Type) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.converters[t]
	return c, ok
}

// Has reports whether Find would succeed for t.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.Find(t)
	return ok
}

// Register installs c for t in this registry and returns the converter it
// replaced here, or nil. Pass the result to Restore to undo the change.
// c must accept values of type t. A nil c removes the local entry, as
// Restore(t, nil) does.
func (r *Registry) Register(t reflect.Type, c Converter) Converter {
	r.mu.Lock()
	prev := r.converters[t]
	if c == nil {
		delete(r.converters, t)
	} else {
		r.converters[t] = c
	}
	r.mu.Unlock()

	if c == nil {
		r.logger.Debug("converter removed", zap.Stringer("type", t), zap.Bool("existed", prev != nil))
		return prev
	}
	fields := []zap.Field{zap.Stringer("type", t), zap.Stringer("kind", c.Kind())}
	switch {
	case prev != nil:
		r.logger.Debug("converter replaced", fields...)
	case r.parent != nil && r.parent.Has(t):
		r.logger.Debug("converter shadows parent", fields...)
	default:
		r.logger.Debug("converter registered", fields...)
	}
	return prev
}

// Restore reinstalls prev for t, or removes the local entry when prev is nil.
func (r *Registry) Restore(t reflect.Type, prev Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev == nil {
		delete(r.converters, t)
	} else {
		r.converters[t] = prev
	}
	r.logger.Debug("converter restored", zap.Stringer("type", t), zap.Bool("removed", prev == nil))
}

// Types returns the types registered locally, sorted by name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]reflect.Type, 0, len(r.converters))
	for t := range r.converters {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return cmp.Compare(a.String(), b.String())
	})
	return types
}

// RegisterFor registers c under T.
func RegisterFor[T any](r *Registry, c Converter) Converter {
	return r.Register(reflect.TypeFor[T](), c)
}

// FindFor looks up the converter for T.
func FindFor[T any](r *Registry) (Converter, bool) {
	return r.Find(reflect.TypeFor[T]())
}

// Default returns the process-wide root registry. It knows time.Duration
// (long nanoseconds), time.Month and time.Weekday (int).
var Default = sync.OnceValue(func() *Registry {
	r := NewRegistry(nil)
	RegisterFor[time.Duration](r, Long(
		func(d time.Duration) int64 { return int64(d) },
		func(n int64) time.Duration { return time.Duration(n) },
	))
	RegisterFor[time.Month](r, Int(
		func(m time.Month) int32 { return int32(m) },
		func(n int32) time.Month { return time.Month(n) },
	))
	RegisterFor[time.Weekday](r, Int(
		func(d time.Weekday) int32 { return int32(d) },
		func(n int32) time.Weekday { return time.Weekday(n) },
	))
	return r
})

var _ variant.ConverterLookup = (*Registry)(nil)
