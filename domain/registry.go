package domain

import (
	"cmp"
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Registry maps Go types and names to domains. Safe for concurrent use.
type Registry struct {
	logger *zap.Logger

	mu     sync.RWMutex
	byType map[reflect.Type]Descriptor
	byKind map[reflect.Kind]Descriptor
	byName map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := buildOptions(opts)
	return &Registry{
		logger: o.logger,
		byType: make(map[reflect.Type]Descriptor),
		byKind: make(map[reflect.Kind]Descriptor),
		byName: make(map[string]Descriptor),
	}
}

// Register binds d to its Go type and its name, replacing any domain
// previously bound to that type. It returns the replaced domain, or nil.
func (r *Registry) Register(d Descriptor) Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := d.Type()
	prev := r.byType[t]
	r.byType[t] = d
	r.byName[d.Name()] = d
	cur, taken := r.byKind[t.Kind()]
	switch {
	case !d.ExactType() && (!taken || cur.Type() == t):
		r.byKind[t.Kind()] = d
	case d.ExactType() && taken && cur.Type() == t:
		// The kind fallback pointed at the domain just replaced.
		delete(r.byKind, t.Kind())
	}
	if prev != nil {
		r.logger.Debug("domain replaced",
			zap.Stringer("type", t),
			zap.String("old", prev.Name()),
			zap.String("new", d.Name()))
	} else {
		r.logger.Debug("domain registered", zap.Stringer("type", t), zap.String("name", d.Name()))
	}
	return prev
}

// RegisterName binds d under its name only. Use it for a domain that shares
// its Go type with another, such as Char with Int.
func (r *Registry) RegisterName(d Descriptor) Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.byName[d.Name()]
	r.byName[d.Name()] = d
	r.logger.Debug("domain registered by name", zap.String("name", d.Name()))
	return prev
}

// Lookup returns the domain serving values of type t. An exact match wins.
// Otherwise a non-exact domain over a type of the same kind is used when t
// converts to that type.
func (r *Registry) Lookup(t reflect.Type) (Descriptor, bool) {
	if t == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.byType[t]; ok {
		return d, true
	}
	if d, ok := r.byKind[t.Kind()]; ok && accepts(d.Type(), t) {
		return d, true
	}
	return nil, false
}

// ByName returns the domain registered under name.
func (r *Registry) ByName(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

// Names returns the registered domain names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Types returns the types with a directly registered domain.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]reflect.Type, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return cmp.Compare(a.String(), b.String())
	})
	return types
}

// LookupFor is Lookup for a static type. It only succeeds when the domain
// found is a Domain[T], so named types served by a non-exact domain report
// false here and must go through Lookup and IDOf.
func LookupFor[T any](r *Registry) (Domain[T], bool) {
	d, ok := r.Lookup(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	td, ok := d.(Domain[T])
	return td, ok
}

// Default returns the process-wide registry holding the built-in domains.
// Char and NullableFloat are reachable by name only, since their Go types
// belong to Int and Float.
var Default = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	r.Register(Bool())
	r.Register(Byte())
	r.Register(Short())
	r.Register(Int())
	r.Register(Float())
	r.RegisterName(Char())
	r.RegisterName(NullableFloat())
	return r
})
