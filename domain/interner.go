package domain

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Option configures an Interner or a Registry.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	maxSize int
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for registration and growth events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxSize caps the number of values an Interner accepts. Zero means no
// cap beyond the int ID space.
func WithMaxSize(n int) Option {
	return func(o *options) { o.maxSize = n }
}

// Interner is a Domain that assigns dense IDs to values on first sight.
// It has no null ID. Safe for concurrent use.
type Interner[T comparable] struct {
	name    string
	logger  *zap.Logger
	maxSize int

	mu     sync.RWMutex
	ids    map[T]int
	values []T
}

// NewInterner creates an empty Interner.
func NewInterner[T comparable](name string, opts ...Option) *Interner[T] {
	o := buildOptions(opts)
	return &Interner[T]{
		name:    name,
		logger:  o.logger.With(zap.String("domain", name)),
		maxSize: o.maxSize,
		ids:     make(map[T]int),
	}
}

func (in *Interner[T]) Name() string { return in.name }
func (in *Interner[T]) Type() reflect.Type { return reflect.TypeFor[T]() }
func (in *Interner[T]) ExactType() bool { return true }
func (in *Interner[T]) SupportsNull() bool { return false }
func (in *Interner[T]) NullID() (int, bool) { return 0, false }

// Len returns the number of values interned so far.
func (in *Interner[T]) Len() int64 {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return int64(len(in.values))
}

// ID returns the ID of v, assigning the next free ID if v is new.
func (in *Interner[T]) ID(v T) (int, error) {
	id, _, err := in.intern(v)
	return id, err
}

// Intern returns the canonical instance equal to v, which is the first one
// seen, together with its ID.
func (in *Interner[T]) Intern(v T) (T, int, error) {
	id, canon, err := in.intern(v)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return canon, id, nil
}

// Lookup returns the ID of v without assigning one.
func (in *Interner[T]) Lookup(v T) (int, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	id, ok := in.ids[v]
	return id, ok
}

func (in *Interner[T]) intern(v T) (int, T, error) {
	// Fast path: already interned
	in.mu.RLock()
	if id, ok := in.ids[v]; ok {
		canon := in.values[id]
		in.mu.RUnlock()
		return id, canon, nil
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()

	// Double-check after acquiring write lock
	if id, ok := in.ids[v]; ok {
		return id, in.values[id], nil
	}
	if in.maxSize > 0 && len(in.values) >= in.maxSize {
		return 0, v, fmt.Errorf("%w: %s holds %d values", ErrFull, in.name, len(in.values))
	}

	id := len(in.values)
	in.ids[v] = id
	in.values = append(in.values, v)
	if id > 0 && id&(id-1) == 0 {
		in.logger.Debug("interner grew", zap.Int("size", id+1))
	}
	return id, v, nil
}

func (in *Interner[T]) IDOf(v any) (int, error) { return idOf[T](in, v) }

func (in *Interner[T]) Value(id int) (T, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if id < 0 || id >= len(in.values) {
		var zero T
		return zero, fmt.Errorf("%w: %s id %d", ErrUnknownID, in.name, id)
	}
	return in.values[id], nil
}

func (in *Interner[T]) Boxed(id int) (any, error) {
	v, err := in.Value(id)
	if err != nil {
		return nil, err
	}
	return v, nil
}
