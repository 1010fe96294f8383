package arraylist

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// config collects options before the element type is bound. Typed values
// are held as any and asserted when the list is built.
type config struct {
	alloc   any
	growth  GrowthPolicy
	logger  *zap.Logger
	copyFn  any
	release any
}

// Option configures a List.
type Option func(*config)

// WithAllocator sets where the list obtains its storage. Default: Heap[T].
func WithAllocator[T any](a Allocator[T]) Option {
	return func(c *config) { c.alloc = a }
}

// WithGrowth sets the growth policy. Default: Doubling.
func WithGrowth(p GrowthPolicy) Option {
	return func(c *config) { c.growth = p }
}

// WithLogger sets the logger for reallocation and allocation-failure events.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCopy sets how elements are deep-copied by Clone, CopyFrom and range
// construction. A failing copy aborts the operation with the target unchanged.
// Without it elements are copied by assignment.
func WithCopy[T any](fn func(T) (T, error)) Option {
	return func(c *config) { c.copyFn = fn }
}

// WithRelease sets a hook run on every element that leaves the list through
// erase, clear, truncation, overwrite or Release. Values handed back to the
// caller (PopBack) are not released.
func WithRelease[T any](fn func(*T)) Option {
	return func(c *config) { c.release = fn }
}

func (l *List[T]) apply(opts []Option) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.alloc != nil {
		a, ok := c.alloc.(Allocator[T])
		if !ok {
			panic(fmt.Sprintf("arraylist: allocator %T cannot serve List[%s]", c.alloc, typeName[T]()))
		}
		l.alloc = a
	}
	if c.copyFn != nil {
		fn, ok := c.copyFn.(func(T) (T, error))
		if !ok {
			panic(fmt.Sprintf("arraylist: copy hook %T cannot serve List[%s]", c.copyFn, typeName[T]()))
		}
		l.copyFn = fn
	}
	if c.release != nil {
		fn, ok := c.release.(func(*T))
		if !ok {
			panic(fmt.Sprintf("arraylist: release hook %T cannot serve List[%s]", c.release, typeName[T]()))
		}
		l.release = fn
	}
	l.growth = c.growth
	l.log = c.logger
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
