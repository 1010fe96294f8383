package arraylist

import (
	"iter"

	"go.uber.org/zap"
)

// List is a contiguous, growable sequence of T. The zero value is an empty
// list drawing storage from the heap and growing by Doubling.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	buf []T // owned region, len(buf) is the capacity
	n   int // live elements occupy buf[:n]; buf[n:] is zeroed

	alloc   Allocator[T]
	growth  GrowthPolicy
	log     *zap.Logger
	copyFn  func(T) (T, error)
	release func(*T)

	track tracker
	stats counters
}

// New creates an empty list with capacity 0.
func New[T any](opts ...Option) *List[T] {
	l := &List[T]{}
	l.apply(opts)
	return l
}

// WithCapacity creates an empty list with room for exactly n elements.
func WithCapacity[T any](n int, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.Reserve(n); err != nil {
		return nil, err
	}
	return l, nil
}

// Filled creates a list of n copies of v with capacity n.
func Filled[T any](n int, v T, opts ...Option) (*List[T], error) {
	if n < 0 {
		return nil, rangeError("Filled", n, 0)
	}
	l := New[T](opts...)
	if err := l.replace("Filled", n, func(int) T { return v }, true); err != nil {
		return nil, err
	}
	return l, nil
}

// FromSlice creates a list holding copies of s, with capacity len(s).
func FromSlice[T any](s []T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.replace("FromSlice", len(s), func(i int) T { return s[i] }, true); err != nil {
		return nil, err
	}
	return l, nil
}

// Collect creates a list from the values of seq, in order.
func Collect[T any](seq iter.Seq[T], opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	for v := range seq {
		if err := l.Append(v); err != nil {
			l.Release()
			return nil, err
		}
	}
	return l, nil
}

// Len returns the number of elements. A nil list has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// Cap returns the number of allocated slots.
func (l *List[T]) Cap() int {
	return len(l.buf)
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// Reserve makes room for at least minCapacity elements. It allocates exactly
// minCapacity slots when the list is smaller and does nothing otherwise.
// On failure the list is unchanged.
func (l *List[T]) Reserve(minCapacity int) error {
	if minCapacity <= len(l.buf) {
		return nil
	}
	return l.reallocate("Reserve", minCapacity, l.n, 0)
}

// ShrinkToFit reduces capacity to the current length. An empty list gives
// its storage back entirely. On failure the list is unchanged.
func (l *List[T]) ShrinkToFit() error {
	if len(l.buf) == l.n {
		return nil
	}
	if l.n == 0 {
		l.freeStorage()
		return nil
	}
	return l.reallocate("ShrinkToFit", l.n, l.n, 0)
}

// Release destroys every element and returns the storage to the allocator.
// The list stays usable and is empty with capacity 0 afterwards.
func (l *List[T]) Release() {
	l.destroy(0, l.n)
	l.n = 0
	l.freeStorage()
}

// Clone returns an independent deep copy with capacity equal to Len.
func (l *List[T]) Clone() (*List[T], error) {
	c := &List[T]{
		alloc:   l.alloc,
		growth:  l.growth,
		log:     l.log,
		copyFn:  l.copyFn,
		release: l.release,
	}
	if err := c.replace("Clone", l.n, func(i int) T { return l.buf[i] }, true); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents with a deep copy of src. The copy is built
// before anything is destroyed, so on failure the list is unchanged.
// A nil src is an empty list.
func (l *List[T]) CopyFrom(src *List[T]) error {
	if src == l {
		return nil
	}
	if src == nil {
		return l.replace("CopyFrom", 0, nil, true)
	}
	return l.replace("CopyFrom", src.n, func(i int) T { return src.buf[i] }, true)
}

// Move transfers the storage, elements and configuration to a new list and
// leaves l empty with capacity 0.
func (l *List[T]) Move() *List[T] {
	m := &List[T]{
		buf:     l.buf,
		n:       l.n,
		alloc:   l.alloc,
		growth:  l.growth,
		log:     l.log,
		copyFn:  l.copyFn,
		release: l.release,
	}
	l.buf, l.n = nil, 0
	l.track.realloc()
	return m
}

// MoveFrom destroys the current contents and takes over src's storage and
// allocator. src is left empty with capacity 0. A nil src empties l and
// releases its storage.
func (l *List[T]) MoveFrom(src *List[T]) {
	if src == l {
		return
	}
	l.Release()
	if src == nil {
		return
	}
	l.buf, l.n, l.alloc = src.buf, src.n, src.alloc
	src.buf, src.n = nil, 0
	src.track.realloc()
	l.track.realloc()
}

// Swap exchanges the contents and allocators of two lists.
func (l *List[T]) Swap(other *List[T]) {
	if other == l {
		return
	}
	l.buf, other.buf = other.buf, l.buf
	l.n, other.n = other.n, l.n
	l.alloc, other.alloc = other.alloc, l.alloc
	l.track.realloc()
	other.track.realloc()
}

// Equal reports whether a and b have the same length and equal elements in order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq. A nil list equals
// an empty one.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a == nil || b == nil {
		return a.Len() == 0 && b.Len() == 0
	}
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// growToFit makes room for required elements using the growth policy.
func (l *List[T]) growToFit(op string, required int) error {
	if required <= len(l.buf) {
		return nil
	}
	return l.reallocate(op, nextCapacity(l.policy(), len(l.buf), required), l.n, 0)
}

// reallocate moves the live elements into a fresh region of newCap slots,
// leaving a zeroed gap of gap slots at pos. Nothing changes if the
// allocation fails.
func (l *List[T]) reallocate(op string, newCap, pos, gap int) error {
	region, err := l.allocate(op, newCap)
	if err != nil {
		return err
	}

	l.relocate(region, pos, gap)

	old := len(l.buf)
	l.freeStorage()
	l.buf = region
	l.stats.reallocations++

	l.logger().Debug("reallocated",
		zap.String("op", op),
		zap.Int("len", l.n),
		zap.Int("cap", old),
		zap.Int("new_cap", newCap))
	return nil
}

// allocate obtains exactly n slots, n > 0.
func (l *List[T]) allocate(op string, n int) ([]T, error) {
	region, err := l.allocator().Allocate(n)
	if err == nil && len(region) != n {
		l.allocator().Free(region)
		region, err = nil, ErrAllocation
	}
	if err != nil {
		l.stats.allocFailures++
		l.logger().Debug("allocation failed",
			zap.String("op", op),
			zap.Int("len", l.n),
			zap.Int("cap", len(l.buf)),
			zap.Int("requested", n),
			zap.Error(err))
		return nil, allocError(op, n, err)
	}
	return region, nil
}

// replace installs n source values in a fresh region of n slots, deep
// copying them when deep is set.
// The new region is fully built before the old elements are destroyed.
func (l *List[T]) replace(op string, n int, at func(int) T, deep bool) error {
	var region []T
	if n > 0 {
		var err error
		region, err = l.allocate(op, n)
		if err != nil {
			return err
		}
		if err := l.fill(region, at, deep); err != nil {
			l.allocator().Free(region)
			return err
		}
	}
	l.destroy(0, l.n)
	l.freeStorage()
	l.buf, l.n = region, n
	return nil
}

// freeStorage zeroes and hands back the region and invalidates every handle.
func (l *List[T]) freeStorage() {
	if l.buf != nil {
		clear(l.buf)
		l.allocator().Free(l.buf)
		l.buf = nil
	}
	l.track.realloc()
}

func (l *List[T]) allocator() Allocator[T] {
	if l.alloc == nil {
		l.alloc = Heap[T]{}
	}
	return l.alloc
}

func (l *List[T]) policy() GrowthPolicy {
	if l.growth == nil {
		return Doubling
	}
	return l.growth
}

func (l *List[T]) logger() *zap.Logger {
	if l.log == nil {
		return Logger()
	}
	return l.log
}
