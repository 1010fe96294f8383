package arraylist

import (
	"math"
	"runtime/debug"
	"unsafe"
)

// defaultMaxAllocBytes bounds a single region when the runtime has no soft
// memory limit. The Go runtime aborts the process when it cannot map a
// region, so requests past the bound must be refused before make.
const defaultMaxAllocBytes = 1 << 32

// maxAllocBytes returns the byte bound for a single region: the soft memory
// limit set with debug.SetMemoryLimit or GOMEMLIMIT, or
// defaultMaxAllocBytes when none is set.
func maxAllocBytes() uint64 {
	if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 {
		return uint64(limit)
	}
	return defaultMaxAllocBytes
}

// Allocator hands out and takes back contiguous regions of T.
//
// Allocate returns a region of exactly n zeroed slots, or an error wrapping
// ErrAllocation when the request cannot be satisfied. Free returns a region
// previously obtained from the same allocator; the caller has already zeroed
// it and must not touch it afterwards.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Free(region []T)
}

// MaxSlots returns the largest region of T a single allocation may request
// from Heap or Arena by default. Zero-size types are unbounded.
func MaxSlots[T any]() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	slots := maxAllocBytes() / size
	if slots > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(slots)
}

// Heap allocates regions from the Go heap. The zero value is ready to use.
type Heap[T any] struct {
	// MaxSlots caps a single allocation. Zero means MaxSlots[T](). A larger
	// explicit cap lets requests through that the process may not be able
	// to hold.
	MaxSlots int
}

// Allocate returns a new zeroed region of n slots. Returns nil if n <= 0.
func (h Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	limit := h.MaxSlots
	if limit <= 0 {
		limit = MaxSlots[T]()
	}
	if n > limit {
		return nil, &Error{Op: "Heap.Allocate", Kind: KindAllocation, Index: -1, Bound: limit, Requested: n}
	}
	return make([]T, n), nil
}

// Free is a no-op; the garbage collector reclaims heap regions.
func (Heap[T]) Free([]T) {}

// Limit wraps another allocator and fails once the slots it has handed out
// and not yet taken back would exceed a fixed budget.
type Limit[T any] struct {
	inner    Allocator[T]
	maxSlots int
	inUse    int
}

// NewLimit returns a Limit over inner with a budget of maxSlots.
// A nil inner allocates from the heap.
func NewLimit[T any](inner Allocator[T], maxSlots int) *Limit[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limit[T]{inner: inner, maxSlots: maxSlots}
}

// Allocate reserves n slots from the budget and delegates to the inner allocator.
func (l *Limit[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > l.maxSlots-l.inUse {
		return nil, &Error{Op: "Limit.Allocate", Kind: KindAllocation, Index: -1, Bound: l.maxSlots - l.inUse, Requested: n}
	}
	region, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inUse += len(region)
	return region, nil
}

// Free returns region to the inner allocator and credits the budget.
func (l *Limit[T]) Free(region []T) {
	if len(region) == 0 {
		return
	}
	l.inUse -= len(region)
	l.inner.Free(region)
}

// InUse returns the number of slots currently handed out.
func (l *Limit[T]) InUse() int {
	return l.inUse
}

// SetMax changes the budget. Slots already handed out are unaffected.
func (l *Limit[T]) SetMax(maxSlots int) {
	l.maxSlots = maxSlots
}
