// Package arraylist implements a contiguous, dynamically resizable sequence
// container with pluggable storage.
//
// # Overview
//
// A List[T] keeps its elements in one region of slots obtained from an
// Allocator. It tracks length (live elements) separately from capacity
// (allocated slots), so appends are amortized O(1) and indexing is O(1):
//
//	l := arraylist.New[int]()
//	_ = l.Append(10)
//	_ = l.Append(20)
//	_ = l.InsertAt(1, 15) // [10 15 20]
//	v, err := l.At(1)     // 15, nil
//
// # Growth
//
// When a list runs out of room it grows to max(required, capacity*2); an
// unallocated list grows to exactly what it needs. Doubling bounds the total
// number of elements relocated by n appends below 2n. Other factors are
// available through WithGrowth(Factor(f)) for any f > 1. Erase never shrinks
// storage; call ShrinkToFit explicitly.
//
// # Storage
//
// Heap[T] (the default) allocates each region with make. Arena[T] carves
// regions out of large chunks and reclaims them in bulk, and SyncArena[T]
// lets lists owned by different goroutines share one arena. Limit[T] caps
// the slots handed out by another allocator, which is also how allocation
// failures are injected in tests.
//
//	a := arraylist.NewArena[int](0)
//	defer a.Release()
//	l := arraylist.New[int](arraylist.WithAllocator[int](a))
//
// # Failure guarantees
//
// Every operation validates positions first and allocates before it mutates.
// An out-of-range position returns ErrIndexOutOfRange; a refused allocation
// returns ErrAllocation. In both cases the list is exactly as it was before
// the call. Reallocation copies elements into the new region and only then
// zeroes and frees the old one. Errors from the copy hook (WithCopy) or from
// an Emplace constructor are returned unwrapped with no elements lost.
//
// # Position handles
//
// Iterator values and pointers from Ref follow fixed invalidation rules:
// reallocation invalidates all of them; insert or erase at p invalidates
// those at or after p; appending without growth invalidates none. A stale
// Iterator reports ErrInvalidated. A stale pointer from Ref is memory-safe
// but no longer refers to list contents.
//
// # Thread Safety
//
// List is not safe for concurrent use; callers synchronize externally.
//
// # Metrics
//
//	s := l.Stats()
//	fmt.Printf("len=%d cap=%d reallocations=%d\n", s.Len, s.Cap, s.Reallocations)
package arraylist
