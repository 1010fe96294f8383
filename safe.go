package arraylist

import "sync"

// SyncArena is a mutex-protected wrapper around Arena. Lists are never
// synchronized themselves; SyncArena lets lists owned by different goroutines
// draw their storage from one shared arena.
type SyncArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSyncArena creates a new thread-safe arena with the specified chunk size.
// If chunkSlots <= 0, DefaultChunkSlots is used.
func NewSyncArena[T any](chunkSlots int) *SyncArena[T] {
	return &SyncArena[T]{a: NewArena[T](chunkSlots)}
}

// NewBoundedSyncArena creates a thread-safe arena bounded to maxSlots.
func NewBoundedSyncArena[T any](chunkSlots, maxSlots int) *SyncArena[T] {
	return &SyncArena[T]{a: NewBoundedArena[T](chunkSlots, maxSlots)}
}

// Allocate thread-safely allocates a region of n slots.
func (s *SyncArena[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Free thread-safely takes a region back.
func (s *SyncArena[T]) Free(region []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(region)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n free slots.
func (s *SyncArena[T]) EnsureCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SyncArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SyncArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
