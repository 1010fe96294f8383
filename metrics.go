package arraylist

// counters accumulate over a list's lifetime.
type counters struct {
	reallocations int
	relocated     int
	shifted       int
	allocFailures int
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *List[T]) Utilization() float64 {
	if len(l.buf) == 0 {
		return 0
	}
	return float64(l.n) / float64(len(l.buf))
}

// Stats returns a snapshot of list statistics.
func (l *List[T]) Stats() ListStats {
	return ListStats{
		Len:           l.n,
		Cap:           len(l.buf),
		Reallocations: l.stats.reallocations,
		Relocated:     l.stats.relocated,
		Shifted:       l.stats.shifted,
		AllocFailures: l.stats.allocFailures,
		Utilization:   l.Utilization(),
	}
}

// ListStats contains statistical information about a list.
type ListStats struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	Reallocations int     // Storage replacements caused by growth, Reserve or ShrinkToFit
	Relocated     int     // Elements copied into new storage by those reallocations
	Shifted       int     // Elements moved by insert or erase inside existing storage
	AllocFailures int     // Allocation requests the allocator refused
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}

// SizeInUse returns the number of slots currently handed out by the arena.
func (a *Arena[T]) SizeInUse() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	if a.chunks == nil {
		return 0
	}
	return len(a.chunks)
}

// Capacity returns the total number of slots in all chunks of the arena.
func (a *Arena[T]) Capacity() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSlots returns the default chunk size used by this arena.
func (a *Arena[T]) ChunkSlots() int {
	return a.chunkSlots
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSlots:  a.ChunkSlots(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Slots currently handed out
	Capacity    int     // Total capacity in slots
	NumChunks   int     // Number of chunks
	ChunkSlots  int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SyncArena

// SizeInUse thread-safely returns the number of slots currently handed out.
func (s *SyncArena[T]) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumChunks thread-safely returns the number of chunks currently allocated.
func (s *SyncArena[T]) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity thread-safely returns the total capacity of all chunks.
func (s *SyncArena[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SyncArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
