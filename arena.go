package arraylist

// DefaultChunkSlots is the default chunk size, in slots, for new arenas.
const DefaultChunkSlots = 1 << 12

// chunk represents a single slab of slots within an arena.
type chunk[T any] struct {
	buf    []T // backing memory
	offset int // next free slot within buf
}

// Arena is a chunked bump allocator of T slots. Regions handed out to lists
// stay valid until Reset or Release. Not goroutine-safe; use SyncArena to
// share one arena between lists owned by different goroutines.
//
// Free rolls the bump offset back when the freed region is the most recent
// allocation of the current chunk, which is the common case for a single list
// growing in place. Other freed regions are zeroed and reclaimed on Reset.
type Arena[T any] struct {
	chunks       []chunk[T]
	chunkSlots   int
	maxSlots     int // total capacity bound, 0 means unbounded
	currentChunk *chunk[T]
}

// NewArena creates a new Arena with the specified chunk size in slots.
// If chunkSlots <= 0, DefaultChunkSlots is used.
func NewArena[T any](chunkSlots int) *Arena[T] {
	return NewBoundedArena[T](chunkSlots, 0)
}

// NewBoundedArena creates an Arena whose chunks may never add up to more than
// maxSlots. Allocations past the bound fail with ErrAllocation.
// maxSlots <= 0 means unbounded.
func NewBoundedArena[T any](chunkSlots, maxSlots int) *Arena[T] {
	if chunkSlots <= 0 {
		chunkSlots = DefaultChunkSlots
	}
	if maxSlots < 0 {
		maxSlots = 0
	}
	if maxSlots > 0 && chunkSlots > maxSlots {
		chunkSlots = maxSlots
	}
	a := &Arena[T]{chunkSlots: chunkSlots, maxSlots: maxSlots, chunks: []chunk[T]{}}
	a.grow(chunkSlots)
	return a
}

// Allocate returns a zeroed region of n slots carved from the current chunk.
// Returns nil if n <= 0.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}

	// Fast path: use cached current chunk
	c := a.currentChunk
	if c != nil && n <= len(c.buf)-c.offset {
		start := c.offset
		c.offset += n
		return c.buf[start:c.offset:c.offset], nil
	}

	return a.allocateSlow(n)
}

// allocateSlow handles allocation when the fast path fails
func (a *Arena[T]) allocateSlow(n int) ([]T, error) {
	a.panicIfReleased()

	// Chunks rewound by Reset are reused before growing.
	for i := range a.chunks {
		c := &a.chunks[i]
		if c.offset == 0 && n <= len(c.buf) {
			a.currentChunk = c
			c.offset = n
			return c.buf[:n:n], nil
		}
	}

	if err := a.checkBound(n); err != nil {
		return nil, err
	}
	a.grow(n)

	c := a.currentChunk
	c.offset = n
	return c.buf[:n:n], nil
}

// Free takes a region back. The region must have been zeroed by the caller.
func (a *Arena[T]) Free(region []T) {
	if len(region) == 0 || a.chunks == nil {
		return
	}
	c := a.currentChunk
	if c == nil || c.offset < len(region) {
		return
	}
	start := c.offset - len(region)
	if &c.buf[start] == &region[0] {
		c.offset = start
	}
}

// EnsureCapacity ensures the current chunk has at least n free slots.
// If not, it grows the arena with a new chunk.
func (a *Arena[T]) EnsureCapacity(n int) error {
	a.panicIfReleased()
	c := a.currentChunk
	if c != nil && n <= len(c.buf)-c.offset {
		return nil
	}
	if err := a.checkBound(n); err != nil {
		return err
	}
	a.grow(n)
	return nil
}

// Reset zeroes every chunk and rewinds allocation offsets, keeping chunks
// for reuse. Regions handed out before Reset must no longer be in use.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		clear(a.chunks[i].buf[:a.chunks[i].offset])
		a.chunks[i].offset = 0
	}
	// Reset cached chunk to first chunk
	if len(a.chunks) > 0 {
		a.currentChunk = &a.chunks[0]
	}
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation will panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// checkBound fails when a new chunk for n slots would exceed maxSlots or
// the largest region the process can hold.
func (a *Arena[T]) checkBound(n int) error {
	limit := MaxSlots[T]()
	if a.maxSlots > 0 {
		limit = min(limit, a.maxSlots-a.Capacity())
	}
	if n > limit {
		return &Error{Op: "Arena.Allocate", Kind: KindAllocation, Index: -1, Bound: limit, Requested: n}
	}
	return nil
}

// grow appends a new chunk of at least min slots.
func (a *Arena[T]) grow(min int) {
	size := a.chunkSlots
	if min > size {
		size = min
	}
	if a.maxSlots > 0 {
		if room := a.maxSlots - a.Capacity(); size > room {
			size = room
		}
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("arraylist: arena use after Release()")
	}
}
