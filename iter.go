package arraylist

import (
	"iter"
	"sort"
)

// tracker records which position handles are still valid.
//
// gen changes whenever storage is replaced, which invalidates every handle.
// Each shift bumps epoch and pushes a mark; marks keep strictly increasing
// positions, so for a handle issued at epoch e the first mark after e holds
// the lowest position shifted since then.
type tracker struct {
	gen   uint64
	epoch uint64
	marks []mark
}

type mark struct {
	epoch uint64
	pos   int
}

// shift invalidates handles at or after pos.
func (t *tracker) shift(pos int) {
	t.epoch++
	for len(t.marks) > 0 && t.marks[len(t.marks)-1].pos >= pos {
		t.marks = t.marks[:len(t.marks)-1]
	}
	t.marks = append(t.marks, mark{epoch: t.epoch, pos: pos})
}

// realloc invalidates every handle.
func (t *tracker) realloc() {
	t.gen++
	t.epoch++
	t.marks = t.marks[:0]
}

func (t *tracker) valid(gen, epoch uint64, pos int) bool {
	if gen != t.gen {
		return false
	}
	i := sort.Search(len(t.marks), func(i int) bool { return t.marks[i].epoch > epoch })
	return i == len(t.marks) || pos < t.marks[i].pos
}

// Iterator is a random-access position handle into a List.
//
// Invalidation rules:
//   - any reallocation (growth, Reserve, ShrinkToFit, Release, CopyFrom,
//     Move, MoveFrom, Swap) invalidates every handle;
//   - insert or erase at p invalidates handles at positions >= p, even
//     without reallocation; Clear, Truncate(n) and PopBack count as erase
//     at 0, n and Len()-1;
//   - appending at the tail without growth invalidates nothing.
//
// A stale handle reports ErrInvalidated instead of reading memory.
type Iterator[T any] struct {
	l     *List[T]
	pos   int
	gen   uint64
	epoch uint64
}

// Begin returns a handle to the first element.
func (l *List[T]) Begin() Iterator[T] {
	return l.handle(0)
}

// End returns a handle one past the last element.
func (l *List[T]) End() Iterator[T] {
	return l.handle(l.n)
}

// IterAt returns a handle at pos, which must be within [0, Len()].
func (l *List[T]) IterAt(pos int) (Iterator[T], error) {
	if pos < 0 || pos > l.n {
		return Iterator[T]{}, rangeError("IterAt", pos, l.n)
	}
	return l.handle(pos), nil
}

func (l *List[T]) handle(pos int) Iterator[T] {
	return Iterator[T]{l: l, pos: pos, gen: l.track.gen, epoch: l.track.epoch}
}

// Valid reports whether the handle has not been invalidated and still lies
// within [0, Len()].
func (it Iterator[T]) Valid() bool {
	return it.live() && it.pos >= 0 && it.pos <= it.l.n
}

func (it Iterator[T]) live() bool {
	return it.l != nil && it.l.track.valid(it.gen, it.epoch, it.pos)
}

// Index returns the handle's position.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Next returns a handle one position further.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Advance(1)
}

// Prev returns a handle one position back.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Advance(-1)
}

// Advance returns a handle d positions away. A handle derived from a live
// handle is current as of now; one derived from a stale handle stays stale.
func (it Iterator[T]) Advance(d int) Iterator[T] {
	if it.live() {
		it.gen, it.epoch = it.l.track.gen, it.l.track.epoch
	}
	it.pos += d
	return it
}

// Distance returns other.Index() - it.Index().
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.pos - it.pos
}

// Equal reports whether both handles refer to the same position of the same list.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.l == other.l && it.pos == other.pos
}

// Get returns the element under the handle.
func (it Iterator[T]) Get() (T, error) {
	p, err := it.ptr("Iterator.Get")
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the element under the handle.
func (it Iterator[T]) Set(v T) error {
	if _, err := it.ptr("Iterator.Set"); err != nil {
		return err
	}
	return it.l.Set(it.pos, v)
}

// Ptr returns a pointer to the element under the handle.
func (it Iterator[T]) Ptr() (*T, error) {
	return it.ptr("Iterator.Ptr")
}

func (it Iterator[T]) ptr(op string) (*T, error) {
	if !it.live() {
		return nil, invalidatedError(op, it.pos)
	}
	if it.pos < 0 || it.pos >= it.l.n {
		return nil, rangeError(op, it.pos, it.l.n)
	}
	return &it.l.buf[it.pos], nil
}

// InsertBefore inserts v before the handle's position and returns a fresh
// handle to the inserted element.
func (l *List[T]) InsertBefore(it Iterator[T], v T) (Iterator[T], error) {
	if it.l != l || !it.live() {
		return Iterator[T]{}, invalidatedError("InsertBefore", it.pos)
	}
	if err := l.InsertAt(it.pos, v); err != nil {
		return Iterator[T]{}, err
	}
	return l.handle(it.pos), nil
}

// Erase removes the element under the handle and returns a fresh handle to
// the element that followed it.
func (l *List[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.l != l || !it.live() {
		return Iterator[T]{}, invalidatedError("Erase", it.pos)
	}
	if err := l.EraseAt(it.pos); err != nil {
		return Iterator[T]{}, err
	}
	return l.handle(it.pos), nil
}

// All returns an iterator over index/value pairs, front to back.
// The sequence panics if the list reallocates while it is being ranged over.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := l.track.gen
		for i := 0; i < l.n; i++ {
			if !yield(i, l.buf[i]) {
				return
			}
			l.checkGen(gen)
		}
	}
}

// Values returns an iterator over the values, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.track.gen
		for i := 0; i < l.n; i++ {
			if !yield(l.buf[i]) {
				return
			}
			l.checkGen(gen)
		}
	}
}

// Backward returns an iterator over index/value pairs, back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := l.track.gen
		for i := l.n - 1; i >= 0; i-- {
			if i >= l.n {
				// Shrunk by the loop body.
				continue
			}
			if !yield(i, l.buf[i]) {
				return
			}
			l.checkGen(gen)
		}
	}
}

// Refs returns an iterator over index/pointer pairs, front to back. The
// pointers allow in-place updates and follow the Iterator invalidation rules.
func (l *List[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		gen := l.track.gen
		for i := 0; i < l.n; i++ {
			if !yield(i, &l.buf[i]) {
				return
			}
			l.checkGen(gen)
		}
	}
}

func (l *List[T]) checkGen(gen uint64) {
	if l.track.gen != gen {
		panic("arraylist: list reallocated during iteration")
	}
}
