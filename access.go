package arraylist

// At returns the element at index, or ErrIndexOutOfRange unless
// 0 <= index < Len().
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= l.n {
		var zero T
		return zero, rangeError("At", index, l.n)
	}
	return l.buf[index], nil
}

// Index returns the element at index without an error check. Like a slice
// index expression it panics when index is outside [0, Len()).
func (l *List[T]) Index(index int) T {
	return l.buf[:l.n][index]
}

// Set overwrites the element at index, releasing the previous value.
func (l *List[T]) Set(index int, v T) error {
	if index < 0 || index >= l.n {
		return rangeError("Set", index, l.n)
	}
	if l.release != nil {
		l.release(&l.buf[index])
	}
	l.buf[index] = v
	return nil
}

// Ref returns a pointer to the element at index. The pointer follows the
// same invalidation rules as an Iterator: it goes stale on reallocation and
// on any shift at or before index.
func (l *List[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= l.n {
		return nil, rangeError("Ref", index, l.n)
	}
	return &l.buf[index], nil
}

// Front returns the first element, or ErrIndexOutOfRange if the list is empty.
func (l *List[T]) Front() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, rangeError("Front", 0, 0)
	}
	return l.buf[0], nil
}

// Back returns the last element, or ErrIndexOutOfRange if the list is empty.
func (l *List[T]) Back() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, rangeError("Back", 0, 0)
	}
	return l.buf[l.n-1], nil
}

// ToSlice returns a copy of the elements in a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.n)
	copy(out, l.buf[:l.n])
	return out
}
