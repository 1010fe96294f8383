package arraylist

import "math"

// Append adds v at the end. Without growth it invalidates no handles.
func (l *List[T]) Append(v T) error {
	if l.n == len(l.buf) {
		if err := l.growToFit("Append", l.n+1); err != nil {
			return err
		}
	}
	l.buf[l.n] = v
	l.n++
	return nil
}

// AppendSlice adds vs at the end, in order, growing at most once.
func (l *List[T]) AppendSlice(vs ...T) error {
	return l.insert("AppendSlice", l.n, vs)
}

// Emplace constructs a new element in place at the end. If construct fails
// the slot is zeroed, the length is unchanged and the error is returned as is.
func (l *List[T]) Emplace(construct func(*T) error) error {
	if err := l.growToFit("Emplace", l.n+1); err != nil {
		return err
	}
	slot := &l.buf[l.n]
	if err := construct(slot); err != nil {
		var zero T
		*slot = zero
		return err
	}
	l.n++
	return nil
}

// InsertAt places v at pos, shifting the elements at and after pos up by one.
// pos must be within [0, Len()].
func (l *List[T]) InsertAt(pos int, v T) error {
	return l.insert("InsertAt", pos, []T{v})
}

// Insert places vs at pos, in order. pos must be within [0, Len()].
func (l *List[T]) Insert(pos int, vs ...T) error {
	return l.insert("Insert", pos, vs)
}

func (l *List[T]) insert(op string, pos int, vs []T) error {
	if pos < 0 || pos > l.n {
		return rangeError(op, pos, l.n)
	}
	k := len(vs)
	if k == 0 {
		return nil
	}
	if k > math.MaxInt-l.n {
		return allocError(op, math.MaxInt, nil)
	}
	required := l.n + k

	if required > len(l.buf) {
		// The gap is opened while relocating, so no element moves twice.
		newCap := nextCapacity(l.policy(), len(l.buf), required)
		if err := l.reallocate(op, newCap, pos, k); err != nil {
			return err
		}
	} else if pos < l.n {
		copy(l.buf[pos+k:required], l.buf[pos:l.n])
		l.stats.shifted += l.n - pos
		l.track.shift(pos)
	}

	copy(l.buf[pos:pos+k], vs)
	l.n = required
	return nil
}

// EraseAt removes the element at pos, shifting later elements down by one.
// pos must be within [0, Len()). Capacity is never reduced.
func (l *List[T]) EraseAt(pos int) error {
	if pos < 0 || pos >= l.n {
		return rangeError("EraseAt", pos, l.n)
	}
	l.erase(pos, pos+1)
	return nil
}

// EraseRange removes the elements in [from, to).
// It requires 0 <= from <= to <= Len().
func (l *List[T]) EraseRange(from, to int) error {
	if from < 0 || from > l.n {
		return rangeError("EraseRange", from, l.n)
	}
	if to < from || to > l.n {
		return rangeError("EraseRange", to, l.n)
	}
	if from == to {
		return nil
	}
	l.erase(from, to)
	return nil
}

func (l *List[T]) erase(from, to int) {
	l.destroy(from, to)
	moved := copy(l.buf[from:], l.buf[to:l.n])
	l.stats.shifted += moved
	newLen := from + moved
	clear(l.buf[newLen:l.n])
	l.n = newLen
	l.track.shift(from)
}

// PopBack removes and returns the last element. Ownership passes to the
// caller, so the release hook does not run.
func (l *List[T]) PopBack() (T, error) {
	var zero T
	if l.n == 0 {
		return zero, rangeError("PopBack", 0, 0)
	}
	l.n--
	v := l.buf[l.n]
	l.buf[l.n] = zero
	l.track.shift(l.n)
	return v, nil
}

// Truncate drops every element at or after n. It requires 0 <= n <= Len().
func (l *List[T]) Truncate(n int) error {
	if n < 0 || n > l.n {
		return rangeError("Truncate", n, l.n)
	}
	if n == l.n {
		return nil
	}
	l.erase(n, l.n)
	return nil
}

// Resize sets the length to n. Growing reserves exactly n slots when needed
// and fills the new tail with zero values; shrinking drops the tail.
func (l *List[T]) Resize(n int) error {
	if n < 0 {
		return rangeError("Resize", n, 0)
	}
	if n <= l.n {
		return l.Truncate(n)
	}
	if err := l.Reserve(n); err != nil {
		return err
	}
	// buf[l.n:n] is already zeroed.
	l.n = n
	return nil
}

// Clear destroys every element. Capacity is unchanged.
func (l *List[T]) Clear() {
	if l.n == 0 {
		return
	}
	l.destroy(0, l.n)
	l.n = 0
	l.track.shift(0)
}

// relocate copies the live elements into region, opening a gap of gap
// slots at pos. Go has no user-defined move, so relocation is always a
// plain copy; the old region is zeroed and released only afterwards.
func (l *List[T]) relocate(region []T, pos, gap int) {
	copy(region[:pos], l.buf[:pos])
	copy(region[pos+gap:], l.buf[pos:l.n])
	l.stats.relocated += l.n
}

// destroy runs the release hook over buf[from:to] and zeroes it.
func (l *List[T]) destroy(from, to int) {
	if l.release != nil {
		for i := from; i < to; i++ {
			l.release(&l.buf[i])
		}
	}
	clear(l.buf[from:to])
}

// fill writes at(0..len(dst)-1) into dst, through the copy hook when deep.
// On a copy failure the copies made so far are released and zeroed before
// the error is returned.
func (l *List[T]) fill(dst []T, at func(int) T, deep bool) error {
	if !deep || l.copyFn == nil {
		for i := range dst {
			dst[i] = at(i)
		}
		return nil
	}
	for i := range dst {
		v, err := l.copyFn(at(i))
		if err != nil {
			if l.release != nil {
				for j := 0; j < i; j++ {
					l.release(&dst[j])
				}
			}
			clear(dst[:i])
			return err
		}
		dst[i] = v
	}
	return nil
}
