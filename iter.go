package fwdlist

import "iter"

// Values returns an iterator over all values of the list, front to back.
//
// The list must not be edited while the iteration is in progress.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All returns an iterator over index/value pairs of the list.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Pointers returns an iterator over pointers to the values of the list.
// Clients may alter values through the pointers, but must not edit the
// structure of the list while the iteration is in progress.
func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain returns an iterator which pops values off the front of the list.
// Values not consumed by the caller remain in the list.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := l.PopFront()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Slice copies the values of the list into a new slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for v := range l.Values() {
		s = append(s, v)
	}
	return s
}

// --- Mutable iteration -----------------------------------------------------

// IterMut iterates over a list, providing mutable access to the values and
// allowing edits right after the value most recently returned by Next.
type IterMut[T any] struct {
	cursor *Cursor[T]
}

// IterMut returns an iterator positioned in front of the first value.
// Like creating a cursor, this invalidates all cursors of l.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{cursor: l.Cursor()}
}

// Next returns a pointer to the next value and moves past it.
// At the end of the list ok is false.
func (it *IterMut[T]) Next() (p *T, ok bool) {
	if p = it.cursor.ValuePtr(); p == nil {
		return nil, false
	}
	it.cursor.advance()
	return p, true
}

// SizeHint returns the number of values not yet returned by Next.
func (it *IterMut[T]) SizeHint() int {
	return it.cursor.Len()
}

// PeekNext returns the next value without moving the iterator.
func (it *IterMut[T]) PeekNext() (T, bool) {
	return it.cursor.Value()
}

// PeekNextPtr returns a pointer to the next value without moving the iterator,
// or nil at the end of the list.
func (it *IterMut[T]) PeekNextPtr() *T {
	return it.cursor.ValuePtr()
}

// InsertNext inserts v right after the value most recently returned by Next,
// in O(1). The inserted value will not be visited by the iteration.
func (it *IterMut[T]) InsertNext(v T) {
	it.cursor.Insert(v)
}

// RemoveNext removes the value following the one most recently returned by
// Next, in O(1). At the end of the list ok is false.
func (it *IterMut[T]) RemoveNext() (T, bool) {
	return it.cursor.Remove()
}

// TruncateNext cuts the list right after the value most recently returned by
// Next and returns the cut-off values. The iterator is exhausted afterwards.
func (it *IterMut[T]) TruncateNext() *List[T] {
	return it.cursor.Truncate()
}
