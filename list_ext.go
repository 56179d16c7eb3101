package fwdlist

import (
	"iter"
)

// FromSlice creates a list containing the given values, in order.
func FromSlice[T any](values ...T) *List[T] {
	l := New[T]()
	c := l.Cursor()
	for _, v := range values {
		c.Insert(v)
	}
	return l
}

// Collect creates a list from the values of an iterator, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Extend(seq)
	return l
}

// Extend appends all values of an iterator to the end of the list in
// O(n + m), where n is the length of l. The iterator may range over l itself;
// values are collected before l is changed.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	tail := New[T]()
	tc := tail.Cursor()
	for v := range seq {
		tc.Insert(v)
	}
	c := l.Cursor()
	c.End()
	c.Splice(tail)
}

// Append moves all values of other to the end of l, leaving other empty.
// Append runs in O(l.Len()), as it has to find the end of l.
func (l *List[T]) Append(other *List[T]) {
	if other == nil || other == l {
		return
	}
	*l.lastLink() = other.head
	l.len += other.len
	tracer().Debugf("fwdlist: appended %d values, length now %d", other.len, l.len)
	other.head, other.len = nil, 0
	l.touch()
	other.touch()
}

// SplitOff splits the list into two at the given index in O(at).
// It returns everything from index at onwards, leaving l with the first at
// values. If at == l.Len(), an empty list is returned. SplitOff panics if at
// is out of range.
func (l *List[T]) SplitOff(at int) *List[T] {
	if at < 0 || at > l.Len() {
		panic(ErrIndexOutOfBounds)
	}
	if at == l.Len() {
		return New[T]()
	}
	link := &l.head
	for i := 0; i < at; i++ {
		link = &(*link).next
	}
	tail := &List[T]{len: l.len - at, head: *link}
	*link = nil
	l.len = at
	l.touch()
	tracer().Debugf("fwdlist: split list at %d, tail length %d", at, tail.len)
	return tail
}

// Clone returns a shallow copy of the list in O(n). Values are copied by
// assignment.
func (l *List[T]) Clone() *List[T] {
	return Collect(l.Values())
}

// CloneFrom makes l a copy of src in O(n), re-using l's existing nodes
// wherever possible.
func (l *List[T]) CloneFrom(src *List[T]) {
	if src == l {
		return
	}
	it := l.IterMut()
	for v := range src.Values() {
		if p, ok := it.Next(); ok {
			*p = v
			continue
		}
		it.InsertNext(v)
	}
	it.TruncateNext()
}
