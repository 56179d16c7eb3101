package fwdlist

import "iter"

// CursorIter repeatedly hands out the same cursor, moving it forward by one
// node on every step but the first. This allows clients to walk a list and
// edit it within the same loop:
//
//	it := l.Cursor().IntoIter()
//	for c, ok := it.Visit(); ok; c, ok = it.Visit() {
//	    if v, _ := c.Value(); v == 5 {
//	        c.Remove()
//	    }
//	}
//
// Values inserted with c.Insert are skipped by the next step, as the cursor
// already has been moved past them.
//
// An iterator either owns its cursor (see IntoIter) or borrows it (see Iter).
// Owned cursors are released as soon as the iterator is exhausted.
type CursorIter[T any] struct {
	cursor *Cursor[T]
	first  bool
	owned  bool
	done   bool
}

// IntoIter creates an iterator which takes ownership of c. Clients must not
// use c directly after calling IntoIter.
func (c *Cursor[T]) IntoIter() *CursorIter[T] {
	c.check()
	return &CursorIter[T]{cursor: c, first: true, owned: true}
}

// Iter creates an iterator which borrows c. After the iterator is exhausted, c
// is at the end of the list and may be used again.
func (c *Cursor[T]) Iter() *CursorIter[T] {
	c.check()
	return &CursorIter[T]{cursor: c, first: true}
}

// Cursors is a shortcut for l.Cursor().IntoIter().All().
func (l *List[T]) Cursors() iter.Seq[*Cursor[T]] {
	return l.Cursor().IntoIter().All()
}

// Visit returns the cursor for the next step of the iteration. On the first
// call the cursor is returned unmoved; every subsequent call advances the
// cursor first and reports false if the cursor has reached the end of the list.
func (it *CursorIter[T]) Visit() (*Cursor[T], bool) {
	if it == nil || it.done {
		return nil, false
	}
	if !it.first && !it.cursor.Next() {
		it.finish()
		return nil, false
	}
	it.first = false
	return it.cursor, true
}

// SizeHint returns the number of values after the cursor.
func (it *CursorIter[T]) SizeHint() int {
	if it == nil || it.done {
		return 0
	}
	return it.cursor.Len()
}

// All returns a range-over-func adapter for the iterator:
//
//	for c := range c.Iter().All() {
//	    …
//	}
func (it *CursorIter[T]) All() iter.Seq[*Cursor[T]] {
	return func(yield func(*Cursor[T]) bool) {
		for c, ok := it.Visit(); ok; c, ok = it.Visit() {
			if !yield(c) {
				return
			}
		}
	}
}

func (it *CursorIter[T]) finish() {
	it.done = true
	if it.owned {
		it.cursor.Release()
	}
}
