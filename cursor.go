package fwdlist

// Cursor navigates a list and reshapes it.
//
// A cursor holds the link which owns the rest of the chain after the cursor's
// position, together with the position itself. All structural edits of a
// cursor happen at this link and are reflected in the length of the list at
// the same time. For every cursor c
//
//	c.Position() + c.Len() == list.Len()
//
// holds.
//
// A cursor is bound to the list it has been created for. It is invalidated as
// soon as the list is edited through any other handle, including a newer cursor.
type Cursor[T any] struct {
	list     *List[T]   // list this cursor edits
	slot     **node[T]  // link owning everything after the cursor
	position int        // number of nodes in front of slot
	gen      uint64     // generation of list at creation time
	parent   *Cursor[T] // non-nil for checkpoints
	frozen   bool       // a checkpoint of this cursor is alive
	released bool
}

// check panics if the cursor may not be used at this time.
func (c *Cursor[T]) check() {
	if c == nil || c.list == nil {
		panic(ErrIllegalArguments)
	}
	if c.released {
		panic(ErrCursorReleased)
	}
	if c.frozen {
		panic(ErrCursorFrozen)
	}
	if c.gen != c.list.gen {
		panic(ErrCursorStale)
	}
}

// Value returns the value following the cursor.
// If the cursor is at the end of the list, ok is false.
func (c *Cursor[T]) Value() (v T, ok bool) {
	c.check()
	if n := *c.slot; n != nil {
		return n.value, true
	}
	return v, false
}

// ValuePtr returns a pointer to the value following the cursor, or nil if the
// cursor is at the end of the list. Clients may alter the value through the
// pointer.
func (c *Cursor[T]) ValuePtr() *T {
	c.check()
	if n := *c.slot; n != nil {
		return &n.value
	}
	return nil
}

// Next moves the cursor past the following node, if there is one. It reports
// whether the cursor is followed by another value after moving, i.e. false
// means that the cursor is at the end of the list.
func (c *Cursor[T]) Next() bool {
	c.check()
	c.advance()
	return *c.slot != nil
}

func (c *Cursor[T]) advance() bool {
	n := *c.slot
	if n == nil {
		return false
	}
	c.slot = &n.next
	c.position++
	return true
}

// Len returns the number of values after the cursor.
func (c *Cursor[T]) Len() int {
	c.check()
	return c.remaining()
}

func (c *Cursor[T]) remaining() int {
	assert(c.position <= c.list.len, "cursor length underflow")
	return c.list.len - c.position
}

// Position returns the number of values in front of the cursor.
func (c *Cursor[T]) Position() int {
	c.check()
	return c.position
}

// Checkpoint returns a copy of the cursor at the same location. c is frozen
// until the checkpoint is released; every use of c before that will panic.
func (c *Cursor[T]) Checkpoint() *Cursor[T] {
	c.check()
	c.frozen = true
	return &Cursor[T]{
		list:     c.list,
		slot:     c.slot,
		position: c.position,
		gen:      c.gen,
		parent:   c,
	}
}

// Release ends the lifetime of a cursor. Releasing a checkpoint un-freezes its
// parent cursor. Releasing a cursor more than once is a no-op, but releasing a
// cursor with a live checkpoint will panic.
func (c *Cursor[T]) Release() {
	if c == nil || c.released {
		return
	}
	if c.frozen {
		panic(ErrCursorFrozen)
	}
	c.released = true
	if c.parent != nil {
		c.parent.frozen = false
		c.parent = nil
	}
}

// Nth moves the cursor forward by n nodes in O(min(n, c.Len())).
// It returns the number of nodes skipped, which may be less than n if the
// end of the list is reached.
func (c *Cursor[T]) Nth(n int) int {
	c.check()
	return c.nth(n)
}

func (c *Cursor[T]) nth(n int) int {
	skipped := 0
	for skipped < n && c.advance() {
		skipped++
	}
	return skipped
}

// Last moves the cursor in front of the last node of the list in O(c.Len()).
// It returns the number of nodes skipped.
func (c *Cursor[T]) Last() int {
	c.check()
	if rest := c.remaining(); rest > 0 {
		return c.nth(rest - 1)
	}
	return 0
}

// End moves the cursor behind the last node of the list in O(c.Len()).
// It returns the number of nodes skipped.
func (c *Cursor[T]) End() int {
	c.check()
	return c.nth(c.remaining())
}

// Insert creates a new node containing v and inserts it at the cursor in O(1).
// The cursor is moved past the new node, i.e. it is still followed by the
// same value as before. Insert returns a pointer to the inserted value.
func (c *Cursor[T]) Insert(v T) *T {
	c.check()
	n := &node[T]{value: v, next: *c.slot}
	*c.slot = n
	c.list.len++
	c.position++
	c.slot = &n.next
	return &n.value
}

// Remove removes the node following the cursor in O(1) and returns its value.
// If the cursor is at the end of the list, ok is false.
func (c *Cursor[T]) Remove() (v T, ok bool) {
	c.check()
	n := *c.slot
	if n == nil {
		return v, false
	}
	*c.slot, n.next = n.next, nil
	c.list.len--
	return n.value, true
}

// Truncate cuts the list at the cursor in O(1) and returns the tail as a new
// list. Afterwards the cursor is at the end of the list.
func (c *Cursor[T]) Truncate() *List[T] {
	c.check()
	return c.truncate()
}

func (c *Cursor[T]) truncate() *List[T] {
	rest := c.remaining()
	tail := &List[T]{len: rest, head: *c.slot}
	*c.slot = nil
	c.list.len -= rest
	return tail
}

// graft moves the chain of other to the cursor's (empty) link and empties other.
func (c *Cursor[T]) graft(other *List[T]) {
	assert(*c.slot == nil, "graft onto non-empty link")
	*c.slot = other.head
	c.list.len += other.len
	other.head, other.len = nil, 0
	other.touch()
}

// Splice inserts all values of other at the cursor, leaving other empty.
// The cursor is moved past the inserted values.
//
// Splice has to step over the inserted nodes and runs in O(other.Len()),
// regardless of the number of values following the cursor.
func (c *Cursor[T]) Splice(other *List[T]) {
	c.check()
	assert(other != nil, "cannot splice a nil list")
	assert(other != c.list, "cannot splice a list into itself")
	tail := c.truncate()
	c.graft(other)
	c.nth(c.remaining())
	c.graft(tail)
}

// Split cuts the list behind the first n values following the cursor and
// returns the remainder, in O(min(n, c.Len())). The cursor does not move.
//
// This is the same as
//
//	cp := c.Checkpoint()
//	cp.Nth(n)
//	tail := cp.Truncate()
//	cp.Release()
func (c *Cursor[T]) Split(n int) *List[T] {
	cp := c.Checkpoint()
	cp.Nth(n)
	tail := cp.Truncate()
	cp.Release()
	return tail
}

// RemoveN removes up to n nodes following the cursor in O(min(n, c.Len()))
// and returns them as a new list. The cursor does not move.
func (c *Cursor[T]) RemoveN(n int) *List[T] {
	tail := c.Split(n)
	removed := c.truncate()
	c.graft(tail)
	return removed
}
