package fwdlist

import "fmt"

// Check validates structural list invariants: the cached length has to match
// the number of nodes reachable from the head link.
//
// Check is intended to be used in tests.
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvariantViolated)
	}
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
		if count > l.len {
			return fmt.Errorf("%w: more nodes reachable than length %d", ErrInvariantViolated, l.len)
		}
	}
	if count != l.len {
		return fmt.Errorf("%w: length mismatch (%d != %d)", ErrInvariantViolated, count, l.len)
	}
	return nil
}

// Check validates the invariants of the cursor's list and verifies that the
// cursor's position plus the number of nodes reachable from its link equals
// the length of the list. Check does not count as a use of the cursor, so it
// may be called for frozen cursors.
func (c *Cursor[T]) Check() error {
	if c == nil || c.list == nil {
		return fmt.Errorf("%w: cursor not initialized", ErrInvariantViolated)
	}
	if err := c.list.Check(); err != nil {
		return err
	}
	if c.position > c.list.len {
		return fmt.Errorf("%w: cursor position %d exceeds length %d",
			ErrInvariantViolated, c.position, c.list.len)
	}
	rest := 0
	for n := *c.slot; n != nil; n = n.next {
		rest++
	}
	if c.position+rest != c.list.len {
		return fmt.Errorf("%w: position %d + remaining %d != length %d",
			ErrInvariantViolated, c.position, rest, c.list.len)
	}
	return nil
}
