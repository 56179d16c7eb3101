package fwdlist

// List is a singly linked list of values of type T.
//
// The zero value of List is an empty list, ready to use. Lists must not be
// copied after first use; always handle them through pointers.
type List[T any] struct {
	len  int      // number of nodes reachable from head
	head *node[T] // link owning the complete chain
	gen  uint64   // edit generation, invalidates cursors
}

// node owns one value and the link to the rest of the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// New creates a new and empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of values in the list in O(1).
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// IsEmpty reports whether the list has no values.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// touch marks the list as edited outside of a cursor. Existing cursors into
// the list will refuse to operate afterwards.
func (l *List[T]) touch() {
	l.gen++
}

// PushFront inserts v at the front of the list in O(1).
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.len++
	l.touch()
}

// PopFront removes the first value of the list in O(1) and returns it.
// If the list is empty, ok is false.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.IsEmpty() {
		return v, false
	}
	n := l.head
	l.head, n.next = n.next, nil
	l.len--
	l.touch()
	return n.value, true
}

// PushBack appends v at the end of the list in O(n).
func (l *List[T]) PushBack(v T) {
	*l.lastLink() = &node[T]{value: v}
	l.len++
	l.touch()
}

// PopBack removes the last value of the list in O(n) and returns it.
// If the list is empty, ok is false.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.IsEmpty() {
		return v, false
	}
	link := l.penultimateLink()
	n := *link
	*link = nil
	l.len--
	l.touch()
	return n.value, true
}

// Front returns the first value of the list. If the list is empty, ok is false.
func (l *List[T]) Front() (v T, ok bool) {
	if l.IsEmpty() {
		return v, false
	}
	return l.head.value, true
}

// FrontPtr returns a pointer to the first value of the list, or nil for an
// empty list. Clients may alter the value through the pointer.
func (l *List[T]) FrontPtr() *T {
	if l.IsEmpty() {
		return nil
	}
	return &l.head.value
}

// Back returns the last value of the list in O(n). If the list is empty, ok is false.
func (l *List[T]) Back() (v T, ok bool) {
	if p := l.BackPtr(); p != nil {
		return *p, true
	}
	return v, false
}

// BackPtr returns a pointer to the last value of the list in O(n), or nil
// for an empty list.
func (l *List[T]) BackPtr() *T {
	if l.IsEmpty() {
		return nil
	}
	return &(*l.penultimateLink()).value
}

// Clear removes all values from the list in O(n).
//
// Nodes are unlinked one by one, so values are not kept alive by stale
// iterators holding on to some node of the chain.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	for l.head != nil {
		n := l.head
		l.head, n.next = n.next, nil
	}
	l.len = 0
	l.touch()
}

// Cursor returns a cursor positioned in front of the first value of the list.
//
// Creating a cursor invalidates all other cursors of l.
func (l *List[T]) Cursor() *Cursor[T] {
	assert(l != nil, "cannot create a cursor for a nil list")
	l.touch()
	return &Cursor[T]{
		list: l,
		slot: &l.head,
		gen:  l.gen,
	}
}

// --- Link helpers ----------------------------------------------------------

// lastLink returns the empty link at the end of the chain.
func (l *List[T]) lastLink() **node[T] {
	link := &l.head
	for *link != nil {
		link = &(*link).next
	}
	return link
}

// penultimateLink returns the link which owns the last node of the chain,
// or nil for an empty list.
func (l *List[T]) penultimateLink() **node[T] {
	if l.head == nil {
		return nil
	}
	link := &l.head
	for (*link).next != nil {
		link = &(*link).next
	}
	return link
}

// take moves the complete chain of l into a fresh list, leaving l empty.
func (l *List[T]) take() *List[T] {
	moved := &List[T]{len: l.len, head: l.head}
	l.len, l.head = 0, nil
	l.touch()
	return moved
}
