package fwdlist

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"strings"
)

// Equal reports whether two lists have the same length and contain equal
// values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but uses eq to compare values.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.IsEmpty() {
		return true
	}
	for x, y := a.head, b.head; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Compare compares two lists lexicographically. If one list is a prefix of the
// other, the shorter list is the lesser one. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare, but uses f to compare values.
func CompareFunc[T, U any](a *List[T], b *List[U], f func(T, U) int) int {
	var x *node[T]
	var y *node[U]
	if a != nil {
		x = a.head
	}
	if b != nil {
		y = b.head
	}
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := f(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	}
	return +1
}

// Hash computes a hash value of the list's length and its values, seeded
// with seed. Equal lists hash to the same value for the same seed.
func Hash[T comparable](seed maphash.Seed, l *List[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(l.Len()))
	h.Write(b[:])
	for v := range l.Values() {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}

// String returns the values of the list in the format of fmt's %v for
// slices, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
