package fwdlist

import "cmp"

// Sort sorts the list in ascending order.
// See SortFunc for the characteristics of the sort.
func Sort[T cmp.Ordered](l *List[T]) {
	SortFunc(l, cmp.Compare[T])
}

// SortFunc sorts the list in ascending order as determined by f, which has to
// return a negative number for a < b, 0 for a == b and a positive number for
// a > b.
//
// SortFunc is a bottom-up merge sort working on runs of length 1, 2, 4, …
// It runs in O(n log n) and does not allocate any nodes, but relinks the
// existing ones. The sort is not stable: if two values of a left and a right
// run compare equal, the value of the right run is taken first.
func SortFunc[T any](l *List[T], f func(a, b T) int) {
	if l == nil || f == nil {
		return
	}
	for run := 1; run < l.Len(); run *= 2 {
		tail := l.take()
		cl := l.Cursor()
		for !tail.IsEmpty() {
			a := tail
			b := a.Cursor().Split(run)
			tail = b.Cursor().Split(run)
			cl.Splice(merge(a, b, f))
		}
		tracer().Debugf("fwdlist: merged runs of length %d", run)
	}
}

// merge merges two sorted lists into a new one, draining both a and b.
func merge[T any](a, b *List[T], f func(a, b T) int) *List[T] {
	r := New[T]()
	ca, cb, co := a.Cursor(), b.Cursor(), r.Cursor()
	for {
		va, okA := ca.Value()
		vb, okB := cb.Value()
		if !okA || !okB {
			break
		}
		if f(va, vb) < 0 {
			co.Splice(ca.RemoveN(1))
		} else {
			co.Splice(cb.RemoveN(1))
		}
	}
	co.Splice(ca.Truncate())
	co.Splice(cb.Truncate())
	return r
}
