package fwdlist

import (
	"bytes"
	"hash/maphash"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListBasics(t *testing.T) {
	var l List[int]
	if l.Len() != 0 || !l.IsEmpty() {
		t.Fatalf("zero list is not empty")
	}
	l.PushBack(10)
	if l.Len() != 1 {
		t.Fatalf("len = %d, want 1", l.Len())
	}
	l.PushBack(15)
	l.PushBack(20)
	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
	if v, ok := l.PopBack(); !ok || v != 20 {
		t.Fatalf("PopBack() = (%d, %v)", v, ok)
	}
	if v, ok := l.PopFront(); !ok || v != 10 {
		t.Fatalf("PopFront() = (%d, %v)", v, ok)
	}
	l.PushFront(5)
	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2", l.Len())
	}
	if v, _ := l.Front(); v != 5 {
		t.Errorf("front = %d, want 5", v)
	}
	if v, _ := l.Back(); v != 15 {
		t.Errorf("back = %d, want 15", v)
	}
	*l.FrontPtr() = 50
	*l.BackPtr() = 150
	if v, ok := l.PopBack(); !ok || v != 150 {
		t.Fatalf("PopBack() = (%d, %v), want 150", v, ok)
	}
	if v, ok := l.PopFront(); !ok || v != 50 {
		t.Fatalf("PopFront() = (%d, %v), want 50", v, ok)
	}
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
	if _, ok := l.PopFront(); ok {
		t.Errorf("PopFront() on empty list succeeded")
	}
	if _, ok := l.PopBack(); ok {
		t.Errorf("PopBack() on empty list succeeded")
	}
	if _, ok := l.Back(); ok || l.FrontPtr() != nil || l.BackPtr() != nil {
		t.Errorf("access to empty list returned a value")
	}
}

func TestListBig(t *testing.T) {
	const size = 1 << 16
	l := New[int64]()
	for i := size - 1; i >= 0; i-- {
		l.PushFront(int64(i))
	}
	if l.Len() != size {
		t.Fatalf("len = %d, want %d", l.Len(), size)
	}
	if v, _ := l.Back(); v != size-1 {
		t.Errorf("back = %d, want %d", v, size-1)
	}
	l.Clear()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Errorf("cleared list is not empty")
	}
}

func TestListAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	a := New[int]()
	b := New[int]()
	for i := range 5 {
		b.PushFront(i)
	}
	a.Append(b)
	expectList(t, a, []int{4, 3, 2, 1, 0})
	expectList(t, b, []int{})
	a.Append(mklist(10, 12))
	expectList(t, a, []int{4, 3, 2, 1, 0, 10, 11})
	a.Append(a)
	expectList(t, a, []int{4, 3, 2, 1, 0, 10, 11})
}

func TestListSplitOff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	a := New[int]()
	for i := range 20 {
		a.PushFront(i)
	}
	b := a.SplitOff(7)
	if a.Len() != 7 || b.Len() != 13 {
		t.Fatalf("split lengths = %d/%d, want 7/13", a.Len(), b.Len())
	}
	if v, _ := a.Front(); v != 19 {
		t.Errorf("a.front = %d, want 19", v)
	}
	if v, _ := a.Back(); v != 13 {
		t.Errorf("a.back = %d, want 13", v)
	}
	if v, _ := b.Front(); v != 12 {
		t.Errorf("b.front = %d, want 12", v)
	}
	if v, _ := b.Back(); v != 0 {
		t.Errorf("b.back = %d, want 0", v)
	}
	//
	a = mklist(0, 10)
	b = a.SplitOff(10)
	expectList(t, a, mklist(0, 10).Slice())
	expectList(t, b, []int{})
	b = a.SplitOff(0)
	expectList(t, a, []int{})
	expectList(t, b, mklist(0, 10).Slice())
	//
	expectPanic(t, ErrIndexOutOfBounds, func() { b.SplitOff(11) })
}

func TestListConstruction(t *testing.T) {
	l := FromSlice(1, 2, 3)
	expectList(t, l, []int{1, 2, 3})
	l.Extend(slices.Values([]int{4, 5}))
	expectList(t, l, []int{1, 2, 3, 4, 5})
	l.Extend(nil)
	c := Collect(l.Values())
	expectList(t, c, []int{1, 2, 3, 4, 5})
	if !Equal(l, c) {
		t.Errorf("collected list differs from source")
	}
	//
	self := FromSlice(1, 2, 3)
	self.Extend(self.Values())
	expectList(t, self, []int{1, 2, 3, 1, 2, 3})
}

func TestListClone(t *testing.T) {
	l := mklist(0, 5)
	c := l.Clone()
	*c.FrontPtr() = 42
	expectList(t, l, []int{0, 1, 2, 3, 4})
	expectList(t, c, []int{42, 1, 2, 3, 4})
	//
	short := mklist(7, 9)
	c.CloneFrom(short)
	expectList(t, c, []int{7, 8})
	c.CloneFrom(mklist(0, 6))
	expectList(t, c, mklist(0, 6).Slice())
	c.CloneFrom(c)
	expectList(t, c, mklist(0, 6).Slice())
	c.CloneFrom(New[int]())
	expectList(t, c, []int{})
}

func TestListIterators(t *testing.T) {
	l := New[int]()
	for i := 1; i < 10; i++ {
		l.PushBack(i)
	}
	acc := 0
	for v := range l.Values() {
		acc += v
	}
	if acc != 45 || l.Len() != 9 {
		t.Errorf("sum = %d, len = %d; want 45, 9", acc, l.Len())
	}
	for i, v := range l.All() {
		if v != i+1 {
			t.Fatalf("value at %d is %d", i, v)
		}
	}
	for p := range l.Pointers() {
		*p += 1
	}
	acc = 0
	for v := range l.Values() {
		acc += v
	}
	if acc != 54 {
		t.Errorf("sum after increment = %d, want 54", acc)
	}
	acc = 0
	for v := range l.Drain() {
		acc += v
		if v == 5 {
			break
		}
	}
	if acc != 14 {
		t.Errorf("drained sum = %d, want 14", acc)
	}
	expectList(t, l, []int{6, 7, 8, 9, 10})
	var nilList *List[int]
	for range nilList.Values() {
		t.Fatalf("nil list yields values")
	}
}

func TestListIterMut(t *testing.T) {
	l := mklist(0, 10)
	it := l.IterMut()
	for i := range 9 {
		p, ok := it.Next()
		if !ok {
			t.Fatalf("iteration ended at %d", i)
		}
		v := *p
		switch {
		case i == 6:
			if v != 150 {
				t.Fatalf("value at %d = %d, want 150", i, v)
			}
		case i > 7:
			if v != i+1 {
				t.Fatalf("value at %d = %d, want %d", i, v, i+1)
			}
		default:
			if v != i {
				t.Fatalf("value at %d = %d, want %d", i, v, i)
			}
		}
		if i == 3 {
			it.InsertNext(42)
		}
		if i < 8 {
			if w, _ := it.PeekNext(); w != i+1 {
				t.Fatalf("peek at %d = %d, want %d", i, w, i+1)
			}
		}
		if i == 5 {
			*it.PeekNextPtr() = 150
		}
		if i == 7 {
			if w, ok := it.RemoveNext(); !ok || w != 8 {
				t.Fatalf("RemoveNext() = (%d, %v), want 8", w, ok)
			}
		}
	}
	if it.SizeHint() != 0 {
		t.Errorf("size hint = %d, want 0", it.SizeHint())
	}
	expectList(t, l, []int{0, 1, 2, 3, 42, 4, 5, 150, 7, 9})
	//
	it = l.IterMut()
	it.Next()
	it.Next()
	tail := it.TruncateNext()
	expectList(t, l, []int{0, 1})
	expectList(t, tail, []int{2, 3, 42, 4, 5, 150, 7, 9})
	if _, ok := it.Next(); ok {
		t.Errorf("iterator not exhausted after TruncateNext")
	}
}

func TestListCompare(t *testing.T) {
	a, b := mklist(0, 5), mklist(0, 5)
	if !Equal(a, b) || Compare(a, b) != 0 {
		t.Errorf("equal lists compare unequal")
	}
	seed := maphash.MakeSeed()
	if Hash(seed, a) != Hash(seed, b) {
		t.Errorf("equal lists hash differently")
	}
	b.PushBack(5)
	if Equal(a, b) || Compare(a, b) != -1 || Compare(b, a) != +1 {
		t.Errorf("prefix list does not compare less")
	}
	*b.FrontPtr() = -1
	if Compare(a, b) != +1 {
		t.Errorf("expected a > b")
	}
	if !Equal(New[int](), nil) || Compare[int](nil, New[int]()) != 0 {
		t.Errorf("empty lists compare unequal")
	}
	strs := FromSlice("0", "1", "2", "3", "4")
	if !EqualFunc(a, strs, func(i int, s string) bool { return s == string(rune('0'+i)) }) {
		t.Errorf("EqualFunc failed for matching lists")
	}
}

func TestListString(t *testing.T) {
	if s := mklist(0, 4).String(); s != "[0 1 2 3]" {
		t.Errorf("String() = %q", s)
	}
	if s := New[string]().String(); s != "[]" {
		t.Errorf("String() of empty list = %q", s)
	}
}

func TestList2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fwdlist")
	defer teardown()
	//
	l := mklist(0, 3)
	c := l.Cursor()
	c.Next()
	var bf bytes.Buffer
	List2Dot(l, &bf, c)
	dot := bf.String()
	t.Logf("\n%s", dot)
	for _, want := range []string{"strict digraph", "len=3", "\"cursor0\" -> \"2\"", "-> \"nil\""} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output does not contain %q", want)
		}
	}
}

func TestListCheckDetectsCorruption(t *testing.T) {
	l := mklist(0, 3)
	l.len = 2
	if err := l.Check(); err == nil {
		t.Errorf("expected invariant violation for wrong length")
	}
	l.len = 4
	if err := l.Check(); err == nil {
		t.Errorf("expected invariant violation for wrong length")
	}
	if diff := cmp.Diff([]int{0, 1, 2}, l.Slice()); diff != "" {
		t.Errorf("unexpected content: %s", diff)
	}
}
