package list_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	. "github.com/npillmayer/lists/list"
)

func makeList(values ...int) *List[int] {
	l := New[int]()
	for _, v := range values {
		l.PushFront(v)
	}
	return l
}

func collect(it *Iter[int]) []int {
	var r []int
	for v, ok := it.Next().Get(); ok; v, ok = it.Next().Get() {
		r = append(r, v)
	}
	return r
}

func TestIntoIter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := makeList(1, 2, 3)
	it := l.IntoIter()
	var got []int
	for v, ok := it.Next().Get(); ok; v, ok = it.Next().Get() {
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, got); diff != "" {
		t.Errorf("IntoIter sequence (-want +got):\n%s", diff)
	}
	if !it.Next().IsNothing() || !it.Next().IsNothing() {
		t.Error("expected exhausted IntoIter to stay exhausted")
	}
	if !l.IsEmpty() {
		t.Errorf("expected IntoIter to drain list, list is %s", l)
	}
}

func TestIter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := makeList(1, 2, 3)
	for pass := 0; pass < 2; pass++ {
		it := l.Iter()
		if diff := cmp.Diff([]int{3, 2, 1}, collect(it)); diff != "" {
			t.Errorf("pass %d: Iter sequence (-want +got):\n%s", pass, diff)
		}
		if !it.Next().IsNothing() {
			t.Error("expected exhausted Iter to stay exhausted")
		}
	}
	if v, ok := l.PopFront().Get(); !ok || v != 3 {
		t.Errorf("expected Iter not to consume, PopFront returned (%d, %v)", v, ok)
	}
	var sum int
	l.Each(func(v int) { sum += v })
	if sum != 3 {
		t.Errorf("expected Each to sum to 3, is %d", sum)
	}
}

func TestIterOnEmptyList(t *testing.T) {
	l := New[int]()
	if got := collect(l.Iter()); len(got) != 0 {
		t.Errorf("expected no elements, got %v", got)
	}
	if p := l.IterMut().Next(); p != nil {
		t.Errorf("expected IterMut on empty list to return nil, got %v", *p)
	}
	l.PushFront(1) // borrow has been released
}

func TestIterMut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := makeList(1, 2, 3)
	it := l.IterMut()
	for p := it.Next(); p != nil; p = it.Next() {
		*p *= 100
	}
	if it.Next() != nil {
		t.Error("expected exhausted IterMut to stay exhausted")
	}
	if diff := cmp.Diff([]int{300, 200, 100}, collect(l.Iter())); diff != "" {
		t.Errorf("after IterMut (-want +got):\n%s", diff)
	}
}

func TestIterMutIsExclusive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := makeList(1, 2, 3)
	it := l.IterMut()
	p := it.Next()
	*p = 30
	mustPanic(t, "second IterMut", func() { l.IterMut() })
	mustPanic(t, "PushFront", func() { l.PushFront(4) })
	mustPanic(t, "PopFront", func() { l.PopFront() })
	mustPanic(t, "Peek", func() { l.Peek() })
	mustPanic(t, "PeekMut", func() { l.PeekMut() })
	mustPanic(t, "Iter", func() { l.Iter() })
	mustPanic(t, "Drop", func() { l.Drop() })
	mustPanic(t, "String", func() { _ = l.String() })
	mustPanic(t, "IntoIter", func() { l.IntoIter() })
	it.Release()
	it.Release()
	if it.Next() != nil {
		t.Error("expected released IterMut to return nil")
	}
	if diff := cmp.Diff([]int{30, 2, 1}, collect(l.Iter())); diff != "" {
		t.Errorf("after release (-want +got):\n%s", diff)
	}
}

func TestStaleIter(t *testing.T) {
	l := makeList(1, 2, 3)
	it := l.Iter()
	it.Next()
	l.PushFront(4)
	mustPanic(t, "stale Iter", func() { it.Next() })
}

func TestIntoIterIsNotRestartable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := makeList(1)
	it := l.IntoIter()
	if !l.IsEmpty() {
		t.Errorf("expected IntoIter to take over the chain, list is %s", l)
	}
	if v, ok := it.Next().Get(); !ok || v != 1 {
		t.Errorf("expected Next to return 1, got (%d, %v)", v, ok)
	}
	l.PushFront(9)
	if v, ok := it.Next().Get(); ok {
		t.Errorf("expected exhausted IntoIter to ignore later pushes, got %d", v)
	}
	if diff := cmp.Diff([]int{9}, collect(l.Iter())); diff != "" {
		t.Errorf("list after push (-want +got):\n%s", diff)
	}
	stale := l.Iter()
	l.IntoIter()
	mustPanic(t, "Iter after IntoIter", func() { stale.Next() })
}

func TestIntoIterLongChain(t *testing.T) {
	const n = 150000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.PushFront(i)
	}
	it, count := l.IntoIter(), 0
	for !it.Next().IsNothing() {
		count++
	}
	if count != n || !l.IsEmpty() {
		t.Errorf("expected to drain %d elements, drained %d", n, count)
	}
}

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected %s to panic, didn't", what)
		} else {
			t.Logf("%s: %v", what, r)
		}
	}()
	f()
}
