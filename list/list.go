package list

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// node is a link in the chain. It is referenced either by its predecessor or,
// for the first node, by the list.
type node[T any] struct {
	elm  T
	next *node[T]
}

func newNode[T any](elm T) *node[T] {
	return &node[T]{elm: elm}
}

type borrowState uint8

const (
	unborrowed borrowState = iota
	exclusive
)

// List is a singly-linked list with elements of type T. The zero value is an
// empty list, ready to use.
type List[T any] struct {
	head   *node[T]
	length int
	mods   uint64 // counts structural changes, for invalidating cursors
	borrow borrowState
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// --- API -------------------------------------------------------------------

// PushFront inserts elm as the new first element.
func (l *List[T]) PushFront(elm T) {
	l.assertAccessible("PushFront")
	n := newNode(elm)
	n.next, l.head = l.head, n
	l.length++
	l.mods++
}

// PopFront removes the first element and returns it, or Nothing if l is empty.
func (l *List[T]) PopFront() maybe.Maybe[T] {
	l.assertAccessible("PopFront")
	n := l.head
	if n == nil {
		return maybe.Nothing[T]()
	}
	l.head, n.next = n.next, nil
	l.length--
	l.mods++
	return maybe.Just(n.elm)
}

// Peek returns the first element without removing it, or Nothing if l is empty.
func (l *List[T]) Peek() maybe.Maybe[T] {
	l.assertAccessible("Peek")
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elm)
}

// PeekMut returns a pointer to the first element, or nil if l is empty.
// The pointer must not be used after the next PopFront or Drop. Clients who
// want the borrow to be checked use WithHeadMut instead.
func (l *List[T]) PeekMut() *T {
	l.assertAccessible("PeekMut")
	if l.head == nil {
		return nil
	}
	return &l.head.elm
}

// WithHeadMut calls f with a pointer to the first element, holding an exclusive
// borrow of l for the duration of the call. It returns false, without calling f,
// if l is empty.
func (l *List[T]) WithHeadMut(f func(elm *T)) bool {
	l.assertAccessible("WithHeadMut")
	if l.head == nil {
		return false
	}
	l.acquire("WithHeadMut")
	defer l.release("WithHeadMut")
	f(&l.head.elm)
	return true
}

// IsEmpty is true if l has no elements.
func (l *List[T]) IsEmpty() bool {
	l.assertAccessible("IsEmpty")
	return l.head == nil
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	l.assertAccessible("Len")
	return l.length
}

// Drop removes all elements from l. The chain is unlinked one node at a time,
// which keeps the stack flat even for very long lists.
func (l *List[T]) Drop() {
	l.assertAccessible("Drop")
	var zero T
	cur, count := l.head, 0
	l.head = nil
	for cur != nil {
		next := cur.next
		cur.next, cur.elm = nil, zero
		cur = next
		count++
	}
	l.length = 0
	l.mods++
	tracer().Debugf("dropped %d nodes", count)
}

// Each calls f for every element, front to back.
func (l *List[T]) Each(f func(T)) {
	it := l.Iter()
	for v, ok := it.Next().Get(); ok; v, ok = it.Next().Get() {
		f(v)
	}
}

func (l *List[T]) String() string {
	l.assertAccessible("String")
	b := strings.Builder{}
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elm))
	}
	b.WriteByte(')')
	return b.String()
}

// --- Borrowing -------------------------------------------------------------

func (l *List[T]) assertAccessible(op string) {
	assertThat(l.borrow == unborrowed, "%s while list is exclusively borrowed", op)
}

func (l *List[T]) acquire(by string) {
	l.assertAccessible(by)
	l.borrow = exclusive
	tracer().Debugf("list exclusively borrowed by %s", by)
}

func (l *List[T]) release(by string) {
	assertThat(l.borrow == exclusive, "%s releases a borrow it does not hold", by)
	l.borrow = unborrowed
	tracer().Debugf("%s released exclusive borrow", by)
}
