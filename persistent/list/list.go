package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// node is immutable once created, except for its reference count and for
// being unlinked on release.
type node[T any] struct {
	elm    T
	next   *node[T]
	refs   int // number of lists and nodes pointing here
	length int // length of the chain starting at this node
}

func newNode[T any](elm T) *node[T] {
	return &node[T]{elm: elm, refs: 1, length: 1}
}

func (n *node[T]) retain() *node[T] {
	if n != nil {
		assertThat(n.refs > 0, "attempt to share a released node")
		n.refs++
	}
	return n
}

func (n *node[T]) String() string {
	return fmt.Sprintf("⟨%v refs=%d⟩", n.elm, n.refs)
}

// List is an immutable singly-linked list. The zero value is the empty list.
type List[T any] struct {
	head *node[T]
}

// New returns the empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// Of creates a list holding items, with items[0] as its head.
//
//     l := list.Of(1, 2, 3)   // (1 2 3)
//
func Of[T any](items ...T) List[T] {
	l := New[T]()
	for i := len(items) - 1; i >= 0; i-- {
		next := l.Prepend(items[i])
		l.Release()
		l = next
	}
	return l
}

// --- API -------------------------------------------------------------------

// Prepend returns a new list with elm as its head and l as its tail.
// l is left unchanged.
func (l List[T]) Prepend(elm T) List[T] {
	n := newNode(elm)
	if l.head != nil {
		n.next = l.head.retain()
		n.length = l.head.length + 1
	}
	return List[T]{head: n}
}

// Tail returns l without its first element. The tail of the empty list is
// the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return List[T]{}
	}
	l.assertLive()
	return List[T]{head: l.head.next.retain()}
}

// Head returns the first element of l, or Nothing if l is empty.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	l.assertLive()
	return maybe.Just(l.head.elm)
}

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements of l.
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	l.assertLive()
	return l.head.length
}

// Clone returns a second, independently releasable handle to l.
func (l List[T]) Clone() List[T] {
	return List[T]{head: l.head.retain()}
}

// Shares is true if l and other have at least one node in common.
func (l List[T]) Shares(other List[T]) bool {
	a, b := l.head, other.head
	for a != nil && b != nil && a.length > b.length {
		a = a.next
	}
	for a != nil && b != nil && b.length > a.length {
		b = b.next
	}
	for a != nil && b != nil {
		if a == b {
			return true
		}
		a, b = a.next, b.next
	}
	return false
}

func (l List[T]) String() string {
	if l.head != nil {
		l.assertLive()
	}
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

// Release gives up l's reference to its chain and leaves l empty. Nodes no
// longer referenced are unlinked one at a time; the walk stops at the first
// node which is still shared by another list. Releasing an empty list is a no-op.
func (l *List[T]) Release() {
	var zero T
	cur, count := l.head, 0
	l.head = nil
	for cur != nil {
		assertThat(cur.refs > 0, "attempt to release a released node")
		cur.refs--
		if cur.refs > 0 {
			tracer().Debugf("release stops at shared node %s after freeing %d nodes", cur, count)
			return
		}
		next := cur.next
		cur.next, cur.elm = nil, zero
		cur = next
		count++
	}
	tracer().Debugf("released %d nodes", count)
}

func (l List[T]) assertLive() {
	assertThat(l.head.refs > 0, "use of a released list")
}
