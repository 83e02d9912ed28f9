package list

import "github.com/npillmayer/lists/maybe"

// Iter reads a list from front to back.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a cursor positioned at the head of l. It does not hold a
// reference to the chain; l must not be released while the cursor is in use.
func (l List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
}

// Next returns the next element, or Nothing at the end of the list.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	n := it.next
	if n == nil {
		return maybe.Nothing[T]()
	}
	assertThat(n.refs > 0, "iterating a released list")
	it.next = n.next
	return maybe.Just(n.elm)
}

// Each calls f for every element of l, front to back.
func (l List[T]) Each(f func(T)) {
	if l.head != nil {
		l.assertLive()
	}
	for n := l.head; n != nil; n = n.next {
		f(n.elm)
	}
}
