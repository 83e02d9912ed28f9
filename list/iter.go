package list

import "github.com/npillmayer/lists/maybe"

// IntoIter drains a list from front to back.
type IntoIter[T any] struct {
	next *node[T]
}

// IntoIter moves the chain of l into a cursor, leaving l empty. Elements
// pushed onto l afterwards are not seen by the cursor.
func (l *List[T]) IntoIter() *IntoIter[T] {
	l.assertAccessible("IntoIter")
	it := &IntoIter[T]{next: l.head}
	l.head, l.length = nil, 0
	l.mods++
	return it
}

// Next unlinks and returns the next element, or Nothing once the chain is used up.
func (it *IntoIter[T]) Next() maybe.Maybe[T] {
	n := it.next
	if n == nil {
		return maybe.Nothing[T]()
	}
	it.next, n.next = n.next, nil
	return maybe.Just(n.elm)
}

// --- Shared iteration ------------------------------------------------------

// Iter reads a list from front to back without changing it.
type Iter[T any] struct {
	list *List[T]
	next *node[T]
	mods uint64
}

// Iter returns a read-only cursor positioned at the first element of l.
// The cursor is valid until l is structurally changed.
func (l *List[T]) Iter() *Iter[T] {
	l.assertAccessible("Iter")
	return &Iter[T]{list: l, next: l.head, mods: l.mods}
}

// Next returns the next element, or Nothing if the end of the list is reached.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	if it.next == nil {
		return maybe.Nothing[T]()
	}
	it.list.assertAccessible("Iter.Next")
	assertThat(it.mods == it.list.mods, "iterator used after list has been modified")
	n := it.next
	it.next = n.next
	return maybe.Just(n.elm)
}

// --- Exclusive iteration ---------------------------------------------------

// IterMut hands out pointers to the elements of a list, front to back.
// It holds an exclusive borrow of the list until it is exhausted or released.
type IterMut[T any] struct {
	list *List[T]
	next *node[T]
	done bool
}

// IterMut returns a cursor for updating the elements of l in place.
// No other operation on l is permitted until the cursor's Next has returned
// nil or Release has been called.
func (l *List[T]) IterMut() *IterMut[T] {
	l.acquire("IterMut")
	return &IterMut[T]{list: l, next: l.head}
}

// Next returns a pointer to the next element, or nil at the end of the list.
// Returning nil releases the borrow.
func (it *IterMut[T]) Next() *T {
	if it.done {
		return nil
	}
	if it.next == nil {
		it.Release()
		return nil
	}
	n := it.next
	it.next = n.next
	return &n.elm
}

// Release gives up the exclusive borrow before the end of the list is reached.
// It is safe to call Release more than once.
func (it *IterMut[T]) Release() {
	if it.done {
		return
	}
	it.done = true
	it.next = nil
	it.list.release("IterMut")
}
