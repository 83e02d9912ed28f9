/*
Package list implements a mutable, singly-linked list.

Every node of a list is owned by exactly one predecessor, the first node is owned
by the list itself. Elements are added and removed at the front:

    l := list.New[int]()
    l.PushFront(1)
    l.PushFront(2)
    v, ok := l.PopFront().Get()   // 2, true

Lists may be walked in three modes: IntoIter drains the list, Iter reads it
and IterMut hands out pointers to the elements for in-place updates.

Borrowing

Go cannot express exclusive borrows statically, so lists check them at runtime.
An IterMut cursor or a WithHeadMut scope holds an exclusive borrow of its list;
while it is held, any other use of the list panics. Iter cursors are invalidated
by structural changes (pushes, pops, drops) and panic if used afterwards.

Lists are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
