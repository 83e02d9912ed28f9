/*
Package list implements an immutable persistent singly-linked list, the kind of
list functional programmers come to know and love.

Lists are values. Prepending an element or taking the tail yields a new list,
leaving the original untouched; both share the common suffix of nodes:

    base := list.Of(1, 2)
    a := base.Prepend(10)      // (10 1 2)
    b := base.Prepend(20)      // (20 1 2), shares (1 2) with a and base

Nodes are never modified after they have been created, which makes it safe to
read lists sharing a suffix concurrently. Lists offer no means of concurrent
modification, as there is none.

Reference Counting

Each node counts the list handles and nodes pointing to it. Prepend, Tail and
Clone hand out new counted references; Release gives one back and unlinks
every node no longer referenced, stopping at the first node which is still
shared. Assigning a List value to another variable does not add a reference;
use Clone if both copies are to be released independently. Releasing is
optional: unreleased nodes are reclaimed by the garbage collector.

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

// tracer traces with key 'fp.persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.persistent.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
