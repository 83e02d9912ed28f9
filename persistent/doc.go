/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.
This package tree offers a selection of data structures with similar properties; currently
a singly-linked list (package persistent/list).

Persistent lists offer structural sharing: prepending to a list or taking its tail never
copies the remainder of the list, so that lists derived from a common ancestor share their
common suffix of nodes. As nodes never change after creation, sharing them is safe.

Mutable counterparts live outside of this package tree (package list).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
