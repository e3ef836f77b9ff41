/*
Persistent data structures are data structures which can be copied and modified
cheaply, leaving every earlier version intact. This module offers an ordered set
of this kind, built on an (unbalanced) binary search tree with path copying.

Every modification creates new nodes along the path from the root to the
point of change only. All other subtrees are shared between the old and the
new version of a set. Sharing is governed by explicit ownership handles
(package owner) instead of being left to the garbage collector alone: a node is
disposed at the very moment the last set version referencing it goes away.

Sub-packages:

	owner      // ownership handles: reference counted or sibling-linked
	set        // the persistent ordered set and its iterators

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package persistent
