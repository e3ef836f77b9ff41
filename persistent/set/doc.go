/*
Package set implements a persistent (immutable-version) ordered set.

A Set is a plain binary search tree with path copying: no node is ever modified
after it has been created. Inserting or erasing an element creates new nodes
along the path from the root down to the point of change; all other subtrees are
shared with the previous version of the tree. Copying a set therefore is O(1).

	s := set.Ordered[int]()
	s.Insert(10)
	t := s.Copy()       // t shares all of s's nodes
	t.Insert(20)        // s still contains just 10

Sharing is governed by ownership handles (see package owner). Each set version
owns a sentinel node, which anchors the tree root and doubles as the position
past the last element. When a version is released, every node which is not
referenced by another version is disposed of immediately.

The tree is not re-balanced; its depth depends on the order of insertion.

# Iterators

Nodes do not store links to their parents. Iterators step forward and backward
by re-descending from the root, which costs O(depth) per step.
Iterators do not own the node they point to. An iterator is valid only as long
as some live set version still owns its node: after a mutation (or after
releasing a version) nodes which are no longer referenced are disposed of, and
iterators pointing to them must not be used any more.

Sets, iterators and handles are not safe for concurrent use. This includes
sets which merely share subtrees.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package set

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.set'.
func tracer() tracing.Trace {
	return tracing.Select("fp.set")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("set: "+msg, msgargs...)
		panic(msg)
	}
}
