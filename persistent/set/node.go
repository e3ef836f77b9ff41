package set

import (
	"fmt"

	"github.com/npillmayer/pset/persistent/owner"
)

// node is a node of the tree. A sentinel node is a node without a value and
// without a right child; its left child is the root of the tree.
//
// Nodes are immutable once linked into a tree.
type node[T any] struct {
	left  owner.Ref[node[T]]
	right owner.Ref[node[T]] // nil for sentinels
	value owner.Ref[T]       // nil for sentinels
}

func (n *node[T]) isSentinel() bool {
	return n.value == nil
}

// val returns the node's value. It panics for sentinels and for nodes which
// already have been disposed of.
func (n *node[T]) val() T {
	assertThat(!n.isSentinel(), "attempt to dereference the end of a set")
	v := n.value.Get()
	assertThat(v != nil, "attempt to dereference a disposed node")
	return *v
}

// Dispose is called by the ownership handle of n when its last owner is gone.
// Releasing the children cascades down to every subtree not shared elsewhere.
func (n *node[T]) Dispose() {
	tracer().Debugf("dispose %v", n)
	n.left.Release()
	if n.right != nil {
		n.right.Release()
	}
	if n.value != nil {
		n.value.Release()
	}
}

func (n *node[T]) String() string {
	if n.isSentinel() {
		return "⊥"
	}
	if v := n.value.Get(); v != nil {
		return fmt.Sprintf("⟨%v⟩", *v)
	}
	return "⟨✝⟩"
}

// leftmost returns the node with the smallest value in the subtree rooted at n.
// For a sentinel of an empty tree this is the sentinel itself.
func (n *node[T]) leftmost() *node[T] {
	for l := n.left.Get(); l != nil; l = n.left.Get() {
		n = l
	}
	return n
}

func (n *node[T]) rightmost() *node[T] {
	for r := n.right.Get(); r != nil; r = n.right.Get() {
		n = r
	}
	return n
}

// --- Node creation ---------------------------------------------------------

// newLeaf creates a leaf node, taking value as its element.
func (s *Set[T]) newLeaf(value T) *node[T] {
	v := new(T)
	*v = value
	return &node[T]{
		left:  owner.Empty[node[T]](s.kind),
		right: owner.Empty[node[T]](s.kind),
		value: owner.Acquire(s.kind, v),
	}
}

// newNode creates an inner node. The node takes over the handles given as
// arguments; callers pass copies of handles they want to share.
func (s *Set[T]) newNode(left, right owner.Ref[node[T]], value owner.Ref[T]) *node[T] {
	return &node[T]{left: left, right: right, value: value}
}

func (s *Set[T]) newSentinel(root owner.Ref[node[T]]) owner.Ref[node[T]] {
	return owner.Acquire(s.kind, &node[T]{left: root})
}

func (s *Set[T]) own(n *node[T]) owner.Ref[node[T]] {
	return owner.Acquire(s.kind, n)
}
