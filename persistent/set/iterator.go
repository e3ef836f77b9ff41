package set

// Iterator is a position in a set. It is a small value which may be copied freely.
//
// Iterators do not own the node they refer to. An iterator stays valid only as long
// as some live version of the set owns its node.
type Iterator[T any] struct {
	node     *node[T]
	sentinel *node[T] // sentinel of the set the iterator was created for
	less     func(a, b T) bool
}

// Value returns the element at the iterator's position.
// It panics for the end iterator.
func (it Iterator[T]) Value() T {
	assertThat(it.node != nil, "use of an uninitialized iterator")
	return it.node.val()
}

// IsEnd is true if it is positioned past the last element.
func (it Iterator[T]) IsEnd() bool {
	return it.node == it.sentinel
}

// Equal is true if it and other are positioned at the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// Next returns an iterator positioned at the successor of it.
// For the largest element of a set, Next returns the end iterator.
// It panics for the end iterator.
//
// Nodes do not know their parents. If there is no right subtree, the successor
// is the nearest ancestor we turned left at, which we find by descending from the
// root again.
func (it Iterator[T]) Next() Iterator[T] {
	n := it.node
	assertThat(n != nil && !n.isSentinel(), "cannot step past the end of a set")
	if r := n.right.Get(); r != nil {
		it.node = r.leftmost()
		return it
	}
	v := n.val()
	succ := it.sentinel
	cur := it.sentinel.left.Get()
	for cur != n {
		assertThat(cur != nil, "iterator refers to a node not contained in its set")
		if it.less(cur.val(), v) {
			cur = cur.right.Get()
		} else {
			succ = cur
			cur = cur.left.Get()
		}
	}
	it.node = succ
	return it
}

// Prev returns an iterator positioned at the predecessor of it.
// For the end iterator, Prev returns the largest element; for the smallest
// element, Prev returns the end iterator.
func (it Iterator[T]) Prev() Iterator[T] {
	n := it.node
	assertThat(n != nil, "use of an uninitialized iterator")
	if l := n.left.Get(); l != nil {
		it.node = l.rightmost()
		return it
	}
	assertThat(!n.isSentinel(), "cannot step back in an empty set")
	v := n.val()
	pred := it.sentinel
	cur := it.sentinel.left.Get()
	for cur != n {
		assertThat(cur != nil, "iterator refers to a node not contained in its set")
		if it.less(cur.val(), v) {
			pred = cur
			cur = cur.right.Get()
		} else {
			cur = cur.left.Get()
		}
	}
	it.node = pred
	return it
}

func (it Iterator[T]) String() string {
	if it.node == nil {
		return "⟨nil⟩"
	}
	return it.node.String()
}
