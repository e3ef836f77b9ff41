package set

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pset/persistent/owner"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used for variables holding new
  incarnations of nodes.

- A descent records the nodes it passes, together with the side it turned to.
  A modification then folds the path from the bottom up, creating a copy of
  every node on the path and sharing the sibling subtree it did not turn to.

- A new modified incarnation of a tree always is reflected by a new root.
*/

type side uint8

const (
	leftSide side = iota
	rightSide
)

func (s side) String() string {
	if s == leftSide {
		return "L"
	}
	return "R"
}

// --- Step ------------------------------------------------------------------

// step holds a step of a path: a node and the side of it the descent went on with.
type step[T any] struct {
	node *node[T]
	side side
}

func (st step[T]) String() string {
	return st.node.String() + st.side.String()
}

// --- Path ------------------------------------------------------------------

type path[T any] []step[T]

func (p path[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, st := range p {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", st))
	}
	sb.WriteRune(']')
	return sb.String()
}

// foldR applies f on pairs (parent, child) of path, where child is the result
// of the previous application. Application starts from the right, i.e. the
// bottom-most step of the path. zero is the child passed to the first call of f.
// If the path is empty, zero is returned.
func (p path[T]) foldR(f func(step[T], owner.Ref[node[T]]) owner.Ref[node[T]],
	zero owner.Ref[node[T]]) owner.Ref[node[T]] {
	//
	r := zero
	for i := len(p) - 1; i >= 0; i-- {
		r = f(p[i], r)
	}
	return r
}

// cloneSeam creates a copy of the parent node of a step, with child linked in
// at the side of the step. The sibling on the other side and the value are shared.
// The resulting node is returned as a new handle.
func (s *Set[T]) cloneSeam(parent step[T], child owner.Ref[node[T]]) owner.Ref[node[T]] {
	n := parent.node
	var cow *node[T]
	if parent.side == leftSide {
		cow = s.newNode(child, n.right.Copy(), n.value.Copy())
	} else {
		cow = s.newNode(n.left.Copy(), child, n.value.Copy())
	}
	tracer().Debugf("seam: %s → %s", parent, cow)
	return s.own(cow)
}

// locate searches for value, starting at the root of the tree. It returns the
// node holding value (nil if not present) and the path of nodes passed on the
// way down, excluding the located node. pathBuf is re-used for the path, if
// not nil.
func (s *Set[T]) locate(value T, pathBuf path[T]) (*node[T], path[T]) {
	p := pathBuf[:0]
	n := s.root()
	for n != nil {
		v := n.val()
		switch {
		case s.less(v, value):
			p = append(p, step[T]{node: n, side: rightSide})
			n = n.right.Get()
		case s.less(value, v):
			p = append(p, step[T]{node: n, side: leftSide})
			n = n.left.Get()
		default:
			return n, p
		}
	}
	return nil, p
}

// pathToLeftmost returns the path from n down to the leftmost node of its subtree,
// excluding the leftmost node itself, which is returned separately.
func pathToLeftmost[T any](n *node[T]) (*node[T], path[T]) {
	var p path[T]
	for l := n.left.Get(); l != nil; l = n.left.Get() {
		p = append(p, step[T]{node: n, side: leftSide})
		n = l
	}
	return n, p
}
