package set

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/pset/persistent/owner"
)

// Set is a persistent ordered set of elements of type T. An element is stored
// once and never modified afterwards.
//
// A Set is a version of a tree: mutations replace the root of the version they
// are called on, but never touch nodes which other versions may share. Use Copy
// to keep a version around before mutating.
type Set[T any] struct {
	props
	less     func(a, b T) bool
	sentinel owner.Ref[node[T]]
	size     int
}

type props struct {
	kind owner.Kind
}

// Option is a type to help initializing sets at creation time.
type Option struct {
	config func(props) props
}

// Ownership is an option to select the kind of ownership handles a set uses to
// share nodes between versions. Default is owner.Counted.
//
// Use it like this:
//
//	s := set.Ordered[int](set.Ownership(owner.Linked))
func Ownership(kind owner.Kind) Option {
	conf := func(p props) props {
		p.kind = kind
		return p
	}
	return Option{config: conf}
}

// New creates an empty set, ordered by less. less has to be a strict order.
// Two elements a and b are considered equal if neither less(a,b) nor less(b,a).
func New[T any](less func(a, b T) bool, opts ...Option) *Set[T] {
	assertThat(less != nil, "a set needs an order")
	s := &Set[T]{less: less}
	for _, option := range opts {
		s.props = option.config(s.props)
	}
	s.sentinel = s.newSentinel(owner.Empty[node[T]](s.kind))
	return s
}

// Ordered creates an empty set for a type with a natural order.
func Ordered[T cmp.Ordered](opts ...Option) *Set[T] {
	return New(cmp.Less[T], opts...)
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in s.
func (s *Set[T]) Len() int {
	return s.size
}

// IsEmpty is true if s contains no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.root() == nil
}

// Kind returns the kind of ownership handles in use.
func (s *Set[T]) Kind() owner.Kind {
	return s.kind
}

// Find locates value in s. If value is not present, the end iterator is returned.
func (s *Set[T]) Find(value T) Iterator[T] {
	n := s.root()
	for n != nil {
		v := n.val()
		switch {
		case s.less(v, value):
			n = n.right.Get()
		case s.less(value, v):
			n = n.left.Get()
		default:
			return s.iterator(n)
		}
	}
	return s.End()
}

// Contains is true if value is an element of s.
func (s *Set[T]) Contains(value T) bool {
	return !s.Find(value).IsEnd()
}

// Insert inserts value into s, if no equal element is present yet.
// It returns an iterator positioned at the element equal to value, together
// with a flag telling if value has been inserted. If an equal element was
// present, s is left unchanged and value is discarded.
func (s *Set[T]) Insert(value T) (Iterator[T], bool) {
	n, p := s.locate(value, nil)
	if n != nil {
		tracer().Debugf("insert: %v already present", value)
		return s.iterator(n), false
	}
	leaf := s.newLeaf(value)
	tracer().Debugf("insert: %v with path %s", value, p)
	newRoot := p.foldR(s.cloneSeam, s.own(leaf))
	s.replaceRoot(newRoot)
	s.size++
	return s.iterator(leaf), true
}

// Erase removes the element an iterator refers to. The iterator has to refer to
// an element reachable from s; it must not be the end iterator.
//
// After Erase, it and every other iterator of s may refer to a node which has
// been disposed of. Such iterators must not be used any more, unless another
// version of the set still owns their nodes.
func (s *Set[T]) Erase(it Iterator[T]) {
	assertThat(it.node != nil && !it.IsEnd(), "cannot erase the end of a set")
	target, p := s.locate(it.node.val(), nil)
	assertThat(target == it.node, "iterator does not refer to an element of this set")
	tracer().Debugf("erase: %s with path %s", target, p)
	var repl owner.Ref[node[T]]
	switch {
	case target.left.IsEmpty():
		repl = target.right.Copy()
	case target.right.IsEmpty():
		repl = target.left.Copy()
	default: // promote the in-order successor
		succ, sp := pathToLeftmost(target.right.Get())
		tracer().Debugf("erase: successor is %s", succ)
		right := sp.foldR(s.cloneSeam, succ.right.Copy())
		repl = s.own(s.newNode(target.left.Copy(), right, succ.value.Copy()))
	}
	newRoot := p.foldR(s.cloneSeam, repl)
	s.replaceRoot(newRoot)
	s.size--
}

// Remove removes value from s, if present, and reports whether it was present.
func (s *Set[T]) Remove(value T) bool {
	it := s.Find(value)
	if it.IsEnd() {
		return false
	}
	s.Erase(it)
	return true
}

// Begin returns an iterator positioned at the smallest element of s, or
// the end iterator if s is empty.
func (s *Set[T]) Begin() Iterator[T] {
	return s.iterator(s.sentinelNode().leftmost())
}

// End returns the iterator positioned past the largest element of s.
func (s *Set[T]) End() Iterator[T] {
	return s.iterator(s.sentinelNode())
}

// Values returns the elements of s in ascending order.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.size)
	inorder(s.root(), func(v T) {
		values = append(values, v)
	})
	return values
}

// Copy returns a new version of s. The copy has a sentinel of its own, but
// shares the complete tree with s. This is an O(1) operation.
func (s *Set[T]) Copy() *Set[T] {
	cp := &Set[T]{props: s.props, less: s.less, size: s.size}
	cp.sentinel = cp.newSentinel(s.sentinelNode().left.Copy())
	tracer().Debugf("copy: root shared by %d versions", cp.sentinelNode().left.Owners())
	return cp
}

// Assign makes s a version sharing the tree of other. s's previous tree is
// released.
func (s *Set[T]) Assign(other *Set[T]) {
	cp := other.Copy()
	s.Swap(cp)
	cp.Release()
}

// Swap exchanges the contents of s and other. Iterators stay with their
// elements, i.e. iterators of s become iterators of other and vice versa.
func (s *Set[T]) Swap(other *Set[T]) {
	assertThat(s.kind == other.kind, "cannot swap sets with %s and %s ownership", s.kind, other.kind)
	s.sentinel.Swap(other.sentinel)
	s.less, other.less = other.less, s.less
	s.size, other.size = other.size, s.size
}

// Release destroys this version of the set. All nodes not shared with other
// versions are disposed of. s must not be used after Release.
func (s *Set[T]) Release() {
	tracer().Debugf("release set of %d elements", s.size)
	s.sentinel.Release()
	s.size = 0
}

func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	first := true
	inorder(s.root(), func(v T) {
		if !first {
			sb.WriteRune(' ')
		}
		first = false
		sb.WriteString(fmt.Sprintf("%v", v))
	})
	sb.WriteRune('}')
	return sb.String()
}

// --- Internals -------------------------------------------------------------

func (s *Set[T]) sentinelNode() *node[T] {
	n := s.sentinel.Get()
	assertThat(n != nil, "use of a released set")
	return n
}

func (s *Set[T]) root() *node[T] {
	return s.sentinelNode().left.Get()
}

// replaceRoot makes newRoot the root of the tree, taking over the handle.
// The previous root is released.
func (s *Set[T]) replaceRoot(newRoot owner.Ref[node[T]]) {
	s.sentinelNode().left.Swap(newRoot)
	newRoot.Release() // holds the previous root now
}

func (s *Set[T]) iterator(n *node[T]) Iterator[T] {
	return Iterator[T]{node: n, sentinel: s.sentinelNode(), less: s.less}
}

func inorder[T any](n *node[T], f func(T)) {
	for n != nil {
		inorder(n.left.Get(), f)
		f(n.val())
		n = n.right.Get()
	}
}
