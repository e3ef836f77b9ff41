package owner

// linked is a handle without a counter. All owners of the same value are
// chained in an unordered doubly-linked ring (in fact a list without head).
// The owner which finds itself without neighbours when released is the last
// one and disposes of the value.
//
// Handles have to stay at a fixed address, which is why they are always used
// by pointer.
type linked[T any] struct {
	ptr  *T
	prev *linked[T]
	next *linked[T]
}

var _ Ref[int] = (*linked[int])(nil)

func (h *linked[T]) Get() *T {
	return h.ptr
}

func (h *linked[T]) Kind() Kind {
	return Linked
}

func (h *linked[T]) IsEmpty() bool {
	return h.ptr == nil
}

func (h *linked[T]) Owners() int {
	if h.ptr == nil {
		return 0
	}
	n := 1
	for p := h.prev; p != nil; p = p.prev {
		n++
	}
	for p := h.next; p != nil; p = p.next {
		n++
	}
	return n
}

// Copy splices a new handle into the ring, right behind h.
func (h *linked[T]) Copy() Ref[T] {
	if h.ptr == nil {
		return &linked[T]{}
	}
	cp := &linked[T]{ptr: h.ptr, prev: h, next: h.next}
	if h.next != nil {
		h.next.prev = cp
	}
	h.next = cp
	return cp
}

func (h *linked[T]) Release() {
	if h.ptr == nil {
		return
	}
	p := h.ptr
	last := h.prev == nil && h.next == nil
	if h.prev != nil {
		h.prev.next = h.next
	}
	if h.next != nil {
		h.next.prev = h.prev
	}
	h.ptr, h.prev, h.next = nil, nil, nil
	if last {
		dispose(p)
	}
}

// Swap exchanges the positions of h and other in their respective rings.
// Up to four neighbours have to be re-pointed.
func (h *linked[T]) Swap(other Ref[T]) {
	o, ok := other.(*linked[T])
	assertThat(ok, "cannot swap linked handle with %s handle", other.Kind())
	if h == o || h.ptr == o.ptr {
		return // same ring: owners are interchangeable
	}
	if h.prev != nil {
		h.prev.next = o
	}
	if h.next != nil {
		h.next.prev = o
	}
	if o.prev != nil {
		o.prev.next = h
	}
	if o.next != nil {
		o.next.prev = h
	}
	h.ptr, o.ptr = o.ptr, h.ptr
	h.prev, o.prev = o.prev, h.prev
	h.next, o.next = o.next, h.next
}

func (h *linked[T]) Assign(other Ref[T]) {
	assign[T](h, other)
}
