package owner

// counted is a handle sharing a counter with all other owners of its value.
// Counter and value are dropped together when the count reaches zero.
type counted[T any] struct {
	cnt *int
	ptr *T
}

var _ Ref[int] = (*counted[int])(nil)

func acquireCounted[T any](p *T) *counted[T] {
	if p == nil {
		return &counted[T]{}
	}
	cnt := 1
	return &counted[T]{cnt: &cnt, ptr: p}
}

func (h *counted[T]) Get() *T {
	return h.ptr
}

func (h *counted[T]) Kind() Kind {
	return Counted
}

func (h *counted[T]) IsEmpty() bool {
	return h.ptr == nil
}

func (h *counted[T]) Owners() int {
	if h.cnt == nil {
		return 0
	}
	return *h.cnt
}

func (h *counted[T]) Copy() Ref[T] {
	if h.cnt != nil {
		*h.cnt++
	}
	return &counted[T]{cnt: h.cnt, ptr: h.ptr}
}

func (h *counted[T]) Release() {
	if h.ptr == nil {
		return
	}
	*h.cnt--
	assertThat(*h.cnt >= 0, "share count dropped below zero")
	p := h.ptr
	last := *h.cnt == 0
	h.cnt, h.ptr = nil, nil
	if last {
		dispose(p)
	}
}

func (h *counted[T]) Swap(other Ref[T]) {
	o, ok := other.(*counted[T])
	assertThat(ok, "cannot swap counted handle with %s handle", other.Kind())
	h.cnt, o.cnt = o.cnt, h.cnt
	h.ptr, o.ptr = o.ptr, h.ptr
}

func (h *counted[T]) Assign(other Ref[T]) {
	assign[T](h, other)
}
