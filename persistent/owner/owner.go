package owner

// Ref is a shared ownership handle for a value of type T.
//
// A Ref is either empty or owns its value together with all the handles it has
// been copied from or to. Get never transfers ownership.
type Ref[T any] interface {
	Get() *T             // the owned value, or nil for an empty handle
	Copy() Ref[T]        // a new owner of the same value
	Release()            // drop ownership; disposes of the value if this was the last owner
	Swap(other Ref[T])   // exchange targets with another handle of the same kind
	Assign(other Ref[T]) // become an owner of other's value, dropping the current one
	IsEmpty() bool
	Owners() int // number of handles sharing the value, 0 if empty
	Kind() Kind
}

// Disposer may be implemented by values which want to be notified when their
// last owner is gone. Dispose is called exactly once per acquired value.
type Disposer interface {
	Dispose()
}

// Kind selects a flavour of ownership handle.
type Kind uint8

const (
	Counted Kind = iota // reference counting with a separate counter
	Linked              // owners linked in a sibling ring
)

func (k Kind) String() string {
	switch k {
	case Counted:
		return "counted"
	case Linked:
		return "linked"
	}
	return "unknown"
}

// Acquire makes a fresh handle of the given kind the single owner of p.
// If p is nil, an empty handle is returned.
//
// p must not be owned by any other handle.
func Acquire[T any](kind Kind, p *T) Ref[T] {
	switch kind {
	case Counted:
		return acquireCounted(p)
	case Linked:
		return &linked[T]{ptr: p}
	}
	panic("owner: unknown kind of ownership handle")
}

// Empty returns an empty handle of the given kind.
func Empty[T any](kind Kind) Ref[T] {
	return Acquire[T](kind, nil)
}

// assign implements copy-and-swap for all kinds of handles.
func assign[T any](h, other Ref[T]) {
	cp := other.Copy()
	h.Swap(cp)
	cp.Release() // now holds h's former value
}

func dispose[T any](p *T) {
	tracer().Debugf("disposing of %T", p)
	if d, ok := any(p).(Disposer); ok {
		d.Dispose()
	}
}
