package blazon

import "sync"

// ForwardRef is a deferred type reference: it lets a declaration mention a
// type that is not defined yet at declaration time. The thunk runs once, on
// first read, and the result is cached.
type ForwardRef struct {
	once  sync.Once
	thunk func() any
	value any
}

// Ref wraps a thunk into a forward reference.
//
//	blazon.Ref(func() any { return ClassOf[Tab]() })
func Ref(thunk func() any) *ForwardRef {
	return &ForwardRef{thunk: thunk}
}

// Resolve evaluates the thunk on first call and returns the cached value
// afterwards. Safe for concurrent use.
func (r *ForwardRef) Resolve() any {
	r.once.Do(func() {
		r.value = r.thunk()
		r.thunk = nil
	})
	return r.value
}

// ResolveRef unwraps v if it is a forward reference and returns it unchanged
// otherwise.
func ResolveRef(v any) any {
	if ref, ok := v.(*ForwardRef); ok {
		return ref.Resolve()
	}
	return v
}
