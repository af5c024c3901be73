package rt

// NativeFn is a built-in method or closure body implemented in Go
// rather than compiled bytecode. Compiled code reaches it uniformly
// through Invoke, the same entry point used for user-defined methods.
// this is the invoked lambda itself (nil for a call with no lambda
// receiver, e.g. RunMain's program entry point), passed through so the
// body can index its own captures, per spec.md §4.8.
type NativeFn func(rt *Runtime, this *Lambda, args []Value) Value

// Lambda is a closure: a function together with the environment slots
// it captured at creation time, per spec.md §4.7. Captured values may
// be held directly (by value, for primitives and share-by-reference
// heap types) or via a RefCell when the source language needs mutation
// observed across closures sharing the same binding.
type Lambda struct {
	Header
	fn       NativeFn
	captures []Value
}

func (l *Lambda) header() *Header { return &l.Header }

func (l *Lambda) finalize(rt *Runtime) {
	for _, v := range l.captures {
		Release(rt, v)
	}
}

// NewLambda builds a closure over fn, retaining each captured value.
func NewLambda(rt *Runtime, fn NativeFn, captures []Value) Value {
	owned := make([]Value, len(captures))
	copy(owned, captures)
	for _, v := range owned {
		Retain(v)
	}
	l := &Lambda{fn: fn, captures: owned}
	l.RefCount = 1
	rt.alloc.track()
	return Value{Tag: TagLambda, Obj: l}
}

// CaptureAt returns the value captured at slot i.
func (l *Lambda) CaptureAt(i int) Value {
	if i < 0 || i >= len(l.captures) {
		abort(ErrBoundsError, "capture index %d out of range [0,%d)", i, len(l.captures))
	}
	return l.captures[i]
}

// SetCaptureAt replaces the capture at slot i, retaining the new value
// and releasing the old one. The slot itself is replaced; to write
// through a RefCell-backed capture, use SetCaptureRef.
func SetCaptureAt(rt *Runtime, l *Lambda, i int, v Value) {
	if i < 0 || i >= len(l.captures) {
		abort(ErrBoundsError, "capture index %d out of range [0,%d)", i, len(l.captures))
	}
	Retain(v)
	Release(rt, l.captures[i])
	l.captures[i] = v
}

// Invoke calls l's function, passing l itself as this so the body can
// index its own captures, per spec.md §4.8.
func Invoke(rt *Runtime, l *Lambda, args []Value) Value {
	return l.fn(rt, l, args)
}

// captureCell resolves the ref-cell held at capture slot i, aborting
// with InvokeOnPrimitive if that slot isn't a ref-cell.
func (l *Lambda) captureCell(i int) *RefCell {
	v := l.CaptureAt(i)
	c, ok := v.Obj.(*RefCell)
	if !ok {
		abort(ErrInvokeOnPrimitive, "capture %d is not a ref-cell (tag %s)", i, v.Tag)
	}
	return c
}

// GetCaptureRef dereferences the ref-cell captured at slot i and
// returns its current value, per the "*-ref" capture accessors
// documented in spec.md §4.8/§6.
func (l *Lambda) GetCaptureRef(i int) Value {
	return l.captureCell(i).Get()
}

// SetCaptureRef dereferences the ref-cell captured at slot i and sets
// its value, retaining v and releasing the cell's previous occupant.
func SetCaptureRef(rt *Runtime, l *Lambda, i int, v Value) {
	Set(rt, l.captureCell(i), v)
}

// InvokeValue resolves v as a callable and invokes it with args.
// Invoking a non-callable value is an InvokeOnPrimitive error.
func InvokeValue(rt *Runtime, v Value, args []Value) Value {
	if v.Tag != TagLambda {
		abort(ErrInvokeOnPrimitive, "invoke called on non-callable value with tag %s", v.Tag)
	}
	return Invoke(rt, v.Obj.(*Lambda), args)
}
