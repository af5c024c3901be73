package rt

// noGC is the sentinel reference count that marks an object as
// immortal: retain and release become no-ops for its lifetime. Symbols
// and integer-pool boxes are created with this count and never freed
// until runtime teardown.
const noGC int64 = -1

// Header is embedded as the first field of every heap object. It
// carries the reference count and the class id used by dynamic
// dispatch; class ids for non-class objects (string, array, map, ...)
// are left at zero, which is reserved for the root "Object" class but
// otherwise unused by those types.
type Header struct {
	RefCount int64
	ClassID  int32
}

func (h *Header) markImmortal() { h.RefCount = noGC }
func (h *Header) isImmortal() bool { return h.RefCount == noGC }

// Retain increments the reference count of a mortal heap value.
// Retaining a primitive or an immortal object is a no-op.
func Retain(v Value) {
	if !v.Tag.IsHeap() || v.Obj == nil {
		return
	}
	h := v.Obj.header()
	if h.isImmortal() {
		return
	}
	h.RefCount++
}

// Release decrements the reference count of a mortal heap value,
// dispatching to the type-specific finalizer and freeing the backing
// allocation when the count reaches zero. Releasing a primitive or an
// immortal object is a no-op. A pointer-tagged value with no object
// payload is treated as the UnknownTag error from spec.md §7.
func Release(rt *Runtime, v Value) {
	if !v.Tag.IsHeap() {
		return
	}
	if v.Obj == nil {
		abort(ErrUnknownTag, "release saw pointer tag %s with no object payload", v.Tag)
		return
	}
	h := v.Obj.header()
	if h.isImmortal() {
		return
	}
	h.RefCount--
	if h.RefCount == 0 {
		v.Obj.finalize(rt)
		rt.alloc.untrack()
	}
}
