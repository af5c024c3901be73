package rt

// UnionObject is the heap form of a tagged-union value: a discriminant
// plus zero-or-more owned payload slots, per spec.md §4.9. A
// payload-less variant never reaches this type — it's represented
// inline as a SmallUnion immediate instead.
//
// (Open question 7: the documented source stamped a union object's
// header with a string type tag rather than its own; this
// implementation never conflates the two because dispatch here goes
// through the object interface, not a header-carried type tag.)
type UnionObject struct {
	Header
	discriminant int32
	payload      []Value
}

func (u *UnionObject) header() *Header { return &u.Header }

func (u *UnionObject) finalize(rt *Runtime) {
	for _, v := range u.payload {
		Release(rt, v)
	}
}

// NewUnionObject retains each payload value and wraps {discriminant,
// payload} as a heap union object.
func NewUnionObject(rt *Runtime, discriminant int32, payload []Value) Value {
	owned := make([]Value, len(payload))
	copy(owned, payload)
	for _, v := range owned {
		Retain(v)
	}
	u := &UnionObject{discriminant: discriminant, payload: owned}
	u.RefCount = 1
	rt.alloc.track()
	return Value{Tag: TagUnionObject, Obj: u}
}

// Discriminant returns the variant tag.
func (u *UnionObject) Discriminant() int32 { return u.discriminant }

// UnionGet returns a retained copy of payload slot i, bounds-checked
// against the payload's length. The caller owns the returned
// reference and must release it independently of the union object,
// per spec.md §4.9.
func UnionGet(u *UnionObject, i int32) Value {
	if i < 0 || int(i) >= len(u.payload) {
		abort(ErrBoundsError, "union payload index %d out of range [0,%d)", i, len(u.payload))
	}
	v := u.payload[i]
	Retain(v)
	return v
}

// discriminantNone and discriminantSome are the two variants of the
// Option-like tagged union the map's get/remove operations return, per
// spec.md §4.11 and §7.
const (
	discriminantNone int32 = 0
	discriminantSome int32 = 1
)

// Some wraps v as the present-value variant of an option result.
func Some(rt *Runtime, v Value) Value {
	return NewUnionObject(rt, discriminantSome, []Value{v})
}

// None is the absent-value variant of an option result; payload-less
// variants live entirely as an immediate, never heap-allocated.
func None() Value {
	return SmallUnion(discriminantNone)
}

// IsSome reports whether an option result carries a value.
func IsSome(v Value) bool {
	return TagOf(v) == discriminantSome
}

// Unwrap returns the payload of a Some result; callers must check
// IsSome first.
func Unwrap(v Value) Value {
	return UnionGet(v.Obj.(*UnionObject), 0)
}
