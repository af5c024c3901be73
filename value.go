package rt

// Tag identifies the shape of a Value: either an immediate payload
// carried inline, or a pointer to a heap object participating in
// reference counting.
type Tag uint8

// Tags below heapTagBoundary are immediates: copying them is a raw
// struct copy with no refcount effect. Tags at or above the boundary
// carry a heap pointer in Value.Obj.
const (
	TagNull Tag = iota
	TagBool
	TagI32
	TagF32
	TagChar
	TagSmallUnion

	heapTagBoundary

	TagString = heapTagBoundary + iota - 6
	TagSymbol
	TagBoxedI64
	TagBoxedU64
	TagBoxedF64
	TagArray
	TagMap
	TagRefCell
	TagLambda
	TagUnionObject
	TagClassObject
	TagClassObjectMeta
)

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "unknown"
}

var tagNames = map[Tag]string{
	TagNull:            "null",
	TagBool:            "bool",
	TagI32:             "i32",
	TagF32:             "f32",
	TagChar:            "char",
	TagSmallUnion:      "small-union",
	TagString:          "string",
	TagSymbol:          "symbol",
	TagBoxedI64:        "boxed-i64",
	TagBoxedU64:        "boxed-u64",
	TagBoxedF64:        "boxed-f64",
	TagArray:           "array",
	TagMap:             "map",
	TagRefCell:         "ref-cell",
	TagLambda:          "lambda",
	TagUnionObject:     "union-object",
	TagClassObject:     "class-object",
	TagClassObjectMeta: "class-object-meta",
}

// IsHeap reports whether a Tag carries a pointer that must be
// retained/released. The enumeration is arranged so this is a single
// comparison, per the documented value ABI.
func (t Tag) IsHeap() bool {
	return t >= heapTagBoundary
}

// object is implemented by every heap-allocated type. header returns
// the embedded Header so the generic retain/release dispatch never
// needs a type switch over concrete struct types.
type object interface {
	header() *Header
	finalize(rt *Runtime)
}

// Value is the uniform tagged pair that flows through the calling
// convention: a tag, the immediate payloads (I32, shared by i32/char/
// bool/small-union, and F32), and an object pointer used only by the
// pointer-carrying tags. Copying a Value is a raw copy and never
// touches a refcount; callers retain/release explicitly as ownership
// changes hands.
type Value struct {
	Tag Tag
	I32 int32
	F32 float32
	Obj object
}

func Null() Value { return Value{Tag: TagNull} }

func Bool(b bool) Value {
	if b {
		return Value{Tag: TagBool, I32: 1}
	}
	return Value{Tag: TagBool, I32: 0}
}

func Int32(v int32) Value     { return Value{Tag: TagI32, I32: v} }
func Float32(v float32) Value { return Value{Tag: TagF32, F32: v} }
func Char(r rune) Value       { return Value{Tag: TagChar, I32: int32(r)} }

// SmallUnion constructs the immediate form of a payload-less union
// variant: the discriminant tag is carried inline and never heap
// allocated.
func SmallUnion(discriminant int32) Value {
	return Value{Tag: TagSmallUnion, I32: discriminant}
}

func (v Value) AsBool() bool   { return v.I32 != 0 }
func (v Value) AsI32() int32   { return v.I32 }
func (v Value) AsF32() float32 { return v.F32 }
func (v Value) AsChar() rune   { return rune(v.I32) }

// TagOf returns the discriminant tag of a union value: the inline tag
// for a payload-less (immediate) variant, or the heap tag stored on a
// *UnionObject for a variant carrying a payload. This single entry
// point is what the emitter uses regardless of representation.
func TagOf(v Value) int32 {
	switch v.Tag {
	case TagSmallUnion:
		return v.I32
	case TagUnionObject:
		return v.Obj.(*UnionObject).discriminant
	default:
		abort(ErrInvokeOnPrimitive, "tag-of called on value with tag %s", v.Tag)
		return 0
	}
}

func (v Value) header() *Header {
	if !v.Tag.IsHeap() || v.Obj == nil {
		return nil
	}
	return v.Obj.header()
}

// Equal compares two values for the restricted set of types the
// runtime needs structural equality for (map keys, union round trips).
// Heap objects outside that set fall back to pointer identity.
func Equal(rt *Runtime, a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNull:
		return true
	case TagBool, TagI32, TagChar, TagSmallUnion:
		return a.I32 == b.I32
	case TagF32:
		return a.F32 == b.F32
	case TagString:
		return StringEqual(a.Obj.(*String), b.Obj.(*String))
	default:
		return a.Obj == b.Obj
	}
}
