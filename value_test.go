package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_IsHeapBoundary(t *testing.T) {
	for _, tag := range []Tag{TagNull, TagBool, TagI32, TagF32, TagChar, TagSmallUnion} {
		assert.False(t, tag.IsHeap(), "tag %s should be an immediate", tag)
	}
	for _, tag := range []Tag{TagString, TagSymbol, TagBoxedI64, TagArray, TagMap, TagRefCell, TagLambda, TagUnionObject, TagClassObject} {
		assert.True(t, tag.IsHeap(), "tag %s should carry a pointer", tag)
	}
}

func TestRetainRelease_PrimitiveIsNoOp(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	v := Int32(42)
	Retain(v)
	Release(runtime, v)
	Release(runtime, v) // safe: primitives never touch a refcount
}

func TestValue_ConstructorsRoundTrip(t *testing.T) {
	assert.Equal(t, int32(1), Bool(true).I32)
	assert.Equal(t, int32(0), Bool(false).I32)
	assert.True(t, Bool(true).AsBool())
	assert.False(t, Bool(false).AsBool())
	assert.Equal(t, int32(7), Int32(7).AsI32())
	assert.Equal(t, float32(1.5), Float32(1.5).AsF32())
	assert.Equal(t, 'z', Char('z').AsChar())
	assert.Equal(t, TagNull, Null().Tag)
}

func TestEqual_StringIgnoresWidthAndPointerIdentityForOthers(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	a := NewStringFromBytes(runtime, []byte("abc"))
	b := newWideString(runtime, []uint16{'a', 'b', 'c'})
	assert.True(t, Equal(runtime, a, Value{Tag: TagString, Obj: b}))

	arr1 := NewArray(runtime)
	arr2 := NewArray(runtime)
	assert.False(t, Equal(runtime, arr1, arr2))
	assert.True(t, Equal(runtime, arr1, arr1))

	Release(runtime, a)
	Release(runtime, Value{Tag: TagString, Obj: b})
	Release(runtime, arr1)
	Release(runtime, arr2)
}

func TestTagOf_ImmediateAndHeapUnion(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	assert.Equal(t, int32(3), TagOf(SmallUnion(3)))

	u := NewUnionObject(runtime, 5, []Value{Int32(1)})
	assert.Equal(t, int32(5), TagOf(u))

	Release(runtime, u)
}
