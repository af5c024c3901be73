package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion_PayloadRoundTrip(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	payload := []Value{Int32(10), Int32(20), Int32(30)}
	v := NewUnionObject(runtime, 2, payload)
	u := v.Obj.(*UnionObject)

	assert.Equal(t, int32(2), u.Discriminant())
	for i, want := range payload {
		assert.Equal(t, want.AsI32(), UnionGet(u, int32(i)).AsI32())
	}

	Release(runtime, v)
}

func TestUnion_PayloadLessVariantIsImmediate(t *testing.T) {
	v := SmallUnion(0)
	assert.Equal(t, TagSmallUnion, v.Tag)
	assert.Nil(t, v.Obj)
}

func TestOption_SomeNoneRoundTrip(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	inner := NewStringFromBytes(runtime, []byte("present"))
	some := Some(runtime, inner)
	assert.True(t, IsSome(some))
	unwrapped := Unwrap(some)
	assert.Equal(t, "present", string(AsUTF8(unwrapped.Obj.(*String))))
	Release(runtime, unwrapped)

	none := None()
	assert.False(t, IsSome(none))
	assert.Nil(t, none.Obj)

	Release(runtime, inner)
	Release(runtime, some)
}
