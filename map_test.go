package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_OrderingAndPromotion(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	v := NewMap(runtime, TagI32, 0)
	m := v.Obj.(*Map)

	letters := "abcdefgh"
	for i := 0; i < 8; i++ {
		val := NewStringFromBytes(runtime, []byte{letters[i]})
		m.Set(runtime, Int32(int32(i+1)), val)
		Release(runtime, val)
	}

	assert.True(t, m.IsLarge())
	assert.Equal(t, int32(8), m.Count())

	got := m.Get(runtime, Int32(5))
	assert.True(t, IsSome(got))
	gotInner := Unwrap(got)
	assert.Equal(t, "e", string(AsUTF8(gotInner.Obj.(*String))))
	Release(runtime, gotInner)
	Release(runtime, got)

	removed := m.Remove(runtime, Int32(5))
	assert.True(t, IsSome(removed))
	removedInner := Unwrap(removed)
	assert.Equal(t, "e", string(AsUTF8(removedInner.Obj.(*String))))
	Release(runtime, removedInner)
	Release(runtime, removed)

	assert.False(t, IsSome(m.Get(runtime, Int32(5))))

	var order []int32
	for tpl := m.head; tpl != nil; tpl = tpl.next {
		order = append(order, tpl.key.AsI32())
	}
	assert.Equal(t, []int32{1, 2, 3, 4, 6, 7, 8}, order)

	Release(runtime, v)
}

func TestMap_InitSizeAboveThresholdStartsLarge(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	v := NewMap(runtime, TagI32, 16)
	m := v.Obj.(*Map)
	assert.True(t, m.IsLarge())

	val := NewStringFromBytes(runtime, []byte("x"))
	m.Set(runtime, Int32(1), val)
	Release(runtime, val)
	assert.True(t, m.IsLarge())

	Release(runtime, v)
}

func TestMap_UpdateExistingKeyDoesNotReorderOrGrowCount(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	v := NewMap(runtime, TagI32, 0)
	m := v.Obj.(*Map)

	first := NewStringFromBytes(runtime, []byte("first"))
	m.Set(runtime, Int32(1), first)
	Release(runtime, first)

	second := NewStringFromBytes(runtime, []byte("second"))
	m.Set(runtime, Int32(1), second)
	Release(runtime, second)

	assert.Equal(t, int32(1), m.Count())
	got := m.Get(runtime, Int32(1))
	gotInner := Unwrap(got)
	assert.Equal(t, "second", string(AsUTF8(gotInner.Obj.(*String))))
	Release(runtime, gotInner)
	Release(runtime, got)

	Release(runtime, v)
}

func TestMap_ConsistencyAtScale(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	baseline := runtime.Live()

	v := NewMap(runtime, TagI32, 16)
	m := v.Obj.(*Map)

	for i := 0; i < 100; i++ {
		val := Int32(int32(i * 2))
		m.Set(runtime, Int32(int32(i)), val)
	}
	for i := 0; i < 100; i++ {
		removed := m.Remove(runtime, Int32(int32(i)))
		assert.True(t, IsSome(removed))
		Release(runtime, removed)
	}

	assert.Equal(t, int32(0), m.Count())
	Release(runtime, v)
	assert.Equal(t, baseline, runtime.Live())
}

func TestMap_BooleanKeyedNeverPromotes(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	v := NewMap(runtime, TagBool, 0)
	m := v.Obj.(*Map)

	a := Int32(1)
	b := Int32(2)
	m.Set(runtime, Bool(true), a)
	m.Set(runtime, Bool(false), b)
	assert.False(t, m.IsLarge())

	Release(runtime, v)
}
