package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxI64_InRangeReturnsSharedImmortalBox(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	a := BoxI64(runtime, 5)
	b := BoxI64(runtime, 5)
	assert.Same(t, a.Obj, b.Obj)
	assert.True(t, a.Obj.header().isImmortal())

	Retain(a)
	Release(runtime, a)
	Release(runtime, a) // immortal: retain/release are net no-ops
}

func TestBoxI64_OutOfRangeAllocatesMortalBox(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	baseline := runtime.Live()
	far := runtime.intpool.high + 10_000

	v := BoxI64(runtime, far)
	assert.False(t, v.Obj.header().isImmortal())
	assert.Equal(t, far, v.Obj.(*BoxedI64).Value())

	Release(runtime, v)
	assert.Equal(t, baseline, runtime.Live())
}
