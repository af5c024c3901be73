package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassRegistry_RootIsObject(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	assert.Equal(t, "Object", runtime.classes.descriptor(0).Name)
}

func TestClassRegistry_IdAssignmentIsDenseAndMonotonic(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	a := runtime.DefineClass("A")
	b := runtime.DefineClass("B")
	c := runtime.DefineClass("C")

	assert.Equal(t, int32(1), a)
	assert.Equal(t, int32(2), b)
	assert.Equal(t, int32(3), c)
}

func TestInvokeByName_DispatchesOwnMethod(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	greeter := runtime.DefineClass("Greeter")
	runtime.DefineClassMethod(greeter, "greet", func(r *Runtime, this *Lambda, args []Value) Value {
		return NewStringFromBytes(r, []byte("hello"))
	})

	obj := InitObject(runtime, greeter, 0)
	result := InvokeByName(runtime, obj, "greet", nil)
	assert.Equal(t, "hello", string(AsUTF8(result.Obj.(*String))))

	Release(runtime, result)
	Release(runtime, obj)
}

func TestInvokeByName_DoesNotFallBackToOtherClasses(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	other := runtime.DefineClass("Other")
	runtime.DefineClassMethod(other, "greet", func(r *Runtime, this *Lambda, args []Value) Value {
		return NewStringFromBytes(r, []byte("unreachable"))
	})
	plain := runtime.DefineClass("Plain")

	_, ok := runtime.classes.resolveMethod(plain, "greet")
	assert.False(t, ok, "a method defined on one class must not resolve on an unrelated class")
}

func TestInvokeByName_MissingMethodAborts(t *testing.T) {
	t.Skip("MissingMethod triggers a fatal process abort by design; not exercised inline")
}
