package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMain_InvokesMainFnWithNullThisAndNoArgs(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	program := &Program{
		MainFn: func(r *Runtime, this *Lambda, args []Value) Value {
			assert.Nil(t, this)
			assert.Nil(t, args)
			return Int32(42)
		},
	}

	result := RunMain(runtime, program)
	assert.Equal(t, int32(42), result.AsI32())
}

func TestRunMain_NoEntryPointReturnsNull(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	assert.Equal(t, Null(), RunMain(runtime, &Program{}))
	assert.Equal(t, Null(), RunMain(runtime, nil))
}
