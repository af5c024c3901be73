package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntime_FreeRuntimeDoesNotLeakOnBalancedUse(t *testing.T) {
	runtime := NewRuntime()
	v := NewStringFromBytes(runtime, []byte("temp"))
	Release(runtime, v)
	FreeRuntime(runtime) // should not report a leak
}

func TestRuntime_RetainReleaseRoundTripsRefcount(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	v := NewStringFromBytes(runtime, []byte("mortal"))
	s := v.Obj.(*String)

	before := s.RefCount
	Retain(v)
	Release(runtime, v)
	assert.Equal(t, before, s.RefCount)

	Release(runtime, v)
}

func TestRuntime_ConstructNRetainsNPlus1ReleasesFreesOnce(t *testing.T) {
	runtime := NewRuntime()
	defer FreeRuntime(runtime)

	baseline := runtime.Live()
	v := NewStringFromBytes(runtime, []byte("counted"))

	const n = 5
	for i := 0; i < n; i++ {
		Retain(v)
	}
	for i := 0; i < n+1; i++ {
		Release(runtime, v)
	}

	assert.Equal(t, baseline, runtime.Live())
}

func TestRuntime_CustomConfigOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	cfg.SetInt("symbol.bucket_count", 4)
	cfg.SetInt("intpool.size", 16)

	runtime := NewRuntimeWithConfig(cfg)
	defer FreeRuntime(runtime)

	assert.Equal(t, 4, len(runtime.symbols.buckets))
	assert.Equal(t, 16, len(runtime.intpool.boxes))
}
