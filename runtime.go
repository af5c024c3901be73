package rt

import "time"

// Runtime is the process-wide singleton a compiled program links
// against: the allocation counter, the PRNG/hash seed, the symbol
// table, the integer-box pool and the class registry all live here, as
// documented in spec.md §3 "Runtime".
type Runtime struct {
	alloc   Allocator
	seed    uint32
	symbols *symbolTable
	intpool *intBoxPool
	classes *classRegistry
	cfg     *Config
}

// NewRuntime constructs a runtime primed with the default
// configuration (see NewConfig). Use NewRuntimeWithConfig to override
// tunables such as the symbol bucket count.
func NewRuntime() *Runtime {
	return NewRuntimeWithConfig(NewConfig())
}

// NewRuntimeWithConfig builds a runtime using the supplied tunables.
// Mirrors LCNewRuntime: seeds the hash from wall-clock time, builds the
// symbol table and integer pool, and registers the root "Object"
// class at id 0.
func NewRuntimeWithConfig(cfg *Config) *Runtime {
	rt := &Runtime{
		seed: uint32(time.Now().UnixNano()),
		cfg:  cfg,
	}
	// The runtime struct itself is the documented baseline-1
	// allocation; everything else constructed here is tracked so
	// FreeRuntime can detect a leak at teardown.
	rt.alloc.track()

	rt.symbols = newSymbolTable(rt, cfg.GetInt("symbol.bucket_count"))
	rt.intpool = newIntBoxPool(rt, cfg.GetInt("intpool.size"))
	rt.classes = newClassRegistry(rt)

	return rt
}

// FreeRuntime tears the runtime down: it releases the symbol table,
// the integer pool and the class registry's bookkeeping storage, then
// checks the allocation counter against the baseline-1 established by
// NewRuntime. A mismatch means application code leaked a heap object
// or (more rarely) double-released one; per spec.md §7 this is
// reported and the process exits non-zero.
func FreeRuntime(rt *Runtime) {
	rt.symbols.teardown(rt)
	rt.intpool.teardown(rt)
	rt.classes.teardown(rt)

	if rt.alloc.Live() != 1 {
		abort(ErrLeakDetected, "%d live allocations at teardown", rt.alloc.Live()-1)
		return
	}
}

// Live reports the runtime's current allocation counter, exposed for
// tests and embedders that want to assert a construct/release cycle
// nets to zero without tearing the whole runtime down.
func (rt *Runtime) Live() int64 { return rt.alloc.Live() }
