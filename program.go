package rt

// Program is the minimal descriptor an embedder builds to hand a
// compiled program's entry point to the runtime, per spec.md §6.
type Program struct {
	MainFn NativeFn
}

// RunMain calls program.MainFn(runtime, null-this, 0, null) if present,
// else returns Null, exactly as documented in spec.md §6's
// `run-main(program)` external interface.
func RunMain(rt *Runtime, program *Program) Value {
	if program == nil || program.MainFn == nil {
		return Null()
	}
	return program.MainFn(rt, nil, nil)
}
