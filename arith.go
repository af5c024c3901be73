package rt

// ArithOp enumerates the operators the in-place update helper
// supports, per spec.md §4.11 "Supported arithmetic on immediates".
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpOr
	OpXor
	OpAnd
)

// Update applies op in place to the value at target, combining it with
// rhs. Integer ops (all ten) apply to TagI32 operands; only the four
// arithmetic ops apply to TagF32. When target holds a ref-cell, the
// update operates on the cell's inner value. Division by zero, a shift
// amount outside [0,31], and an unsupported float operator are fatal,
// per spec.md §7's ArithUnsupported kind.
func Update(rt *Runtime, target *Value, op ArithOp, rhs Value) {
	if target.Tag == TagRefCell {
		cell := target.Obj.(*RefCell)
		v := cell.inner
		updateImmediate(&v, op, rhs)
		Set(rt, cell, v)
		return
	}
	updateImmediate(target, op, rhs)
}

func updateImmediate(target *Value, op ArithOp, rhs Value) {
	switch target.Tag {
	case TagI32:
		target.I32 = applyI32(op, target.I32, rhs.AsI32())
	case TagF32:
		target.F32 = applyF32(op, target.F32, rhs.AsF32())
	default:
		abort(ErrArithUnsupported, "arithmetic update on unsupported tag %s", target.Tag)
	}
}

func applyI32(op ArithOp, a, b int32) int32 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			abort(ErrArithUnsupported, "integer division by zero")
		}
		return a / b
	case OpMod:
		if b == 0 {
			abort(ErrArithUnsupported, "integer modulo by zero")
		}
		return a % b
	case OpShl:
		checkShiftAmount(b)
		return a << uint32(b)
	case OpShr:
		checkShiftAmount(b)
		return a >> uint32(b)
	case OpOr:
		return a | b
	case OpXor:
		return a ^ b
	case OpAnd:
		return a & b
	default:
		abort(ErrArithUnsupported, "operator %d not supported for i32", op)
		return 0
	}
}

func checkShiftAmount(n int32) {
	if n < 0 || n > 31 {
		abort(ErrArithUnsupported, "shift amount %d outside [0,31]", n)
	}
}

func applyF32(op ArithOp, a, b float32) float32 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			abort(ErrArithUnsupported, "float division by zero")
		}
		return a / b
	default:
		abort(ErrArithUnsupported, "operator %d not supported for f32", op)
		return 0
	}
}
