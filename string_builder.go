package rt

// stringBuilder accumulates code units for NewStringFromBytesLen's
// UTF-8 decoder. It starts narrow and widens in place the first
// time a unit >= 0x100 is written, or when forced via widen(); once
// wide it never narrows back, per spec.md §4.3.
type stringBuilder struct {
	rt      *Runtime
	wide    bool
	length  int
	cap     int
	narrow  []byte
	wideBuf []uint16
}

func newStringBuilder(rt *Runtime, sizeHint int) *stringBuilder {
	c := sizeHint
	if c < 8 {
		c = 8
	}
	return &stringBuilder{rt: rt, cap: c, narrow: make([]byte, 0, c)}
}

// ensure grows the active buffer so at least extra more units can be
// appended, following the max(requested, current*1.5) growth policy,
// capped at maxStringLen.
func (b *stringBuilder) ensure(extra int) {
	need := b.length + extra
	if need <= b.cap {
		return
	}
	if need > maxStringLen {
		abort(ErrTooLong, "string length %d exceeds maximum %d", need, maxStringLen)
	}
	newCap := reallocGrow(b.cap, need, maxStringLen)
	b.cap = newCap
	if b.wide {
		grown := make([]uint16, len(b.wideBuf), newCap)
		copy(grown, b.wideBuf)
		b.wideBuf = grown
	} else {
		grown := make([]byte, len(b.narrow), newCap)
		copy(grown, b.narrow)
		b.narrow = grown
	}
}

// widen converts the buffer to its 16-bit form, zero-extending every
// code unit written so far. A no-op if already wide.
func (b *stringBuilder) widen() {
	if b.wide {
		return
	}
	grown := make([]uint16, len(b.narrow), b.cap)
	for i, c := range b.narrow {
		grown[i] = uint16(c)
	}
	b.wideBuf = grown
	b.wide = true
}

func (b *stringBuilder) writeByte(c byte) {
	b.ensure(1)
	if b.wide {
		b.wideBuf = append(b.wideBuf, uint16(c))
	} else {
		b.narrow = append(b.narrow, c)
	}
	b.length++
}

// writeCodeUnit appends c, forcing a widen first if the builder is
// still narrow and c doesn't fit in a byte.
func (b *stringBuilder) writeCodeUnit(c uint16) {
	if !b.wide && c >= 0x100 {
		b.widen()
	}
	b.ensure(1)
	if b.wide {
		b.wideBuf = append(b.wideBuf, c)
	} else {
		b.narrow = append(b.narrow, byte(c))
	}
	b.length++
}

// finish right-sizes the buffer and transfers ownership to a new
// immutable String.
func (b *stringBuilder) finish() *String {
	if b.length == 0 {
		return newNarrowString(b.rt, nil)
	}
	if b.wide {
		buf := make([]uint16, b.length)
		copy(buf, b.wideBuf[:b.length])
		return newWideString(b.rt, buf)
	}
	buf := make([]byte, b.length)
	copy(buf, b.narrow[:b.length])
	return newNarrowString(b.rt, buf)
}
