package rt

import "bytes"

// maxStringLen is the 2^30-1 code-unit ceiling from spec.md §4.3.
const maxStringLen = 1<<30 - 1

// String is an immutable sequence of code units stored either as a
// byte-narrow representation (one code unit per byte, always < 0x100)
// or an on-demand widened 16-bit representation (the UTF-16 code-unit
// view, with surrogate pairs for code points >= 0x10000). Once built,
// a String's representation and contents never change.
type String struct {
	Header
	wide    bool
	length  int
	hash    uint32 // 0 means unset
	narrow  []byte
	wideBuf []uint16
}

func (s *String) header() *Header   { return &s.Header }
func (s *String) finalize(*Runtime) {} // strings own no children

func newNarrowString(rt *Runtime, data []byte) *String {
	s := &String{narrow: data, length: len(data)}
	s.RefCount = 1
	rt.alloc.track()
	return s
}

func newWideString(rt *Runtime, data []uint16) *String {
	s := &String{wide: true, wideBuf: data, length: len(data)}
	s.RefCount = 1
	rt.alloc.track()
	return s
}

// Length reports code units of the active representation.
func (s *String) Length() int { return s.length }

// IsWide reports whether the string is in its widened 16-bit form.
func (s *String) IsWide() bool { return s.wide }

// CodeUnitAt returns the code unit at index i, bounds-checked against
// Length; out-of-range access is a BoundsError per spec.md §7.
func (s *String) CodeUnitAt(i int) uint16 {
	if i < 0 || i >= s.length {
		abort(ErrBoundsError, "string index %d out of range [0,%d)", i, s.length)
	}
	if s.wide {
		return s.wideBuf[i]
	}
	return uint16(s.narrow[i])
}

func widenBytes(b []byte) []uint16 {
	w := make([]uint16, len(b))
	for i, c := range b {
		w[i] = uint16(c)
	}
	return w
}

// StringEqual reports whether a and b hold identical code-point
// sequences, independent of which one is narrow and which is wide:
// narrow strings can only ever hold code points < 0x100 with one code
// unit per code point, so widening the narrow side for comparison is
// sufficient to recover code-point equality in every reachable case.
func StringEqual(a, b *String) bool {
	if a == b {
		return true
	}
	if a.length != b.length {
		return false
	}
	if a.hash != 0 && b.hash != 0 && a.hash != b.hash {
		return false
	}
	if a.wide == b.wide {
		if a.wide {
			return equalUint16(a.wideBuf, b.wideBuf)
		}
		return bytes.Equal(a.narrow, b.narrow)
	}
	var aw, bw []uint16
	if a.wide {
		aw = a.wideBuf
	} else {
		aw = widenBytes(a.narrow)
	}
	if b.wide {
		bw = b.wideBuf
	} else {
		bw = widenBytes(b.narrow)
	}
	return equalUint16(aw, bw)
}

func equalUint16(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// StringCompare returns -1, 0 or 1 for a<b, a==b, a>b, lexicographic
// over code units. When widths differ the narrow side is widened
// through a temporary buffer before comparing, per spec.md §4.3.
func StringCompare(a, b *String) int {
	var au, bu []uint16
	if a.wide {
		au = a.wideBuf
	} else {
		au = widenBytes(a.narrow)
	}
	if b.wide {
		bu = b.wideBuf
	} else {
		bu = widenBytes(b.narrow)
	}
	n := len(au)
	if len(bu) < n {
		n = len(bu)
	}
	for i := 0; i < n; i++ {
		if au[i] != bu[i] {
			if au[i] < bu[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(au) < len(bu):
		return -1
	case len(au) > len(bu):
		return 1
	default:
		return 0
	}
}

// stringHash computes the hash lazily on first observation and
// memoizes it on the string, per spec.md §4.3.
func stringHash(s *String, seed uint32) uint32 {
	if s.hash != 0 {
		return s.hash
	}
	if s.wide {
		s.hash = hashWide(s.wideBuf, seed)
	} else {
		s.hash = hashBytes(s.narrow, seed)
	}
	return s.hash
}

// Concat produces a new string holding a's code units followed by b's.
// The result stays narrow iff both operands are narrow.
func Concat(rt *Runtime, a, b *String) *String {
	if !a.wide && !b.wide {
		buf := make([]byte, 0, a.length+b.length)
		buf = append(buf, a.narrow...)
		buf = append(buf, b.narrow...)
		return newNarrowString(rt, buf)
	}
	buf := make([]uint16, 0, a.length+b.length)
	buf = appendWideUnits(buf, a)
	buf = appendWideUnits(buf, b)
	return newWideString(rt, buf)
}

func appendWideUnits(buf []uint16, s *String) []uint16 {
	if s.wide {
		return append(buf, s.wideBuf...)
	}
	for _, c := range s.narrow {
		buf = append(buf, uint16(c))
	}
	return buf
}

// Slice returns the code units in [begin, end), clamped to [0, length];
// begin >= end yields the empty string. A wide slice properly
// allocates its own backing storage (spec.md §9, open question 1: the
// original implementation memcpy'd into a block it never allocated).
func Slice(rt *Runtime, s *String, begin, end int) *String {
	if begin < 0 {
		begin = 0
	}
	if end > s.length {
		end = s.length
	}
	if begin >= end {
		return newNarrowString(rt, nil)
	}
	if s.wide {
		buf := make([]uint16, end-begin)
		copy(buf, s.wideBuf[begin:end])
		return newWideString(rt, buf)
	}
	buf := make([]byte, end-begin)
	copy(buf, s.narrow[begin:end])
	return newNarrowString(rt, buf)
}

// NewStringFromBytes builds a string from a UTF-8 byte sequence.
func NewStringFromBytes(rt *Runtime, data []byte) Value {
	return NewStringFromBytesLen(rt, data, len(data))
}

// NewStringFromBytesLen builds a string from the first length bytes of
// data, decoding UTF-8 per spec.md §4.3.
func NewStringFromBytesLen(rt *Runtime, data []byte, length int) Value {
	return Value{Tag: TagString, Obj: decodeStringFromUTF8(rt, data[:length])}
}

// decodeStringFromUTF8 scans for a leading pure-ASCII prefix; if the
// entire input is ASCII it shortcuts to a direct narrow copy.
// Otherwise the prefix is written, the builder is forced wide (zero-
// extending the prefix, per the builder's own widen semantics), and
// the remaining bytes are decoded one code point at a time. Code
// points >= 0x10000 are emitted as a UTF-16 surrogate pair. An
// ill-formed byte run emits U+FFFD and is skipped.
func decodeStringFromUTF8(rt *Runtime, data []byte) *String {
	n := len(data)
	i := 0
	for i < n && data[i] < 0x80 {
		i++
	}
	if i == n {
		owned := make([]byte, n)
		copy(owned, data)
		return newNarrowString(rt, owned)
	}

	b := newStringBuilder(rt, n)
	for j := 0; j < i; j++ {
		b.writeByte(data[j])
	}
	b.widen()

	p := i
	for p < n {
		if data[p] < 0x80 {
			b.writeCodeUnit(uint16(data[p]))
			p++
			continue
		}
		cp, adv := decodeUTF8(data[p:])
		if cp == utf8BadRune {
			cp = replacementRune
			p++
			for p < n && data[p] >= 0x80 && data[p] < 0xc0 {
				p++
			}
		} else {
			p += adv
		}
		if cp >= 0x10000 {
			hi, lo := surrogatePair(cp)
			b.writeCodeUnit(hi)
			b.writeCodeUnit(lo)
		} else {
			b.writeCodeUnit(uint16(cp))
		}
	}
	return b.finish()
}

func surrogatePair(cp rune) (uint16, uint16) {
	v := uint32(cp) - 0x10000
	hi := uint16(0xd800 + (v >> 10))
	lo := uint16(0xdc00 + (v & 0x3ff))
	return hi, lo
}

// AsUTF8 re-encodes the string's code points back to UTF-8 bytes; used
// by the round-trip testable property in spec.md §8. Lone surrogates
// (which cannot arise from decodeStringFromUTF8, but could from direct
// code-unit construction) are encoded as their raw 16-bit value.
func AsUTF8(s *String) []byte {
	var out []byte
	if !s.wide {
		for _, c := range s.narrow {
			out, _ = encodeUTF8(out, rune(c))
		}
		return out
	}
	units := s.wideBuf
	for i := 0; i < len(units); i++ {
		c := units[i]
		if c >= 0xd800 && c <= 0xdbff && i+1 < len(units) && units[i+1] >= 0xdc00 && units[i+1] <= 0xdfff {
			hi, lo := uint32(c), uint32(units[i+1])
			cp := rune(((hi-0xd800)<<10 | (lo - 0xdc00)) + 0x10000)
			out, _ = encodeUTF8(out, cp)
			i++
			continue
		}
		out, _ = encodeUTF8(out, rune(c))
	}
	return out
}
