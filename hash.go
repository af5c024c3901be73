package rt

// hashBytes implements the narrow-string / symbol hash from spec.md
// §4.3: h = (...(((seed*263)+u0)*263+u1)...) folded over 8-bit code
// units.
func hashBytes(b []byte, seed uint32) uint32 {
	h := seed
	for _, c := range b {
		h = h*263 + uint32(c)
	}
	return h
}

// hashWide is the same recurrence over 16-bit code units, used for the
// wide string representation.
func hashWide(units []uint16, seed uint32) uint32 {
	h := seed
	for _, c := range units {
		h = h*263 + uint32(c)
	}
	return h
}

// hashInt32 hashes an immediate used as a map key (bool/i32/char all
// share this recurrence, seeded the same way as strings).
func hashInt32(v int32, seed uint32) uint32 {
	return seed*263 + uint32(uint32(v))
}

// valueHash computes the hash used by the map's large-mode buckets.
// Only hashable key types (bool, i32, char, string) are ever passed
// here; the map's key type tag is validated at construction.
func valueHash(rt *Runtime, v Value) uint32 {
	switch v.Tag {
	case TagBool, TagI32, TagChar:
		return hashInt32(v.I32, rt.seed)
	case TagString:
		return stringHash(v.Obj.(*String), rt.seed)
	default:
		return 0
	}
}
