package rt

// Tuple is a map entry: a doubly linked list node in insertion order
// plus the owned key/value pair, per spec.md §3. prev/next are
// non-owning; the map's head/last bracket the list and own the chain.
type Tuple struct {
	prev, next *Tuple
	key, value Value
	hash       uint32 // meaningful once the map has entered large mode
}

// bucket is a large-mode hash chain link. It holds a non-owning
// pointer into the tuple list; the tuple's position in that list is
// its sole owner.
type bucket struct {
	hash  uint32
	next  *bucket
	tuple *Tuple
}

// Map is the ordered, hash-keyed associative container from spec.md
// §4.11: small mode is a bare linked list, large mode adds a chained
// bucket array. Promotion to large mode happens once a non-boolean,
// hashable-keyed map reaches promoteThreshold entries; boolean-keyed
// maps never promote, since a boolean key space has only two values
// and a hash table buys nothing.
type Map struct {
	Header
	keyTag Tag
	large  bool
	head   *Tuple
	last   *Tuple
	count  int32

	buckets     []*bucket
	bucketCount int

	promoteThreshold int32
	defaultBucketCnt int
	rehashLoadFactor float64
}

func (m *Map) header() *Header { return &m.Header }

func (m *Map) finalize(rt *Runtime) {
	for t := m.head; t != nil; {
		next := t.next
		Release(rt, t.key)
		Release(rt, t.value)
		rt.alloc.untrack()
		if m.large {
			rt.alloc.untrack() // the bucket owned by this tuple's slot
		}
		t = next
	}
}

func isHashableKeyTag(t Tag) bool {
	switch t {
	case TagBool, TagI32, TagChar, TagString:
		return true
	default:
		return false
	}
}

// NewMap constructs a map keyed by keyTag (bool, i32, char or string;
// any other tag is rejected as unhashable, mirroring the source's
// rejection of pointer-identity and unhashable key types). initSize
// hints the bucket count; a hint at or above the promotion threshold
// for a non-boolean key starts the map directly in large mode, per
// the testable property that such a map never enters small mode.
func NewMap(rt *Runtime, keyTag Tag, initSize int32) Value {
	if !isHashableKeyTag(keyTag) {
		abort(ErrUnknownTag, "map key type %s is not hashable", keyTag)
	}
	m := &Map{
		keyTag:           keyTag,
		promoteThreshold: int32(rt.cfg.GetInt("map.promote_threshold")),
		defaultBucketCnt: rt.cfg.GetInt("map.default_bucket_count"),
		rehashLoadFactor: rt.cfg.GetFloat("map.rehash_load_factor"),
	}
	m.RefCount = 1
	rt.alloc.track()

	if keyTag != TagBool && initSize >= m.promoteThreshold {
		bc := int(initSize)
		if bc < m.defaultBucketCnt {
			bc = m.defaultBucketCnt
		}
		m.buckets = make([]*bucket, bc)
		m.bucketCount = bc
		m.large = true
	}
	return Value{Tag: TagMap, Obj: m}
}

// Count reports the number of entries.
func (m *Map) Count() int32 { return m.count }

// IsLarge reports whether the map has promoted to chained-bucket mode.
func (m *Map) IsLarge() bool { return m.large }

func (m *Map) appendTuple(t *Tuple) {
	if m.last == nil {
		m.head = t
		m.last = t
		return
	}
	t.prev = m.last
	m.last.next = t
	m.last = t
}

func (m *Map) unlinkTuple(t *Tuple) {
	if t.prev != nil {
		t.prev.next = t.next
	} else {
		m.head = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	} else {
		m.last = t.prev
	}
}

func (m *Map) findSmall(rt *Runtime, key Value) *Tuple {
	for t := m.head; t != nil; t = t.next {
		if Equal(rt, t.key, key) {
			return t
		}
	}
	return nil
}

func (m *Map) findLarge(rt *Runtime, key Value) (*Tuple, *bucket, *bucket, int) {
	h := valueHash(rt, key)
	idx := int(h % uint32(m.bucketCount))
	var prev *bucket
	for b := m.buckets[idx]; b != nil; b = b.next {
		if b.hash == h && Equal(rt, b.tuple.key, key) {
			return b.tuple, b, prev, idx
		}
		prev = b
	}
	return nil, nil, nil, idx
}

// promote builds the chained bucket table (bug fix, open question 5:
// the documented source's traversal stopped at `t != map->last`,
// silently dropping the final entry; this walks to nil instead).
func (m *Map) promote(rt *Runtime) {
	bc := m.defaultBucketCnt
	buckets := make([]*bucket, bc)
	for t := m.head; t != nil; t = t.next {
		h := valueHash(rt, t.key)
		t.hash = h
		idx := int(h % uint32(bc))
		buckets[idx] = &bucket{hash: h, tuple: t, next: buckets[idx]}
		rt.alloc.track()
	}
	m.buckets = buckets
	m.bucketCount = bc
	m.large = true
}

// rehash doubles the bucket count once the load factor exceeds the
// configured threshold (open question 6: the documented source never
// resized after promotion).
func (m *Map) rehash(rt *Runtime) {
	bc := m.bucketCount * 2
	buckets := make([]*bucket, bc)
	for t := m.head; t != nil; t = t.next {
		idx := int(t.hash % uint32(bc))
		buckets[idx] = &bucket{hash: t.hash, tuple: t, next: buckets[idx]}
	}
	m.buckets = buckets
	m.bucketCount = bc
}

// Set inserts or updates key→value. An update never reorders the
// entry and never changes the entry count (open question 3: the
// documented source only incremented size on the small-mode path,
// leaving large-mode insertion size untracked).
func (m *Map) Set(rt *Runtime, key, value Value) {
	if m.large {
		if t, _, _, _ := m.findLarge(rt, key); t != nil {
			Retain(value)
			Release(rt, t.value)
			t.value = value
			return
		}
		Retain(key)
		Retain(value)
		t := &Tuple{key: key, value: value}
		m.appendTuple(t)
		rt.alloc.track()
		m.count++

		h := valueHash(rt, key)
		idx := int(h % uint32(m.bucketCount))
		t.hash = h
		m.buckets[idx] = &bucket{hash: h, tuple: t, next: m.buckets[idx]}
		rt.alloc.track()

		if float64(m.count)/float64(m.bucketCount) > m.rehashLoadFactor {
			m.rehash(rt)
		}
		return
	}

	if t := m.findSmall(rt, key); t != nil {
		Retain(value)
		Release(rt, t.value)
		t.value = value
		return
	}
	Retain(key)
	Retain(value)
	t := &Tuple{key: key, value: value}
	m.appendTuple(t)
	rt.alloc.track()
	m.count++

	if m.keyTag != TagBool && m.count >= m.promoteThreshold {
		m.promote(rt)
	}
}

// Get returns Some(value) if key is present, else None.
func (m *Map) Get(rt *Runtime, key Value) Value {
	var t *Tuple
	if m.large {
		t, _, _, _ = m.findLarge(rt, key)
	} else {
		t = m.findSmall(rt, key)
	}
	if t == nil {
		return None()
	}
	return Some(rt, t.value)
}

// Remove deletes key if present and returns Some(old-value), else
// None. Reads the tuple's value only after locating it (open question
// 2: the documented source read the value before the lookup that
// locates the tuple).
func (m *Map) Remove(rt *Runtime, key Value) Value {
	var t *Tuple
	if m.large {
		var b, prev *bucket
		var idx int
		t, b, prev, idx = m.findLarge(rt, key)
		if t == nil {
			return None()
		}
		if prev != nil {
			prev.next = b.next
		} else {
			m.buckets[idx] = b.next
		}
		rt.alloc.untrack() // the bucket
	} else {
		t = m.findSmall(rt, key)
		if t == nil {
			return None()
		}
	}

	val := t.value
	m.unlinkTuple(t)
	result := Some(rt, val)
	Release(rt, t.key)
	Release(rt, val)
	rt.alloc.untrack() // the tuple
	m.count--          // bug fix, open question 4: the small-mode path incremented here instead
	return result
}
