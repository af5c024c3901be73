package rt

// RefCell is a single mutable heap slot, used to give a captured
// variable reference semantics across the closures that share it (see
// spec.md §4.7). It owns a retain on whatever it currently holds.
type RefCell struct {
	Header
	inner Value
}

func (c *RefCell) header() *Header { return &c.Header }

func (c *RefCell) finalize(rt *Runtime) {
	Release(rt, c.inner)
}

// NewRefCell allocates a cell initialized to v, retaining it.
func NewRefCell(rt *Runtime, v Value) Value {
	Retain(v)
	c := &RefCell{inner: v}
	c.RefCount = 1
	rt.alloc.track()
	return Value{Tag: TagRefCell, Obj: c}
}

// Get returns the cell's current value.
func (c *RefCell) Get() Value { return c.inner }

// Set replaces the cell's value, retaining v and releasing the
// previous occupant.
func Set(rt *Runtime, c *RefCell, v Value) {
	Retain(v)
	Release(rt, c.inner)
	c.inner = v
}
