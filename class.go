package rt

// ClassDescriptor is the static metadata for a class id: its display
// name and its method table. Class ids are small, dense integers
// assigned by registration order; the root "Object" class lives at id
// 0, per spec.md §4.10.
type ClassDescriptor struct {
	Name    string
	Methods map[string]*Lambda
}

// classRegistry maps dense, monotonically-assigned class ids to their
// descriptors. invoke-by-name looks the name up in the receiver's own
// class's method table, a map keyed by method name, so defining the
// same name twice on a class replaces the earlier method; there is no
// superclass chain to walk — a miss is fatal.
type classRegistry struct {
	descs []*ClassDescriptor
}

func newClassRegistry(rt *Runtime) *classRegistry {
	rt.alloc.track()
	cr := &classRegistry{}
	cr.descs = append(cr.descs, &ClassDescriptor{
		Name:    "Object",
		Methods: make(map[string]*Lambda),
	})
	return cr
}

func (cr *classRegistry) teardown(rt *Runtime) {
	cr.descs = nil
	rt.alloc.untrack()
}

// DefineClass appends a new class descriptor, doubling the underlying
// vector's capacity on overflow (handled by Go's slice growth), and
// returns its fresh id.
func (cr *classRegistry) DefineClass(name string) int32 {
	id := int32(len(cr.descs))
	cr.descs = append(cr.descs, &ClassDescriptor{
		Name:    name,
		Methods: make(map[string]*Lambda),
	})
	return id
}

// DefineMethod attaches fn under name to the class at id.
func (cr *classRegistry) DefineMethod(id int32, name string, fn *Lambda) {
	cr.descriptor(id).Methods[name] = fn
}

func (cr *classRegistry) descriptor(id int32) *ClassDescriptor {
	if id < 0 || int(id) >= len(cr.descs) {
		abort(ErrUnknownTag, "unknown class id %d", id)
	}
	return cr.descs[id]
}

// resolveMethod scans id's own method table for name; it never
// consults any other class, per spec.md §4.10.
func (cr *classRegistry) resolveMethod(id int32, name string) (*Lambda, bool) {
	fn, ok := cr.descriptor(id).Methods[name]
	return fn, ok
}

// ClassObject is a heap object carrying instance-specific state and a
// class id used for virtual dispatch; the object's own fields live in
// a backing Array indexed by field slot, keeping layout decisions out
// of the runtime.
type ClassObject struct {
	Header
	fields *Array
}

func (o *ClassObject) header() *Header { return &o.Header }

func (o *ClassObject) finalize(rt *Runtime) {
	Release(rt, Value{Tag: TagArray, Obj: o.fields})
}

// InitObject allocates an instance of class id with the given number
// of fields, all initialized to Null.
func InitObject(rt *Runtime, classID int32, numFields int32) Value {
	rt.classes.descriptor(classID) // validates the id, aborts if unknown
	fields := NewArrayWithLength(rt, numFields)
	o := &ClassObject{fields: fields.Obj.(*Array)}
	o.RefCount = 1
	o.ClassID = classID
	rt.alloc.track()
	return Value{Tag: TagClassObject, Obj: o}
}

// GetField and SetField access an instance's backing field array.
func GetField(o *ClassObject, index int32) Value { return ArrayGet(o.fields, index) }

func SetField(rt *Runtime, o *ClassObject, index int32, v Value) {
	ArraySet(rt, o.fields, index, v)
}

// DefineClass registers a new class and returns its id.
func (rt *Runtime) DefineClass(name string) int32 {
	return rt.classes.DefineClass(name)
}

// DefineClassMethod attaches fn under name to the class at id.
func (rt *Runtime) DefineClassMethod(id int32, name string, fn NativeFn) {
	rt.classes.DefineMethod(id, name, &Lambda{fn: fn})
}

// InvokeByName resolves name against recv's own class's method table
// and invokes it with args. Calling a method on a non-class-object
// value is an InvokeOnPrimitive error; failing to resolve the name is
// a MissingMethod error, per spec.md §7.
func InvokeByName(rt *Runtime, recv Value, name string, args []Value) Value {
	if recv.Tag != TagClassObject {
		abort(ErrInvokeOnPrimitive, "method %q invoked on non-object value with tag %s", name, recv.Tag)
	}
	o := recv.Obj.(*ClassObject)
	fn, ok := rt.classes.resolveMethod(o.ClassID, name)
	if !ok {
		abort(ErrMissingMethod, "class %q has no method %q", rt.classes.descriptor(o.ClassID).Name, name)
	}
	return Invoke(rt, fn, append([]Value{recv}, args...))
}
