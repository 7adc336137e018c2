package jvalue

import "math"

// Value is a single node of a settings tree. It holds a Kind and the payload
// matching that kind; the two only change together, through Clear or one of
// the typed setters.
//
// Containers own their children. The parent link is informational only: it is
// set when a node is installed into a container and cleared when it is
// removed, and nothing in this package follows it.
//
// A Value is not safe for concurrent mutation.
type Value struct {
	kind    Kind
	payload payload
	parent  *Value
	dirty   bool
}

// payload is implemented only by the types below, so a Value can never carry
// a payload for a kind it does not have.
type payload interface{ isPayload() }

type (
	stringPayload string
	intPayload    int64
	uintPayload   uint64
	floatPayload  float64
)

func (stringPayload) isPayload() {}
func (intPayload) isPayload()    {}
func (uintPayload) isPayload()   {}
func (floatPayload) isPayload()  {}
func (*Object) isPayload()       {}
func (*Array) isPayload()        {}

// New returns a Null node.
func New() *Value {
	return &Value{}
}

func NewString(s string) *Value {
	return &Value{kind: KindString, payload: stringPayload(s)}
}

func NewInt(i int64) *Value {
	return &Value{kind: KindInteger, payload: intPayload(i)}
}

func NewUint(u uint64) *Value {
	return &Value{kind: KindUInteger, payload: uintPayload(u)}
}

func NewFloat(f float64) *Value {
	return &Value{kind: KindFloat, payload: floatPayload(f)}
}

func NewBool(b bool) *Value {
	if b {
		return &Value{kind: KindTrue}
	}
	return &Value{kind: KindFalse}
}

// NewArray returns an Array node holding vals in order. Nil entries become
// Null nodes.
func NewArray(vals ...*Value) *Value {
	v := &Value{}
	a := v.Clear(KindArray).payload.(*Array)
	for _, e := range vals {
		a.Append(e)
	}
	return v
}

// NewObject returns an empty Object node.
func NewObject() *Value {
	v := &Value{}
	v.Clear(KindObject)
	return v
}

// Kind returns the node's current kind. A nil *Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// Parent returns the container node v was installed into, or nil for a root
// or detached node.
func (v *Value) Parent() *Value {
	if v == nil {
		return nil
	}
	return v.parent
}

// Dirty reports the caller-managed modification flag. Mutations never set or
// clear it.
func (v *Value) Dirty() bool {
	return v != nil && v.dirty
}

func (v *Value) SetDirty(dirty bool) {
	v.dirty = dirty
}

// Clear changes v to kind k and resets the payload to that kind's zero value:
// "", 0, an empty Object or an empty Array. Children of a discarded container
// are detached. It returns v.
func (v *Value) Clear(k Kind) *Value {
	v.detachChildren()
	v.kind = k
	switch k {
	case KindString:
		v.payload = stringPayload("")
	case KindInteger:
		v.payload = intPayload(0)
	case KindUInteger:
		v.payload = uintPayload(0)
	case KindFloat:
		v.payload = floatPayload(0)
	case KindObject:
		v.payload = &Object{owner: v}
	case KindArray:
		v.payload = &Array{owner: v}
	default:
		v.payload = nil
	}
	return v
}

func (v *Value) detachChildren() {
	switch p := v.payload.(type) {
	case *Array:
		for _, e := range p.items {
			e.parent = nil
		}
		p.owner = nil
	case *Object:
		for _, e := range p.entries {
			e.value.parent = nil
		}
		p.owner = nil
	}
}

// ensure converts v to kind k unless it already has that kind.
func (v *Value) ensure(k Kind) {
	if v.kind != k {
		v.Clear(k)
	}
}

func (v *Value) SetString(s string) {
	v.ensure(KindString)
	v.payload = stringPayload(s)
}

func (v *Value) SetInt(i int64) {
	v.ensure(KindInteger)
	v.payload = intPayload(i)
}

func (v *Value) SetUint(u uint64) {
	v.ensure(KindUInteger)
	v.payload = uintPayload(u)
}

func (v *Value) SetFloat(f float64) {
	v.ensure(KindFloat)
	v.payload = floatPayload(f)
}

func (v *Value) SetBool(b bool) {
	if b {
		v.ensure(KindTrue)
	} else {
		v.ensure(KindFalse)
	}
}

func (v *Value) SetNull() {
	v.ensure(KindNull)
}

// Array returns the array store of v, or nil if v is not an Array.
func (v *Value) Array() *Array {
	if v == nil {
		return nil
	}
	a, _ := v.payload.(*Array)
	return a
}

// Object returns the object store of v, or nil if v is not an Object.
func (v *Value) Object() *Object {
	if v == nil {
		return nil
	}
	o, _ := v.payload.(*Object)
	return o
}

// SetArray converts v to an Array (keeping its elements if it already is one)
// and returns the store.
func (v *Value) SetArray() *Array {
	v.ensure(KindArray)
	return v.payload.(*Array)
}

// SetObject converts v to an Object (keeping its members if it already is
// one) and returns the store.
func (v *Value) SetObject() *Object {
	v.ensure(KindObject)
	return v.payload.(*Object)
}

// replace moves the content of src into v, leaving v's identity, parent and
// dirty flag alone. src must not be used afterwards.
func (v *Value) replace(src *Value) {
	v.detachChildren()
	v.kind = src.kind
	v.payload = src.payload
	switch p := v.payload.(type) {
	case *Array:
		p.owner = v
		for _, e := range p.items {
			e.parent = v
		}
	case *Object:
		p.owner = v
		for _, e := range p.entries {
			e.value.parent = v
		}
	}
	src.kind = KindNull
	src.payload = nil
}

// Clone returns a deep copy of v. The copy has no parent and a clear dirty
// flag.
func (v *Value) Clone() *Value {
	if v == nil {
		return New()
	}
	res := &Value{kind: v.kind, payload: v.payload}
	switch p := v.payload.(type) {
	case *Array:
		a := &Array{owner: res, items: make([]*Value, len(p.items))}
		for i, e := range p.items {
			c := e.Clone()
			c.parent = res
			a.items[i] = c
		}
		res.payload = a
	case *Object:
		o := &Object{owner: res, entries: make([]*member, len(p.entries))}
		for i, e := range p.entries {
			c := e.value.Clone()
			c.parent = res
			o.entries[i] = &member{key: e.key, value: c}
		}
		o.reindex(0)
		res.payload = o
	}
	return res
}

// Equal reports whether a and b have the same kind and value, comparing
// containers element by element and objects in member order. Nil compares
// equal to a Null node. NaN floats are equal to each other.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindString:
		return a.payload.(stringPayload) == b.payload.(stringPayload)
	case KindInteger:
		return a.payload.(intPayload) == b.payload.(intPayload)
	case KindUInteger:
		return a.payload.(uintPayload) == b.payload.(uintPayload)
	case KindFloat:
		x, y := float64(a.payload.(floatPayload)), float64(b.payload.(floatPayload))
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	case KindArray:
		x, y := a.Array(), b.Array()
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		x, y := a.Object(), b.Object()
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.entries {
			if x.entries[i].key != y.entries[i].key || !Equal(x.entries[i].value, y.entries[i].value) {
				return false
			}
		}
		return true
	}
	return true
}
