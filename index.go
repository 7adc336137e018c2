package jvalue

import "strings"

// Index returns the element at i of an Array node, or nil if v is not an
// Array or i is out of range.
func (v *Value) Index(i int) *Value {
	return v.Array().At(i)
}

// SetIndex stores elem at i, converting v to an Array first if it is any
// other kind. Positions between the old length and i are filled with Null
// nodes. A nil elem stores a new Null node. It returns the stored node.
func (v *Value) SetIndex(i int, elem *Value) *Value {
	return v.SetArray().Set(i, elem)
}

// Elem returns the element at i, creating it (and any holes before it) as
// Null and converting v to an Array when needed.
func (v *Value) Elem(i int) *Value {
	if e := v.Index(i); e != nil {
		return e
	}
	return v.SetIndex(i, nil)
}

// SetIndexValue converts x with From and stores the result at i. An existing
// element at i is overwritten in place, so references to it observe the new
// value.
func (v *Value) SetIndexValue(i int, x any) error {
	n, err := From(x)
	if err != nil {
		return err
	}
	if e := v.Index(i); e != nil {
		e.replace(n)
		return nil
	}
	v.SetIndex(i, n)
	return nil
}

// Append adds elem to the end of v, converting v to an Array first if needed.
func (v *Value) Append(elem *Value) *Value {
	return v.SetArray().Append(elem)
}

// Key returns the member named key of an Object node, or nil if v is not an
// Object or has no such member.
func (v *Value) Key(key string) *Value {
	return v.Object().Get(key)
}

// SetKey stores member under key, converting v to an Object first if it is any
// other kind. New keys go to the end; existing keys keep their position.
// A nil member stores a new Null node. It returns the stored node.
func (v *Value) SetKey(key string, member *Value) *Value {
	return v.SetObject().Set(key, member)
}

// Field returns the member named key, creating it as Null at the end of the
// member order and converting v to an Object when needed.
func (v *Value) Field(key string) *Value {
	if m := v.Key(key); m != nil {
		return m
	}
	return v.SetKey(key, nil)
}

// SetKeyValue converts x with From and stores the result under key. An
// existing member is overwritten in place.
func (v *Value) SetKeyValue(key string, x any) error {
	n, err := From(x)
	if err != nil {
		return err
	}
	if m := v.Key(key); m != nil {
		m.replace(n)
		return nil
	}
	v.SetKey(key, n)
	return nil
}

// Has reports whether v is an Object with a member named key.
func (v *Value) Has(key string) bool {
	return v.Object().Has(key)
}

// Remove deletes element i of an Array node and returns it, or nil.
func (v *Value) Remove(i int) *Value {
	return v.Array().Remove(i)
}

// RemoveKey deletes member key of an Object node and returns it, or nil.
func (v *Value) RemoveKey(key string) *Value {
	return v.Object().Remove(key)
}

// Len returns the number of elements or members of a container node and 0 for
// every other kind.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return v.Array().Len()
	case KindObject:
		return v.Object().Len()
	}
	return 0
}

// KeyByIndex returns the i-th key of an Object node in member order, or "".
func (v *Value) KeyByIndex(i int) string {
	return v.Object().KeyAt(i)
}

// Keys returns the member keys of an Object node in order.
func (v *Value) Keys() []string {
	return v.Object().Keys()
}

// ObjectByPath walks a '/'-separated path of object keys starting at v and
// returns the node at the end. Each segment is matched exactly; there is no
// escaping, so keys containing '/' cannot be reached. An empty path returns v.
//
// With create set, missing members are added, and every node along the way
// except the last is converted to an Object if it is not one already. The
// final node is created as Null if missing. Without create, the walk returns
// nil as soon as a segment is missing or an intermediate node is not an
// Object.
func (v *Value) ObjectByPath(path string, create bool) *Value {
	if v == nil {
		return nil
	}
	if path == "" {
		return v
	}
	head, rest, more := strings.Cut(path, "/")
	var next *Value
	if create {
		next = v.Field(head)
	} else {
		next = v.Key(head)
	}
	if !more || next == nil {
		return next
	}
	if create {
		next.ensure(KindObject)
	}
	return next.ObjectByPath(rest, create)
}
