package jvalue

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/go-json-experiment/json"
)

// Values returns the children of a container node in order. Scalars yield a
// single-element slice holding v itself and Null yields nil.
func (v *Value) Values() []*Value {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindArray:
		return v.Array().Values()
	case KindObject:
		o := v.Object()
		res := make([]*Value, 0, o.Len())
		for _, m := range o.All() {
			res = append(res, m)
		}
		return res
	}
	return []*Value{v}
}

// Strings reads every child of v with Str. Scalars are treated as a
// one-element collection; Null yields nil.
func (v *Value) Strings() []string {
	vals := v.Values()
	if vals == nil {
		return nil
	}
	res := make([]string, len(vals))
	for i, e := range vals {
		res[i] = e.Str()
	}
	return res
}

// SetStrings replaces v with an Array of String nodes.
func (v *Value) SetStrings(ss []string) {
	a := v.Clear(KindArray).Array()
	for _, s := range ss {
		a.Append(NewString(s))
	}
}

// StringMap reads an Object node as a key to Str mapping. Arrays are keyed by
// decimal index, scalars are treated as a one-element array, and Null yields
// nil.
func (v *Value) StringMap() map[string]string {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindObject:
		res := make(map[string]string, v.Len())
		for k, m := range v.Object().All() {
			res[k] = m.Str()
		}
		return res
	}
	ss := v.Strings()
	res := make(map[string]string, len(ss))
	for i, s := range ss {
		res[strconv.Itoa(i)] = s
	}
	return res
}

// SetStringMap replaces v with an Object of String members, added in sorted
// key order.
func (v *Value) SetStringMap(m map[string]string) {
	o := v.Clear(KindObject).Object()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		o.Set(k, NewString(m[k]))
	}
}

// Interface returns v as plain Go data: Document for objects, List for
// arrays, and string, int64, uint64, float64, bool or nil for scalars.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindString:
		return string(v.payload.(stringPayload))
	case KindInteger:
		return int64(v.payload.(intPayload))
	case KindUInteger:
		return uint64(v.payload.(uintPayload))
	case KindFloat:
		return float64(v.payload.(floatPayload))
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindArray:
		a := v.Array()
		res := make(List, a.Len())
		for i, e := range a.All() {
			res[i] = e.Interface()
		}
		return res
	case KindObject:
		o := v.Object()
		res := make(Document, 0, o.Len())
		for k, m := range o.All() {
			res = append(res, Entry{Key: k, Value: m.Interface()})
		}
		return res
	}
	return nil
}

// From builds a tree from plain Go data. It understands the forms returned by
// Interface, the common scalar types, []string, []any, map[string]any and
// map[string]string (map keys are added in sorted order). A *Value is cloned.
// Anything else is marshalled with encoding/json/v2 semantics and decoded.
func From(x any) (*Value, error) {
	switch x := x.(type) {
	case nil:
		return New(), nil
	case *Value:
		return x.Clone(), nil
	case string:
		return NewString(x), nil
	case bool:
		return NewBool(x), nil
	case int:
		return NewInt(int64(x)), nil
	case int8:
		return NewInt(int64(x)), nil
	case int16:
		return NewInt(int64(x)), nil
	case int32:
		return NewInt(int64(x)), nil
	case int64:
		return NewInt(x), nil
	case uint:
		return NewUint(uint64(x)), nil
	case uint8:
		return NewUint(uint64(x)), nil
	case uint16:
		return NewUint(uint64(x)), nil
	case uint32:
		return NewUint(uint64(x)), nil
	case uint64:
		return NewUint(x), nil
	case float32:
		return NewFloat(float64(x)), nil
	case float64:
		return NewFloat(x), nil
	case []string:
		v := New()
		v.SetStrings(x)
		return v, nil
	case map[string]string:
		v := New()
		v.SetStringMap(x)
		return v, nil
	case List:
		return fromSlice(x)
	case []any:
		return fromSlice(x)
	case Document:
		v := NewObject()
		for _, e := range x {
			m, err := From(e.Value)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", e.Key, err)
			}
			v.SetKey(e.Key, m)
		}
		return v, nil
	case map[string]any:
		v := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			m, err := From(x[k])
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			v.SetKey(k, m)
		}
		return v, nil
	}
	b, err := json.Marshal(x, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("convert %T: %w", x, err)
	}
	v, err := Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("convert %T: %w", x, err)
	}
	return v, nil
}

func fromSlice(xs []any) (*Value, error) {
	v := NewArray()
	for i, x := range xs {
		e, err := From(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		v.Append(e)
	}
	return v, nil
}

// Set replaces the content of v with the conversion of x, keeping v's identity
// and position in its parent.
func (v *Value) Set(x any) error {
	n, err := From(x)
	if err != nil {
		return err
	}
	v.replace(n)
	return nil
}
