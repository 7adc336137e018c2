package jvalue

import "iter"

// Array is the ordered element store of an Array node. Elements are owned by
// the store; holes created by assigning past the end are filled with Null
// nodes, so Len is always the highest assigned index plus one.
//
// Assigning far past the end, or assigning indexes in descending order, costs
// O(n) per call and O(n²) overall.
type Array struct {
	owner *Value
	items []*Value
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the element at i, or nil if i is out of range.
func (a *Array) At(i int) *Value {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

// Set places v at index i, growing the array with Null nodes when i is past
// the end. A nil v stores a new Null node. Negative indexes are ignored.
// It returns the stored node.
//
// v is stored as is. A node already held in another slot, of this or any
// container, ends up shared between both slots with a single parent link, and
// removing either slot clears that link; store v.Clone() to get a separate
// node.
func (a *Array) Set(i int, v *Value) *Value {
	if i < 0 {
		return nil
	}
	if v == nil {
		v = New()
	}
	for len(a.items) < i {
		a.items = append(a.items, a.adopt(New()))
	}
	if i == len(a.items) {
		a.items = append(a.items, a.adopt(v))
		return v
	}
	if old := a.items[i]; old != v {
		old.parent = nil
	}
	a.items[i] = a.adopt(v)
	return v
}

// Append adds v after the last element and returns it.
func (a *Array) Append(v *Value) *Value {
	return a.Set(len(a.items), v)
}

// Remove deletes the element at i, shifting later elements down by one. It
// returns the removed node, or nil if i was out of range.
func (a *Array) Remove(i int) *Value {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil
	}
	old := a.items[i]
	copy(a.items[i:], a.items[i+1:])
	a.items[len(a.items)-1] = nil
	a.items = a.items[:len(a.items)-1]
	old.parent = nil
	return old
}

// Values returns a copy of the element slice.
func (a *Array) Values() []*Value {
	if a == nil {
		return nil
	}
	res := make([]*Value, len(a.items))
	copy(res, a.items)
	return res
}

// All iterates over index, element pairs in order.
func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if a == nil {
			return
		}
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array) adopt(v *Value) *Value {
	v.parent = a.owner
	return v
}
