package jvalue

import "iter"

// Object is the member store of an Object node: an insertion-ordered list of
// uniquely keyed members plus an index from key to position.
//
// New keys are appended. Overwriting a key keeps its position. Removing a key
// shifts every later member down by one.
type Object struct {
	owner   *Value
	entries []*member
	index   map[string]int
}

type member struct {
	key   string
	value *Value
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// Get returns the value stored under key, or nil.
func (o *Object) Get(key string) *Value {
	if i, ok := o.lookup(key); ok {
		return o.entries[i].value
	}
	return nil
}

func (o *Object) Has(key string) bool {
	_, ok := o.lookup(key)
	return ok
}

// Set stores v under key and returns it. A nil v stores a new Null node.
// As with Array.Set, a node already held elsewhere is shared rather than
// moved; store v.Clone() to keep the slots independent.
func (o *Object) Set(key string, v *Value) *Value {
	if v == nil {
		v = New()
	}
	v.parent = o.owner
	if i, ok := o.lookup(key); ok {
		if old := o.entries[i].value; old != v {
			old.parent = nil
		}
		o.entries[i].value = v
		return v
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, &member{key: key, value: v})
	return v
}

// Remove deletes key and returns its value, or nil if key was not present.
func (o *Object) Remove(key string) *Value {
	i, ok := o.lookup(key)
	if !ok {
		return nil
	}
	old := o.entries[i].value
	copy(o.entries[i:], o.entries[i+1:])
	o.entries[len(o.entries)-1] = nil
	o.entries = o.entries[:len(o.entries)-1]
	delete(o.index, key)
	o.reindex(i)
	old.parent = nil
	return old
}

// KeyAt returns the key at position i, or "" when i is out of range.
func (o *Object) KeyAt(i int) string {
	if o == nil || i < 0 || i >= len(o.entries) {
		return ""
	}
	return o.entries[i].key
}

// ValueAt returns the value at position i, or nil when i is out of range.
func (o *Object) ValueAt(i int) *Value {
	if o == nil || i < 0 || i >= len(o.entries) {
		return nil
	}
	return o.entries[i].value
}

// Keys returns the keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	res := make([]string, len(o.entries))
	for i, e := range o.entries {
		res[i] = e.key
	}
	return res
}

// All iterates over key, value pairs in order.
func (o *Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if o == nil {
			return
		}
		for _, e := range o.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (o *Object) lookup(key string) (int, bool) {
	if o == nil || o.index == nil {
		return 0, false
	}
	i, ok := o.index[key]
	return i, ok
}

// reindex rewrites index positions for entries from position i onwards.
func (o *Object) reindex(i int) {
	if o.index == nil {
		o.index = make(map[string]int, len(o.entries))
	}
	for ; i < len(o.entries); i++ {
		o.index[o.entries[i].key] = i
	}
}
