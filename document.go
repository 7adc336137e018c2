package jvalue

// Document is the plain form of an object: an ordered list of entries. It is
// what Value.Interface returns for Object nodes and what the json/v2
// unmarshalers produce for objects decoded into an any.
type Document []Entry

// List is the plain form of an array.
type List []any

// Entry is one member of a Document.
type Entry struct {
	Key   string
	Value any
}

// Get returns the value of the first entry named key.
func (d Document) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the entry keys in order.
func (d Document) Keys() []string {
	res := make([]string, len(d))
	for i, e := range d {
		res[i] = e.Key
	}
	return res
}
