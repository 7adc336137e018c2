package jvalue

import "strconv"

// Kind identifies which payload a Value carries and which coercion rules apply
// when it is read through a typed accessor.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindUInteger
	KindFloat
	KindObject
	KindArray
	KindTrue
	KindFalse
)

var kindNames = [...]string{
	KindNull:     "null",
	KindString:   "string",
	KindInteger:  "integer",
	KindUInteger: "uinteger",
	KindFloat:    "float",
	KindObject:   "object",
	KindArray:    "array",
	KindTrue:     "true",
	KindFalse:    "false",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsNumber reports whether k is one of the three numeric kinds.
func (k Kind) IsNumber() bool {
	return k == KindInteger || k == KindUInteger || k == KindFloat
}

// IsBool reports whether k is KindTrue or KindFalse.
func (k Kind) IsBool() bool {
	return k == KindTrue || k == KindFalse
}

// IsContainer reports whether k is KindObject or KindArray.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}
