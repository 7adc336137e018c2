package jvalue

import (
	"math"
	"strconv"
	"strings"
)

// Typed reads never fail. When a node cannot be read as the requested type
// the plain getter returns the type's zero value and the ...Def getter
// returns the caller's default. Null, Object and Array nodes have no scalar
// reading, except for Bool where Null reads as false and a container reads as
// true when non-empty.

// Str returns v as text: strings verbatim, numbers in canonical decimal form,
// booleans as "true"/"false", and "" for anything else.
func (v *Value) Str() string {
	return v.StrDef("")
}

func (v *Value) StrDef(def string) string {
	switch v.Kind() {
	case KindString:
		return string(v.payload.(stringPayload))
	case KindInteger:
		return strconv.FormatInt(int64(v.payload.(intPayload)), 10)
	case KindUInteger:
		return strconv.FormatUint(uint64(v.payload.(uintPayload)), 10)
	case KindFloat:
		return formatFloat(float64(v.payload.(floatPayload)))
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	}
	return def
}

func (v *Value) Int() int64 {
	return v.IntDef(0)
}

// IntDef reads v as a signed integer. Strings must consist of an optional
// leading '-' followed by decimal digits and nothing else; floats truncate
// toward zero. Null, Object and Array nodes yield def, not 0.
func (v *Value) IntDef(def int64) int64 {
	switch v.Kind() {
	case KindString:
		if i, ok := parseDecimalInt(string(v.payload.(stringPayload))); ok {
			return i
		}
	case KindInteger:
		return int64(v.payload.(intPayload))
	case KindUInteger:
		return int64(v.payload.(uintPayload))
	case KindFloat:
		f := math.Trunc(float64(v.payload.(floatPayload)))
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
	case KindTrue:
		return 1
	case KindFalse:
		return 0
	}
	return def
}

func (v *Value) Uint() uint64 {
	return v.UintDef(0)
}

// UintDef reads v as an unsigned integer. Strings must consist of decimal
// digits only. Signed and negative float values wrap as two's complement.
// Null, Object and Array nodes yield def, not 0.
func (v *Value) UintDef(def uint64) uint64 {
	switch v.Kind() {
	case KindString:
		if u, ok := parseDecimalUint(string(v.payload.(stringPayload))); ok {
			return u
		}
	case KindInteger:
		return uint64(v.payload.(intPayload))
	case KindUInteger:
		return uint64(v.payload.(uintPayload))
	case KindFloat:
		f := math.Trunc(float64(v.payload.(floatPayload)))
		switch {
		case f >= 0 && f < math.MaxUint64:
			return uint64(f)
		case f < 0 && f >= math.MinInt64:
			return uint64(int64(f))
		}
	case KindTrue:
		return 1
	case KindFalse:
		return 0
	}
	return def
}

func (v *Value) Float64() float64 {
	return v.Float64Def(0)
}

// Float64Def reads v as a float. Strings are not converted and yield def, as
// do Null, Object and Array nodes.
func (v *Value) Float64Def(def float64) float64 {
	switch v.Kind() {
	case KindInteger:
		return float64(v.payload.(intPayload))
	case KindUInteger:
		return float64(v.payload.(uintPayload))
	case KindFloat:
		return float64(v.payload.(floatPayload))
	case KindTrue:
		return 1
	case KindFalse:
		return 0
	}
	return def
}

func (v *Value) Bool() bool {
	return v.BoolDef(false)
}

// BoolDef reads v as a boolean. Strings accept yes/no and true/false,
// case-sensitively, and the single characters 1, y and t as true; any other
// string, including the empty one, yields def. Numbers are true when nonzero,
// containers when non-empty, and Null is false.
func (v *Value) BoolDef(def bool) bool {
	switch v.Kind() {
	case KindString:
		if b, ok := parseBool(string(v.payload.(stringPayload))); ok {
			return b
		}
	case KindInteger:
		return v.payload.(intPayload) != 0
	case KindUInteger:
		return v.payload.(uintPayload) != 0
	case KindFloat:
		return v.payload.(floatPayload) != 0
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindArray:
		return v.Array().Len() > 0
	case KindObject:
		return v.Object().Len() > 0
	case KindNull:
		return false
	}
	return def
}

func parseBool(s string) (bool, bool) {
	if len(s) == 1 {
		switch s[0] {
		case '1', 'y', 't':
			return true, true
		}
		return false, false
	}
	switch s {
	case "yes", "true":
		return true, true
	case "no", "false":
		return false, true
	}
	return false, false
}

// parseDecimalUint accepts one or more ASCII digits and nothing else. Values
// that do not fit in 64 bits are rejected.
func parseDecimalUint(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

func parseDecimalInt(s string) (int64, bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	n, ok := parseDecimalUint(s)
	if !ok {
		return 0, false
	}
	if neg {
		if n > 1<<63 {
			return 0, false
		}
		return -int64(n), true
	}
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

// formatFloat renders f in the shortest form that parses back to the same
// value, always with a '.' or exponent so the text reads back as a float.
func formatFloat(f float64) string {
	return string(appendFloat(nil, f))
}

func appendFloat(b []byte, f float64) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, f, 'g', -1, 64)
	for _, c := range b[start:] {
		switch c {
		case '.', 'e', 'N', 'I':
			return b
		}
	}
	return append(b, ".0"...)
}
