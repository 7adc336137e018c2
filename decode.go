package jvalue

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// DefaultMaxDepth bounds object and array nesting during decoding.
const DefaultMaxDepth = 10000

type DecodeOption func(*decodeState)

// DecodeStrictKeys rejects unquoted object keys. By default keys matching
// [A-Za-z_][A-Za-z0-9_]* may be written without quotes.
func DecodeStrictKeys(v bool) DecodeOption {
	return func(ds *decodeState) { ds.strictKeys = v }
}

// DecodeMaxDepth sets the nesting limit. Values below 1 mean DefaultMaxDepth.
func DecodeMaxDepth(n int) DecodeOption {
	return func(ds *decodeState) { ds.maxDepth = n }
}

// Unmarshal parses one JSON value from data and returns a new tree. Only
// whitespace may follow the value. Malformed input yields a *SyntaxError and
// no tree.
func Unmarshal(data []byte, opts ...DecodeOption) (*Value, error) {
	ds := &decodeState{data: data}
	for _, opt := range opts {
		opt(ds)
	}
	if ds.maxDepth < 1 {
		ds.maxDepth = DefaultMaxDepth
	}
	v, err := ds.value()
	if err != nil {
		return nil, err
	}
	ds.skipSpace()
	if ds.off < len(ds.data) {
		return nil, ds.errorf("unexpected %s after top-level value", ds.describe())
	}
	return v, nil
}

// Parse is Unmarshal for a string.
func Parse(s string, opts ...DecodeOption) (*Value, error) {
	return Unmarshal([]byte(s), opts...)
}

// Decode reads r to the end and parses it.
func Decode(r io.Reader, opts ...DecodeOption) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Unmarshal(data, opts...)
}

type decodeState struct {
	data       []byte
	off        int
	depth      int
	maxDepth   int
	strictKeys bool
}

func (ds *decodeState) errorf(format string, args ...any) error {
	return newSyntaxError(ds.data, ds.off, fmt.Sprintf(format, args...))
}

func (ds *decodeState) describe() string {
	if ds.off >= len(ds.data) {
		return "end of input"
	}
	r, _ := utf8.DecodeRune(ds.data[ds.off:])
	return strconv.QuoteRune(r)
}

func (ds *decodeState) skipSpace() {
	for ds.off < len(ds.data) {
		switch ds.data[ds.off] {
		case ' ', '\t', '\n', '\r':
			ds.off++
		default:
			return
		}
	}
}

// peek skips whitespace and returns the next byte, or 0 at end of input.
func (ds *decodeState) peek() byte {
	ds.skipSpace()
	if ds.off >= len(ds.data) {
		return 0
	}
	return ds.data[ds.off]
}

func (ds *decodeState) value() (*Value, error) {
	switch c := ds.peek(); {
	case c == '{':
		return ds.object()
	case c == '[':
		return ds.array()
	case c == '"':
		s, err := ds.str()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case c == '-' || isDigit(c):
		return ds.number()
	case c == 't':
		return ds.literal("true", NewBool(true))
	case c == 'f':
		return ds.literal("false", NewBool(false))
	case c == 'n':
		return ds.literal("null", New())
	}
	return nil, ds.errorf("unexpected %s looking for beginning of value", ds.describe())
}

func (ds *decodeState) literal(word string, v *Value) (*Value, error) {
	end := ds.off + len(word)
	if end > len(ds.data) || string(ds.data[ds.off:end]) != word {
		return nil, ds.errorf("invalid literal, expected %q", word)
	}
	if end < len(ds.data) && isIdentChar(ds.data[end]) {
		ds.off = end
		return nil, ds.errorf("invalid literal, expected %q", word)
	}
	ds.off = end
	return v, nil
}

func (ds *decodeState) enter() error {
	ds.depth++
	if ds.depth > ds.maxDepth {
		return ds.errorf("exceeded max depth of %d", ds.maxDepth)
	}
	return nil
}

func (ds *decodeState) object() (*Value, error) {
	if err := ds.enter(); err != nil {
		return nil, err
	}
	defer func() { ds.depth-- }()
	ds.off++ // '{'

	res := NewObject()
	o := res.Object()
	if ds.peek() == '}' {
		ds.off++
		return res, nil
	}
	for {
		key, err := ds.key()
		if err != nil {
			return nil, err
		}
		if ds.peek() != ':' {
			return nil, ds.errorf("unexpected %s after object key %q, expected ':'", ds.describe(), key)
		}
		ds.off++
		v, err := ds.value()
		if err != nil {
			return nil, err
		}
		o.Set(key, v)

		switch ds.peek() {
		case ',':
			ds.off++
			if ds.peek() == '}' {
				return nil, ds.errorf("trailing comma in object")
			}
		case '}':
			ds.off++
			return res, nil
		default:
			return nil, ds.errorf("unexpected %s in object, expected ',' or '}'", ds.describe())
		}
	}
}

func (ds *decodeState) key() (string, error) {
	c := ds.peek()
	if c == '"' {
		return ds.str()
	}
	if !ds.strictKeys && isIdentStart(c) {
		start := ds.off
		for ds.off < len(ds.data) && isIdentChar(ds.data[ds.off]) {
			ds.off++
		}
		return string(ds.data[start:ds.off]), nil
	}
	return "", ds.errorf("unexpected %s looking for object key", ds.describe())
}

func (ds *decodeState) array() (*Value, error) {
	if err := ds.enter(); err != nil {
		return nil, err
	}
	defer func() { ds.depth-- }()
	ds.off++ // '['

	res := NewArray()
	a := res.Array()
	if ds.peek() == ']' {
		ds.off++
		return res, nil
	}
	for {
		v, err := ds.value()
		if err != nil {
			return nil, err
		}
		a.Append(v)

		switch ds.peek() {
		case ',':
			ds.off++
			if ds.peek() == ']' {
				return nil, ds.errorf("trailing comma in array")
			}
		case ']':
			ds.off++
			return res, nil
		default:
			return nil, ds.errorf("unexpected %s in array, expected ',' or ']'", ds.describe())
		}
	}
}

// number scans an integer or float literal. Integers accumulate into a 64-bit
// magnitude: with a '-' they must fit an int64, without one they are stored
// as int64 unless the top bit is set, in which case they become UInteger.
// Integers too large for 64 bits fall back to Float.
func (ds *decodeState) number() (*Value, error) {
	start := ds.off
	neg := ds.data[ds.off] == '-'
	if neg {
		ds.off++
	}
	if ds.off >= len(ds.data) || !isDigit(ds.data[ds.off]) {
		return nil, ds.errorf("invalid number, expected digit")
	}
	var mag uint64
	overflow := false
	for ds.off < len(ds.data) && isDigit(ds.data[ds.off]) {
		d := uint64(ds.data[ds.off] - '0')
		if mag > (math.MaxUint64-d)/10 {
			overflow = true
		} else {
			mag = mag*10 + d
		}
		ds.off++
	}

	isFloat := false
	if ds.off < len(ds.data) && ds.data[ds.off] == '.' {
		isFloat = true
		ds.off++
		if !ds.digits() {
			return nil, ds.errorf("invalid number, expected digit after '.'")
		}
	}
	if ds.off < len(ds.data) && (ds.data[ds.off] == 'e' || ds.data[ds.off] == 'E') {
		isFloat = true
		ds.off++
		if ds.off < len(ds.data) && (ds.data[ds.off] == '+' || ds.data[ds.off] == '-') {
			ds.off++
		}
		if !ds.digits() {
			return nil, ds.errorf("invalid number, expected exponent digit")
		}
	}

	switch {
	case isFloat, overflow, neg && mag > 1<<63:
		// ParseFloat rounds correctly where summing scaled digits would not;
		// out-of-range exponents come back as ±Inf or 0 with ErrRange.
		f, _ := strconv.ParseFloat(string(ds.data[start:ds.off]), 64)
		return NewFloat(f), nil
	case neg:
		return NewInt(-int64(mag)), nil
	case mag&(1<<63) != 0:
		return NewUint(mag), nil
	}
	return NewInt(int64(mag)), nil
}

func (ds *decodeState) digits() bool {
	start := ds.off
	for ds.off < len(ds.data) && isDigit(ds.data[ds.off]) {
		ds.off++
	}
	return ds.off > start
}

// str scans a quoted string starting at the opening quote.
func (ds *decodeState) str() (string, error) {
	ds.off++ // '"'
	start := ds.off
	for ds.off < len(ds.data) {
		switch ds.data[ds.off] {
		case '"':
			s := string(ds.data[start:ds.off])
			ds.off++
			return s, nil
		case '\\':
			return ds.unescape(start)
		}
		ds.off++
	}
	return "", ds.errorf("unterminated string")
}

// unescape continues scanning a string whose first escape is at ds.off.
func (ds *decodeState) unescape(start int) (string, error) {
	buf := make([]byte, 0, ds.off-start+16)
	buf = append(buf, ds.data[start:ds.off]...)
	for ds.off < len(ds.data) {
		c := ds.data[ds.off]
		if c == '"' {
			ds.off++
			return string(buf), nil
		}
		if c != '\\' {
			buf = append(buf, c)
			ds.off++
			continue
		}
		ds.off++
		if ds.off >= len(ds.data) {
			break
		}
		switch e := ds.data[ds.off]; e {
		case '"', '\\':
			buf = append(buf, e)
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			r, err := ds.hex4()
			if err != nil {
				return "", err
			}
			if utf16.IsSurrogate(r) {
				if r2, ok := ds.lowSurrogate(); ok {
					r = utf16.DecodeRune(r, r2)
				} else {
					r = utf8.RuneError
				}
			}
			buf = utf8.AppendRune(buf, r)
			continue
		default:
			ds.off--
			return "", ds.errorf("invalid escape sequence \\%c in string", e)
		}
		ds.off++
	}
	return "", ds.errorf("unterminated string")
}

// hex4 reads the four hex digits following \u and leaves ds.off after them.
func (ds *decodeState) hex4() (rune, error) {
	ds.off++ // 'u'
	if ds.off+4 > len(ds.data) {
		return 0, ds.errorf("invalid \\u escape in string")
	}
	var r rune
	for i := range 4 {
		c := ds.data[ds.off+i]
		var d byte
		switch {
		case isDigit(c):
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			ds.off += i
			return 0, ds.errorf("invalid hex digit %q in \\u escape", c)
		}
		r = r<<4 | rune(d)
	}
	ds.off += 4
	return r, nil
}

// lowSurrogate consumes a following \uXXXX escape if it is a low surrogate.
func (ds *decodeState) lowSurrogate() (rune, bool) {
	save := ds.off
	if ds.off+1 >= len(ds.data) || ds.data[ds.off] != '\\' || ds.data[ds.off+1] != 'u' {
		return 0, false
	}
	ds.off++
	r, err := ds.hex4()
	if err != nil || r < 0xDC00 || r > 0xDFFF {
		ds.off = save
		return 0, false
	}
	return r, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
