package jvalue

import (
	"io"
	"math"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
)

// DefaultIndent is the per-level indent used by pretty output.
const DefaultIndent = "    "

type EncodeOption func(*encodeState)

// EncodePretty selects pretty output: one element or member per line,
// indented per nesting level, with ": " between keys and values.
func EncodePretty(v bool) EncodeOption {
	return func(es *encodeState) { es.pretty = v }
}

// EncodeIndent sets the per-level indent of pretty output.
func EncodeIndent(indent string) EncodeOption {
	return func(es *encodeState) { es.indent = indent }
}

type encodeState struct {
	pretty bool
	indent string
	buf    []byte
}

// Marshal encodes v as JSON, compact unless EncodePretty is given. Object
// members are written in member order. A nil v encodes as null.
func Marshal(v *Value, opts ...EncodeOption) []byte {
	es := &encodeState{indent: DefaultIndent}
	for _, opt := range opts {
		opt(es)
	}
	es.value(v, 0)
	return es.buf
}

// MarshalIndent is Marshal with EncodePretty(true).
func MarshalIndent(v *Value) []byte {
	return Marshal(v, EncodePretty(true))
}

// Encode writes the encoding of v to w.
func Encode(w io.Writer, v *Value, opts ...EncodeOption) error {
	_, err := w.Write(Marshal(v, opts...))
	return err
}

// String returns the compact JSON encoding of v.
func (v *Value) String() string {
	return string(Marshal(v))
}

func (es *encodeState) value(v *Value, depth int) {
	switch v.Kind() {
	case KindString:
		es.str(string(v.payload.(stringPayload)))
	case KindInteger:
		es.buf = strconv.AppendInt(es.buf, int64(v.payload.(intPayload)), 10)
	case KindUInteger:
		es.buf = strconv.AppendUint(es.buf, uint64(v.payload.(uintPayload)), 10)
	case KindFloat:
		f := float64(v.payload.(floatPayload))
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// JSON has no spelling for these.
			es.buf = append(es.buf, "null"...)
			return
		}
		es.buf = appendFloat(es.buf, f)
	case KindTrue:
		es.buf = append(es.buf, "true"...)
	case KindFalse:
		es.buf = append(es.buf, "false"...)
	case KindArray:
		es.array(v.Array(), depth)
	case KindObject:
		es.object(v.Object(), depth)
	default:
		es.buf = append(es.buf, "null"...)
	}
}

func (es *encodeState) array(a *Array, depth int) {
	if a.Len() == 0 {
		es.buf = append(es.buf, "[]"...)
		return
	}
	es.buf = append(es.buf, '[')
	for i, e := range a.All() {
		if i > 0 {
			es.buf = append(es.buf, ',')
		}
		es.newline(depth + 1)
		es.value(e, depth+1)
	}
	es.newline(depth)
	es.buf = append(es.buf, ']')
}

func (es *encodeState) object(o *Object, depth int) {
	if o.Len() == 0 {
		es.buf = append(es.buf, "{}"...)
		return
	}
	es.buf = append(es.buf, '{')
	i := 0
	for k, m := range o.All() {
		if i > 0 {
			es.buf = append(es.buf, ',')
		}
		i++
		es.newline(depth + 1)
		es.str(k)
		es.buf = append(es.buf, ':')
		if es.pretty {
			es.buf = append(es.buf, ' ')
		}
		es.value(m, depth+1)
	}
	es.newline(depth)
	es.buf = append(es.buf, '}')
}

func (es *encodeState) newline(depth int) {
	if !es.pretty {
		return
	}
	es.buf = append(es.buf, '\n')
	for range depth {
		es.buf = append(es.buf, es.indent...)
	}
}

// str appends s as a quoted JSON string. jsontext escapes exactly the quote,
// the backslash and control characters, using the short forms for \b \f \n
// \r \t and lowercase \u00xx for the rest; everything else passes through.
// Invalid UTF-8 comes out as U+FFFD and the accompanying error adds nothing.
func (es *encodeState) str(s string) {
	es.buf, _ = jsontext.AppendQuote(es.buf, s)
}
