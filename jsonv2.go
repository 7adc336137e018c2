package jvalue

import (
	"fmt"
	"math"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo lets a *Value be embedded in data marshalled with
// encoding/json/v2. Object members keep their order; NaN and infinite floats
// are written as null.
func (v *Value) MarshalJSONTo(enc *jsontext.Encoder) error {
	switch v.Kind() {
	case KindString:
		return enc.WriteToken(jsontext.String(string(v.payload.(stringPayload))))
	case KindInteger:
		return enc.WriteToken(jsontext.Int(int64(v.payload.(intPayload))))
	case KindUInteger:
		return enc.WriteToken(jsontext.Uint(uint64(v.payload.(uintPayload))))
	case KindFloat:
		f := float64(v.payload.(floatPayload))
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return enc.WriteToken(jsontext.Null)
		}
		// Written raw so integral floats keep their ".0" and read back as floats.
		return enc.WriteValue(jsontext.Value(appendFloat(nil, f)))
	case KindTrue:
		return enc.WriteToken(jsontext.True)
	case KindFalse:
		return enc.WriteToken(jsontext.False)
	case KindArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, e := range v.Array().All() {
			if err := e.MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case KindObject:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for k, m := range v.Object().All() {
			if err := enc.WriteToken(jsontext.String(k)); err != nil {
				return err
			}
			if err := m.MarshalJSONTo(enc); err != nil {
				return fmt.Errorf("member %q: %w", k, err)
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	}
	return enc.WriteToken(jsontext.Null)
}

// UnmarshalJSONFrom replaces the content of v with the next value read from
// dec. Integers follow the same signed/unsigned rules as Unmarshal.
func (v *Value) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	n, err := decodeToken(dec)
	if err != nil {
		return err
	}
	v.replace(n)
	return nil
}

// decodeToken reads one complete value from dec into a new tree.
func decodeToken(dec *jsontext.Decoder) (*Value, error) {
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil { // '{'
			return nil, fmt.Errorf("read object open: %w", err)
		}
		res := NewObject()
		o := res.Object()
		for dec.PeekKind() != '}' {
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, fmt.Errorf("read object key: %w", err)
			}
			key := tok.String()
			m, err := decodeToken(dec)
			if err != nil {
				return nil, fmt.Errorf("read object value for key %q: %w", key, err)
			}
			o.Set(key, m)
		}
		if _, err := dec.ReadToken(); err != nil { // '}'
			return nil, fmt.Errorf("read object close: %w", err)
		}
		return res, nil
	case '[':
		if _, err := dec.ReadToken(); err != nil { // '['
			return nil, fmt.Errorf("read array open: %w", err)
		}
		res := NewArray()
		a := res.Array()
		for dec.PeekKind() != ']' {
			e, err := decodeToken(dec)
			if err != nil {
				return nil, fmt.Errorf("read array element %d: %w", a.Len(), err)
			}
			a.Append(e)
		}
		if _, err := dec.ReadToken(); err != nil { // ']'
			return nil, fmt.Errorf("read array close: %w", err)
		}
		return res, nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, fmt.Errorf("read number: %w", err)
		}
		return Unmarshal(raw)
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case '"':
		return NewString(tok.String()), nil
	case 't', 'f':
		return NewBool(tok.Bool()), nil
	case 'n':
		return New(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok.Kind())
}

// Unmarshalers returns encoding/json/v2 unmarshalers that decode objects,
// arrays and numbers held in an any as plain ordered data:
//   - objects become Document, preserving member order
//   - arrays become List
//   - integers become int64, or uint64 past the int64 range, and other
//     numbers float64
//
// Strings, booleans and null are left to the default decoding.
func Unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		unmarshalAny(),
		unmarshalDocument(),
		unmarshalList(),
	)
}

func unmarshalAny() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{', '[', '0':
			n, err := decodeToken(dec)
			if err != nil {
				return err
			}
			*v = n.Interface()
			return nil
		default:
			return json.SkipFunc
		}
	})
}

// unmarshalDocument decodes a JSON object into a *Document.
func unmarshalDocument() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Document) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		n, err := decodeToken(dec)
		if err != nil {
			return err
		}
		*v = n.Interface().(Document)
		return nil
	})
}

// unmarshalList decodes a JSON array into a *List.
func unmarshalList() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *List) error {
		if dec.PeekKind() != '[' {
			return json.SkipFunc
		}
		n, err := decodeToken(dec)
		if err != nil {
			return err
		}
		*v = n.Interface().(List)
		return nil
	})
}

// MarshalJSONTo writes d as a JSON object in entry order.
func (d Document) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, e := range d {
		if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, e.Value); err != nil {
			return fmt.Errorf("entry %q: %w", e.Key, err)
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}
