package jvalue

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
)

func unmarshalPlain(t *testing.T, src string) any {
	t.Helper()
	var out any
	err := json.Unmarshal([]byte(src), &out, json.WithUnmarshalers(Unmarshalers()))
	require.NoError(t, err)
	return out
}

func assertDocument(t *testing.T, v any) Document {
	t.Helper()
	d, ok := v.(Document)
	require.True(t, ok, "expected Document, got %T", v)
	return d
}

func assertList(t *testing.T, v any) List {
	t.Helper()
	l, ok := v.(List)
	require.True(t, ok, "expected List, got %T", v)
	return l
}

func TestUnmarshalers(t *testing.T) {
	t.Run("empty object -> empty Document", func(t *testing.T) {
		d := assertDocument(t, unmarshalPlain(t, `{}`))
		require.Len(t, d, 0)
	})

	t.Run("empty array -> empty List", func(t *testing.T) {
		l := assertList(t, unmarshalPlain(t, `[]`))
		require.Len(t, l, 0)
	})

	t.Run("ordering preserved", func(t *testing.T) {
		d := assertDocument(t, unmarshalPlain(t, `{"b":1,"a":2}`))
		require.Equal(t, Document{{Key: "b", Value: int64(1)}, {Key: "a", Value: int64(2)}}, d)
	})

	t.Run("nested objects inside arrays", func(t *testing.T) {
		l := assertList(t, unmarshalPlain(t, `[1.5,{"x":9223372036854775808}]`))
		require.Equal(t, 1.5, l[0])
		d := assertDocument(t, l[1])
		require.Equal(t, "x", d[0].Key)
		require.Equal(t, uint64(1)<<63, d[0].Value)
	})

	t.Run("primitives use default decoding", func(t *testing.T) {
		require.Equal(t, "s", unmarshalPlain(t, `"s"`))
		require.Equal(t, true, unmarshalPlain(t, `true`))
		require.Nil(t, unmarshalPlain(t, `null`))
		require.Equal(t, int64(12), unmarshalPlain(t, `12`))
	})

	t.Run("typed targets", func(t *testing.T) {
		var d Document
		err := json.Unmarshal([]byte(`{"z":[],"a":{}}`), &d, json.WithUnmarshalers(Unmarshalers()))
		require.NoError(t, err)
		require.Equal(t, []string{"z", "a"}, d.Keys())

		var l List
		err = json.Unmarshal([]byte(`[1,"a"]`), &l, json.WithUnmarshalers(Unmarshalers()))
		require.NoError(t, err)
		require.Equal(t, List{int64(1), "a"}, l)
	})

	t.Run("malformed input", func(t *testing.T) {
		var out any
		err := json.Unmarshal([]byte(`{"a":}`), &out, json.WithUnmarshalers(Unmarshalers()))
		require.Error(t, err)
	})
}

func TestValueJSONv2(t *testing.T) {
	type envelope struct {
		Version  int    `json:"version"`
		Settings *Value `json:"settings"`
	}

	t.Run("marshal embedded value keeps order", func(t *testing.T) {
		v, err := Parse(`{"z":1,"a":[2.0,"x",null,true],"m":18446744073709551615}`)
		require.NoError(t, err)
		out, err := json.Marshal(envelope{Version: 1, Settings: v})
		require.NoError(t, err)
		require.Equal(t, `{"version":1,"settings":{"z":1,"a":[2.0,"x",null,true],"m":18446744073709551615}}`, string(out))
	})

	t.Run("unmarshal embedded value", func(t *testing.T) {
		var env envelope
		err := json.Unmarshal([]byte(`{"version":3,"settings":{"z":-1,"a":{"b":2.5}}}`), &env)
		require.NoError(t, err)
		require.Equal(t, 3, env.Version)
		require.NotNil(t, env.Settings)
		require.Equal(t, []string{"z", "a"}, env.Settings.Keys())
		require.Equal(t, KindInteger, env.Settings.Key("z").Kind())
		require.Equal(t, KindFloat, env.Settings.ObjectByPath("a/b", false).Kind())
		require.Same(t, env.Settings, env.Settings.Key("a").Parent())
	})

	t.Run("unmarshal replaces content in place", func(t *testing.T) {
		v := NewArray(NewInt(1))
		require.NoError(t, json.Unmarshal([]byte(`{"k":"v"}`), v))
		require.Equal(t, KindObject, v.Kind())
		require.Equal(t, "v", v.Key("k").Str())
	})

	t.Run("document marshals as object", func(t *testing.T) {
		d := Document{{Key: "b", Value: 1}, {Key: "a", Value: List{Document{{Key: "c", Value: nil}}}}}
		out, err := json.Marshal(d)
		require.NoError(t, err)
		require.Equal(t, `{"b":1,"a":[{"c":null}]}`, string(out))
	})
}
