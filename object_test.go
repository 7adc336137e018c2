package jvalue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		o := NewObject().Object()
		o.Set("z", NewInt(1))
		o.Set("a", NewInt(2))
		o.Set("m", NewInt(3))
		require.Equal(t, []string{"z", "a", "m"}, o.Keys())
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		o := NewObject().Object()
		o.Set("a", NewInt(1))
		o.Set("b", NewInt(2))
		o.Set("c", NewInt(3))
		old := o.Get("a")
		o.Set("a", NewString("new"))
		require.Equal(t, []string{"a", "b", "c"}, o.Keys())
		require.Equal(t, "new", o.Get("a").Str())
		require.Nil(t, old.Parent())
		require.Equal(t, 3, o.Len())
	})

	t.Run("remove shifts successors", func(t *testing.T) {
		v := NewObject()
		o := v.Object()
		o.Set("a", NewInt(1))
		o.Set("b", NewInt(2))
		o.Set("c", NewInt(3))

		removed := o.Remove("a")
		require.Equal(t, int64(1), removed.Int())
		require.Nil(t, removed.Parent())
		require.Equal(t, []string{"b", "c"}, o.Keys())
		require.Equal(t, "b", o.KeyAt(0))
		require.Equal(t, "c", o.KeyAt(1))
		require.Equal(t, int64(2), o.Get("b").Int())
		require.Equal(t, int64(3), o.Get("c").Int())
		require.False(t, o.Has("a"))
		require.Nil(t, o.Remove("a"))
	})

	t.Run("remove then reinsert appends", func(t *testing.T) {
		o := NewObject().Object()
		for _, k := range []string{"a", "b", "c", "d"} {
			o.Set(k, New())
		}
		o.Remove("b")
		o.Set("b", New())
		o.Set("c", NewInt(1))
		require.Equal(t, []string{"a", "c", "d", "b"}, o.Keys())
		for i, k := range o.Keys() {
			require.Same(t, o.ValueAt(i), o.Get(k))
		}
	})

	t.Run("out of range positions", func(t *testing.T) {
		o := NewObject().Object()
		require.Equal(t, "", o.KeyAt(0))
		require.Nil(t, o.ValueAt(-1))
		require.Nil(t, o.Get("x"))
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var o Object
		o.Set("k", NewInt(1))
		require.Equal(t, int64(1), o.Get("k").Int())
		require.Nil(t, o.Get("k").Parent())
	})

	t.Run("children point at owner", func(t *testing.T) {
		v := NewObject()
		m := v.SetKey("k", nil)
		require.Same(t, v, m.Parent())
		require.Equal(t, KindNull, m.Kind())
	})
}
