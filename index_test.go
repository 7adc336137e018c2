package jvalue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexing(t *testing.T) {
	t.Run("read on wrong kind is absent", func(t *testing.T) {
		v := NewString("x")
		require.Nil(t, v.Index(0))
		require.Nil(t, v.Key("a"))
		require.Equal(t, KindString, v.Kind())
	})

	t.Run("index write auto-vivifies array", func(t *testing.T) {
		v := NewInt(3)
		v.SetIndex(2, NewString("c"))
		require.Equal(t, KindArray, v.Kind())
		require.Equal(t, 3, v.Len())
		require.True(t, v.Index(0).IsNull())
		require.True(t, v.Index(1).IsNull())
		require.Equal(t, "c", v.Index(2).Str())
	})

	t.Run("key write auto-vivifies object", func(t *testing.T) {
		v := NewArray(NewInt(1))
		v.SetKey("a", NewInt(1))
		require.Equal(t, KindObject, v.Kind())
		require.Equal(t, []string{"a"}, v.Keys())
	})

	t.Run("elem and field create on demand", func(t *testing.T) {
		v := New()
		v.Elem(1).SetInt(5)
		require.Equal(t, 2, v.Len())
		require.Same(t, v.Index(1), v.Elem(1))

		o := New()
		o.Field("x").SetString("y")
		o.Field("x").SetString("z")
		require.Equal(t, 1, o.Len())
		require.Equal(t, "z", o.Key("x").Str())
	})

	t.Run("append", func(t *testing.T) {
		v := New()
		v.Append(NewInt(1))
		v.Append(nil)
		require.Equal(t, 2, v.Len())
		require.True(t, v.Index(1).IsNull())
	})

	t.Run("has", func(t *testing.T) {
		v := NewObject()
		v.SetKey("a", nil)
		require.True(t, v.Has("a"))
		require.False(t, v.Has("b"))
		require.False(t, NewArray().Has("a"))
	})
}

func TestSetValueOverwritesInPlace(t *testing.T) {
	t.Run("array slot", func(t *testing.T) {
		v := NewArray(NewInt(1), NewInt(2))
		slot := v.Index(1)
		require.NoError(t, v.SetIndexValue(1, "two"))
		require.Same(t, slot, v.Index(1))
		require.Equal(t, KindString, slot.Kind())
		require.Equal(t, "two", slot.Str())
		require.Same(t, v, slot.Parent())
	})

	t.Run("array past end", func(t *testing.T) {
		v := NewArray()
		require.NoError(t, v.SetIndexValue(2, 1.5))
		require.Equal(t, 3, v.Len())
		require.Equal(t, KindFloat, v.Index(2).Kind())
	})

	t.Run("object member keeps position", func(t *testing.T) {
		v, err := Parse(`{"a":1,"b":2}`)
		require.NoError(t, err)
		slot := v.Key("a")
		require.NoError(t, v.SetKeyValue("a", []string{"x", "y"}))
		require.Same(t, slot, v.Key("a"))
		require.Equal(t, []string{"x", "y"}, slot.Strings())
		require.Same(t, slot, slot.Index(0).Parent())
		require.Equal(t, []string{"a", "b"}, v.Keys())
	})

	t.Run("new member appended", func(t *testing.T) {
		v := NewObject()
		require.NoError(t, v.SetKeyValue("n", nil))
		require.True(t, v.Key("n").IsNull())
	})

	t.Run("set replaces root content", func(t *testing.T) {
		v := NewString("x")
		v.SetDirty(true)
		require.NoError(t, v.Set(map[string]any{"b": 1, "a": true}))
		require.Equal(t, []string{"a", "b"}, v.Keys())
		require.True(t, v.Dirty())
	})
}

func TestRemove(t *testing.T) {
	t.Run("object key", func(t *testing.T) {
		v, err := Parse(`{"a":1,"b":2,"c":3}`)
		require.NoError(t, err)
		removed := v.RemoveKey("a")
		require.Equal(t, int64(1), removed.Int())
		require.Equal(t, KindObject, v.Kind())
		require.Equal(t, []string{"b", "c"}, v.Keys())
		require.Equal(t, int64(2), v.Key("b").Int())
		require.Equal(t, int64(3), v.Key("c").Int())
		require.Equal(t, "c", v.KeyByIndex(1))
	})

	t.Run("array index", func(t *testing.T) {
		v, err := Parse(`[1,2,3]`)
		require.NoError(t, err)
		require.Equal(t, int64(2), v.Remove(1).Int())
		require.Equal(t, []string{"1", "3"}, v.Strings())
	})

	t.Run("nothing matched", func(t *testing.T) {
		require.Nil(t, NewObject().RemoveKey("a"))
		require.Nil(t, NewArray().Remove(0))
		require.Nil(t, NewInt(1).Remove(0))
		require.Nil(t, NewInt(1).RemoveKey("a"))
	})
}

func TestObjectByPath(t *testing.T) {
	t.Run("lookup without create", func(t *testing.T) {
		v, err := Parse(`{"a":{"b":{"c":7}}}`)
		require.NoError(t, err)
		require.Equal(t, int64(7), v.ObjectByPath("a/b/c", false).Int())
		require.Same(t, v.Key("a"), v.ObjectByPath("a", false))
		require.Nil(t, v.ObjectByPath("a/x/c", false))
		require.Nil(t, v.ObjectByPath("a/b/c/d", false))
		require.Same(t, v, v.ObjectByPath("", false))
	})

	t.Run("create builds objects", func(t *testing.T) {
		v := New()
		leaf := v.ObjectByPath("x/y/z", true)
		require.NotNil(t, leaf)
		require.True(t, leaf.IsNull())
		require.Equal(t, KindObject, v.Kind())
		require.Equal(t, KindObject, v.Key("x").Kind())
		require.Equal(t, KindObject, v.Key("x").Key("y").Kind())
		require.Same(t, leaf, v.ObjectByPath("x/y/z", false))
		require.Same(t, leaf, v.ObjectByPath("x/y/z", true))
	})

	t.Run("create converts scalar intermediates", func(t *testing.T) {
		v, err := Parse(`{"a":5,"b":1}`)
		require.NoError(t, err)
		v.ObjectByPath("a/k", true).SetInt(1)
		require.Equal(t, KindObject, v.Key("a").Kind())
		require.Equal(t, []string{"a", "b"}, v.Keys())
		require.Equal(t, `{"a":{"k":1},"b":1}`, v.String())
	})

	t.Run("segments are exact", func(t *testing.T) {
		v, err := Parse(`{"A":{"b":1}}`)
		require.NoError(t, err)
		require.Nil(t, v.ObjectByPath("a/b", false))
	})

	t.Run("arrays are not traversed", func(t *testing.T) {
		v, err := Parse(`{"a":[{"b":1}]}`)
		require.NoError(t, err)
		require.Nil(t, v.ObjectByPath("a/0/b", false))
	})
}

func TestSharedNode(t *testing.T) {
	t.Run("storing a held node shares it", func(t *testing.T) {
		v := NewObject()
		n := v.SetKey("a", NewInt(1))
		v.SetKey("b", n)
		require.Same(t, v.Key("a"), v.Key("b"))

		v.RemoveKey("b")
		require.Same(t, n, v.Key("a"))
		require.Nil(t, n.Parent())
	})

	t.Run("clone keeps slots independent", func(t *testing.T) {
		v := NewArray(NewInt(1))
		v.SetIndex(1, v.Index(0).Clone())
		require.NotSame(t, v.Index(0), v.Index(1))

		v.Index(1).SetInt(2)
		require.Equal(t, int64(1), v.Index(0).Int())
		v.Remove(1)
		require.Same(t, v, v.Index(0).Parent())
	})
}
