package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Constructors tests value construction and kind reporting.
func TestValue_Constructors(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v := String("hello")
		assert.Equal(t, KindString, v.Kind())
		assert.True(t, v.Defined())
	})

	t.Run("empty string is defined", func(t *testing.T) {
		v := String("")
		assert.Equal(t, KindString, v.Kind())
		assert.True(t, v.Defined())
	})

	t.Run("list", func(t *testing.T) {
		v := List("a", "b")
		assert.Equal(t, KindList, v.Kind())
		assert.True(t, v.Defined())
	})

	t.Run("map", func(t *testing.T) {
		v := Map(map[string]string{"k": "v"})
		assert.Equal(t, KindMap, v.Kind())
		assert.True(t, v.Defined())
	})

	t.Run("undefined", func(t *testing.T) {
		v := Undefined()
		assert.Equal(t, KindUndefined, v.Kind())
		assert.False(t, v.Defined())
	})

	t.Run("zero value is undefined", func(t *testing.T) {
		var v Value
		assert.Equal(t, KindUndefined, v.Kind())
		assert.False(t, v.Defined())
	})

	t.Run("list copies its input", func(t *testing.T) {
		items := []string{"a", "b"}
		v := List(items...)
		items[0] = "mutated"
		uri, err := New("{v}").Expand(Values{"v": v})
		require.NoError(t, err)
		assert.Equal(t, "a,b", uri)
	})

	t.Run("map copies its input", func(t *testing.T) {
		pairs := map[string]string{"k": "v"}
		v := Map(pairs)
		pairs["k"] = "mutated"
		uri, err := New("{v}").Expand(Values{"v": v})
		require.NoError(t, err)
		assert.Equal(t, "k,v", uri)
	})
}

// TestValueKind_String tests kind names used in debug output.
func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "undefined", KindUndefined.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "ValueKind(42)", ValueKind(42).String())
}

// TestValuesOf_Coercion tests conversion from plain Go maps.
func TestValuesOf_Coercion(t *testing.T) {
	t.Run("scalar types", func(t *testing.T) {
		values, err := ValuesOf(map[string]any{
			"s": "text",
			"i": 42,
			"f": 1.5,
			"b": true,
		})
		require.NoError(t, err)
		assert.Equal(t, String("text"), values["s"])
		assert.Equal(t, String("42"), values["i"])
		assert.Equal(t, String("1.5"), values["f"])
		assert.Equal(t, String("true"), values["b"])
	})

	t.Run("string slice", func(t *testing.T) {
		values, err := ValuesOf(map[string]any{"list": []string{"a", "b"}})
		require.NoError(t, err)
		assert.Equal(t, List("a", "b"), values["list"])
	})

	t.Run("any slice with mixed scalars", func(t *testing.T) {
		values, err := ValuesOf(map[string]any{"list": []any{"a", 2, false}})
		require.NoError(t, err)
		assert.Equal(t, List("a", "2", "false"), values["list"])
	})

	t.Run("string map", func(t *testing.T) {
		values, err := ValuesOf(map[string]any{"keys": map[string]string{"k": "v"}})
		require.NoError(t, err)
		assert.Equal(t, KindMap, values["keys"].Kind())
	})

	t.Run("any map with scalar values", func(t *testing.T) {
		values, err := ValuesOf(map[string]any{"keys": map[string]any{"n": 7}})
		require.NoError(t, err)
		assert.Equal(t, Map(map[string]string{"n": "7"}), values["keys"])
	})

	t.Run("nil becomes undefined", func(t *testing.T) {
		values, err := ValuesOf(map[string]any{"gone": nil})
		require.NoError(t, err)
		assert.False(t, values["gone"].Defined())
	})

	t.Run("Value passes through", func(t *testing.T) {
		original := List("x", "y")
		values, err := ValuesOf(map[string]any{"v": original})
		require.NoError(t, err)
		assert.Equal(t, original, values["v"])
	})

	t.Run("nil map", func(t *testing.T) {
		values, err := ValuesOf(nil)
		require.NoError(t, err)
		assert.Nil(t, values)
	})

	t.Run("nested list is rejected", func(t *testing.T) {
		_, err := ValuesOf(map[string]any{"bad": []any{[]any{"nested"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `variable "bad"`)
	})

	t.Run("map inside map is rejected", func(t *testing.T) {
		_, err := ValuesOf(map[string]any{"bad": map[string]any{"k": map[string]any{}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `key "k"`)
	})

	t.Run("unsupported type is rejected", func(t *testing.T) {
		_, err := ValuesOf(map[string]any{"bad": struct{}{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported value type")
	})
}
