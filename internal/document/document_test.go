package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_PreservesOrder(t *testing.T) {
	data := `{"company": {"properties": {
		"name": {"type": "string"},
		"description": {"type": "string"},
		"employees": {"type": "nested", "properties": {"name": {"type": "string"}, "age": {"type": "long"}}}
	}}}`

	root, err := DecodeJSON([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"company"}, root.Keys())

	company, ok := root.Object("company")
	require.True(t, ok)

	props, ok := company.Object("properties")
	require.True(t, ok)
	assert.Equal(t, []string{"name", "description", "employees"}, props.Keys())

	employees, _ := props.Object("employees")
	typ, ok := employees.String("type")
	require.True(t, ok)
	assert.Equal(t, "nested", typ)
}

func TestDecodeJSON_Scalars(t *testing.T) {
	root, err := DecodeJSON([]byte(`{"s": "x", "b": true, "n": 1.5, "z": null, "l": [1, "a", {"k": false}]}`))
	require.NoError(t, err)

	v, _ := root.Get("s")
	assert.Equal(t, "x", v)
	v, _ = root.Get("b")
	assert.Equal(t, true, v)
	v, _ = root.Get("n")
	assert.Equal(t, Number("1.5"), v)
	v, ok := root.Get("z")
	assert.True(t, ok)
	assert.Nil(t, v)

	v, _ = root.Get("l")
	list, ok := v.(List)
	require.True(t, ok)
	require.Len(t, list, 3)
	assert.Equal(t, Number("1"), list[0])
	assert.Equal(t, CategoryObject, CategoryOf(list[2]))
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an object", `[1, 2]`},
		{"scalar root", `"x"`},
		{"truncated", `{"a": {"b": 1}`},
		{"duplicate key", `{"a": 1, "a": 2}`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.data))
			require.Error(t, err)

			var de *DecodeError
			assert.True(t, errors.As(err, &de), "expected *DecodeError, got %T", err)
		})
	}
}

func TestDecodeJSON_DuplicateKeyIsWrapped(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"m": {"properties": {"a": {}, "a": {}}}}`))
	require.ErrorIs(t, err, ErrDuplicateKey)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "m.properties", de.Path)
}

func TestDecodeYAML_PreservesOrder(t *testing.T) {
	data := `
restaurant:
  properties:
    zeta:
      type: keyword
    location:
      type: geo_point
      lat_lon: true
    alpha:
      type: long
`
	root, err := DecodeYAML([]byte(data))
	require.NoError(t, err)

	restaurant, ok := root.Object("restaurant")
	require.True(t, ok)
	props, ok := restaurant.Object("properties")
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "location", "alpha"}, props.Keys())

	location, _ := props.Object("location")
	v, _ := location.Get("lat_lon")
	assert.Equal(t, true, v)
}

func TestDecodeYAML_AliasesAndScalars(t *testing.T) {
	data := `
base: &kw
  type: keyword
copy: *kw
count: 3
ratio: 0.5
none: ~
tags: [a, b]
`
	root, err := DecodeYAML([]byte(data))
	require.NoError(t, err)

	cp, ok := root.Object("copy")
	require.True(t, ok)
	typ, _ := cp.String("type")
	assert.Equal(t, "keyword", typ)

	v, _ := root.Get("count")
	assert.Equal(t, Number("3"), v)
	v, _ = root.Get("ratio")
	assert.Equal(t, Number("0.5"), v)
	v, _ = root.Get("none")
	assert.Nil(t, v)
	v, _ = root.Get("tags")
	assert.Equal(t, List{"a", "b"}, v)
}

func TestDecodeYAML_Errors(t *testing.T) {
	for _, data := range []string{"", "- a\n- b\n", "a: [\n", "a: 1\na: 2\n"} {
		_, err := DecodeYAML([]byte(data))
		assert.Error(t, err, "input %q", data)
	}
}

func TestFromMap_SortsKeys(t *testing.T) {
	o := FromMap(map[string]any{
		"b": map[string]any{"y": 1, "x": 2},
		"a": []any{map[string]any{"k": "v"}},
		"c": "leaf",
	})

	assert.Equal(t, []string{"a", "b", "c"}, o.Keys())

	b, ok := o.Object("b")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, b.Keys())

	v, _ := o.Get("a")
	list, ok := v.(List)
	require.True(t, ok)
	assert.Equal(t, CategoryObject, CategoryOf(list[0]))
}

func TestNewObject_DuplicateKey(t *testing.T) {
	_, err := NewObject(Entry{Key: "a", Value: 1}, Entry{Key: "a", Value: 2})
	require.ErrorIs(t, err, ErrDuplicateKey)

	assert.Panics(t, func() {
		MustObject(Entry{Key: "a"}, Entry{Key: "a"})
	})
}

func TestObject_NilSafe(t *testing.T) {
	var o *Object

	assert.Equal(t, 0, o.Len())
	assert.Nil(t, o.Entries())
	assert.False(t, o.Has("x"))
	assert.Equal(t, CategoryNull, CategoryOf(o))
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	in := `{"z":{"type":"long"},"a":[1,"x",true,null],"m":{"b":2.5,"a":false}}`

	root, err := DecodeJSON([]byte(in))
	require.NoError(t, err)

	out, err := EncodeJSON(root)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "object", CategoryObject.String())
	assert.Equal(t, "list", CategoryOf(List{}).String())
	assert.Equal(t, "scalar", CategoryOf("x").String())
	assert.Equal(t, "null", CategoryOf(nil).String())
}
