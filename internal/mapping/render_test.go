package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap/internal/document"
	"fieldmap/internal/field"
	"fieldmap/internal/filter"
)

func TestRender_RoundTrip(t *testing.T) {
	fixtures := []string{
		"nested-mapping.json",
		"nested_arrays_mapping.json",
		"multi_level_field_with_same_name.json",
		"geo.json",
		"multi_field.json",
		"attachment.json",
	}

	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			root := loadFixture(t, name)

			doc, err := Render(root)
			require.NoError(t, err)

			back, err := Parse(doc)
			require.NoError(t, err)
			assert.True(t, field.Equal(root, back), "round trip mismatch:\n%s\n%s",
				field.Dump(root), field.Dump(back))
		})
	}
}

func TestRender_FilteredNestedRoundTrip(t *testing.T) {
	root := loadFixture(t, "nested-mapping.json")

	filtered, err := filter.Apply(root, []string{"employees"}, []string{"employees.*"})
	require.NoError(t, err)
	require.Equal(t, []string{"employees"}, field.Paths(filtered))

	doc, err := Render(filtered)
	require.NoError(t, err)

	data, err := document.EncodeJSON(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"company":{"properties":{"employees":{"type":"nested","properties":{}}}}}`, string(data))

	back, err := Parse(doc)
	require.NoError(t, err)
	assert.True(t, field.Equal(filtered, back), "round trip mismatch:\n%s\n%s",
		field.Dump(filtered), field.Dump(back))
}

func TestRender_Shape(t *testing.T) {
	root := field.New("r", field.KindObject,
		field.New("name", field.KindText),
		field.New("blob", field.KindUnsupported),
		field.New("empty", field.KindObject),
		field.New("items", field.KindNested, field.New("id", field.KindLong)),
	)

	doc, err := Render(root)
	require.NoError(t, err)

	data, err := document.EncodeJSON(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":{"properties":{
		"name":{"type":"text"},
		"blob":{},
		"empty":{"type":"object"},
		"items":{"type":"nested","properties":{"id":{"type":"long"}}}
	}}}`, string(data))
}

func TestRender_DuplicateSiblings(t *testing.T) {
	root := field.New("r", field.KindObject,
		field.New("a", field.KindText),
		field.New("a", field.KindLong),
	)

	_, err := Render(root)
	assert.ErrorIs(t, err, document.ErrDuplicateKey)
}
