package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap/internal/field"
	"fieldmap/internal/typo"
)

func artistsTree() *field.Field {
	return field.New("artiststimestamp", field.KindObject,
		field.New("date", field.KindDate),
		field.New("links", field.KindObject,
			field.New("url", field.KindString),
		),
		field.New("name", field.KindString),
	)
}

func TestCheckFields(t *testing.T) {
	res := CheckFields(artistsTree(), []string{"name", "link.url", "_uid", "zzzzzz", "link.url"})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, CodeUnknownField, res.Errors[0].Code)
	assert.Equal(t, "link.url", res.Errors[0].FieldPath)
	assert.Equal(t, []string{"links.url"}, res.Errors[0].Suggestions)
	assert.Equal(t, "artiststimestamp", res.Errors[0].Mapping)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "zzzzzz", res.Warnings[0].FieldPath)
	assert.Empty(t, res.Warnings[0].Suggestions)

	assert.True(t, res.HasErrors())
	assert.False(t, res.IsValid())
	assert.EqualError(t, res.Error(),
		`[artiststimestamp] link.url: [unknown_field] field "link.url" not found in mapping; did you mean "links.url"?`)
}

func TestCheckFields_AllValid(t *testing.T) {
	res := CheckFields(artistsTree(), []string{"date", "links.url", "_id"})

	assert.True(t, res.IsValid())
	assert.NoError(t, res.Error())
	assert.Empty(t, res.All())
}

func TestFromCorrections(t *testing.T) {
	corrections := typo.Find([]string{"nam", "likn"}, artistsTree())

	res := FromCorrections("artiststimestamp", corrections)

	require.Len(t, res.Errors, 2)
	assert.Equal(t, []string{"name"}, res.Errors[0].Suggestions)
	assert.Equal(t, []string{"links"}, res.Errors[1].Suggestions)

	assert.True(t, FromCorrections("x", nil).IsValid())
}

func TestFilteredFields(t *testing.T) {
	original := artistsTree()
	filtered := field.New("artiststimestamp", field.KindObject,
		field.New("date", field.KindDate),
		field.New("name", field.KindString),
	)

	res := FilteredFields(original, filtered)

	require.Len(t, res.Infos, 1)
	assert.Equal(t, "links", res.Infos[0].FieldPath)
	assert.Equal(t, CodeFilteredField, res.Infos[0].Code)
	assert.True(t, res.IsValid())
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var d Diagnostics

	d.AddError("e", "error", "", "")
	d.AddWarning("w", "warning", "m", "")
	d.AddInfo("i", "info", "", "p")

	var other Diagnostics

	other.AddError("e2", "second", "", "")
	d.Merge(other)

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticError, all[1].Severity)
	assert.Equal(t, DiagnosticWarning, all[2].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{"message only", Diagnostic{Message: "msg"}, "msg"},
		{"with code", Diagnostic{Code: "c", Message: "msg"}, "[c] msg"},
		{"with path", Diagnostic{FieldPath: "a.b", Message: "msg"}, "a.b: msg"},
		{"full", Diagnostic{Mapping: "m", FieldPath: "a", Code: "c", Message: "msg"}, "[m] a: [c] msg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestCheckFields_Ambiguous(t *testing.T) {
	root := field.New("r", field.KindObject,
		field.New("bat", field.KindString),
		field.New("cat", field.KindString),
	)

	res := CheckFields(root, []string{"hat"})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"bat", "cat"}, res.Errors[0].Suggestions)
	assert.Equal(t, `field "hat" not found in mapping; did you mean one of "bat", "cat"?`, res.Errors[0].Message)
	assert.Empty(t, res.Warnings)
}
