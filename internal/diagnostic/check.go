package diagnostic

import (
	"fmt"
	"strconv"
	"strings"

	"fieldmap/internal/field"
	"fieldmap/internal/typo"
)

// CheckFields reports every requested path that does not exist in root.
// Paths with a plausible correction are errors carrying the suggestion;
// the others are warnings, since they may be added at runtime.
func CheckFields(root *field.Field, requested []string, opts ...typo.Option) *Diagnostics {
	finder := typo.NewFinder(root, opts...)
	corrections := finder.Find(requested)

	res := &Diagnostics{}
	res.Merge(*FromCorrections(root.Name(), corrections))

	seen := make(map[string]struct{})

	for _, path := range finder.Unknown(requested) {
		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}

		if _, ok := corrections.Lookup(path); ok {
			continue
		}

		res.AddWarning(CodeUnknownField,
			fmt.Sprintf("field %q not found in mapping", path),
			root.Name(), path)
	}

	return res
}

// FromCorrections turns typo corrections into error diagnostics. An
// ambiguous correction carries all its alternatives as suggestions.
func FromCorrections(mapping string, corrections typo.Corrections) *Diagnostics {
	res := &Diagnostics{}

	for _, c := range corrections {
		if len(c.Alternatives) > 1 {
			res.AddError(CodeUnknownField,
				fmt.Sprintf("field %q not found in mapping; did you mean one of %s?", c.Requested, quoteList(c.Alternatives)),
				mapping, c.Requested, c.Alternatives...)

			continue
		}

		res.AddError(CodeUnknownField,
			fmt.Sprintf("field %q not found in mapping; did you mean %q?", c.Requested, c.Suggested),
			mapping, c.Requested, c.Suggested)
	}

	return res
}

func quoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, it := range items {
		quoted = append(quoted, strconv.Quote(it))
	}

	return strings.Join(quoted, ", ")
}

// FilteredFields notes every path of original missing from filtered.
func FilteredFields(original, filtered *field.Field) *Diagnostics {
	res := &Diagnostics{}
	kept := make(map[string]struct{})

	for _, p := range field.Paths(filtered) {
		kept[p] = struct{}{}
	}

	_ = field.Walk(original, func(path string, _ *field.Field) error {
		if _, ok := kept[path]; ok {
			return nil
		}

		res.AddInfo(CodeFilteredField, "field removed by filter", original.Name(), path)

		// the subtree is gone as well; report its top only
		return field.SkipChildren
	})

	return res
}
