package filter

import (
	"fmt"

	"github.com/gobwas/glob"

	"fieldmap/internal/field"
)

// InvalidPatternError reports a pattern that could not be compiled.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

type pattern struct {
	source string
	glob   glob.Glob
}

func compile(patterns []string) ([]pattern, error) {
	out := make([]pattern, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: p, Err: err}
		}

		out = append(out, pattern{source: p, glob: g})
	}

	return out, nil
}

func matchAny(patterns []pattern, path string) bool {
	for _, p := range patterns {
		if p.glob.Match(path) {
			return true
		}
	}

	return false
}

// Filter holds compiled include and exclude patterns. It is read-only after
// New and safe for concurrent use.
type Filter struct {
	include []pattern
	exclude []pattern
}

// New compiles the include and exclude patterns.
func New(include, exclude []string) (*Filter, error) {
	inc, err := compile(include)
	if err != nil {
		return nil, err
	}

	exc, err := compile(exclude)
	if err != nil {
		return nil, err
	}

	return &Filter{include: inc, exclude: exc}, nil
}

// Apply filters root with the given patterns. See Filter.Apply.
func Apply(root *field.Field, include, exclude []string) (*field.Field, error) {
	f, err := New(include, exclude)
	if err != nil {
		return nil, err
	}

	return f.Apply(root), nil
}

// Apply returns a new tree holding the retained fields of root. The root
// name and kind are kept; no node is shared with the input.
func (f *Filter) Apply(root *field.Field) *field.Field {
	return field.New(root.Name(), root.Kind(), f.filter(root, "", len(f.include) == 0)...)
}

// filter returns fresh copies of the retained children of parent. included
// is true once an ancestor matched an include pattern.
func (f *Filter) filter(parent *field.Field, prefix string, included bool) []*field.Field {
	var out []*field.Field

	for _, c := range parent.Children() {
		path := field.JoinPath(prefix, c.Name())

		if matchAny(f.exclude, path) {
			continue
		}

		if included || matchAny(f.include, path) {
			out = append(out, field.New(c.Name(), c.Kind(), f.filter(c, path, true)...))
			continue
		}

		// pass-through only while some descendant survives
		if kept := f.filter(c, path, false); len(kept) > 0 {
			out = append(out, field.New(c.Name(), c.Kind(), kept...))
		}
	}

	return out
}

// Keep reports whether a full path would be retained as a matched field:
// neither it nor an ancestor is excluded, and it or an ancestor is included.
// Pass-through ancestors are not matched fields and return false unless the
// include set is empty.
func (f *Filter) Keep(path string) bool {
	segments, err := field.SplitPath(path)
	if err != nil {
		return false
	}

	included := len(f.include) == 0
	prefix := ""

	for _, seg := range segments {
		prefix = field.JoinPath(prefix, seg)

		if matchAny(f.exclude, prefix) {
			return false
		}

		if !included && matchAny(f.include, prefix) {
			included = true
		}
	}

	return included
}

// Paths returns the full paths retained by Apply, in walk order.
func (f *Filter) Paths(root *field.Field) []string {
	return field.Paths(f.Apply(root))
}
