package field

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator separates names in a full path.
const PathSeparator = "."

// JoinPath appends name to a full path prefix.
func JoinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + PathSeparator + name
}

// SplitPath splits a full path into its segments.
// Supports: "name", "links.url", "employees.address.city".
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var segments []string

	for part := range strings.SplitSeq(path, PathSeparator) {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		segments = append(segments, part)
	}

	return segments, nil
}

// WalkFunc is called for every descendant with its full path.
type WalkFunc func(path string, f *Field) error

// SkipChildren can be returned by a WalkFunc to skip the subtree of the
// current field.
var SkipChildren = errors.New("skip children")

// Walk visits every descendant of root depth-first, in declaration order.
// The root itself is not visited; its name is not part of any path.
func Walk(root *Field, fn WalkFunc) error {
	return walk("", root, fn)
}

func walk(prefix string, f *Field, fn WalkFunc) error {
	for _, c := range f.children {
		path := JoinPath(prefix, c.name)

		err := fn(path, c)
		if errors.Is(err, SkipChildren) {
			continue
		}

		if err != nil {
			return err
		}

		if err := walk(path, c, fn); err != nil {
			return err
		}
	}

	return nil
}

// Paths returns the full path of every descendant of root in walk order.
func Paths(root *Field) []string {
	var paths []string

	_ = Walk(root, func(path string, _ *Field) error {
		paths = append(paths, path)
		return nil
	})

	return paths
}

// Lookup returns the descendant at the given full path, or nil.
// With duplicate sibling names the first one in declaration order wins.
func Lookup(root *Field, path string) *Field {
	segments, err := SplitPath(path)
	if err != nil {
		return nil
	}

	current := root
	for _, seg := range segments {
		var next *Field

		for _, c := range current.children {
			if c.name == seg {
				next = c
				break
			}
		}

		if next == nil {
			return nil
		}

		current = next
	}

	return current
}
