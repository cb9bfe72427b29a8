package field

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Field is a node of the mapping tree. It has no mutators; a tree built with
// New is read-only and safe to share between goroutines.
type Field struct {
	name     string
	kind     Kind
	children []*Field
}

// New creates a Field owning a copy of the given children slice.
// Unsupported fields never carry children.
func New(name string, kind Kind, children ...*Field) *Field {
	f := &Field{name: name, kind: kind}
	if kind != KindUnsupported && len(children) > 0 {
		f.children = append([]*Field(nil), children...)
	}

	return f
}

// Name returns the local name of the field.
func (f *Field) Name() string { return f.name }

// Kind returns the data type of the field.
func (f *Field) Kind() Kind { return f.kind }

// Children returns the child fields in declaration order.
// The returned slice is a copy.
func (f *Field) Children() []*Field {
	if len(f.children) == 0 {
		return nil
	}

	return append([]*Field(nil), f.children...)
}

// Len returns the number of children.
func (f *Field) Len() int { return len(f.children) }

// Child returns the i-th child.
func (f *Field) Child(i int) *Field { return f.children[i] }

// IsLeaf returns true if the field has no children.
func (f *Field) IsLeaf() bool { return len(f.children) == 0 }

// String returns a compact one-line representation of the tree,
// e.g. "company(object)[name(string) employees(nested)[age(long)]]".
func (f *Field) String() string {
	var b strings.Builder
	f.write(&b)

	return b.String()
}

func (f *Field) write(b *strings.Builder) {
	fmt.Fprintf(b, "%s(%s)", f.name, f.kind)

	if len(f.children) == 0 {
		return
	}

	b.WriteByte('[')

	for i, c := range f.children {
		if i > 0 {
			b.WriteByte(' ')
		}

		c.write(b)
	}

	b.WriteByte(']')
}

// Clone returns a deep copy of the tree rooted at f.
func (f *Field) Clone() *Field {
	children := make([]*Field, 0, len(f.children))
	for _, c := range f.children {
		children = append(children, c.Clone())
	}

	return New(f.name, f.kind, children...)
}

// Equal reports whether two trees have the same names, kinds and
// children in the same order.
func Equal(a, b *Field) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.name != b.name || a.kind != b.kind || len(a.children) != len(b.children) {
		return false
	}

	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}

	return true
}

// Dump returns a detailed multi-line dump of the tree, for debugging.
func Dump(f *Field) string {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
	}

	return cfg.Sdump(f)
}
