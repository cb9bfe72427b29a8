package mapping

import (
	"fieldmap/internal/document"
	"fieldmap/internal/field"
)

// Render turns a tree back into a mapping document that Parse accepts.
// Objects with children are written without a type, nested fields always
// with properties, unsupported fields as empty bodies. Duplicate sibling names cannot be represented and fail
// with document.ErrDuplicateKey.
func Render(root *field.Field) (*document.Object, error) {
	body, err := renderField(root)
	if err != nil {
		return nil, err
	}

	return document.NewObject(document.Entry{Key: root.Name(), Value: body})
}

func renderField(f *field.Field) (*document.Object, error) {
	var entries []document.Entry

	switch {
	case f.Kind() == field.KindUnsupported:
	case f.Kind() == field.KindObject && !f.IsLeaf():
	default:
		entries = append(entries, document.Entry{Key: keyType, Value: f.Kind().String()})
	}

	// nested always declares properties, even when empty
	if f.Kind() == field.KindNested || (f.Kind() == field.KindObject && !f.IsLeaf()) {
		props := make([]document.Entry, 0, f.Len())

		for _, c := range f.Children() {
			body, err := renderField(c)
			if err != nil {
				return nil, err
			}

			props = append(props, document.Entry{Key: c.Name(), Value: body})
		}

		obj, err := document.NewObject(props...)
		if err != nil {
			return nil, err
		}

		entries = append(entries, document.Entry{Key: keyProperties, Value: obj})
	}

	return document.NewObject(entries...)
}
