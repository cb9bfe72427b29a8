package mapping

import (
	"fmt"

	"fieldmap/internal/document"
	"fieldmap/internal/field"
)

// LoadFile reads a mapping file (JSON, or YAML for .yaml/.yml) and parses it.
func LoadFile(path string, opts ...Option) (*field.Field, error) {
	doc, err := document.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := Parse(doc, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping %s: %w", path, err)
	}

	return root, nil
}

// LoadIndexFile reads an index mapping response file and parses every
// mapping it holds.
func LoadIndexFile(path string, opts ...Option) ([]*field.Field, error) {
	doc, err := document.ReadFile(path)
	if err != nil {
		return nil, err
	}

	roots, err := ParseIndex(doc, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index mapping %s: %w", path, err)
	}

	return roots, nil
}

// ParseJSON decodes and parses a JSON mapping document.
func ParseJSON(data []byte, opts ...Option) (*field.Field, error) {
	doc, err := document.DecodeJSON(data)
	if err != nil {
		return nil, err
	}

	return Parse(doc, opts...)
}

// ParseYAML decodes and parses a YAML mapping document.
func ParseYAML(data []byte, opts ...Option) (*field.Field, error) {
	doc, err := document.DecodeYAML(data)
	if err != nil {
		return nil, err
	}

	return Parse(doc, opts...)
}
