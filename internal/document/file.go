package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile reads and decodes a document from disk. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func ReadFile(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	var obj *Object

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		obj, err = DecodeYAML(data)
	default:
		obj, err = DecodeJSON(data)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	return obj, nil
}
