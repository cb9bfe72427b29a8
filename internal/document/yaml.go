package document

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const formatYAML = "yaml"

// DecodeYAML decodes a YAML document whose root is a mapping, keeping keys
// in declaration order. Aliases are resolved; tags decide scalar types.
func DecodeYAML(data []byte) (*Object, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Format: formatYAML, Err: err}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &DecodeError{Format: formatYAML, Err: errors.New("empty document")}
	}

	v, err := decodeYAMLNode(doc.Content[0], "")
	if err != nil {
		return nil, err
	}

	root, ok := v.(*Object)
	if !ok {
		return nil, &DecodeError{Format: formatYAML, Err: fmt.Errorf("root must be a mapping, got %s", CategoryOf(v))}
	}

	return root, nil
}

func decodeYAMLNode(node *yaml.Node, path string) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeYAMLNode(node.Alias, path)
	case yaml.MappingNode:
		o := &Object{}

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &DecodeError{Format: formatYAML, Path: path, Err: fmt.Errorf("line %d: non-scalar key", keyNode.Line)}
			}

			v, err := decodeYAMLNode(valNode, childPath(path, keyNode.Value))
			if err != nil {
				return nil, err
			}

			if err := o.add(keyNode.Value, v); err != nil {
				return nil, &DecodeError{Format: formatYAML, Path: path, Err: err}
			}
		}

		return o, nil
	case yaml.SequenceNode:
		list := make(List, 0, len(node.Content))

		for i, item := range node.Content {
			v, err := decodeYAMLNode(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}

			list = append(list, v)
		}

		return list, nil
	case yaml.ScalarNode:
		return decodeYAMLScalar(node, path)
	default:
		return nil, &DecodeError{Format: formatYAML, Path: path, Err: fmt.Errorf("line %d: unexpected node kind %v", node.Line, node.Kind)}
	}
}

func decodeYAMLScalar(node *yaml.Node, path string) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, &DecodeError{Format: formatYAML, Path: path, Err: err}
		}

		return b, nil
	case "!!int", "!!float":
		return Number(node.Value), nil
	default:
		return node.Value, nil
	}
}
