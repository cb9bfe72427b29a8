package mapping

import (
	"fmt"
	"strings"

	"fieldmap/internal/document"
	"fieldmap/internal/field"
)

const (
	keyType       = "type"
	keyProperties = "properties"
	keyFields     = "fields"
	keyMappings   = "mappings"
)

// Option configures the parser.
type Option func(*parser)

// SkipUnsupported drops unsupported fields instead of keeping them as
// opaque leaves.
func SkipUnsupported() Option {
	return func(p *parser) { p.skipUnsupported = true }
}

type parser struct {
	skipUnsupported bool
}

func newParser(opts []Option) *parser {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse builds the field tree of a mapping document. The document must hold
// exactly one top-level name. On error no tree is returned.
func Parse(doc *document.Object, opts ...Option) (*field.Field, error) {
	if doc.Len() != 1 {
		return nil, malformed("", "expected a single top-level mapping, found %d keys", doc.Len())
	}

	entry := doc.Entries()[0]

	return newParser(opts).parseRoot(entry.Key, entry.Value)
}

func (p *parser) parseRoot(name string, value any) (*field.Field, error) {
	body, ok := value.(*document.Object)
	if !ok {
		return nil, malformed(name, "expected an object, got %s", document.CategoryOf(value))
	}

	kind, body, err := p.classify(name, name, body)
	if err != nil {
		return nil, err
	}

	// A root without any type indicator is the mapping itself.
	if kind == field.KindUnsupported && !body.Has(keyType) {
		kind = field.KindObject
	}

	return p.build(name, name, kind, body)
}

func (p *parser) parseField(path, name string, value any) (*field.Field, error) {
	body, ok := value.(*document.Object)
	if !ok {
		return nil, malformed(path, "field definition must be an object, got %s", document.CategoryOf(value))
	}

	kind, body, err := p.classify(path, name, body)
	if err != nil {
		return nil, err
	}

	if kind == field.KindUnsupported && p.skipUnsupported {
		return nil, nil
	}

	return p.build(path, name, kind, body)
}

func (p *parser) build(path, name string, kind field.Kind, body *document.Object) (*field.Field, error) {
	if !kind.IsCompound() {
		return field.New(name, kind), nil
	}

	children, err := p.parseProperties(path, body, kind == field.KindNested)
	if err != nil {
		return nil, err
	}

	return field.New(name, kind, children...), nil
}

// classify returns the kind of a field body, and the body holding its
// definition (which differs from the input for multi_field wrappers).
func (p *parser) classify(path, name string, body *document.Object) (field.Kind, *document.Object, error) {
	raw, ok := body.Get(keyType)
	if !ok {
		if body.Has(keyProperties) {
			return field.KindObject, body, nil
		}

		return field.KindUnsupported, body, nil
	}

	typ, ok := raw.(string)
	if !ok {
		return 0, nil, malformed(path, "type must be a string, got %s", document.CategoryOf(raw))
	}

	kind := field.ParseKind(typ)
	if kind != field.KindMultiField {
		return kind, body, nil
	}

	return p.unwrapMultiField(path, name, body)
}

// unwrapMultiField looks through the "fields" wrapper of a legacy
// multi_field and classifies its default sub-field.
func (p *parser) unwrapMultiField(path, name string, body *document.Object) (field.Kind, *document.Object, error) {
	raw, ok := body.Get(keyFields)
	if !ok {
		return 0, nil, malformed(path, "multi_field requires %q", keyFields)
	}

	fields, ok := raw.(*document.Object)
	if !ok || fields.Len() == 0 {
		return 0, nil, malformed(path, "multi_field %q must be a non-empty object", keyFields)
	}

	sub, ok := fields.Get(name)
	subPath := path + "." + keyFields + "." + name

	if !ok {
		first := fields.Entries()[0]
		sub = first.Value
		subPath = path + "." + keyFields + "." + first.Key
	}

	subBody, ok := sub.(*document.Object)
	if !ok {
		return 0, nil, malformed(subPath, "field definition must be an object, got %s", document.CategoryOf(sub))
	}

	// classify unwraps again should the sub-field be a multi_field itself
	return p.classify(subPath, name, subBody)
}

func (p *parser) parseProperties(path string, body *document.Object, required bool) ([]*field.Field, error) {
	raw, ok := body.Get(keyProperties)
	if !ok {
		if required {
			return nil, malformed(path, "nested field requires %q", keyProperties)
		}

		return nil, nil
	}

	props, ok := raw.(*document.Object)
	if !ok {
		return nil, malformed(path, "%q must be an object, got %s", keyProperties, document.CategoryOf(raw))
	}

	children := make([]*field.Field, 0, props.Len())

	for _, e := range props.Entries() {
		child, err := p.parseField(field.JoinPath(path, e.Key), e.Key, e.Value)
		if err != nil {
			return nil, err
		}

		if child != nil {
			children = append(children, child)
		}
	}

	return children, nil
}

// ParseIndex builds one field tree per mapping found in an index mapping
// response. Typed mappings yield a root per type, named after the type;
// typeless mappings yield a root named after the index.
func ParseIndex(doc *document.Object, opts ...Option) ([]*field.Field, error) {
	p := newParser(opts)

	var roots []*field.Field

	for _, index := range doc.Entries() {
		body, ok := index.Value.(*document.Object)
		if !ok {
			return nil, malformed(index.Key, "expected an object, got %s", document.CategoryOf(index.Value))
		}

		mappings, ok := body.Object(keyMappings)
		if !ok {
			return nil, malformed(index.Key, "missing %q object", keyMappings)
		}

		if isTypeless(mappings) {
			root, err := p.parseRoot(index.Key, mappings)
			if err != nil {
				return nil, err
			}

			roots = append(roots, root)

			continue
		}

		for _, typ := range mappings.Entries() {
			// _default_ and other underscore entries are not types
			if strings.HasPrefix(typ.Key, "_") {
				continue
			}

			root, err := p.parseRoot(typ.Key, typ.Value)
			if err != nil {
				return nil, fmt.Errorf("index %s: %w", index.Key, err)
			}

			roots = append(roots, root)
		}
	}

	return roots, nil
}

// mappingSettings are keys a typeless mapping may hold next to, or instead
// of, its properties.
var mappingSettings = map[string]struct{}{
	"dynamic":              {},
	"dynamic_templates":    {},
	"dynamic_date_formats": {},
	"date_detection":       {},
	"numeric_detection":    {},
	"enabled":              {},
	"subobjects":           {},
	"runtime":              {},
}

// isTypeless reports whether a "mappings" object is the mapping itself
// rather than a set of named types. Typed mappings only hold type names.
func isTypeless(mappings *document.Object) bool {
	if mappings.Len() == 0 || mappings.Has(keyProperties) {
		return true
	}

	for _, key := range mappings.Keys() {
		if _, ok := mappingSettings[key]; ok {
			return true
		}

		// meta fields such as _source, _meta or _routing
		if strings.HasPrefix(key, "_") && key != "_default_" {
			return true
		}
	}

	return false
}
