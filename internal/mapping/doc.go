// Package mapping builds a field.Field tree from an index mapping document.
//
// # Document shape
//
// A mapping document holds a single top-level name whose body declares the
// fields under "properties":
//
//	{
//	  "company": {
//	    "properties": {
//	      "name":      {"type": "string"},
//	      "employees": {
//	        "type": "nested",
//	        "properties": {
//	          "age": {"type": "long"}
//	        }
//	      }
//	    }
//	  }
//	}
//
// The top-level name becomes the root field. Every entry of a "properties"
// object becomes a child, in declaration order.
//
// # Classification
//
//   - "type" present: classified with field.ParseKind
//   - "type" absent, "properties" present: object
//   - "type" absent, no "properties": unsupported
//
// Object and nested fields recurse into "properties"; nested fields must
// declare them. Leaf kinds ignore configuration sub-structures such as
// multi-field "fields", geo_point flags or completion options.
//
// The legacy multi_field type wraps its real definition under "fields"; its
// kind is taken from the sub-field named like the field, else the first one.
//
// Unsupported fields (unknown types, geo_shape, attachment, binary, ...)
// become childless leaves, or are dropped with SkipUnsupported.
//
// # Index responses
//
// ParseIndex unwraps "GET _mapping" responses, both the typed form
// {index: {mappings: {type: {...}}}} and the typeless form
// {index: {mappings: {properties: {...}}}}.
//
// Render writes a tree back as a mapping document.
package mapping
