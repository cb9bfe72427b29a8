// Package profile loads inspection profiles: YAML files naming the field
// paths to check for typos, the include/exclude patterns to filter a
// mapping with, and the parser options to use.
//
// Example:
//
//	version: "1"
//	fields: [link.url, nam]
//	include: "*a*e"
//	exclude: nested.bar
//	skip_unsupported: true
//	threshold: 0.6
package profile
