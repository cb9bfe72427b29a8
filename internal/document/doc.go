// Package document provides the generic ordered key/value document that the
// mapping parser consumes, and decoders that build it from JSON and YAML
// while keeping the declared key order.
//
// Values held by a document are one of:
//   - *Object: an ordered mapping of string keys to values
//   - List: a sequence of values
//   - string, bool, Number: scalar leaves
//   - nil: an explicit null
package document
