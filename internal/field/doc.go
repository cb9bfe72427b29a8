// Package field provides the typed field tree built from an index mapping.
//
// Key types:
//   - Field: an immutable node with a name, a Kind and ordered children
//   - Kind: the closed set of field data types, see ParseKind
//
// Full paths are dot-joined names from the root (exclusive) down to a node;
// they are computed during traversal and never stored on the node.
package field
