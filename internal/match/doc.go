// Package match provides edit distances, normalized similarity and
// candidate ranking for fuzzy field-name matching.
//
// Key functions:
//   - Distance: edit distance counting adjacent transpositions (optimal string alignment)
//   - Similarity: Distance normalized by the longer name, in [0, 1]
//   - Rank: ranks candidate names against a query
package match
