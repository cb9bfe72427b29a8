// Package diagnostic provides structured warnings, errors and notes for
// callers validating field paths against a mapping.
//
// Key capabilities:
//   - Unknown field errors carrying the suggested correction
//   - Unknown field warnings when no plausible correction exists
//   - Notes for fields removed by include/exclude filtering
package diagnostic
