// Package filter prunes a field tree with include and exclude glob patterns
// matched against full paths.
//
// Pattern syntax is that of github.com/gobwas/glob without separators:
// '*' matches any run of characters including dots, '?' a single
// character, plus [...] classes and {a,b} alternatives.
//
// Rules:
//   - exclude is top-down: an excluded field drops with its whole subtree
//   - a field matching an include pattern keeps its subtree (minus excludes)
//   - a field not matching is kept as a pass-through while a descendant survives
//   - an empty include set keeps everything not excluded
//   - exclude wins over include; the root is always kept
package filter
