// Package typo suggests real field paths for paths a user entered that do
// not exist in a mapping.
//
// A requested path is matched one segment at a time against the names of
// the siblings at that depth; an exact name always wins, otherwise the most
// similar name above the threshold is followed. When the walk finds no
// plausible name, the whole path is compared against every real path and
// against the leaf names of nested paths, so "ulr" can still suggest
// "links.url".
//
// Paths that already exist, and Elasticsearch meta fields such as "_uid",
// are never reported.
package typo
