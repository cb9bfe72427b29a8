package typo

import (
	"slices"
	"strings"

	"fieldmap/internal/field"
	"fieldmap/internal/match"
)

// Correction pairs a requested path with the real path suggested for it.
type Correction struct {
	Requested string `json:"requested"`
	Suggested string `json:"suggested"`
	// Alternatives lists the closest candidates, Suggested first, when
	// another one scores almost as well. Nil otherwise.
	Alternatives []string `json:"alternatives,omitempty"`
}

// Corrections lists suggestions in the order the paths were requested.
type Corrections []Correction

// Requested returns the requested paths that need a correction.
func (c Corrections) Requested() []string {
	out := make([]string, 0, len(c))
	for _, corr := range c {
		out = append(out, corr.Requested)
	}

	return out
}

// Suggested returns the suggested real paths, positionally matching Requested.
func (c Corrections) Suggested() []string {
	out := make([]string, 0, len(c))
	for _, corr := range c {
		out = append(out, corr.Suggested)
	}

	return out
}

// Lookup returns the suggestion for a requested path.
func (c Corrections) Lookup(requested string) (string, bool) {
	for _, corr := range c {
		if corr.Requested == requested {
			return corr.Suggested, true
		}
	}

	return "", false
}

// metaFields are Elasticsearch document meta fields. They never appear in a
// user mapping and are never typos.
var metaFields = map[string]struct{}{
	"_id": {}, "_uid": {}, "_type": {}, "_index": {}, "_source": {},
	"_routing": {}, "_parent": {}, "_all": {}, "_field_names": {},
	"_ttl": {}, "_timestamp": {}, "_version": {}, "_score": {},
	"_seq_no": {}, "_primary_term": {}, "_ignored": {},
}

// IsMetaField reports whether name is an Elasticsearch meta field.
func IsMetaField(name string) bool {
	_, ok := metaFields[name]
	return ok
}

const (
	// ambiguityMargin is the similarity gap under which the runner-up
	// candidates are reported next to the best one.
	ambiguityMargin = 0.1
	maxAlternatives = 3
)

// Option configures a Finder.
type Option func(*Finder)

// WithThreshold sets the minimum similarity (0-1) for a suggestion.
func WithThreshold(threshold float64) Option {
	return func(f *Finder) { f.threshold = threshold }
}

// WithFold compares names case-insensitively and ignoring '_', '-' and ' '.
// Exact names still win.
func WithFold() Option {
	return func(f *Finder) { f.rank.Fold = true }
}

// fallbackEntry is a whole-path match target: a full path, or the leaf name
// of a nested path standing for that path.
type fallbackEntry struct {
	key  string
	path string
}

// Finder suggests corrections against a fixed tree. It is read-only after
// NewFinder and safe for concurrent use.
type Finder struct {
	root      *field.Field
	threshold float64
	rank      match.Options

	paths    map[string]struct{}
	fallback []fallbackEntry
	keys     []string
}

// NewFinder indexes the paths of root.
func NewFinder(root *field.Field, opts ...Option) *Finder {
	f := &Finder{
		root:      root,
		threshold: match.DefaultMinSimilarity,
		paths:     make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(f)
	}

	all := field.Paths(root)
	for _, p := range all {
		f.paths[p] = struct{}{}
		f.fallback = append(f.fallback, fallbackEntry{key: p, path: p})
	}

	// Leaf names are secondary: they never shadow a full path, and the
	// first path declaring a leaf name keeps it.
	aliased := make(map[string]struct{})

	for _, p := range all {
		i := strings.LastIndex(p, field.PathSeparator)
		if i < 0 {
			continue
		}

		leaf := p[i+1:]
		if _, ok := f.paths[leaf]; ok {
			continue
		}

		if _, ok := aliased[leaf]; ok {
			continue
		}

		aliased[leaf] = struct{}{}
		f.fallback = append(f.fallback, fallbackEntry{key: leaf, path: p})
	}

	f.keys = make([]string, 0, len(f.fallback))
	for _, e := range f.fallback {
		f.keys = append(f.keys, e.key)
	}

	return f
}

// Find returns the corrections for the requested paths, or nil when none of
// them needs one. Valid paths, meta fields and paths without a plausible
// correction are left out. Repeated paths are reported once.
func Find(requested []string, root *field.Field, opts ...Option) Corrections {
	return NewFinder(root, opts...).Find(requested)
}

// Find is the method form of the package-level Find.
func (f *Finder) Find(requested []string) Corrections {
	var out Corrections

	seen := make(map[string]struct{}, len(requested))

	for _, path := range requested {
		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}

		if suggested, alternatives, ok := f.suggest(path); ok {
			out = append(out, Correction{Requested: path, Suggested: suggested, Alternatives: alternatives})
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// Suggest returns the best real path for a single requested path. It
// returns false for valid paths, meta fields and paths with no plausible
// correction.
func (f *Finder) Suggest(path string) (string, bool) {
	suggested, _, ok := f.suggest(path)
	return suggested, ok
}

func (f *Finder) suggest(path string) (string, []string, bool) {
	if f.Exists(path) || IsMetaField(path) {
		return "", nil, false
	}

	if suggested, alternatives, ok := f.walk(path); ok {
		return suggested, alternatives, true
	}

	ranked := match.Rank(path, f.keys, f.rank).AboveThreshold(f.threshold)

	best := ranked.Best()
	if best == nil {
		return "", nil, false
	}

	var alternatives []string

	for _, c := range contenders(ranked) {
		if p := f.fallback[c.Index].path; !slices.Contains(alternatives, p) {
			alternatives = append(alternatives, p)
		}
	}

	// leaf aliases may collapse onto a single path
	if len(alternatives) < 2 {
		alternatives = nil
	}

	return f.fallback[best.Index].path, alternatives, true
}

// Exists reports whether path is a real full path of the tree.
func (f *Finder) Exists(path string) bool {
	_, ok := f.paths[path]
	return ok
}

// Unknown returns the requested paths that are neither real paths nor meta
// fields, whether or not a correction exists for them.
func (f *Finder) Unknown(requested []string) []string {
	var out []string

	for _, path := range requested {
		if !f.Exists(path) && !IsMetaField(path) {
			out = append(out, path)
		}
	}

	return out
}

// walk follows the requested segments down the tree, picking the best
// sibling name at every depth. Alternatives are reported when the last
// segment is ambiguous.
func (f *Finder) walk(path string) (string, []string, bool) {
	segments, err := field.SplitPath(path)
	if err != nil {
		return "", nil, false
	}

	level := f.root
	chosen := make([]string, 0, len(segments))

	var ranked match.CandidateList

	for _, seg := range segments {
		children := level.Children()
		if len(children) == 0 {
			return "", nil, false
		}

		names := make([]string, 0, len(children))
		for _, c := range children {
			names = append(names, c.Name())
		}

		ranked = match.Rank(seg, names, f.rank).AboveThreshold(f.threshold)

		best := ranked.Best()
		if best == nil {
			return "", nil, false
		}

		chosen = append(chosen, best.Name)
		level = children[best.Index]
	}

	var alternatives []string

	prefix := strings.Join(chosen[:len(chosen)-1], field.PathSeparator)
	for _, c := range contenders(ranked) {
		alternatives = append(alternatives, field.JoinPath(prefix, c.Name))
	}

	return strings.Join(chosen, field.PathSeparator), alternatives, true
}

// contenders returns the leading candidates scoring within ambiguityMargin
// of the best one, or nil when the best one is a clear winner.
func contenders(ranked match.CandidateList) match.CandidateList {
	if !ranked.IsAmbiguous(ambiguityMargin) {
		return nil
	}

	top := ranked.Top(maxAlternatives)
	for i, c := range top {
		if top[0].Similarity-c.Similarity >= ambiguityMargin {
			return top[:i]
		}
	}

	return top
}
