package match

import (
	"sort"
)

// Candidate represents a real name considered as the correction of a query.
type Candidate struct {
	// Name is the candidate as it appears in the schema.
	Name string
	// Index is the position of the candidate in the input order; it breaks
	// ties so rankings follow declaration order.
	Index int

	// Scoring components
	Exact      bool    // Name equals the query
	Distance   int     // Optimal string alignment distance to the query
	Similarity float64 // Distance normalized to 0-1, higher is better
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Options tunes ranking.
type Options struct {
	// Fold compares Fold(name) instead of the raw names. An exact raw match
	// still outranks a folded one.
	Fold bool
}

// Rank scores every name against the query and returns the candidates
// sorted best first: exact matches, then higher similarity, then input order.
func Rank(query string, names []string, opts Options) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	q := query
	if opts.Fold {
		q = Fold(query)
	}

	for i, name := range names {
		n := name
		if opts.Fold {
			n = Fold(name)
		}

		d := Distance(q, n)

		candidates = append(candidates, Candidate{
			Name:       name,
			Index:      i,
			Exact:      name == query,
			Distance:   d,
			Similarity: normalize(d, q, n),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Exact matches come first regardless of score, then higher similarity,
// then lower input index for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Exact != c[j].Exact {
		return c[i].Exact
	}

	if c[i].Similarity != c[j].Similarity {
		return c[i].Similarity > c[j].Similarity
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns exact candidates and those whose similarity is at
// least the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Exact || cand.Similarity >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 || c[0].Exact {
		return false
	}

	return c[0].Similarity-c[1].Similarity < threshold
}

// DefaultMinSimilarity is the minimum similarity for a name to be offered as
// a correction. It accepts one or two edits on short names ("nam" for
// "name", "likn" for "links") and rejects unrelated ones ("_uid" for "url").
const DefaultMinSimilarity = 0.5
