package match

// Distance computes the optimal string alignment distance: the minimum
// number of single-rune insertions, deletions and substitutions, with the
// transposition of two adjacent runes counted as one edit, so "ulr" is one
// edit away from "url". No substring is edited more than once.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Transpositions look two rows back, so keep three rows.
	prev2 := make([]int, len(ra)+1)
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,
				curr[i-1]+1,
				prev[i-1]+cost,
			)

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				curr[i] = min(curr[i], prev2[i-2]+1)
			}
		}

		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(ra)]
}

// Similarity computes a normalized score between 0 and 1: 1 - Distance
// divided by the longer rune length. 1.0 means identical strings.
func Similarity(a, b string) float64 {
	return normalize(Distance(a, b), a, b)
}

func normalize(distance int, a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}
