package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	candidates := Rank("nam", []string{"date", "links", "name"}, Options{})

	require.Len(t, candidates, 3)

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "name", best.Name)
	assert.Equal(t, 2, best.Index)
	assert.Equal(t, 1, best.Distance)
	assert.InDelta(t, 0.75, best.Similarity, 0.0001)
	assert.False(t, best.Exact)
}

func TestRank_ExactAlwaysWins(t *testing.T) {
	candidates := Rank("ab", []string{"abc", "ab"}, Options{})

	require.Len(t, candidates, 2)
	assert.Equal(t, "ab", candidates[0].Name)
	assert.True(t, candidates[0].Exact)
}

func TestRank_ExactBeatsFoldedMatch(t *testing.T) {
	candidates := Rank("postDate", []string{"post_date", "postDate"}, Options{Fold: true})

	require.Len(t, candidates, 2)

	// both fold to the same string, only one is the raw name
	assert.Equal(t, "postDate", candidates[0].Name)
	assert.True(t, candidates[0].Exact)
	assert.Equal(t, 1.0, candidates[1].Similarity)
	assert.False(t, candidates[1].Exact)
}

func TestRank_TiesFollowInputOrder(t *testing.T) {
	candidates := Rank("cat", []string{"bat", "hat", "rat"}, Options{})

	require.Len(t, candidates, 3)
	assert.Equal(t, []string{"bat", "hat", "rat"},
		[]string{candidates[0].Name, candidates[1].Name, candidates[2].Name})
}

func TestRank_CaseSensitive(t *testing.T) {
	candidates := Rank("name", []string{"NAME", "nane"}, Options{})

	assert.Equal(t, "nane", candidates.Best().Name)
}

func TestRank_Empty(t *testing.T) {
	candidates := Rank("x", nil, Options{})

	assert.Empty(t, candidates)
	assert.Nil(t, candidates.Best())
	assert.False(t, candidates.IsAmbiguous(0.1))
}

func TestCandidateList_Sorting(t *testing.T) {
	candidates := CandidateList{
		{Name: "FieldA", Index: 0, Similarity: 0.5},
		{Name: "FieldC", Index: 2, Similarity: 0.9},
		{Name: "FieldB", Index: 1, Similarity: 0.9},
		{Name: "FieldD", Index: 3, Similarity: 0.1, Exact: true},
	}

	sortCandidates(candidates)

	expected := []string{"FieldD", "FieldB", "FieldC", "FieldA"}
	for i, name := range expected {
		assert.Equal(t, name, candidates[i].Name, "position %d", i)
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Name: "a", Similarity: 0.9},
		{Name: "b", Similarity: 0.5},
		{Name: "c", Similarity: 0.2},
		{Name: "d", Similarity: 0.0, Exact: true},
	}

	above := candidates.AboveThreshold(DefaultMinSimilarity)

	require.Len(t, above, 3)
	assert.Equal(t, "a", above[0].Name)
	assert.Equal(t, "b", above[1].Name)
	assert.Equal(t, "d", above[2].Name)
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	assert.Len(t, candidates.Top(2), 2)
	assert.Len(t, candidates.Top(5), 3)
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	near := CandidateList{{Name: "a", Similarity: 0.8}, {Name: "b", Similarity: 0.75}}
	assert.True(t, near.IsAmbiguous(0.1))

	distinct := CandidateList{{Name: "a", Similarity: 0.9}, {Name: "b", Similarity: 0.5}}
	assert.False(t, distinct.IsAmbiguous(0.1))

	exact := CandidateList{{Name: "a", Exact: true, Similarity: 1}, {Name: "b", Similarity: 1}}
	assert.False(t, exact.IsAmbiguous(0.1))
}

func sortCandidates(c CandidateList) {
	// insertion sort through sort.Interface to exercise Less/Swap directly
	for i := 1; i < c.Len(); i++ {
		for j := i; j > 0 && c.Less(j, j-1); j-- {
			c.Swap(j, j-1)
		}
	}
}
