package resolve_test

import (
	"testing"

	"ctor-resolver/primitive"
	"ctor-resolver/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(index int, spec []int, narrow map[int]int, exact bool) resolve.Candidate {
	c := resolve.Candidate{
		Signature:   resolve.Signature{Index: index},
		Specificity: spec,
		Exact:       exact,
	}

	for r, n := range narrow {
		c.Narrowness[r] = n
	}

	return c
}

func TestCandidateList_Sort(t *testing.T) {
	t.Parallel()

	list := resolve.CandidateList{
		candidate(0, []int{51, 0}, nil, true),
		candidate(1, []int{0, 0}, map[int]int{3: 1}, false),
		candidate(2, []int{0, 0}, map[int]int{2: 1}, false),
		candidate(3, []int{0, 0}, map[int]int{2: 1}, true),
		candidate(4, []int{0, 1}, nil, true),
	}

	list.Sort()

	order := make([]int, len(list))
	for i, c := range list {
		order[i] = c.Signature.Index
	}
	assert.Equal(t, []int{3, 2, 1, 4, 0}, order)
	assert.Equal(t, 3, list.Best().Signature.Index)
	assert.Equal(t, 0, list.Worst().Signature.Index)
}

func TestCandidateList_HeadTail(t *testing.T) {
	t.Parallel()

	list := resolve.CandidateList{
		candidate(0, []int{0, 0}, map[int]int{2: 1}, false),
		candidate(1, []int{0, 0}, map[int]int{2: 1}, false),
		candidate(2, []int{49, 0}, nil, false),
		candidate(3, []int{51, 0}, nil, true),
	}
	list.Sort()

	head := list.Head()
	require.Len(t, head, 2)
	assert.Equal(t, 0, head[0].Signature.Index)
	assert.Equal(t, 1, head[1].Signature.Index)

	tail := list.Tail()
	require.Len(t, tail, 1)
	assert.Equal(t, 3, tail[0].Signature.Index)

	assert.Len(t, list.Signatures(), 4)
}

func TestCandidateList_Empty(t *testing.T) {
	t.Parallel()

	var list resolve.CandidateList

	assert.Nil(t, list.Best())
	assert.Nil(t, list.Worst())
	assert.Empty(t, list.Head())
	assert.Empty(t, list.Tail())
}

func TestCandidate_WiderSlotDominates(t *testing.T) {
	t.Parallel()

	// four narrow slots still rank before a single long one
	narrow := candidate(0, []int{0, 0, 0, 0, 0}, map[int]int{0: 2, 2: 2}, false)
	wide := candidate(1, []int{0, 0, 0, 0, 0}, map[int]int{0: 3, int(primitive.KindLong.Rank()): 1}, false)

	list := resolve.CandidateList{wide, narrow}
	list.Sort()

	assert.Equal(t, 0, list.Best().Signature.Index)
}
