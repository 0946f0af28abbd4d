package resolve

import (
	"slices"
	"sort"

	"ctor-resolver/descriptor"
	"ctor-resolver/primitive"
)

// Candidate is a signature that accepts the supplied arguments, together
// with the ranking data computed for them.
type Candidate struct {
	Signature Signature

	// Slots holds, per supplied argument, the declared type receiving it:
	// the component type for collected rest arguments, the full array type
	// for a passed-through array.
	Slots []descriptor.Type

	// Packed is set when rest arguments are collected into a fresh array.
	Packed bool
	// PassThrough is set when a single array argument fills the rest
	// parameter as is.
	PassThrough bool

	// Ranking components, all "lower is more specific".
	Specificity []int
	Narrowness  [primitive.RankTotal]int
	Exact       bool
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// rank fills the ranking components of c for the given arguments.
func (c *Candidate) rank(l *descriptor.Lattice, args []descriptor.Value) {
	c.Specificity = make([]int, 0, len(c.Slots)+1)
	c.Narrowness = [primitive.RankTotal]int{}
	c.Exact = true

	for i, slot := range c.Slots {
		elem := slot.Element()
		if elem.IsPrimitive() {
			c.Specificity = append(c.Specificity, 0)
			if r := elem.Kind().Rank(); r >= 0 {
				c.Narrowness[r]++
			}
		} else {
			// deeper in the lattice means fewer steps away from the argument
			c.Specificity = append(c.Specificity, 1+descriptor.MaxDepth-l.Depth(elem))
		}

		if args[i].IsNull() || descriptor.BoxedOf(slot) != args[i].Type() {
			c.Exact = false
		}
	}

	// position-independent: the multiset of slot ranks is compared, not
	// their order
	slices.Sort(c.Specificity)

	packed := 0
	if c.Packed {
		packed = 1
	}
	c.Specificity = append(c.Specificity, packed)
}

// compareCandidates orders a before b when it is more specific. Zero means
// the candidates cannot be told apart.
func compareCandidates(a, b *Candidate) int {
	if c := slices.Compare(a.Specificity, b.Specificity); c != 0 {
		return c
	}

	// dominance: one wider slot outweighs any number of narrower ones
	for r := primitive.RankTotal - 1; r >= 0; r-- {
		if a.Narrowness[r] != b.Narrowness[r] {
			if a.Narrowness[r] < b.Narrowness[r] {
				return -1
			}

			return 1
		}
	}

	switch {
	case a.Exact && !b.Exact:
		return -1
	case !a.Exact && b.Exact:
		return 1
	default:
		return 0
	}
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by specificity, then by declaration order for determinism.
func (c CandidateList) Less(i, j int) bool {
	if cmp := compareCandidates(&c[i], &c[j]); cmp != 0 {
		return cmp < 0
	}

	return c[i].Signature.Index < c[j].Signature.Index
}

// Sort orders the list from most specific to most generic.
func (c CandidateList) Sort() {
	sort.Sort(c)
}

// Best returns the most specific candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Worst returns the most generic candidate, or nil if no candidates.
func (c CandidateList) Worst() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[len(c)-1]
}

// Head returns the leading candidates that cannot be told apart from the
// first one. The list must be sorted.
func (c CandidateList) Head() CandidateList {
	if len(c) == 0 {
		return nil
	}

	n := 1
	for n < len(c) && compareCandidates(&c[0], &c[n]) == 0 {
		n++
	}

	return c[:n]
}

// Tail returns the trailing candidates that cannot be told apart from the
// last one. The list must be sorted.
func (c CandidateList) Tail() CandidateList {
	if len(c) == 0 {
		return nil
	}

	last := len(c) - 1
	n := last
	for n > 0 && compareCandidates(&c[last], &c[n-1]) == 0 {
		n--
	}

	return c[n:]
}

// Signatures returns the signatures of the candidates in list order.
func (c CandidateList) Signatures() []Signature {
	res := make([]Signature, len(c))
	for i := range c {
		res[i] = c[i].Signature
	}

	return res
}
