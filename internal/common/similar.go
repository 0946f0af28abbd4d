package common

import (
	"sort"
	"strings"
)

// EditDistance computes the Levenshtein distance between two names,
// ignoring case: the minimum number of single-rune insertions, deletions
// or substitutions turning one into the other.
func EditDistance(a, b string) int {
	ra, rb := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))

	// keep the shorter name in ra, two rows of len(ra)+1 suffice
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

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

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Closest returns the candidates within maxDist edits of name, nearest
// first and alphabetically among equals. name itself is never returned.
func Closest(name string, candidates []string, maxDist int) []string {
	type scored struct {
		name string
		dist int
	}

	var hits []scored
	for _, c := range candidates {
		if c == name {
			continue
		}

		if d := EditDistance(name, c); d <= maxDist {
			hits = append(hits, scored{c, d})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}

		return hits[i].name < hits[j].name
	})

	res := make([]string, len(hits))
	for i, h := range hits {
		res[i] = h.name
	}

	return res
}
