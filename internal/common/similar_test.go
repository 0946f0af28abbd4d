package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"Dog", "Dog", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},  // substitution
		{"a", "ab", 1}, // insertion
		{"ab", "a", 1}, // deletion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-insensitive
		{"ABC", "abc", 0},
		{"Dgo", "dog", 2},

		// Runes, not bytes
		{"Größe", "Grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, EditDistance(tt.a, tt.b))
			assert.Equal(t, tt.expected, EditDistance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"Dog", "Dot", "Cat", "Puppy", "Animal"}

	assert.Equal(t, []string{"Dog", "Dot"}, Closest("Dgo", candidates, 2))
	assert.Equal(t, []string{"Dot"}, Closest("Dog", candidates, 2))
	assert.Empty(t, Closest("Kennel", candidates, 2))
	assert.Empty(t, Closest("Dog", nil, 2))
}

func TestIsMultiple(t *testing.T) {
	assert.False(t, IsMultiple([]int(nil)))
	assert.False(t, IsMultiple([]int{1}))
	assert.True(t, IsMultiple([]string{"a", "b"}))
}
