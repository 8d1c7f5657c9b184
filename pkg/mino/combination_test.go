package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations_Count(t *testing.T) {
	for n := 0; n <= 9; n++ {
		for r := 0; r <= n; r++ {
			combos := Combinations(n, r)
			require.Len(t, combos, Binomial(n, r), "C(%d,%d)", n, r)

			seen := make(map[string]bool, len(combos))
			for _, c := range combos {
				require.Len(t, c, r)

				used := make(map[int]bool, r)
				for _, idx := range c {
					assert.GreaterOrEqual(t, idx, 0)
					assert.Less(t, idx, n)
					assert.False(t, used[idx], "index %d repeated in %v", idx, c)
					used[idx] = true
				}

				key := NewPiece(cellsOf(c)...).String()
				assert.False(t, seen[key], "combination %v repeated", c)
				seen[key] = true
			}
		}
	}
}

func TestCombinations_Order(t *testing.T) {
	assert.Equal(t, [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
		{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}, Combinations(5, 3))
}

func TestCombinations_Edges(t *testing.T) {
	assert.Equal(t, [][]int{{}}, Combinations(0, 0))
	assert.Equal(t, [][]int{{}}, Combinations(4, 0))
	assert.Empty(t, Combinations(2, 3))
	assert.Empty(t, Combinations(-1, 0))
	assert.Empty(t, Combinations(3, -1))
}

func TestEachCombination_Stop(t *testing.T) {
	calls := 0
	EachCombination(10, 3, func([]int) bool {
		calls++
		return calls < 4
	})
	assert.Equal(t, 4, calls)
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1, Binomial(0, 0))
	assert.Equal(t, 10, Binomial(5, 2))
	assert.Equal(t, 3003, Binomial(15, 5))
	assert.Equal(t, 1184040, Binomial(28, 7))
	assert.Equal(t, 0, Binomial(3, 4))
	assert.Equal(t, 0, Binomial(3, -1))
}

// cellsOf turns indices into distinct cells on one row so a combination can
// be keyed by Piece.String.
func cellsOf(indices []int) []Cell {
	cells := make([]Cell, len(indices))
	for i, idx := range indices {
		cells[i] = Cell{X: idx}
	}

	return cells
}
