package trick

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func TestFactorial(t *testing.T) {
	assert.Equal(t, uint64(1), Factorial(0))
	assert.Equal(t, uint64(1), Factorial(1))
	assert.Equal(t, uint64(24), Factorial(4))
	assert.Equal(t, uint64(2432902008176640000), Factorial(20))
	assert.Panics(t, func() { Factorial(21) })
	assert.Panics(t, func() { Factorial(-1) })
}

func TestFeasible(t *testing.T) {
	assert.True(t, Feasible(2, 2))
	assert.True(t, Feasible(2, 3))
	assert.False(t, Feasible(2, 4))
	assert.True(t, Feasible(3, 6))
	assert.False(t, Feasible(3, 7))
	assert.True(t, Feasible(5, 52))
	assert.False(t, Feasible(5, 53))
	assert.True(t, Feasible(6, 245))
	assert.False(t, Feasible(4, 52))
	assert.False(t, Feasible(1, 1))
	assert.False(t, Feasible(MaxSetSize+1, 2))
}

func TestUnrankSimple(t *testing.T) {
	scenarios := []struct {
		items  []int
		target uint64
		want   []int
	}{
		{[]int{}, 1, []int{}},
		{[]int{1}, 1, []int{1}},
		{[]int{0, 1}, 1, []int{0, 1}},
		{[]int{0, 1}, 2, []int{1, 0}},
		{[]int{1, 0}, 1, []int{0, 1}},
		{[]int{1, 0}, 2, []int{1, 0}},
		{[]int{0, 1, 2}, 1, []int{0, 1, 2}},
		{[]int{0, 1, 2}, 2, []int{0, 2, 1}},
		{[]int{0, 1, 2}, 3, []int{1, 0, 2}},
		{[]int{0, 1, 2}, 4, []int{1, 2, 0}},
		{[]int{0, 1, 2}, 5, []int{2, 0, 1}},
		{[]int{0, 1, 2}, 6, []int{2, 1, 0}},
		// Aces and the eight of clubs as card numbers
		{[]int{0, 1, 2, 3}, 1, []int{0, 1, 2, 3}},
		{[]int{0, 1, 2, 3}, 24, []int{3, 2, 1, 0}},
		{[]int{1, 2, 3, 48}, 4, []int{1, 3, 48, 2}},
		{[]int{1, 2, 3, 28}, 24, []int{28, 3, 2, 1}},
	}

	for _, scenario := range scenarios {
		//** Act
		permutation, err := Unrank(scenario.items, scenario.target)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, scenario.want, permutation, "items %v at rank %d", scenario.items, scenario.target)
	}
}

func TestUnrankDoesNotModifyItems(t *testing.T) {
	items := []string{"c", "a", "b"}
	_, err := Unrank(items, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, items)
}

func TestUnrankRejectsInvalidInput(t *testing.T) {
	_, err := Unrank([]int{0, 1, 2}, 0)
	assert.True(t, errors.Is(err, ErrInvalidRank))

	_, err = Unrank([]int{0, 1, 2}, 7)
	assert.True(t, errors.Is(err, ErrInvalidRank))

	_, err = Unrank([]int{}, 2)
	assert.True(t, errors.Is(err, ErrInvalidRank))

	_, err = Unrank([]int{4, 2, 4}, 1)
	assert.True(t, errors.Is(err, ErrDuplicateValue))

	_, err = Unrank(lo.Range(maxPermutationLength+1), 1)
	assert.True(t, errors.Is(err, ErrInvalidSetSize))
}

func TestRankRejectsInvalidInput(t *testing.T) {
	_, err := Rank([]int{1, 1})
	assert.True(t, errors.Is(err, ErrDuplicateValue))

	_, err = Rank(lo.Range(maxPermutationLength + 1))
	assert.True(t, errors.Is(err, ErrInvalidSetSize))
}

func TestRankOfUnrankIsIdentity(t *testing.T) {
	for size := 0; size <= 6; size++ {
		//** Arrange
		items := lo.Map(lo.Range(size), func(i int, _ int) int { return 3*i + 1 })
		rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		seen := make(map[string]bool)

		for target := uint64(1); target <= Factorial(size); target++ {
			//** Act
			permutation, err := Unrank(items, target)
			require.NoError(t, err)
			rank, err := Rank(permutation)
			require.NoError(t, err)

			//** Assert
			assert.Equal(t, target, rank)
			assert.ElementsMatch(t, items, permutation)
			key := fmt.Sprint(permutation)
			assert.False(t, seen[key], "permutation %v produced twice", permutation)
			seen[key] = true
		}
	}
}

func TestUnrankOfRankIsIdentity(t *testing.T) {
	for size := 1; size <= 6; size++ {
		//** Arrange
		items := lo.Map(lo.Range(size), func(i int, _ int) uint64 { return uint64(rand.Intn(10) + 10*i) })
		ranks := make([]uint64, 0, Factorial(size))

		for _, indices := range combin.Permutations(size, size) {
			permutation := lo.Map(indices, func(index int, _ int) uint64 { return items[index] })

			//** Act
			rank, err := Rank(permutation)
			require.NoError(t, err)
			unranked, err := Unrank(items, rank)
			require.NoError(t, err)

			//** Assert
			assert.Equal(t, permutation, unranked)
			ranks = append(ranks, rank)
		}

		// Ranks must cover [1, size!] exactly once
		slices.Sort(ranks)
		for i, rank := range ranks {
			assert.Equal(t, uint64(i+1), rank)
		}
	}
}

func TestRankOfLargePermutations(t *testing.T) {
	items := lo.Range(maxPermutationLength)
	descending := slices.Clone(items)
	slices.Reverse(descending)

	rank, err := Rank(items)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rank)

	rank, err = Rank(descending)
	require.NoError(t, err)
	assert.Equal(t, Factorial(maxPermutationLength), rank)

	permutation, err := Unrank(items, Factorial(maxPermutationLength))
	require.NoError(t, err)
	assert.Equal(t, descending, permutation)
}
