package trick

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// maxPermutationLength bounds Rank and Unrank so that len! fits in a uint64.
const maxPermutationLength = MaxSetSize - 1

// Unrank returns the permutation of items whose 1-based lexicographic rank is
// target, where items are considered in ascending order. Target must lie in
// [1, len(items)!]. Items is not modified.
//
// Example:
//
//	trick.Unrank([]int{0, 1, 2}, 4) // [1 2 0]
func Unrank[T constraints.Ordered](items []T, target uint64) ([]T, error) {
	if err := checkPermutable(items); err != nil {
		return nil, err
	}
	total := Factorial(len(items))
	if target < 1 || target > total {
		return nil, fmt.Errorf("rank %d is not within [1, %d]: %w", target, total, ErrInvalidRank)
	}

	pool := slices.Clone(items)
	slices.Sort(pool)
	permutation := make([]T, 0, len(items))
	target-- // 0-based numbering
	for len(pool) > 0 {
		stepSize := Factorial(len(pool) - 1)
		index := int(target / stepSize)
		permutation = append(permutation, pool[index])
		pool = slices.Delete(pool, index, index+1)
		target %= stepSize
	}
	return permutation, nil
}

// Rank returns the 1-based lexicographic rank of sequence among all orderings
// of its items. It is the inverse of Unrank.
func Rank[T constraints.Ordered](sequence []T) (uint64, error) {
	if err := checkPermutable(sequence); err != nil {
		return 0, err
	}
	return lehmerRank(sequence) + 1, nil
}

// lehmerRank returns the 0-based rank of a sequence of distinct items
func lehmerRank[T constraints.Ordered](sequence []T) uint64 {
	pool := slices.Clone(sequence)
	slices.Sort(pool)
	var rank uint64
	for _, item := range sequence {
		index, _ := slices.BinarySearch(pool, item)
		rank += uint64(index) * Factorial(len(pool)-1)
		pool = slices.Delete(pool, index, index+1)
	}
	return rank
}

func checkPermutable[T comparable](items []T) error {
	if len(items) > maxPermutationLength {
		return fmt.Errorf("%d items exceed the maximum permutation length of %d: %w", len(items), maxPermutationLength, ErrInvalidSetSize)
	}
	if duplicates := lo.FindDuplicates(items); len(duplicates) > 0 {
		return fmt.Errorf("items %v appear more than once: %w", duplicates, ErrDuplicateValue)
	}
	return nil
}
