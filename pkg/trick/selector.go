package trick

import "github.com/samber/lo"

// chooseHoldOut returns the highest value if it is no more than limit above the
// second highest; otherwise it returns the lowest.
//
// Holding back the highest value leaves a gap of at most limit to cover from the
// new highest value. When the gap is wider, the lowest value is reached by
// wrapping around the modulus instead, and the feasibility inequality keeps that
// wrapped distance within limit.
func chooseHoldOut(values []uint64, limit uint64) uint64 {
	if len(values) < 2 {
		panic("hold-out selection needs at least two values")
	}
	highest := lo.Max(values)
	secondHighest := lo.Max(lo.Without(values, highest))
	if highest-secondHighest > limit {
		return lo.Min(values)
	}
	return highest
}
