package trick

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Encoder hides one value of a set in the order of the remaining values, all
// values being drawn from [0, Modulus()).
type Encoder interface {
	// Holds back one of the values and orders the rest so that Decode recovers it.
	// Values must be distinct, within range, and numerous enough to be feasible for the modulus
	Encode(values []uint64) (heldOut uint64, sequence []uint64, err error)

	// Recovers the held-back value from the order of sequence
	Decode(sequence []uint64) (heldOut uint64, err error)

	Modulus() uint64

	// Smallest set size for which (N-1)! * 2 + (N-1) >= Modulus() holds
	MinSetSize() int
}

// NewEncoder returns an Encoder for values in [0, modulus). The modulus must be
// at least 2 and feasible for some set size up to MaxSetSize.
func NewEncoder(modulus uint64) (Encoder, error) {
	if modulus < 2 {
		return nil, fmt.Errorf("modulus %d leaves no room for two distinct values: %w", modulus, ErrInfeasibleModulus)
	}
	if !Feasible(MaxSetSize, modulus) {
		return nil, fmt.Errorf("modulus %d cannot be covered by any set of up to %d values: %w", modulus, MaxSetSize, ErrInfeasibleModulus)
	}
	return &encoderImplementation{modulus: modulus}, nil
}

// Encode holds back one of values and returns it together with the ordered
// remaining values. See Encoder.
func Encode(values []uint64, modulus uint64) (heldOut uint64, sequence []uint64, err error) {
	encoder, err := NewEncoder(modulus)
	if err != nil {
		return 0, nil, err
	}
	return encoder.Encode(values)
}

// Decode recovers the value held back by Encode from the ordered sequence.
func Decode(sequence []uint64, modulus uint64) (uint64, error) {
	encoder, err := NewEncoder(modulus)
	if err != nil {
		return 0, err
	}
	return encoder.Decode(sequence)
}

type encoderImplementation struct {
	modulus uint64
}

func (encoder *encoderImplementation) Modulus() uint64 {
	return encoder.modulus
}

func (encoder *encoderImplementation) MinSetSize() int {
	for setSize := 2; setSize <= MaxSetSize; setSize++ {
		if Feasible(setSize, encoder.modulus) {
			return setSize
		}
	}
	panic("encoder modulus is infeasible for every set size")
}

func (encoder *encoderImplementation) Encode(values []uint64) (uint64, []uint64, error) {
	//** Validate input
	if len(values) < 2 || len(values) > MaxSetSize {
		return 0, nil, fmt.Errorf("cannot encode a set of %d values, expected between 2 and %d: %w", len(values), MaxSetSize, ErrInvalidSetSize)
	}
	if err := encoder.checkValues(values); err != nil {
		return 0, nil, err
	}
	if !Feasible(len(values), encoder.modulus) {
		return 0, nil, fmt.Errorf("%d values cannot address every value modulo %d: %d! * 2 + %d < %d: %w",
			len(values), encoder.modulus, len(values)-1, len(values)-1, encoder.modulus, ErrInfeasibleModulus)
	}

	//** Choose the hold-out value
	limit := Factorial(len(values) - 1)
	heldOut := chooseHoldOut(values, limit)
	others := lo.Without(values, heldOut)
	slices.Sort(others)

	//** Choose the permutation
	target := distance(others[len(others)-1], heldOut, encoder.modulus)
	if target == 0 {
		target = limit // Ranks are 1-based, so a zero offset wraps to the top rank
	}
	sequence, err := Unrank(others, target)
	if err != nil {
		return 0, nil, err
	}

	tracer().Debugf("encoded %v modulo %d: held out %d at rank %d of %d", values, encoder.modulus, heldOut, target, limit)
	return heldOut, sequence, nil
}

func (encoder *encoderImplementation) Decode(sequence []uint64) (uint64, error) {
	//** Validate input
	if len(sequence) < 1 || len(sequence) > maxPermutationLength {
		return 0, fmt.Errorf("cannot decode a sequence of %d values, expected between 1 and %d: %w", len(sequence), maxPermutationLength, ErrInvalidSetSize)
	}
	if err := encoder.checkValues(sequence); err != nil {
		return 0, err
	}

	//** Count upwards from the value above the highest one shown
	start := addMod(lo.Max(sequence), 1, encoder.modulus)
	heldOut := addMod(start, lehmerRank(sequence), encoder.modulus)

	tracer().Debugf("decoded %v modulo %d: held out %d", sequence, encoder.modulus, heldOut)
	return heldOut, nil
}

func (encoder *encoderImplementation) checkValues(values []uint64) error {
	if outOfRange := lo.Filter(values, func(value uint64, _ int) bool {
		return value >= encoder.modulus
	}); len(outOfRange) > 0 {
		return fmt.Errorf("values %v are not within [0, %d): %w", outOfRange, encoder.modulus, ErrOutOfRange)
	}
	if duplicates := lo.FindDuplicates(values); len(duplicates) > 0 {
		return fmt.Errorf("values %v appear more than once: %w", duplicates, ErrDuplicateValue)
	}
	return nil
}
