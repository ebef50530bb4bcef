package trick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseHoldOutSimple(t *testing.T) {
	assert.Equal(t, uint64(1), chooseHoldOut([]uint64{0, 1}, 1))
	assert.Equal(t, uint64(0), chooseHoldOut([]uint64{0, 1}, 0))
	assert.Equal(t, uint64(1), chooseHoldOut([]uint64{1, 0}, 1))
	assert.Equal(t, uint64(0), chooseHoldOut([]uint64{1, 0}, 0))
}

func TestChooseHoldOutHands(t *testing.T) {
	// AC, AD, AH and AS are 0 through 3
	aces := []uint64{0, 1, 2, 3}

	assert.Equal(t, uint64(4), chooseHoldOut(append(aces, 4), 24))   // 2C
	assert.Equal(t, uint64(0), chooseHoldOut(append(aces, 48), 24))  // KC
	assert.Equal(t, uint64(27), chooseHoldOut(append(aces, 27), 24)) // 7S
	assert.Equal(t, uint64(0), chooseHoldOut(append(aces, 28), 24))  // 8C
}

func TestChooseHoldOutGapEqualToLimitHoldsHighest(t *testing.T) {
	assert.Equal(t, uint64(3), chooseHoldOut([]uint64{0, 1, 3}, 2))
	assert.Equal(t, uint64(27), chooseHoldOut([]uint64{0, 1, 2, 3, 27}, 24))
	assert.Equal(t, uint64(0), chooseHoldOut([]uint64{0, 1, 2, 3, 28}, 24))
	assert.Equal(t, uint64(0), chooseHoldOut([]uint64{0, 1, 4}, 2))
}

func TestChooseHoldOutPanicsOnSingleValue(t *testing.T) {
	assert.Panics(t, func() { chooseHoldOut([]uint64{7}, 1) })
}
