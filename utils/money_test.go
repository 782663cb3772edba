package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountToMinorUnits(t *testing.T) {
	got, err := AmountToMinorUnits("150000")
	require.NoError(t, err)
	assert.Equal(t, int64(15000000), got)

	got, err = AmountToMinorUnits("150000.00")
	require.NoError(t, err)
	assert.Equal(t, int64(15000000), got)

	got, err = AmountToMinorUnits(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, int64(100), got)
}

func TestAmountToMinorUnitsRejectsBadInput(t *testing.T) {
	for _, amount := range []string{"", "0", "-5", "abc", "150000.5", "1e3", "9223372036854775807"} {
		_, err := AmountToMinorUnits(amount)
		assert.ErrorIs(t, err, ErrAmountInvalid, "amount %q", amount)
	}
}

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, PageSlice(items, 1, 2))
	assert.Equal(t, []int{3, 4}, PageSlice(items, 2, 2))
	assert.Equal(t, []int{5}, PageSlice(items, 3, 2))
	assert.Empty(t, PageSlice(items, 4, 2))
}

func TestTotalPage(t *testing.T) {
	assert.Equal(t, 3, TotalPage(5, 2))
	assert.Equal(t, 2, TotalPage(4, 2))
	assert.Equal(t, 0, TotalPage(0, 2))
}
