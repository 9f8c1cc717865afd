package digit

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name     string
		n        int64
		radix    int
		expected []int
	}{
		{"Zero", 0, 96, []int{0}},
		{"SingleDigit", 4, 96, []int{4}},
		{"TwoDigits", 323, 96, []int{35, 3}},
		{"Binary", 13, 2, []int{1, 0, 1, 1}},
		{"Decimal", 1024, 10, []int{4, 2, 0, 1}},
		{"RadixBoundary", 96, 96, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(big.NewInt(tt.n), tt.radix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecomposeErrors(t *testing.T) {
	_, err := Decompose(big.NewInt(10), 1)
	assert.ErrorIs(t, err, ErrInvalidRadix)

	_, err = Decompose(big.NewInt(-1), 10)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestCompose(t *testing.T) {
	n, err := Compose([]int{35, 3}, 96)
	require.NoError(t, err)
	assert.Equal(t, int64(323), n.Int64())

	n, err = Compose(nil, 96)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Int64())

	_, err = Compose([]int{1}, 1)
	assert.ErrorIs(t, err, ErrInvalidRadix)

	var rangeErr *ErrDigitRange
	_, err = Compose([]int{96}, 96)
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 96, rangeErr.Digit)

	_, err = Compose([]int{-1}, 96)
	assert.ErrorAs(t, err, &rangeErr)
}

func TestRoundTrip(t *testing.T) {
	big1 := new(big.Int).Exp(big.NewInt(2), big.NewInt(100), nil)
	big2 := new(big.Int).Sub(new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil), big.NewInt(1))

	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(95),
		big.NewInt(96),
		big.NewInt(323),
		big.NewInt(1 << 40),
		big1,
		big2,
	}
	radices := []int{2, 3, 10, 96, 257}

	for _, n := range values {
		for _, b := range radices {
			digits, err := Decompose(n, b)
			require.NoError(t, err)

			back, err := Compose(digits, b)
			require.NoError(t, err)
			assert.Zerof(t, n.Cmp(back), "n=%s radix=%d", n, b)
		}
	}
}

func TestNewSet(t *testing.T) {
	set, err := NewSet(96)
	require.NoError(t, err)

	// 0 plus phi(96) = 32 coprime residues.
	assert.Equal(t, 33, set.Len())
	assert.Equal(t, 96, set.Radix())

	assert.True(t, set.Contains(0))
	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(17))
	assert.True(t, set.Contains(19))
	assert.True(t, set.Contains(95))

	assert.False(t, set.Contains(2))
	assert.False(t, set.Contains(3))
	assert.False(t, set.Contains(96))
	assert.False(t, set.Contains(-1))

	// Ascending, padding digit first.
	digits := set.Digits()
	assert.Equal(t, 0, digits[0])
	for i := 1; i < len(digits); i++ {
		assert.Less(t, digits[i-1], digits[i])
	}
}

func TestNewSetSmallRadix(t *testing.T) {
	set, err := NewSet(10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 7, 9}, set.Digits())

	_, err = NewSet(1)
	assert.ErrorIs(t, err, ErrInvalidRadix)
}
