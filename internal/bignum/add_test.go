package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	tests := []struct {
		a, b string
		sum  string
		diff string
	}{
		{"0", "0", "0", "0"},
		{"5", "0", "5", "5"},
		{"0", "5", "5", "-5"},
		{"0", "-5", "-5", "5"},
		{"999999999", "1", "1000000000", "999999998"},
		{"1000000000", "-1", "999999999", "1000000001"},
		{"999999999999999999", "1", "1000000000000000000", "999999999999999998"},
		{"-7", "7", "0", "-14"},
		{"7", "-10", "-3", "17"},
		{"-10", "7", "-3", "-17"},
		{"1000000000000000000", "999999999999999999", "1999999999999999999", "1"},
		{"123456789012345678", "999", "123456789012346677", "123456789012344679"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			x := mustParse(t, tt.a)
			require.NoError(t, x.AddAssign(mustParse(t, tt.b)))
			requireValue(t, tt.sum, x)

			y := mustParse(t, tt.a)
			require.NoError(t, y.SubAssign(mustParse(t, tt.b)))
			requireValue(t, tt.diff, y)
		})
	}
}

func TestAddSubSelfAlias(t *testing.T) {
	x := mustParse(t, "987654321987654321")
	require.NoError(t, x.AddAssign(x))
	requireValue(t, "1975308643975308642", x)
	require.NoError(t, x.SubAssign(x))
	requireValue(t, "0", x)
}

func TestAddLeavesOperandUntouched(t *testing.T) {
	a := mustParse(t, "-999999999999")
	b := mustParse(t, "1000000000000")
	sum, err := Add(a, b)
	require.NoError(t, err)
	requireValue(t, "1", sum)
	assert.Equal(t, "-999999999999", a.String())
	assert.Equal(t, "1000000000000", b.String())
}

func TestAddSubAgainstMathBig(t *testing.T) {
	r := newRand()
	for range 300 {
		as, bs := randDecimal(r, 60), randDecimal(r, 60)
		sum, err := Add(mustParse(t, as), mustParse(t, bs))
		require.NoError(t, err)
		requireValue(t, new(big.Int).Add(bigOf(t, as), bigOf(t, bs)).String(), sum)

		diff, err := Sub(mustParse(t, as), mustParse(t, bs))
		require.NoError(t, err)
		requireValue(t, new(big.Int).Sub(bigOf(t, as), bigOf(t, bs)).String(), diff)
	}
}
