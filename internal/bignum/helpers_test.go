package bignum

import (
	"bytes"
	"log/slog"
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *BigInt {
	t.Helper()
	x, err := Parse(s)
	require.NoError(t, err, "parse %q", s)
	return x
}

func mustInt(t *testing.T, n int) *BigInt {
	t.Helper()
	x, err := FromInt(n)
	require.NoError(t, err)
	return x
}

func bigOf(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "math/big rejected %q", s)
	return v
}

// requireCanonical checks the representation invariants of x.
func requireCanonical(t *testing.T, x *BigInt) {
	t.Helper()
	require.NotEmpty(t, x.limbs)
	if x.sign == 0 {
		require.Equal(t, []uint32{0}, x.limbs)
		return
	}
	require.Contains(t, []int{-1, 1}, x.sign)
	require.NotZero(t, x.limbs[len(x.limbs)-1], "leading zero limb in %v", x.limbs)
	for _, l := range x.limbs {
		require.Less(t, l, uint32(Base))
	}
}

func requireValue(t *testing.T, want string, x *BigInt) {
	t.Helper()
	require.NotNil(t, x)
	require.Equal(t, want, x.String())
	requireCanonical(t, x)
}

// floorDivMod is the math/big reference for floor division.
func floorDivMod(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

func randDecimal(r *rand.Rand, maxDigits int) string {
	n := 1 + r.IntN(maxDigits)
	var sb strings.Builder
	if r.IntN(2) == 0 {
		sb.WriteByte('-')
	}
	sb.WriteByte(byte('1' + r.IntN(9)))
	for i := 1; i < n; i++ {
		sb.WriteByte(byte('0' + r.IntN(10)))
	}
	return sb.String()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xb16))
}

// captureWarnings routes package warnings into a buffer for the test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}
