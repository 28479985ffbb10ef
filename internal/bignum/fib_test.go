package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1"},
		{2, "1"},
		{3, "2"},
		{4, "3"},
		{10, "55"},
		{93, "12200160415121876738"},
		{100, "354224848179261915075"},
	}
	for _, tt := range tests {
		got, err := Fibonacci(tt.n)
		require.NoError(t, err)
		requireValue(t, tt.want, got)
	}
}

func TestFibonacciRejectsIndex(t *testing.T) {
	_, err := Fibonacci(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
