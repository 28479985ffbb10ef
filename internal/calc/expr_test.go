package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		line string
		want Expr
	}{
		{"42", Expr{Left: "42"}},
		{"  -7  ", Expr{Left: "-7"}},
		{"1 + 2", Expr{Left: "1", Op: OpAdd, Right: "2"}},
		{"1\t-\t-2", Expr{Left: "1", Op: OpSub, Right: "-2"}},
		{"9 ^ 3", Expr{Left: "9", Op: OpPow, Right: "3"}},
		{"9 ** 3", Expr{Left: "9", Op: OpPow, Right: "3"}},
		{"27 ROOT 3", Expr{Left: "27", Op: OpRoot, Right: "3"}},
		{"5 cmp 6", Expr{Left: "5", Op: OpCmp, Right: "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseExpr(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	_, err := ParseExpr("")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseExpr("1 +")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseExpr("1 + 2 + 3")
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseExpr("1 & 2")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestNormalizeFullWidth(t *testing.T) {
	got, err := ParseExpr(Normalize("１２３　＊　４"))
	require.NoError(t, err)
	assert.Equal(t, Expr{Left: "123", Op: OpMul, Right: "4"}, got)
}

func TestExprString(t *testing.T) {
	assert.Equal(t, "7", Expr{Left: "7"}.String())
	assert.Equal(t, "7 root 2", Expr{Left: "7", Op: OpRoot, Right: "2"}.String())
}
