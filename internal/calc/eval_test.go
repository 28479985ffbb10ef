package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigcalc/internal/bignum"
	"bigcalc/internal/observ"
)

func TestEval(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"-00042", "-42"},
		{"123456789012345678 + 999", "123456789012346677"},
		{"222 - 333", "-111"},
		{"-111111111111 * -111111111111", "12345679012320987654321"},
		{"-7 / 2", "-4"},
		{"-7 % 2", "1"},
		{"555 % 222", "111"},
		{"2 ^ 100", "1267650600228229401496703205376"},
		{"995009990004999 root 5", "999"},
		{"10 cmp 9", "1"},
		{"-10 cmp 9", "-1"},
		{"0 cmp -0", "0"},
	}
	var ev Evaluator
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res, err := ev.Eval(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Output)
			assert.Equal(t, tt.want, res.Value.String())
		})
	}
}

func TestEvalRadix(t *testing.T) {
	ev := Evaluator{InRadix: 16, OutRadix: 2}
	res, err := ev.Eval("ff + 1")
	require.NoError(t, err)
	assert.Equal(t, "100000000", res.Output)

	ev = Evaluator{InRadix: 36, OutRadix: 10}
	res, err = ev.Eval("zz ^ 2")
	require.NoError(t, err)
	assert.Equal(t, "1677025", res.Output)
}

func TestEvalLargeDecimalOperands(t *testing.T) {
	// 90k digits: each side fills 10k limbs.
	nines := strings.Repeat("9", 90_000)
	var ev Evaluator
	res, err := ev.Eval(nines + " + 1")
	require.NoError(t, err)
	assert.Equal(t, "1"+strings.Repeat("0", 90_000), res.Output)
	assert.Len(t, res.Value.Limbs(), 10_001)

	res, err = ev.Eval("+" + nines + " cmp " + nines)
	require.NoError(t, err)
	assert.Equal(t, "0", res.Output)
}

func TestEvalDecimalMatchesRadixParser(t *testing.T) {
	for _, s := range []string{"0", "-00042", "+17", "123456789012345678901234567890"} {
		fast, err := Evaluator{}.operand(s)
		require.NoError(t, err)
		horner, err := bignum.ParseRadix(s, 10)
		require.NoError(t, err)
		assert.Zero(t, fast.Cmp(horner), s)
	}
	_, err := Evaluator{InRadix: 10}.operand("12a")
	assert.ErrorIs(t, err, bignum.ErrParse)
}

func TestEvalErrors(t *testing.T) {
	var ev Evaluator
	tests := []struct {
		line string
		want error
	}{
		{"1 / 0", bignum.ErrDivByZero},
		{"1 % 0", bignum.ErrDivByZero},
		{"12x + 1", bignum.ErrParse},
		{"1 ^ 99999999999999999999", bignum.ErrInvalidArgument},
		{"1 ? 2", ErrUnknownOp},
		{"1 2", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res, err := ev.Eval(tt.line)
			require.ErrorIs(t, err, tt.want)
			assert.NotEmpty(t, res.Error)
			assert.Nil(t, res.Value)
		})
	}
}

func TestEvaluatorValidate(t *testing.T) {
	assert.NoError(t, Evaluator{}.Validate())
	assert.NoError(t, Evaluator{InRadix: 62, OutRadix: 2}.Validate())
	assert.ErrorIs(t, Evaluator{InRadix: 1}.Validate(), bignum.ErrInvalidArgument)
	assert.ErrorIs(t, Evaluator{OutRadix: 63}.Validate(), bignum.ErrInvalidArgument)
	_, err := Evaluator{OutRadix: -2}.Eval("1")
	assert.ErrorIs(t, err, bignum.ErrInvalidArgument)
}

func TestEvalNormalize(t *testing.T) {
	ev := Evaluator{Normalize: true}
	res, err := ev.Eval("９９９　＋　１")
	require.NoError(t, err)
	assert.Equal(t, "1000", res.Output)
}

func TestEvalTimer(t *testing.T) {
	tm := observ.NewTimer()
	ev := Evaluator{Timer: tm}
	_, err := ev.Eval("3 * 4")
	require.NoError(t, err)

	report := tm.Report()
	require.Len(t, report.Phases, 3)
	assert.Equal(t, "parse", report.Phases[0].Name)
	assert.Equal(t, "3 * 4", report.Phases[0].Note)
	assert.Equal(t, "evaluate", report.Phases[1].Name)
	assert.Equal(t, "format", report.Phases[2].Name)
}
