package calc

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"bigcalc/internal/bignum"
	"bigcalc/internal/observ"
)

// Result is the outcome of evaluating one line.
type Result struct {
	Line   int            `json:"line" msgpack:"line"`
	Input  string         `json:"input" msgpack:"input"`
	Output string         `json:"output,omitempty" msgpack:"output,omitempty"`
	Value  *bignum.BigInt `json:"-" msgpack:"value,omitempty"`
	Error  string         `json:"error,omitempty" msgpack:"error,omitempty"`
	Err    error          `json:"-" msgpack:"-"`
}

// Evaluator parses operands in InRadix and renders results in OutRadix.
// A zero radix means decimal.
type Evaluator struct {
	InRadix   int
	OutRadix  int
	Normalize bool
	// Timer, when set, records parse/evaluate/format phases. It is ignored
	// by RunBatch.
	Timer *observ.Timer
}

// Validate reports an unsupported radix.
func (e Evaluator) Validate() error {
	for _, r := range []struct {
		name  string
		radix int
	}{{"input", e.InRadix}, {"output", e.OutRadix}} {
		if r.radix == 0 {
			continue
		}
		if r.radix < 2 || r.radix > bignum.MaxRadix {
			return fmt.Errorf("%w: %s radix %d (expected 2..%d)", bignum.ErrInvalidArgument, r.name, r.radix, bignum.MaxRadix)
		}
	}
	return nil
}

// Eval evaluates a single line.
func (e Evaluator) Eval(line string) (Result, error) {
	res := e.eval("", line, nil)
	return res, res.Err
}

func (e Evaluator) eval(label, line string, sink ProgressSink) Result {
	res := Result{Input: strings.TrimSpace(line)}
	fail := func(err error) Result {
		res.Err = err
		res.Error = err.Error()
		return res
	}
	if err := e.Validate(); err != nil {
		return fail(err)
	}
	if e.Normalize {
		line = Normalize(line)
	}

	emit(sink, Event{Label: label, Stage: StageParse, Status: StatusWorking})
	done := e.Timer.Track("parse")
	expr, err := ParseExpr(line)
	var a, b *bignum.BigInt
	degree := 0
	if err == nil {
		a, err = e.operand(expr.Left)
	}
	if err == nil {
		switch expr.Op {
		case OpNone:
		case OpPow, OpRoot:
			degree, err = e.degree(expr.Right)
		default:
			b, err = e.operand(expr.Right)
		}
	}
	done(expr.String())
	if err != nil {
		return fail(err)
	}

	emit(sink, Event{Label: label, Stage: StageEval, Status: StatusWorking})
	done = e.Timer.Track("evaluate")
	v, err := apply(expr.Op, a, b, degree)
	done(string(expr.Op))
	if err != nil {
		return fail(fmt.Errorf("%s: %w", expr, err))
	}

	emit(sink, Event{Label: label, Stage: StageFormat, Status: StatusWorking})
	done = e.Timer.Track("format")
	out, err := v.ToString(radixOrDecimal(e.OutRadix))
	done("")
	if err != nil {
		return fail(err)
	}
	res.Value = v
	res.Output = out
	return res
}

// operand parses s in the input radix. Decimal goes through the
// 9-digit-chunk parser, which is linear in the digit count.
func (e Evaluator) operand(s string) (*bignum.BigInt, error) {
	var v *bignum.BigInt
	var err error
	if radix := radixOrDecimal(e.InRadix); radix == 10 {
		v, err = bignum.Parse(s)
	} else {
		v, err = bignum.ParseRadix(s, radix)
	}
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", s, err)
	}
	return v, nil
}

// degree reads the machine-int right operand of ^ and root.
func (e Evaluator) degree(s string) (int, error) {
	v, err := e.operand(s)
	if err != nil {
		return 0, err
	}
	n, ok := v.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: degree %s out of range", bignum.ErrInvalidArgument, s)
	}
	d, err := safecast.Conv[int](n)
	if err != nil {
		return 0, fmt.Errorf("%w: degree %s: %w", bignum.ErrInvalidArgument, s, err)
	}
	return d, nil
}

func apply(op Op, a, b *bignum.BigInt, degree int) (*bignum.BigInt, error) {
	switch op {
	case OpNone:
		return a, nil
	case OpAdd:
		return bignum.Add(a, b)
	case OpSub:
		return bignum.Sub(a, b)
	case OpMul:
		return bignum.Mul(a, b)
	case OpDiv:
		return bignum.Div(a, b)
	case OpMod:
		return bignum.Mod(a, b)
	case OpPow:
		return bignum.Pow(a, degree)
	case OpRoot:
		return bignum.Root(a, degree)
	case OpCmp:
		c, err := bignum.Compare(a, b)
		if err != nil {
			return nil, err
		}
		return bignum.FromInt(c)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownOp, op)
}

func radixOrDecimal(radix int) int {
	if radix == 0 {
		return 10
	}
	return radix
}
