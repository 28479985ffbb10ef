package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"bigcalc/internal/bignum"
)

const (
	demoRootInput  = "5647589345883495834568934583495834725687345438573458745468593568370160457"
	demoRootDegree = 33
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through a short arithmetic session",
	Long: `Run a fixed sequence of in-place operations and print each intermediate
value: addition, a power and its inverse root, a rejected division by zero,
modulo, comparison and sign changes. With --root, also time a 33rd root of a
73-digit number.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Bool("root", false, "also time a 33rd root of a 73-digit value")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	withRoot, err := cmd.Flags().GetBool("root")
	if err != nil {
		return fmt.Errorf("failed to get root flag: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := demoSession(out); err != nil {
		return err
	}
	if withRoot {
		return demoRoot(out)
	}
	return nil
}

func demoSession(out io.Writer) error {
	step := func(format string, args ...any) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	a := bignum.MustParse("123456789012345678")
	b, err := bignum.FromInt(999)
	if err != nil {
		return err
	}
	if err := a.AddAssign(b); err != nil {
		return err
	}
	step("a = 123456789012345678 + 999 = %v", a)

	if err := b.PowAssign(5); err != nil {
		return err
	}
	step("b = 999^5 = %v", b)
	if err := b.RootAssign(5); err != nil {
		return err
	}
	step("b = root(b, 5) = %v", b)

	if err := a.SetInt64(0); err != nil {
		return err
	}
	err = b.DivAssign(a)
	if !errors.Is(err, bignum.ErrDivByZero) {
		return fmt.Errorf("expected division by zero, got %v", err)
	}
	step("b / 0 rejected (%v), b = %v", err, b)

	c, d := bignum.MustParse("222"), bignum.MustParse("333")
	e := bignum.MustAdd(c, d)
	f := bignum.MustMod(e, c)
	s, err := f.ToString(10)
	if err != nil {
		return err
	}
	step("e = 222 + 333 = %v, f = e mod 222 = %s", e, s)

	switch c.Cmp(d) {
	case -1:
		step("c < d")
	case 0:
		step("c == d")
	default:
		step("c > d")
	}

	if err := b.Negate(); err != nil {
		return err
	}
	step("-b = %v, sign %d", b, b.Sign())
	if err := b.Abs(); err != nil {
		return err
	}
	step("|b| = %v", b)

	for _, x := range []*bignum.BigInt{a, b, c, d, e, f} {
		if err := x.Release(); err != nil {
			return err
		}
	}
	return nil
}

func demoRoot(out io.Writer) error {
	x := bignum.MustParse(demoRootInput)
	fmt.Fprintln(out, x.Dump())

	done := state.timer.Track("root")
	start := time.Now()
	err := x.RootAssign(demoRootDegree)
	elapsed := time.Since(start)
	done(fmt.Sprintf("degree %d", demoRootDegree))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, x.Dump())
	_, err = fmt.Fprintf(out, "root(%d) = %v in %s\n", demoRootDegree, x, elapsed.Round(time.Microsecond))
	return err
}
