package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bigcalc/internal/bignum"
)

var fibCmd = &cobra.Command{
	Use:   "fib <n>",
	Short: "Print the n-th Fibonacci number (F(1) = F(2) = 1)",
	Args:  cobra.ExactArgs(1),
	RunE:  runFib,
}

func init() {
	fibCmd.Flags().Int("radix", 10, "output radix (2..62)")
}

func runFib(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	radix := state.cfg.Output.Radix
	if err := overrideInt(cmd, "radix", &radix); err != nil {
		return err
	}

	done := state.timer.Track("fibonacci")
	v, err := bignum.Fibonacci(n)
	done(args[0])
	if err != nil {
		return err
	}
	done = state.timer.Track("format")
	s, err := v.ToString(radix)
	done("")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
