package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <operand> [<op> <operand>]",
	Short: "Evaluate a single expression",
	Long: `Evaluate one expression and print the result.

Operators: + - * / % ^ root cmp. Division and modulo round toward negative
infinity; ^ and root take a machine-sized degree.`,
	Example: `  bigcalc eval 123456789012345678 + 999
  bigcalc eval --in-radix 16 --radix 2 ff '*' ff
  bigcalc eval 995009990004999 root 5
  bigcalc eval -- -7 / 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	addRadixFlags(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	ev, err := evaluator(cmd)
	if err != nil {
		return err
	}
	res, err := ev.Eval(strings.Join(args, " "))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	return err
}
