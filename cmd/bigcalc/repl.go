package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigcalc/internal/calc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read expressions from standard input, one per line",
	Long: `Evaluate expressions interactively. Blank lines and lines starting with '#'
are skipped; "quit" or end of input leaves. Errors are reported and the
session continues.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	addRadixFlags(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	ev, err := evaluator(cmd)
	if err != nil {
		return err
	}
	interactive := cmd.InOrStdin() == os.Stdin && isTerminal(os.Stdin)
	return repl(cmd.InOrStdin(), cmd.OutOrStdout(), ev, interactive)
}

func repl(in io.Reader, out io.Writer, ev calc.Evaluator, interactive bool) error {
	prompt := func() {
		if interactive {
			fmt.Fprint(out, color.CyanString("> "))
		}
	}
	lr := calc.NewLineReader(in)
	prompt()
	for {
		line, ok := lr.Next()
		if !ok {
			break
		}
		switch strings.ToLower(line.Text) {
		case "quit", "exit":
			return nil
		}
		res, err := ev.Eval(line.Text)
		if err != nil {
			fmt.Fprintln(out, color.RedString("line %d: error: %v", line.No, err))
		} else {
			fmt.Fprintln(out, res.Output)
		}
		prompt()
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return lr.Err()
}
