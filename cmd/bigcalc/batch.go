package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bigcalc/internal/calc"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Evaluate a file of expressions in parallel",
	Long: `Evaluate one expression per line from a file (or standard input when the
file is omitted or "-"). Lines are evaluated concurrently; results are printed
in input order. A failing line is reported without stopping the batch, and
the command exits non-zero if any line failed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	addRadixFlags(batchCmd)
	batchCmd.Flags().Int("jobs", 0, "max parallel evaluations (0=auto)")
	batchCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	batchCmd.Flags().String("format", "text", "output format (text|json|msgpack)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ev, err := evaluator(cmd)
	if err != nil {
		return err
	}
	jobs := state.cfg.Batch.Jobs
	if err := overrideInt(cmd, "jobs", &jobs); err != nil {
		return err
	}
	if jobs < 0 {
		return fmt.Errorf("--jobs must not be negative, got %d", jobs)
	}
	uiValue := state.cfg.Batch.UI
	if err := overrideString(cmd, "ui", &uiValue); err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	formatValue, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := calc.ParseFormat(formatValue)
	if err != nil {
		return err
	}

	done := state.timer.Track("read")
	name, lines, err := readBatchInput(cmd, args)
	done(fmt.Sprintf("%d lines", len(lines)))
	if err != nil {
		return err
	}
	state.logger.Debug("batch loaded", slog.String("input", name), slog.Int("lines", len(lines)), slog.Int("jobs", jobs))

	opts := calc.BatchOptions{Jobs: jobs}
	done = state.timer.Track("evaluate")
	var results []calc.Result
	if shouldUseTUI(mode) && len(lines) > 0 {
		results, err = runBatchWithUI(cmd.Context(), name, ev, lines, opts)
	} else {
		results, err = ev.RunBatch(cmd.Context(), lines, opts)
	}
	done("")
	if err != nil {
		return err
	}

	done = state.timer.Track("write")
	err = calc.WriteResults(cmd.OutOrStdout(), format, results)
	done(string(format))
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, len(results))
	}
	return nil
}

func readBatchInput(cmd *cobra.Command, args []string) (string, []calc.Line, error) {
	if len(args) == 0 || args[0] == "-" {
		lines, err := calc.ReadLines(cmd.InOrStdin())
		return "stdin", lines, err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("failed to open batch input: %w", err)
	}
	defer func(f io.Closer) { _ = f.Close() }(f)
	lines, err := calc.ReadLines(f)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return filepath.Base(args[0]), lines, nil
}
