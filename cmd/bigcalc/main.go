package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigcalc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Arbitrary-precision integer calculator",
	Long: `bigcalc evaluates integer arithmetic of unbounded size: + - * / % ^ root cmp.
Operands may be written in any radix from 2 to 62.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupRun,
	PersistentPostRunE: finishRun,
}

func init() {
	rootCmd.Version = version.Collect().Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(fibCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to bigcalc.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text|logfmt|json)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file")
}

// main executes the root command. Any error is printed in red and the process
// exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		_ = stopProfiling()
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}
