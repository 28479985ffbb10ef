package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigcalc/internal/prof"
)

// setupProfiling inspects the persistent profiling flags and starts the
// requested profilers. The returned session is stopped by finishRun, or by
// main when the command fails.
func setupProfiling(cmd *cobra.Command) (*prof.Session, error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	return prof.Start(cpuProfile, memProfile)
}
