package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
	"bigcalc/internal/config"
	"bigcalc/internal/logging"
	"bigcalc/internal/observ"
	"bigcalc/internal/prof"
)

// runState is what setupRun resolves from config and flags for one command.
type runState struct {
	cfg     config.Config
	logger  *slog.Logger
	timer   *observ.Timer
	profile *prof.Session
}

var state = &runState{cfg: config.Default(), logger: slog.Default()}

func setupRun(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	colorMode, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if err := applyColorMode(colorMode); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := overrideString(cmd, "log-level", &cfg.Log.Level); err != nil {
		return err
	}
	if err := overrideString(cmd, "log-format", &cfg.Log.Format); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Color:  !color.NoColor && isTerminal(os.Stderr),
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	bignum.SetLogger(logger)
	if cfg.Path != "" {
		logger.Debug("loaded config", slog.String("path", cfg.Path))
	}

	timings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
	}

	session, err := setupProfiling(cmd)
	if err != nil {
		return err
	}

	state = &runState{cfg: cfg, logger: logger, timer: timer, profile: session}
	return nil
}

func finishRun(cmd *cobra.Command, _ []string) error {
	if state.timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), state.timer.Summary())
	}
	return stopProfiling()
}

func stopProfiling() error {
	if state == nil || state.profile == nil {
		return nil
	}
	return state.profile.Stop()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

func applyColorMode(mode string) error {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "auto":
		// fatih/color already honours NO_COLOR and non-terminal stdout.
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// overrideString replaces *dst with the named flag when it was set
// explicitly. The flag may live on the command or the root.
func overrideString(cmd *cobra.Command, name string, dst *string) error {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	*dst = v
	return nil
}

func overrideInt(cmd *cobra.Command, name string, dst *int) error {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	*dst = v
	return nil
}

// addRadixFlags registers --radix and --in-radix on an evaluating command.
func addRadixFlags(cmd *cobra.Command) {
	cmd.Flags().Int("radix", 10, "output radix (2..62)")
	cmd.Flags().Int("in-radix", 10, "input radix (2..62)")
}

// evaluator builds the Evaluator for cmd from config and radix flags.
func evaluator(cmd *cobra.Command) (calc.Evaluator, error) {
	ev := calc.Evaluator{
		InRadix:   state.cfg.Input.Radix,
		OutRadix:  state.cfg.Output.Radix,
		Normalize: state.cfg.Input.Normalize,
		Timer:     state.timer,
	}
	if err := overrideInt(cmd, "radix", &ev.OutRadix); err != nil {
		return calc.Evaluator{}, err
	}
	if err := overrideInt(cmd, "in-radix", &ev.InRadix); err != nil {
		return calc.Evaluator{}, err
	}
	return ev, ev.Validate()
}
