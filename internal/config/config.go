// Package config loads bigcalc.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "bigcalc.toml"

// Config is the decoded bigcalc.toml. Absent keys keep their defaults.
type Config struct {
	Path   string `toml:"-"`
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
	Batch  Batch  `toml:"batch"`
	Log    Log    `toml:"log"`
}

type Input struct {
	Radix     int  `toml:"radix"`
	Normalize bool `toml:"normalize"`
}

type Output struct {
	Radix int `toml:"radix"`
}

type Batch struct {
	Jobs int    `toml:"jobs"`
	UI   string `toml:"ui"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Input:  Input{Radix: 10, Normalize: true},
		Output: Output{Radix: 10},
		Batch:  Batch{Jobs: 0, UI: "auto"},
		Log:    Log{Level: "warn", Format: "text"},
	}
}

// Find walks up from startDir looking for bigcalc.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest bigcalc.toml above startDir, or the defaults
// when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes and validates the file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("batch", "ui") {
		cfg.Batch.UI = strings.ToLower(strings.TrimSpace(cfg.Batch.UI))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges. Errors name the offending key.
func (c Config) Validate() error {
	if c.Input.Radix < 2 || c.Input.Radix > 62 {
		return fmt.Errorf("[input].radix must be in 2..62, got %d", c.Input.Radix)
	}
	if c.Output.Radix < 2 || c.Output.Radix > 62 {
		return fmt.Errorf("[output].radix must be in 2..62, got %d", c.Output.Radix)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("[batch].jobs must not be negative, got %d", c.Batch.Jobs)
	}
	switch c.Batch.UI {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[batch].ui must be auto, on or off, got %q", c.Batch.UI)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("[log].level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "logfmt", "json":
	default:
		return fmt.Errorf("[log].format must be text, logfmt or json, got %q", c.Log.Format)
	}
	return nil
}
