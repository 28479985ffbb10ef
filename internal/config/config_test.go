package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[input]
radix = 16

[batch]
jobs = 4
ui = "OFF"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 16, cfg.Input.Radix)
	assert.True(t, cfg.Input.Normalize, "absent key keeps its default")
	assert.Equal(t, 10, cfg.Output.Radix)
	assert.Equal(t, 4, cfg.Batch.Jobs)
	assert.Equal(t, "off", cfg.Batch.UI)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]struct {
		body string
		want string
	}{
		"syntax":       {"[input\n", "failed to parse TOML"},
		"unknown key":  {"[input]\nbase = 3\n", "unknown keys: input.base"},
		"input radix":  {"[input]\nradix = 1\n", "[input].radix"},
		"output radix": {"[output]\nradix = 63\n", "[output].radix"},
		"jobs":         {"[batch]\njobs = -1\n", "[batch].jobs"},
		"ui":           {"[batch]\nui = \"maybe\"\n", "[batch].ui"},
		"level":        {"[log]\nlevel = \"loud\"\n", "[log].level"},
		"format":       {"[log]\nformat = \"xml\"\n", "[log].format"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[output]\nradix = 2\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, found)

	cfg, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Output.Radix)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
