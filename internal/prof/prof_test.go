package prof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	s, err := Start(cpu, mem)
	require.NoError(t, err)
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())

	for _, path := range []string{cpu, mem} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), path)
	}
}

func TestSessionDisabled(t *testing.T) {
	s, err := Start("", "")
	require.NoError(t, err)
	assert.NoError(t, s.Stop())
}

func TestStartBadPath(t *testing.T) {
	_, err := Start(filepath.Join(t.TempDir(), "missing", "cpu.pprof"), "")
	assert.ErrorContains(t, err, "failed to start cpu profile")
}
