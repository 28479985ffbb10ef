package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestCollect(t *testing.T) {
	withVersion(t, " 1.2.3 ", " abc123 ", "2024-01-15T10:30:00Z")
	assert.Equal(t, Info{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2024-01-15T10:30:00Z"}, Collect())
}

func TestCollectEmptyVersion(t *testing.T) {
	withVersion(t, "", "", "")
	assert.Equal(t, Info{Version: "dev"}, Collect())
}

func TestColored(t *testing.T) {
	orig := color.NoColor
	t.Cleanup(func() { color.NoColor = orig })

	color.NoColor = true
	for _, v := range []string{"0.1.0-dev", "1.2.3", "1.0.0-beta.1", "dev", "1.2"} {
		assert.Equal(t, v, Info{Version: v}.Colored())
	}

	color.NoColor = false
	got := Info{Version: "1.2.3-rc.1"}.Colored()
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "-rc.1")
}
