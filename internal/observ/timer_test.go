package observ

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("parse")
	done("12 + 3")
	idx := tm.Begin("evaluate")
	tm.End(idx, "")
	tm.End(99, "ignored")

	report := tm.Report()
	require.Len(t, report.Phases, 2)
	assert.Equal(t, "parse", report.Phases[0].Name)
	assert.Equal(t, "12 + 3", report.Phases[0].Note)
	assert.Equal(t, "evaluate", report.Phases[1].Name)
	assert.GreaterOrEqual(t, report.TotalMS, report.Phases[0].DurationMS)

	summary := tm.Summary()
	assert.Contains(t, summary, "timings:")
	assert.Contains(t, summary, "// 12 + 3")
	assert.Contains(t, summary, "total")
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	assert.Equal(t, -1, tm.Begin("x"))
	tm.Track("y")("note")
	assert.Empty(t, tm.Report().Phases)
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Track("line")("")
		}()
	}
	wg.Wait()
	assert.Len(t, tm.Report().Phases, 16)
}
