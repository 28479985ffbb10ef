package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigcalc/internal/calc"
)

func manyLines(n int) []calc.Line {
	lines := make([]calc.Line, n)
	for i := range lines {
		lines[i] = calc.Line{No: i + 1, Text: "2 ^ 10"}
	}
	return lines
}

func TestBatchWithViewConsumesEvents(t *testing.T) {
	lines := manyLines(50)
	var seen int
	results, err := runBatchWithView(context.Background(), calc.Evaluator{}, lines, calc.BatchOptions{Jobs: 4},
		func(events <-chan calc.Event) error {
			for range events {
				seen++
			}
			return nil
		})
	require.NoError(t, err)
	require.Len(t, results, len(lines))
	assert.Equal(t, "1024", results[49].Output)
	assert.Equal(t, 5*len(lines), seen, "queued, three stages and a final status per line")
}

func TestBatchWithViewStopsWhenViewFails(t *testing.T) {
	viewErr := errors.New("terminal went away")
	done := make(chan error, 1)
	go func() {
		// The view quits without reading; far more events than the buffer holds.
		_, err := runBatchWithView(context.Background(), calc.Evaluator{}, manyLines(1000), calc.BatchOptions{Jobs: 2},
			func(<-chan calc.Event) error { return viewErr })
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, viewErr)
	case <-time.After(10 * time.Second):
		t.Fatal("batch blocked after the progress view exited")
	}
}
