package calc

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigcalc/internal/bignum"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) byStatus(status Status) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int)
	for _, e := range s.events {
		if e.Status == status {
			out[e.Label]++
		}
	}
	return out
}

func TestRunBatch(t *testing.T) {
	lines := []Line{
		{No: 1, Text: "222 + 333"},
		{No: 3, Text: "999 / 0"},
		{No: 4, Text: "2 ^ 64"},
		{No: 7, Text: "-00042"},
	}
	sink := &recordingSink{}
	results, err := Evaluator{}.RunBatch(context.Background(), lines, BatchOptions{Jobs: 2, Sink: sink})
	require.NoError(t, err)
	require.Len(t, results, len(lines))

	assert.Equal(t, 1, results[0].Line)
	assert.Equal(t, "555", results[0].Output)
	assert.Equal(t, 3, results[1].Line)
	assert.ErrorIs(t, results[1].Err, bignum.ErrDivByZero)
	assert.Equal(t, "18446744073709551616", results[2].Output)
	assert.Equal(t, "-42", results[3].Output)

	assert.Len(t, sink.byStatus(StatusQueued), 4)
	assert.Equal(t, map[string]int{"line 1": 1, "line 4": 1, "line 7": 1}, sink.byStatus(StatusDone))
	assert.Equal(t, map[string]int{"line 3": 1}, sink.byStatus(StatusError))
}

func TestRunBatchEmpty(t *testing.T) {
	results, err := Evaluator{}.RunBatch(context.Background(), nil, BatchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lines := []Line{{No: 1, Text: "1 + 1"}, {No: 2, Text: "2 + 2"}}
	_, err := Evaluator{}.RunBatch(ctx, lines, BatchOptions{Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{Label: "line 1", Status: StatusDone})
	assert.Equal(t, "line 1", (<-ch).Label)
	ChannelSink{}.OnEvent(Event{})
}
