package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bigcalc/internal/calc"
	"bigcalc/internal/ui"
)

type batchOutcome struct {
	results []calc.Result
	err     error
}

// runBatchWithUI evaluates lines while a progress view renders on stderr.
func runBatchWithUI(ctx context.Context, title string, ev calc.Evaluator, lines []calc.Line, opts calc.BatchOptions) ([]calc.Result, error) {
	return runBatchWithView(ctx, ev, lines, opts, func(events <-chan calc.Event) error {
		model := ui.NewProgressModel(title, lines, events)
		program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
		_, err := program.Run()
		return err
	})
}

// runBatchWithView runs the batch in the background and feeds its events to
// view. If view returns early with an error, the batch is cancelled and the
// remaining events are drained so the evaluator never blocks on the sink.
func runBatchWithView(ctx context.Context, ev calc.Evaluator, lines []calc.Line, opts calc.BatchOptions, view func(<-chan calc.Event) error) ([]calc.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan calc.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = calc.ChannelSink{Ch: events}
		res, err := ev.RunBatch(ctx, lines, optsCopy)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	uiErr := view(events)
	if uiErr != nil {
		cancel()
		for range events {
		}
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
