package calc

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures RunBatch.
type BatchOptions struct {
	// Jobs caps the number of concurrent evaluations; zero means GOMAXPROCS.
	Jobs int
	// Sink receives per-line progress events. It may be nil.
	Sink ProgressSink
}

// Label names a line in progress events.
func Label(l Line) string {
	return "line " + strconv.Itoa(l.No)
}

// RunBatch evaluates lines concurrently. Results come back in input order;
// a failing line is recorded in its Result and does not stop the batch.
// Only context cancellation aborts.
func (e Evaluator) RunBatch(ctx context.Context, lines []Line, opts BatchOptions) ([]Result, error) {
	results := make([]Result, len(lines))
	if len(lines) == 0 {
		return results, nil
	}
	e.Timer = nil

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, l := range lines {
		emit(opts.Sink, Event{Label: Label(l), Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))

	for i, l := range lines {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			label := Label(l)
			start := time.Now()
			res := e.eval(label, l.Text, opts.Sink)
			res.Line = l.No
			// index i is unique per goroutine
			results[i] = res

			status := StatusDone
			if res.Err != nil {
				status = StatusError
			}
			emit(opts.Sink, Event{Label: label, Stage: StageFormat, Status: status, Err: res.Err, Elapsed: time.Since(start)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
