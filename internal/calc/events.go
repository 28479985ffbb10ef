package calc

import "time"

// Stage describes a phase of evaluating one line.
type Stage string

const (
	// StageParse is operand parsing.
	StageParse Stage = "parse"
	// StageEval is the arithmetic itself.
	StageEval Stage = "evaluate"
	// StageFormat is rendering the result in the output radix.
	StageFormat Stage = "format"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the line is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the line is being evaluated.
	StatusWorking Status = "working"
	// StatusDone indicates the line produced a result.
	StatusDone Status = "done"
	// StatusError indicates the line failed.
	StatusError Status = "error"
)

// Event reports progress for a line (or for the whole batch when Label is empty).
type Event struct {
	Label   string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
