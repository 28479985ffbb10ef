package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase records the duration and metadata of one evaluation phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of named phases. A nil *Timer is valid and
// records nothing. Timer is safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Track begins a phase and returns the function that ends it.
func (t *Timer) Track(name string) func(note string) {
	idx := t.Begin(name)
	return func(note string) { t.End(idx, note) }
}

// Summary returns a human-readable table of all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-20s %9.3f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  %-20s %9.3f ms\n", "total", report.TotalMS)
	return b.String()
}

// PhaseReport is the serialisable form of a Phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates timer data.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report lists the phases in start order with the total in milliseconds.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
