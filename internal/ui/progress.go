package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bigcalc/internal/calc"
)

// maxVisibleItems caps the rows drawn; larger batches show the tail.
const maxVisibleItems = 20

type progressModel struct {
	title   string
	events  <-chan calc.Event
	spinner spinner.Model
	prog    progress.Model
	items   []lineItem
	index   map[string]int
	failed  int
	width   int
	done    bool
}

type lineItem struct {
	label  string
	text   string
	status string
	stage  calc.Stage
}

type eventMsg calc.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders batch progress,
// one row per input line.
func NewProgressModel(title string, lines []calc.Line, events <-chan calc.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]lineItem, 0, len(lines))
	index := make(map[string]int, len(lines))
	for i, l := range lines {
		label := calc.Label(l)
		items = append(items, lineItem{label: label, text: l.Text, status: "queued"})
		index[label] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(calc.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d lines", m.title, len(m.items))
	if m.failed > 0 {
		header += fmt.Sprintf(", %d failed", m.failed)
	}
	header += ")"
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := max(m.width-statusWidth-4, 20)

	visible := m.items
	if len(visible) > maxVisibleItems {
		fmt.Fprintf(&b, "  %s\n", lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("... %d more", len(visible)-maxVisibleItems)))
		visible = visible[len(visible)-maxVisibleItems:]
	}
	for _, item := range visible {
		name := truncate(item.label+": "+item.text, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		fmt.Fprintf(&b, "  %s %s\n", statusStyled, name)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev calc.Event) tea.Cmd {
	idx, ok := m.index[ev.Label]
	if !ok {
		return nil
	}
	label := statusLabel(ev.Stage, ev.Status)
	if label == "" {
		return nil
	}
	if label == "error" && m.items[idx].status != "error" {
		m.failed++
	}
	m.items[idx].status = label
	m.items[idx].stage = ev.Stage
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		if item.status == "done" || item.status == "error" {
			total += 1.0
		} else if item.status != "queued" {
			total += progressFromStage(item.stage)
		}
	}
	return total / float64(len(m.items))
}

func progressFromStage(stage calc.Stage) float64 {
	switch stage {
	case calc.StageParse:
		return 0.1
	case calc.StageEval:
		return 0.3
	case calc.StageFormat:
		return 0.8
	default:
		return 0.0
	}
}

func statusLabel(stage calc.Stage, status calc.Status) string {
	switch status {
	case calc.StatusQueued:
		return "queued"
	case calc.StatusDone:
		return "done"
	case calc.StatusError:
		return "error"
	case calc.StatusWorking:
		return stageLabel(stage)
	default:
		return ""
	}
}

func stageLabel(stage calc.Stage) string {
	switch stage {
	case calc.StageParse:
		return "parsing"
	case calc.StageEval:
		return "computing"
	case calc.StageFormat:
		return "formatting"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "parsing", "computing", "formatting":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
