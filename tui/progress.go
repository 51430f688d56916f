package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devkit/internal/engine"
)

var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	stylePending = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeader  = lipgloss.NewStyle().Bold(true)
)

type progressEntry struct {
	name   string
	state  engine.State
	detail string
}

type progressModel struct {
	title   string
	entries map[string]*progressEntry
	order   []string
	ch      <-chan engine.ProgressMsg
	done    bool
}

func waitForProgress(ch <-chan engine.ProgressMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return progressClosedMsg{}
		}
		return msg
	}
}

// progressClosedMsg signals that the engine finished the phase and
// closed its channel.
type progressClosedMsg struct{}

func newProgressModel(title string, items []string, ch <-chan engine.ProgressMsg) progressModel {
	entries := make(map[string]*progressEntry, len(items))
	for _, name := range items {
		entries[name] = &progressEntry{name: name, state: engine.StatePending}
	}
	return progressModel{title: title, entries: entries, order: items, ch: ch}
}

func (m *progressModel) applyMsg(msg engine.ProgressMsg) {
	if e, ok := m.entries[msg.Item]; ok {
		e.state = msg.State
		e.detail = msg.Detail
	}
}

func (m progressModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n  " + styleHeader.Render(m.title) + "\n\n")

	for _, name := range m.order {
		e := m.entries[name]
		var line string
		switch e.state {
		case engine.StateDone:
			line = styleDone.Render(fmt.Sprintf("  ✓ %-24s %s", e.name, e.detail))
		case engine.StateWarning, engine.StateUnknown, engine.StateSkipped:
			line = styleWarning.Render(fmt.Sprintf("  ! %-24s %s", e.name, e.detail))
		case engine.StateError:
			line = styleError.Render(fmt.Sprintf("  ✗ %-24s %s", e.name, e.detail))
		case engine.StateRunning:
			line = fmt.Sprintf("  … %-24s", e.name)
		default:
			line = stylePending.Render(fmt.Sprintf("  · %-24s", e.name))
		}
		sb.WriteString(line + "\n")
	}

	return sb.String()
}
