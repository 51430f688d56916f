package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"devkit/internal/catalog"
	"devkit/internal/engine"
	"devkit/internal/settings"
)

type screen int

const (
	screenIDESelect screen = iota
	screenExtSelect
	screenAppSelect
	screenProgress
	screenDone
)

type phase int

const (
	phaseIDE phase = iota
	phaseExtensions
	phaseApps
)

// Options wires the TUI to the catalog and the engine.
type Options struct {
	Catalog      *catalog.Catalog
	Engine       engine.Engine
	GOOS         string
	TemplatesDir string
	Env          settings.Env
}

// RootModel is the top-level bubbletea model: selection screens
// alternate with progress screens as each provisioning phase runs.
type RootModel struct {
	screen   screen
	phase    phase
	chooser  chooserModel
	selector selectorModel
	progress progressModel

	opts      Options
	ctx       context.Context
	chosenIDE catalog.IDE
	haveIDE   bool
	summary   engine.Summary
}

// New creates the root TUI model.
func New(ctx context.Context, opts Options) RootModel {
	m := RootModel{opts: opts, ctx: ctx}

	if len(opts.Catalog.IDEs) == 0 {
		// Nothing to choose; go straight to apps.
		m.screen = screenAppSelect
		m.selector = newAppSelector(opts.Catalog)
		return m
	}

	labels := make([]string, len(opts.Catalog.IDEs))
	for i, ide := range opts.Catalog.IDEs {
		labels[i] = ide.Name
	}
	m.screen = screenIDESelect
	m.chooser = newChooserModel("Select an IDE", "enter: confirm  •  esc: quit", labels)
	return m
}

func newExtSelector(c *catalog.Catalog) selectorModel {
	labels := make([]string, len(c.Extensions))
	var preselected []int
	for i, e := range c.Extensions {
		labels[i] = e.Name + " — " + e.ID
		if e.Default {
			preselected = append(preselected, i)
		}
	}
	return newSelectorModel("Select extensions to install", labels, preselected)
}

func newAppSelector(c *catalog.Catalog) selectorModel {
	labels := make([]string, len(c.Apps))
	var preselected []int
	for i, a := range c.Apps {
		labels[i] = a.Label()
		if a.Default {
			preselected = append(preselected, i)
		}
	}
	return newSelectorModel("Select apps to install", labels, preselected)
}

func (m RootModel) Init() tea.Cmd {
	switch m.screen {
	case screenIDESelect:
		return m.chooser.Init()
	case screenAppSelect:
		return m.selector.Init()
	}
	return nil
}

// startPhase launches one engine phase and switches to the progress
// screen.
func (m *RootModel) startPhase(p phase, title string, plan engine.Plan) tea.Cmd {
	plan.GOOS = m.opts.GOOS
	plan.TemplatesDir = m.opts.TemplatesDir
	plan.Env = m.opts.Env

	m.phase = p
	ch := m.opts.Engine.Run(m.ctx, plan)
	m.progress = newProgressModel(title, plan.Items(), ch)
	m.screen = screenProgress
	return waitForProgress(ch)
}

// advance moves to whatever comes after the phase that just finished.
func (m *RootModel) advance() tea.Cmd {
	switch m.phase {
	case phaseIDE:
		if len(m.opts.Catalog.Extensions) > 0 {
			m.selector = newExtSelector(m.opts.Catalog)
			m.screen = screenExtSelect
			return m.selector.Init()
		}
		fallthrough
	case phaseExtensions:
		if len(m.opts.Catalog.Apps) > 0 {
			m.selector = newAppSelector(m.opts.Catalog)
			m.screen = screenAppSelect
			return m.selector.Init()
		}
		return m.startPhase(phaseApps, "Applying settings", engine.Plan{
			IDE:           m.chosenIDE,
			ApplySettings: m.haveIDE,
		})
	case phaseApps:
		m.screen = screenDone
	}
	return nil
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Forward window size to the active form.
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		switch m.screen {
		case screenIDESelect:
			next, cmd := m.chooser.Update(msg)
			m.chooser = next
			return m, cmd
		case screenExtSelect, screenAppSelect:
			next, cmd := m.selector.Update(msg)
			m.selector = next
			return m, cmd
		}
		return m, nil
	}

	switch m.screen {
	case screenIDESelect:
		next, cmd := m.chooser.Update(msg)
		m.chooser = next
		if m.chooser.quit {
			return m, tea.Quit
		}
		if m.chooser.done {
			m.chosenIDE = m.opts.Catalog.IDEs[*m.chooser.result]
			m.haveIDE = true
			cmd := m.startPhase(phaseIDE, "Installing "+m.chosenIDE.Name, engine.Plan{
				IDE:        m.chosenIDE,
				InstallIDE: true,
			})
			return m, cmd
		}
		return m, cmd

	case screenExtSelect:
		next, cmd := m.selector.Update(msg)
		m.selector = next
		if m.selector.quit {
			return m, tea.Quit
		}
		if m.selector.done {
			var exts []catalog.Extension
			for _, i := range m.selector.selectedIndices() {
				exts = append(exts, m.opts.Catalog.Extensions[i])
			}
			if len(exts) == 0 {
				m.phase = phaseExtensions
				cmd := m.advance()
				return m, cmd
			}
			cmd := m.startPhase(phaseExtensions, "Installing extensions", engine.Plan{
				IDE:        m.chosenIDE,
				Extensions: exts,
			})
			return m, cmd
		}
		return m, cmd

	case screenAppSelect:
		next, cmd := m.selector.Update(msg)
		m.selector = next
		if m.selector.quit {
			return m, tea.Quit
		}
		if m.selector.done {
			var selected []catalog.App
			for _, i := range m.selector.selectedIndices() {
				selected = append(selected, m.opts.Catalog.Apps[i])
			}
			cmd := m.startPhase(phaseApps, "Installing apps", engine.Plan{
				IDE:           m.chosenIDE,
				Apps:          selected,
				ApplySettings: m.haveIDE,
			})
			return m, cmd
		}
		return m, cmd

	case screenProgress:
		switch msg := msg.(type) {
		case engine.ProgressMsg:
			m.progress.applyMsg(msg)
			m.summary.Apply(msg)
			return m, waitForProgress(m.progress.ch)
		case progressClosedMsg:
			m.progress.done = true
			cmd := m.advance()
			return m, cmd
		}

	case screenDone:
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m RootModel) View() string {
	switch m.screen {
	case screenIDESelect:
		return m.chooser.View()
	case screenExtSelect, screenAppSelect:
		return m.selector.View()
	case screenProgress:
		return m.progress.View()
	case screenDone:
		return m.viewDone()
	}
	return ""
}

func (m RootModel) viewDone() string {
	var sb strings.Builder
	sb.WriteString("\n  " + styleHeader.Render("Setup complete") + "\n\n")

	for _, r := range m.summary.Results {
		var line string
		switch r.State {
		case engine.StateDone:
			line = styleDone.Render(fmt.Sprintf("  ✓ %-24s %s", r.Item, r.Detail))
		case engine.StateError:
			line = styleError.Render(fmt.Sprintf("  ✗ %-24s %s", r.Item, r.Detail))
		default:
			line = styleWarning.Render(fmt.Sprintf("  ! %-24s %s", r.Item, r.Detail))
		}
		sb.WriteString(line + "\n")
	}

	done, attention, failed := m.summary.Counts()
	sb.WriteString(fmt.Sprintf("\n  %d done, %d need attention, %d failed\n", done, attention, failed))
	sb.WriteString("\n  Press any key to exit\n")
	return sb.String()
}
