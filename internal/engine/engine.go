// Package engine runs the provisioning sequence: install the IDE,
// install its extensions, install the selected apps, then apply the
// IDE settings. Steps run strictly one after another and every
// failure is local — the run always continues to the next item.
package engine

import (
	"context"

	"devkit/internal/apps"
	"devkit/internal/catalog"
	"devkit/internal/ide"
	"devkit/internal/runner"
	"devkit/internal/settings"
)

// State is the progress state of one plan item.
type State int

const (
	StatePending State = iota
	StateRunning
	StateDone
	StateWarning
	StateUnknown
	StateSkipped
	StateError
)

func (s State) String() string {
	return [...]string{
		"pending", "running", "done", "warning", "unknown", "skipped", "error",
	}[s]
}

// Terminal reports whether an item is finished.
func (s State) Terminal() bool {
	return s != StatePending && s != StateRunning
}

// ProgressMsg is sent over the progress channel for each state
// transition of a plan item.
type ProgressMsg struct {
	Item   string
	State  State
	Detail string
}

// Plan is one run's selection set plus the environment it executes in.
type Plan struct {
	IDE           catalog.IDE
	InstallIDE    bool
	Extensions    []catalog.Extension
	Apps          []catalog.App
	ApplySettings bool
	GOOS          string
	TemplatesDir  string
	Env           settings.Env
}

// SettingsItem is the plan item name for the settings step.
const SettingsItem = "settings"

// Items returns the plan's item names in execution order, for
// pre-seeding progress displays.
func (p Plan) Items() []string {
	var items []string
	if p.InstallIDE {
		items = append(items, p.IDE.Name)
	}
	for _, e := range p.Extensions {
		items = append(items, e.Name)
	}
	for _, a := range p.Apps {
		items = append(items, a.Label())
	}
	if p.ApplySettings {
		items = append(items, SettingsItem)
	}
	return items
}

// Engine executes plans.
type Engine struct {
	Runner runner.Runner
}

// Run executes the plan sequentially, sending progress updates to the
// returned channel. The channel is closed when the run completes.
func (e Engine) Run(ctx context.Context, plan Plan) <-chan ProgressMsg {
	ch := make(chan ProgressMsg, 8)
	go func() {
		defer close(ch)
		e.run(ctx, plan, ch)
	}()
	return ch
}

func (e Engine) run(ctx context.Context, plan Plan, ch chan<- ProgressMsg) {
	ideInstaller := ide.Installer{Runner: e.Runner}
	appInstaller := apps.Installer{Runner: e.Runner}

	if plan.InstallIDE {
		ch <- ProgressMsg{Item: plan.IDE.Name, State: StateRunning}
		switch ideInstaller.Detect(ctx, plan.IDE) {
		case ide.StatusPresent:
			ch <- ProgressMsg{Item: plan.IDE.Name, State: StateDone, Detail: "already installed"}
		default:
			status, err := ideInstaller.Install(ctx, plan.IDE, plan.GOOS)
			switch status {
			case ide.StatusInstalled:
				ch <- ProgressMsg{Item: plan.IDE.Name, State: StateDone}
			case ide.StatusAbsent:
				ch <- ProgressMsg{Item: plan.IDE.Name, State: StateSkipped, Detail: err.Error()}
			default:
				ch <- ProgressMsg{Item: plan.IDE.Name, State: StateError, Detail: err.Error()}
			}
		}
	}

	for _, ext := range plan.Extensions {
		ch <- ProgressMsg{Item: ext.Name, State: StateRunning}
		r := ideInstaller.InstallExtension(ctx, plan.IDE, ext)
		if r.Succeeded {
			ch <- ProgressMsg{Item: ext.Name, State: StateDone}
		} else {
			ch <- ProgressMsg{Item: ext.Name, State: StateError, Detail: r.Detail}
		}
	}

	for _, app := range plan.Apps {
		ch <- ProgressMsg{Item: app.Label(), State: StateRunning}
		status, detail := appInstaller.Install(ctx, app, plan.GOOS)
		ch <- ProgressMsg{Item: app.Label(), State: appState(status), Detail: detail}
	}

	if plan.ApplySettings {
		ch <- ProgressMsg{Item: SettingsItem, State: StateRunning}
		e.applySettings(plan, ch)
	}
}

func (e Engine) applySettings(plan Plan, ch chan<- ProgressMsg) {
	target, err := settings.Path(plan.IDE, plan.GOOS, plan.Env)
	if err != nil {
		ch <- ProgressMsg{Item: SettingsItem, State: StateSkipped, Detail: err.Error()}
		return
	}
	action, err := settings.Apply(target, settings.TemplatePath(plan.TemplatesDir, plan.IDE))
	if err != nil {
		ch <- ProgressMsg{Item: SettingsItem, State: StateError, Detail: err.Error()}
		return
	}
	ch <- ProgressMsg{Item: SettingsItem, State: StateDone, Detail: action.String()}
}

func appState(s apps.Status) State {
	switch s {
	case apps.StatusInstalled:
		return StateDone
	case apps.StatusWarning:
		return StateWarning
	case apps.StatusUnknown:
		return StateUnknown
	case apps.StatusSkipped:
		return StateSkipped
	default:
		return StateError
	}
}
