package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devkit/internal/catalog"
	"devkit/internal/engine"
	"devkit/internal/runner"
	"devkit/internal/settings"
)

type fakeRunner struct {
	results map[string]runner.Result
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string, opts ...runner.Option) runner.Result {
	line := strings.Join(append([]string{name}, args...), " ")
	if res, ok := f.results[line]; ok {
		return res
	}
	return runner.Result{Succeeded: false, Stderr: "exec: " + name + ": executable file not found in $PATH"}
}

func drain(ch <-chan engine.ProgressMsg) engine.Summary {
	var sum engine.Summary
	for msg := range ch {
		sum.Apply(msg)
	}
	return sum
}

func TestRun_fullPlan(t *testing.T) {
	home := t.TempDir()
	r := &fakeRunner{results: map[string]runner.Result{
		"code --version":                           {Succeeded: true},
		"code --install-extension eamodio.gitlens": {Succeeded: true},
		"snap install docker":                      {Succeeded: true},
	}}

	plan := engine.Plan{
		IDE:        catalog.IDE{Name: "VS Code", Command: "code", ConfigDir: "Code"},
		InstallIDE: true,
		Extensions: []catalog.Extension{{Name: "GitLens", ID: "eamodio.gitlens"}},
		Apps: []catalog.App{
			{Name: "docker", Install: map[string]string{"linux": "snap install docker"}},
		},
		ApplySettings: true,
		GOOS:          "linux",
		TemplatesDir:  t.TempDir(),
		Env:           settings.Env{Home: home},
	}

	eng := engine.Engine{Runner: r}
	sum := drain(eng.Run(context.Background(), plan))

	done, attention, failed := sum.Counts()
	if done != 4 || attention != 0 || failed != 0 {
		t.Fatalf("unexpected counts: done=%d attention=%d failed=%d (%+v)", done, attention, failed, sum.Results)
	}

	// Settings step wrote the default object under the fake HOME.
	target := filepath.Join(home, ".config", "Code", "User", "settings.json")
	if _, err := os.Stat(target); err != nil {
		t.Errorf("settings file not written: %v", err)
	}
}

func TestRun_failuresAreLocal(t *testing.T) {
	r := &fakeRunner{results: map[string]runner.Result{
		// IDE absent and its install command fails; the run continues.
		"snap install code --classic": {Succeeded: false, Stderr: "store down"},
		"snap install docker":         {Succeeded: true},
	}}

	plan := engine.Plan{
		IDE: catalog.IDE{
			Name:    "VS Code",
			Command: "code",
			Install: map[string]string{"linux": "snap install code --classic"},
		},
		InstallIDE: true,
		Extensions: []catalog.Extension{{Name: "GitLens", ID: "eamodio.gitlens"}},
		Apps: []catalog.App{
			{Name: "docker", Install: map[string]string{"linux": "snap install docker"}},
		},
		GOOS: "linux",
	}

	eng := engine.Engine{Runner: r}
	sum := drain(eng.Run(context.Background(), plan))

	if len(sum.Results) != 3 {
		t.Fatalf("expected 3 terminal results, got %+v", sum.Results)
	}
	done, _, failed := sum.Counts()
	if done != 1 {
		t.Errorf("expected docker to succeed, got %+v", sum.Results)
	}
	if failed != 2 {
		t.Errorf("expected IDE and extension failures, got %+v", sum.Results)
	}
}

func TestRun_unsupportedOSSkips(t *testing.T) {
	plan := engine.Plan{
		IDE:        catalog.IDE{Name: "VS Code", Command: "code"},
		InstallIDE: true,
		GOOS:       "plan9",
	}

	eng := engine.Engine{Runner: &fakeRunner{}}
	sum := drain(eng.Run(context.Background(), plan))

	if len(sum.Results) != 1 || sum.Results[0].State != engine.StateSkipped {
		t.Fatalf("expected a single skip, got %+v", sum.Results)
	}
	if !strings.Contains(sum.Results[0].Detail, "manually") {
		t.Errorf("expected manual hint, got %q", sum.Results[0].Detail)
	}
}

func TestPlanItems(t *testing.T) {
	plan := engine.Plan{
		IDE:           catalog.IDE{Name: "VS Code", Command: "code"},
		InstallIDE:    true,
		Extensions:    []catalog.Extension{{Name: "GitLens", ID: "eamodio.gitlens"}},
		Apps:          []catalog.App{{Name: "linear", DisplayName: "Linear"}},
		ApplySettings: true,
	}

	items := plan.Items()
	want := []string{"VS Code", "GitLens", "Linear", engine.SettingsItem}
	if len(items) != len(want) {
		t.Fatalf("unexpected items: %v", items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, items[i], want[i])
		}
	}
}
