package ide_test

import (
	"context"
	"strings"
	"testing"

	"devkit/internal/catalog"
	"devkit/internal/ide"
	"devkit/internal/runner"
)

// fakeRunner maps full command lines to canned results. Unknown
// commands behave like a missing executable.
type fakeRunner struct {
	results map[string]runner.Result
	calls   []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string, opts ...runner.Option) runner.Result {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	if res, ok := f.results[line]; ok {
		return res
	}
	return runner.Result{Succeeded: false, Stderr: "exec: " + name + ": executable file not found in $PATH"}
}

var vscode = catalog.IDE{
	Name:    "VS Code",
	Command: "code",
	Install: map[string]string{"linux": "snap install code --classic"},
}

func TestDetect(t *testing.T) {
	r := &fakeRunner{results: map[string]runner.Result{
		"code --version": {Succeeded: true, Stdout: "1.92.0"},
	}}
	in := ide.Installer{Runner: r}

	if got := in.Detect(context.Background(), vscode); got != ide.StatusPresent {
		t.Errorf("expected present, got %s", got)
	}

	r.results = nil
	if got := in.Detect(context.Background(), vscode); got != ide.StatusAbsent {
		t.Errorf("expected absent, got %s", got)
	}
}

func TestInstall_success(t *testing.T) {
	r := &fakeRunner{results: map[string]runner.Result{
		"snap install code --classic": {Succeeded: true},
	}}
	in := ide.Installer{Runner: r}

	status, err := in.Install(context.Background(), vscode, "linux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != ide.StatusInstalled {
		t.Errorf("expected installed, got %s", status)
	}
}

func TestInstall_failure(t *testing.T) {
	r := &fakeRunner{results: map[string]runner.Result{
		"snap install code --classic": {Succeeded: false, Stderr: "snap store unreachable"},
	}}
	in := ide.Installer{Runner: r}

	status, err := in.Install(context.Background(), vscode, "linux")
	if status != ide.StatusInstallFailed {
		t.Errorf("expected install failed, got %s", status)
	}
	if err == nil || !strings.Contains(err.Error(), "snap store unreachable") {
		t.Errorf("expected stderr in error, got: %v", err)
	}
}

func TestInstall_unsupportedOS(t *testing.T) {
	in := ide.Installer{Runner: &fakeRunner{}}

	status, err := in.Install(context.Background(), vscode, "plan9")
	if status != ide.StatusAbsent {
		t.Errorf("expected absent, got %s", status)
	}
	if err == nil || !strings.Contains(err.Error(), "manually") {
		t.Errorf("expected manual-install hint, got: %v", err)
	}
}

func TestInstallExtensions(t *testing.T) {
	r := &fakeRunner{results: map[string]runner.Result{
		"code --install-extension eamodio.gitlens": {Succeeded: true},
	}}
	in := ide.Installer{Runner: r}

	exts := []catalog.Extension{
		{Name: "GitLens", ID: "eamodio.gitlens"},
		{Name: "Broken", ID: "broken.ext"},
	}
	results := in.InstallExtensions(context.Background(), vscode, exts)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Succeeded {
		t.Errorf("expected gitlens install to succeed: %+v", results[0])
	}
	if results[1].Succeeded {
		t.Errorf("expected broken.ext install to fail")
	}
	if results[1].Detail == "" {
		t.Error("expected failure detail for broken.ext")
	}
}
