// Package apps installs catalog apps: pake entries go through the
// packaging CLI, plain entries run their platform install command.
package apps

import (
	"context"
	"fmt"

	"devkit/internal/catalog"
	"devkit/internal/pake"
	"devkit/internal/runner"
)

// Status is the per-app install outcome.
type Status int

const (
	// StatusInstalled: the install command or pake build succeeded.
	StatusInstalled Status = iota

	// StatusWarning: pake's bundling step failed but the app bundle was
	// still produced.
	StatusWarning

	// StatusUnknown: pake failed with its bundling marker but left no
	// discoverable bundle path.
	StatusUnknown

	// StatusSkipped: no install command for this OS; a manual hint is
	// in the detail text.
	StatusSkipped

	// StatusFailed: hard failure.
	StatusFailed
)

func (s Status) String() string {
	return [...]string{"installed", "warning", "unknown", "skipped", "failed"}[s]
}

// Installer installs catalog apps one at a time.
type Installer struct {
	Runner runner.Runner
}

// Install installs a single app for the given OS. The returned detail
// text carries the bundle path for warnings, the manual hint for
// skips, and stderr for failures.
func (in Installer) Install(ctx context.Context, app catalog.App, goos string) (Status, string) {
	cmdline, ok := app.Install[goos]
	if !ok || cmdline == "" {
		return StatusSkipped, fmt.Sprintf("no install command for %s on %s — install it manually", app.Label(), goos)
	}

	if app.Type == catalog.TypePake {
		return in.installPake(ctx, cmdline)
	}

	name, args := runner.Split(cmdline)
	res := in.Runner.Run(ctx, name, args)
	if !res.Succeeded {
		return StatusFailed, res.Stderr
	}
	return StatusInstalled, ""
}

func (in Installer) installPake(ctx context.Context, tpl string) (Status, string) {
	if err := pake.EnsureCLI(ctx, in.Runner); err != nil {
		return StatusFailed, err.Error()
	}

	args, err := pake.ParseTemplate(tpl)
	if err != nil {
		return StatusFailed, err.Error()
	}

	build := pake.Build(ctx, in.Runner, args)
	switch build.Outcome {
	case pake.OutcomeSuccess:
		return StatusInstalled, ""
	case pake.OutcomeBundleWarning:
		return StatusWarning, fmt.Sprintf("bundling step failed but the app was built at %s", build.BundlePath)
	case pake.OutcomeUnknown:
		return StatusUnknown, "bundling step failed; check pake output to confirm whether the app was built"
	default:
		return StatusFailed, build.Stderr
	}
}
