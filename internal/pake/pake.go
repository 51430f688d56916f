// Package pake drives the pake packaging CLI, which wraps a web URL
// into a native desktop application bundle.
package pake

import (
	"context"
	"fmt"

	"devkit/internal/runner"
)

const (
	cliCommand = "pake"
	npmPackage = "pake-cli"
)

// EnsureCLI makes sure the pake binary is usable, installing it
// globally through npm when it is not. A missing npm or a failed
// install is fatal for the app being built, not for the run.
func EnsureCLI(ctx context.Context, r runner.Runner) error {
	if runner.Probe(ctx, r, cliCommand) {
		return nil
	}
	if !runner.Probe(ctx, r, "npm") {
		return fmt.Errorf("npm not found on PATH; install Node.js to build pake apps")
	}
	res := r.Run(ctx, "npm", []string{"install", "-g", npmPackage})
	if !res.Succeeded {
		return fmt.Errorf("npm install -g %s failed: %s", npmPackage, res.Stderr)
	}
	return nil
}

// BuildResult is the classified outcome of one pake invocation.
type BuildResult struct {
	Outcome    Outcome
	BundlePath string
	Stderr     string
}

// Build invokes pake with the parsed template arguments. The display
// name is sanitized here; width and height are only passed when the
// template provided both.
func Build(ctx context.Context, r runner.Runner, a Args) BuildResult {
	args := []string{a.URL, "--name", SanitizeName(a.Name)}
	if a.Width != "" && a.Height != "" {
		args = append(args, "--width", a.Width, "--height", a.Height)
	}

	res := r.Run(ctx, cliCommand, args, runner.Quiet())
	outcome, path := Classify(res.Succeeded, res.Stderr)
	return BuildResult{Outcome: outcome, BundlePath: path, Stderr: res.Stderr}
}
