// Package ide detects and installs the chosen editor and its
// extensions by shelling out to platform install commands.
package ide

import (
	"context"
	"fmt"

	"devkit/internal/catalog"
	"devkit/internal/runner"
)

// Status is the install state of an IDE.
type Status int

const (
	StatusNotChecked Status = iota
	StatusPresent
	StatusAbsent
	StatusInstalled
	StatusInstallFailed
)

func (s Status) String() string {
	return [...]string{
		"not checked", "present", "absent", "installed", "install failed",
	}[s]
}

// ExtensionResult is the outcome of one extension install.
type ExtensionResult struct {
	Extension catalog.Extension
	Succeeded bool
	Detail    string
}

// Installer installs IDEs and their extensions.
type Installer struct {
	Runner runner.Runner
}

// Detect probes the IDE binary with a version query and reports
// whether it is already present.
func (in Installer) Detect(ctx context.Context, ide catalog.IDE) Status {
	if runner.Probe(ctx, in.Runner, ide.Command) {
		return StatusPresent
	}
	return StatusAbsent
}

// Install runs the IDE's platform install command. When the catalog
// has no command for this OS the returned error carries a
// manual-install hint; the caller logs it and the run continues.
func (in Installer) Install(ctx context.Context, ide catalog.IDE, goos string) (Status, error) {
	cmdline, ok := ide.Install[goos]
	if !ok || cmdline == "" {
		return StatusAbsent, fmt.Errorf("no install command for %s on %s — install it manually and re-run", ide.Name, goos)
	}

	name, args := runner.Split(cmdline)
	res := in.Runner.Run(ctx, name, args)
	if !res.Succeeded {
		return StatusInstallFailed, fmt.Errorf("install %s: %s", ide.Name, firstNonEmpty(res.Stderr, "command exited with an error"))
	}
	return StatusInstalled, nil
}

// InstallExtension installs one extension through the IDE's own
// extension-management subcommand.
func (in Installer) InstallExtension(ctx context.Context, ide catalog.IDE, ext catalog.Extension) ExtensionResult {
	res := in.Runner.Run(ctx, ide.Command, []string{"--install-extension", ext.ID}, runner.Quiet())
	r := ExtensionResult{Extension: ext, Succeeded: res.Succeeded}
	if !res.Succeeded {
		r.Detail = firstNonEmpty(res.Stderr, "command exited with an error")
	}
	return r
}

// InstallExtensions installs each extension in order. Failures are
// recorded per extension and never stop the loop.
func (in Installer) InstallExtensions(ctx context.Context, ide catalog.IDE, exts []catalog.Extension) []ExtensionResult {
	results := make([]ExtensionResult, 0, len(exts))
	for _, ext := range exts {
		results = append(results, in.InstallExtension(ctx, ide, ext))
	}
	return results
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
