// Package runner executes external install commands and reports their
// outcome as a value instead of an error: a non-zero exit is an
// ordinary result the caller inspects, not a Go error.
package runner

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result is the outcome of one external command.
type Result struct {
	Succeeded bool
	Stdout    string
	Stderr    string
}

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts ...Option) Result
}

type options struct {
	quiet bool
	env   []string
}

// Option adjusts how a command is spawned.
type Option func(*options)

// Quiet discards the command's stdout/stderr instead of echoing them
// to the terminal. Output is still captured in the Result.
func Quiet() Option {
	return func(o *options) { o.quiet = true }
}

// WithEnv appends KEY=VALUE pairs to the inherited environment.
func WithEnv(kv ...string) Option {
	return func(o *options) { o.env = append(o.env, kv...) }
}

// ExecRunner runs commands via os/exec with the parent environment.
type ExecRunner struct{}

// Run executes name with args and waits for it to finish. A missing
// executable shows up as a failed Result with the lookup error in
// Stderr.
func (ExecRunner) Run(ctx context.Context, name string, args []string, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := exec.LookPath(name); err != nil {
		return Result{Succeeded: false, Stderr: err.Error()}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), o.env...)

	var stdout, stderr bytes.Buffer
	if o.quiet {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = io.MultiWriter(&stdout, os.Stdout)
		cmd.Stderr = io.MultiWriter(&stderr, os.Stderr)
	}

	err := cmd.Run()
	return Result{
		Succeeded: err == nil,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
	}
}

// Probe reports whether cmd responds to a --version query. Used as a
// cheap presence check for IDE binaries and the pake CLI.
func Probe(ctx context.Context, r Runner, cmd string) bool {
	return r.Run(ctx, cmd, []string{"--version"}, Quiet()).Succeeded
}

// Split breaks a catalog install command string into program name and
// arguments. Commands in the catalog are plain word lists, never shell
// syntax, so whitespace splitting is enough.
func Split(cmdline string) (string, []string) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
