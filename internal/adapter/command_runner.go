package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Command describes a child process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env replaces the child environment when non-nil.
	Env []string
	// Output receives combined stdout/stderr as it is produced. May be nil.
	Output io.Writer
}

// String renders the command line for logs and progress messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Outcome is what a finished child process left behind.
type Outcome struct {
	Output   string
	Duration time.Duration
}

// ExitError is returned when the child ran but exited non-zero.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command.Name, e.Code)
}

// CommandRunner abstracts process execution for the provisioning steps.
type CommandRunner interface {
	// Run executes the command and blocks until it exits or ctx is done.
	Run(ctx context.Context, cmd Command) (Outcome, error)

	// LookPath resolves an executable name against PATH.
	LookPath(name string) (string, error)
}

// LocalCommandRunner provides a concrete implementation using os/exec.
type LocalCommandRunner struct{}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// Run starts the command, streams its output to cmd.Output and returns the
// captured output. Non-zero exits are reported as *ExitError.
func (r *LocalCommandRunner) Run(ctx context.Context, cmd Command) (Outcome, error) {
	// #nosec G204 - command lines are built from configuration, not remote input
	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Dir = cmd.Dir

	if cmd.Env != nil {
		proc.Env = cmd.Env
	}

	var captured bytes.Buffer

	var sink io.Writer = &captured
	if cmd.Output != nil {
		sink = io.MultiWriter(&captured, cmd.Output)
	}

	proc.Stdout = sink
	proc.Stderr = sink

	slog.Debug("running command", "command", cmd.String(), "dir", cmd.Dir)

	start := time.Now()
	err := proc.Run()
	outcome := Outcome{Output: captured.String(), Duration: time.Since(start)}

	if err == nil {
		return outcome, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		slog.Debug("command exited non-zero", "command", cmd.String(), "code", exitErr.ExitCode())
		return outcome, &ExitError{Command: cmd, Code: exitErr.ExitCode()}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return outcome, fmt.Errorf("%s interrupted: %w", cmd.Name, ctxErr)
	}

	return outcome, fmt.Errorf("start %s: %w", cmd.Name, err)
}

// LookPath resolves name via exec.LookPath.
func (r *LocalCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
