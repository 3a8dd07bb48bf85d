// Package controller provides output adapters for displaying provisioning progress.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeProvision StartMode = iota
	ModePlan
	ModeStatus
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithProvisionMode sets the UI to live provisioning progress.
func WithProvisionMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeProvision
	}
}

// WithPlanMode sets the UI to plan display.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// WithStatusMode sets the UI to environment status display.
func WithStatusMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeStatus
	}
}

func buildStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeProvision}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how provisioning progress reaches the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	// Output receives the child processes' output while steps run.
	Output() io.Writer
	DisplayPlan(ctx context.Context, steps []m.Step, packages, skipped []m.Package)
	DisplayStepStarted(ctx context.Context, step m.Step)
	DisplayStepCompleted(ctx context.Context, result m.StepResult)
	DisplaySummary(ctx context.Context, report m.Report, err error)
	DisplayStatus(ctx context.Context, status m.Status, last *m.Report)
}

// NewUI returns the interactive TUI when tty is true, the plain text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
