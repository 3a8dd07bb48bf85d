package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"emsetup.dev/pkg/emsetup/internal/adapter"
	"emsetup.dev/pkg/emsetup/internal/controller"
	m "emsetup.dev/pkg/emsetup/internal/model"
)

// Workflow ties the provisioner, the inspector, the report store and the UI together
// for the CLI commands.
type Workflow interface {
	Provision(ctx context.Context, args ProvisionArgs) error
	Plan(ctx context.Context, args ProvisionArgs) error
	Status(ctx context.Context, args StatusArgs) error
}

type workflow struct {
	adapter.ReportStore
	Provisioner
	Inspector
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	provisioner Provisioner,
	inspector Inspector,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		Provisioner: provisioner,
		Inspector:   inspector,
		ui:          ui,
	}
}

func (w *workflow) Provision(ctx context.Context, args ProvisionArgs) error {
	if err := w.ui.Start(ctx, controller.WithProvisionMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	plan := w.Provisioner.Plan(args)
	w.ui.DisplayPlan(ctx, plan.Steps, plan.Packages, plan.Skipped)

	args.Output = w.ui.Output()

	report, err := w.Provisioner.Provision(ctx, args, w.ui)
	w.saveReport(args.ReportPath, report)
	w.ui.DisplaySummary(ctx, report, err)
	w.ui.Wait(ctx)

	return err
}

func (w *workflow) Plan(ctx context.Context, args ProvisionArgs) error {
	if err := w.ui.Start(ctx, controller.WithPlanMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	plan := w.Provisioner.Plan(args)
	w.ui.DisplayPlan(ctx, plan.Steps, plan.Packages, plan.Skipped)

	return nil
}

func (w *workflow) Status(ctx context.Context, args StatusArgs) error {
	if err := w.ui.Start(ctx, controller.WithStatusMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	status, err := w.Inspector.Inspect(ctx, args)
	if err != nil {
		return fmt.Errorf("inspect environment: %w", err)
	}

	var last *m.Report

	if args.ReportPath != "" {
		report, loadErr := w.LoadReport(args.ReportPath)
		if loadErr == nil {
			last = &report
		} else {
			slog.Debug("no previous report", "path", args.ReportPath, "error", loadErr)
		}
	}

	w.ui.DisplayStatus(ctx, status, last)

	if !status.Healthy() {
		return ErrUnhealthy
	}

	return nil
}

// ErrUnhealthy is returned by Status when the environment does not match the configuration.
var ErrUnhealthy = errors.New("environment is incomplete")

// saveReport stores the report once the layout directory exists. Earlier failures
// leave no report behind so the run has no side effects beyond the failed step.
func (w *workflow) saveReport(path m.Path, report m.Report) {
	if path == "" || !layoutCreated(report) {
		return
	}

	if err := w.SaveReport(path, report); err != nil {
		slog.Warn("failed to save report", "path", path, "error", err)
		return
	}

	slog.Debug("saved report", "path", path)
}

func layoutCreated(report m.Report) bool {
	for _, step := range report.Steps {
		if step.Step.ID == m.StepCreateLayout {
			return step.Status == m.Done
		}
	}

	return false
}
