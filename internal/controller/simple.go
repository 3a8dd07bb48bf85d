package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	steps []m.Step
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// Output streams child output straight to the command's stdout.
func (s *SimpleUI) Output() io.Writer {
	return s.cmd.OutOrStdout()
}

// DisplayPlan prints the ordered steps and the packages that will be installed.
func (s *SimpleUI) DisplayPlan(ctx context.Context, steps []m.Step, packages, skipped []m.Package) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.steps = steps

	s.printf("%s", renderPlan(steps, packages, skipped))
}

func renderPlan(steps []m.Step, packages, skipped []m.Package) string {
	var b strings.Builder

	b.WriteString("Steps:\n")

	for i, step := range steps {
		fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, step.Title, step.ID)
	}

	fmt.Fprintf(&b, "Packages: %s\n", joinOrNone(m.PackageNames(packages)))

	if len(skipped) > 0 {
		fmt.Fprintf(&b, "Skipped (no GPU tooling): %s\n", strings.Join(m.PackageNames(skipped), ", "))
	}

	return b.String()
}

// DisplayStepStarted announces a step.
func (s *SimpleUI) DisplayStepStarted(ctx context.Context, step m.Step) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("==> [%s] %s\n", s.position(step.ID), step.Title)
}

// DisplayStepCompleted reports how a step ended.
func (s *SimpleUI) DisplayStepCompleted(ctx context.Context, result m.StepResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Status == m.Failed {
		s.printf("    failed after %s: %s\n", formatDuration(result.Duration), result.Error)
		return
	}

	s.printf("    %s in %s: %s\n", result.Status, formatDuration(result.Duration), result.Detail)
}

// DisplaySummary prints a table of step outcomes and the final verdict.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.Report, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))
	s.printf("%s\n", summaryVerdict(report, err))
}

func renderSummaryTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Step", "Status", "Duration", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, step := range report.Steps {
		detail := step.Detail
		if step.Status == m.Failed {
			detail = step.Error
		}

		duration := ""
		if step.Status == m.Done || step.Status == m.Failed {
			duration = formatDuration(step.Duration)
		}

		table.Append([]string{string(step.Step.ID), step.Status.String(), duration, detail})
	}

	table.Render()

	return tableBuffer.String()
}

func summaryVerdict(report m.Report, err error) string {
	if err == nil && report.Succeeded() {
		return fmt.Sprintf("Environment ready in %s: %s (%s)",
			formatDuration(report.Duration()), report.VenvDir, report.Layout.Root)
	}

	if failed, ok := report.FailedStep(); ok {
		return fmt.Sprintf("Provisioning failed at %s: %s", failed.Step.ID, failed.Error)
	}

	if err != nil {
		return fmt.Sprintf("Provisioning failed: %v", err)
	}

	return "Provisioning did not complete"
}

// DisplayStatus prints the inspection results.
func (s *SimpleUI) DisplayStatus(ctx context.Context, status m.Status, last *m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderStatus(status, last))
}

func renderStatus(status m.Status, last *m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Check", "State", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	table.Append([]string{"environment", okLabel(status.VenvExists), string(status.VenvDir)})

	if status.VenvExists {
		table.Append([]string{"interpreter", okLabel(true), string(status.Interpreter)})
		table.Append([]string{
			"packages", okLabel(len(status.Missing) == 0),
			fmt.Sprintf("%d installed, missing: %s", len(status.Installed), joinOrNone(status.Missing)),
		})
	}

	for _, dir := range status.Dirs {
		state := okLabel(dir.Exists && dir.Writable)
		detail := string(dir.Path)

		if dir.Exists && !dir.Writable {
			detail += " (read-only)"
		}

		table.Append([]string{"directory", state, detail})
	}

	gpu := status.GPUVendor
	if gpu == "" {
		gpu = "none detected"
	}

	table.Append([]string{"gpu tooling", "-", gpu})
	table.Render()

	var b strings.Builder

	b.WriteString(tableBuffer.String())

	if status.Drift != "" {
		b.WriteString("\nPackage drift:\n")
		b.WriteString(status.Drift)
	}

	if last != nil {
		verdict := "failed"
		if last.Succeeded() {
			verdict = "succeeded"
		}

		fmt.Fprintf(&b, "\nLast run %s at %s\n", verdict, last.FinishedAt.Format(time.RFC3339))
	}

	return b.String()
}

func (s *SimpleUI) position(id m.StepID) string {
	for i, step := range s.steps {
		if step.ID == id {
			return fmt.Sprintf("%d/%d", i+1, len(s.steps))
		}
	}

	return string(id)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func okLabel(ok bool) string {
	if ok {
		return "ok"
	}

	return "missing"
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}

	return strings.Join(items, ", ")
}

func formatDuration(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}
