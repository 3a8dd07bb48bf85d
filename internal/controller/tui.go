package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "emsetup.dev/pkg/emsetup/internal/model"
	"emsetup.dev/pkg/emsetup/pkg"
)

// tailLines is how much child output is kept for the failure diagnostic.
const tailLines = 15

// TUI implements UI using Bubble Tea for live provisioning progress. Plan and
// status output is static and rendered like SimpleUI.
type TUI struct {
	*SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	tail    *pkg.TailBuffer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		tail:     pkg.NewTailBuffer(tailLines),
	}
}

// Start launches the Bubble Tea program in provision mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if buildStartConfig(options).mode != ModeProvision {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.tail.Reset()
	t.done = make(chan struct{})
	t.program = tea.NewProgram(
		newProvisionModel(),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithInput(nil),
	)

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("tui program failed", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close(_ context.Context) {
	program, done := t.running()
	if program == nil {
		return
	}

	program.Quit()
	<-done

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
}

// Wait blocks until the program has rendered its final frame.
func (t *TUI) Wait(_ context.Context) {
	if _, done := t.running(); done != nil {
		<-done
	}
}

// Output feeds child output into the progress view.
func (t *TUI) Output() io.Writer {
	if program, _ := t.running(); program == nil {
		return t.SimpleUI.Output()
	}

	return tuiOutput{tui: t}
}

// DisplayPlan sends the plan to the progress view.
func (t *TUI) DisplayPlan(ctx context.Context, steps []m.Step, packages, skipped []m.Package) {
	if err := ctx.Err(); err != nil {
		return
	}

	program, _ := t.running()
	if program == nil {
		t.SimpleUI.DisplayPlan(ctx, steps, packages, skipped)
		return
	}

	program.Send(planMsg{steps: steps, packages: m.PackageNames(packages), skipped: m.PackageNames(skipped)})
}

// DisplayStepStarted marks a step as running.
func (t *TUI) DisplayStepStarted(ctx context.Context, step m.Step) {
	if err := ctx.Err(); err != nil {
		return
	}

	program, _ := t.running()
	if program == nil {
		t.SimpleUI.DisplayStepStarted(ctx, step)
		return
	}

	t.tail.Reset()
	program.Send(stepStartedMsg{id: step.ID})
}

// DisplayStepCompleted records a step outcome.
func (t *TUI) DisplayStepCompleted(ctx context.Context, result m.StepResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	program, _ := t.running()
	if program == nil {
		t.SimpleUI.DisplayStepCompleted(ctx, result)
		return
	}

	program.Send(stepCompletedMsg{result: result})
}

// DisplaySummary ends the live view, then prints the summary table and, on
// failure, the last lines the failing tool printed.
func (t *TUI) DisplaySummary(ctx context.Context, report m.Report, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if program, done := t.running(); program != nil {
		program.Send(finishedMsg{})
		<-done
	}

	if err != nil {
		if lines := t.tail.Lines(); len(lines) > 0 {
			t.printf("\n%s\n", strings.Join(lines, "\n"))
		}
	}

	t.SimpleUI.DisplaySummary(ctx, report, err)
}

func (t *TUI) running() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

type tuiOutput struct {
	tui *TUI
}

func (o tuiOutput) Write(p []byte) (int, error) {
	n, err := o.tui.tail.Write(p)

	if program, _ := o.tui.running(); program != nil {
		program.Send(outputMsg{line: o.tui.tail.Last()})
	}

	return n, err
}

type planMsg struct {
	steps    []m.Step
	packages []string
	skipped  []string
}

type stepStartedMsg struct {
	id m.StepID
}

type stepCompletedMsg struct {
	result m.StepResult
}

type outputMsg struct {
	line string
}

type finishedMsg struct{}

type provisionModel struct {
	spinner  spinner.Model
	steps    []m.Step
	statuses map[m.StepID]m.StepResult
	running  m.StepID
	packages []string
	skipped  []string
	lastLine string
	finished bool
}

func newProvisionModel() provisionModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return provisionModel{
		spinner:  s,
		statuses: make(map[m.StepID]m.StepResult),
	}
}

func (pm provisionModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm provisionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planMsg:
		pm.steps = msg.steps
		pm.packages = msg.packages
		pm.skipped = msg.skipped
	case stepStartedMsg:
		pm.running = msg.id
		pm.lastLine = ""
	case stepCompletedMsg:
		pm.statuses[msg.result.Step.ID] = msg.result
		pm.running = ""
	case outputMsg:
		pm.lastLine = msg.line
	case finishedMsg:
		pm.finished = true
		return pm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm provisionModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("energy monitor environment"))
	b.WriteString("\n\n")

	for _, step := range pm.steps {
		b.WriteString(pm.renderStep(step))
		b.WriteString("\n")
	}

	if len(pm.packages) > 0 {
		fmt.Fprintf(&b, "\npackages: %s\n", strings.Join(pm.packages, ", "))
	}

	if len(pm.skipped) > 0 {
		b.WriteString(pendingStyle.Render("skipped: "+strings.Join(pm.skipped, ", ")) + "\n")
	}

	if !pm.finished && pm.lastLine != "" {
		b.WriteString("\n" + outputStyle.Render(truncate(pm.lastLine, 100)) + "\n")
	}

	return b.String()
}

func (pm provisionModel) renderStep(step m.Step) string {
	if result, ok := pm.statuses[step.ID]; ok {
		if result.Status == m.Failed {
			return failedStyle.Render("✗ "+step.Title) + " " + result.Error
		}

		return doneStyle.Render("✓ "+step.Title) + " " + pendingStyle.Render(formatDuration(result.Duration))
	}

	if step.ID == pm.running {
		return pm.spinner.View() + " " + step.Title
	}

	return pendingStyle.Render("· " + step.Title)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-1]) + "…"
}
