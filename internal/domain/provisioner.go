package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"emsetup.dev/pkg/emsetup/internal/adapter"
	m "emsetup.dev/pkg/emsetup/internal/model"
)

// DefaultSteps is the fixed provisioning sequence.
var DefaultSteps = []m.Step{
	{ID: m.StepCreateVenv, Title: "Create virtual environment"},
	{ID: m.StepActivate, Title: "Activate environment"},
	{ID: m.StepUpgradeInstaller, Title: "Upgrade package installer"},
	{ID: m.StepInstallPackages, Title: "Install packages"},
	{ID: m.StepCreateLayout, Title: "Create directory structure"},
}

// ProvisionArgs contains the inputs of a provisioning run.
type ProvisionArgs struct {
	Python    string
	VenvDir   m.Path
	ClearVenv bool
	Packages  []m.Package
	GPUPolicy m.GPUPolicy
	IndexURL  string
	Layout    m.Layout
	// ReportPath is where the run report is stored once the layout exists. Empty disables it.
	ReportPath m.Path
	// Output receives the child processes' output. Nil discards it.
	Output io.Writer
}

// PlanResult is the side-effect free view of what a run would do.
type PlanResult struct {
	Steps    []m.Step
	Packages []m.Package
	Skipped  []m.Package
}

// ProgressSink receives step transitions while a run progresses.
type ProgressSink interface {
	DisplayStepStarted(ctx context.Context, step m.Step)
	DisplayStepCompleted(ctx context.Context, result m.StepResult)
}

// Provisioner prepares the Python environment and the working directory tree.
type Provisioner interface {
	Plan(args ProvisionArgs) PlanResult
	Provision(ctx context.Context, args ProvisionArgs, sink ProgressSink) (m.Report, error)
}

type provisioner struct {
	fs      adapter.FSAdapter
	runner  adapter.CommandRunner
	gpu     adapter.GPUProbe
	goos    string
	environ func() []string
	now     func() time.Time
}

// NewProvisioner constructs a Provisioner backed by the provided adapters.
func NewProvisioner(fs adapter.FSAdapter, runner adapter.CommandRunner, gpu adapter.GPUProbe) Provisioner {
	return &provisioner{
		fs:      fs,
		runner:  runner,
		gpu:     gpu,
		goos:    runtime.GOOS,
		environ: os.Environ,
		now:     time.Now,
	}
}

// runState carries what earlier steps established to later ones.
type runState struct {
	args        ProvisionArgs
	packages    []m.Package
	interpreter m.Path
	env         []string
}

func (p *provisioner) Plan(args ProvisionArgs) PlanResult {
	packages, skipped := p.resolvePackages(args)

	steps := make([]m.Step, len(DefaultSteps))
	copy(steps, DefaultSteps)

	return PlanResult{Steps: steps, Packages: packages, Skipped: skipped}
}

// Provision runs every step in order and stops at the first failure, which is
// returned as a *StepFailure. Steps after the failure are reported as NotRun.
func (p *provisioner) Provision(ctx context.Context, args ProvisionArgs, sink ProgressSink) (m.Report, error) {
	plan := p.Plan(args)
	state := &runState{args: args, packages: plan.Packages}

	report := m.Report{
		StartedAt:       p.now(),
		VenvDir:         args.VenvDir,
		Packages:        m.PackageNames(plan.Packages),
		SkippedPackages: m.PackageNames(plan.Skipped),
		Layout:          args.Layout,
	}

	var failure *StepFailure

	for _, step := range plan.Steps {
		if failure != nil {
			report.Steps = append(report.Steps, m.StepResult{Step: step, Status: m.NotRun})
			continue
		}

		result, err := p.runStep(ctx, step, state, sink)
		if err != nil {
			failure = newStepFailure(step, err)
		}

		report.Steps = append(report.Steps, result)
	}

	report.Interpreter = state.interpreter
	report.FinishedAt = p.now()

	if failure != nil {
		slog.Error("provisioning aborted", "step", failure.Step.ID, "error", failure.Err)
		return report, failure
	}

	slog.Info("provisioning finished", "venv", args.VenvDir, "duration", report.Duration())

	return report, nil
}

func (p *provisioner) runStep(ctx context.Context, step m.Step, state *runState, sink ProgressSink) (m.StepResult, error) {
	sink.DisplayStepStarted(ctx, step)
	slog.Info("step started", "step", step.ID)

	start := p.now()
	detail, err := p.execute(ctx, step.ID, state)

	result := m.StepResult{
		Step:     step,
		Status:   m.Done,
		Duration: p.now().Sub(start),
		Detail:   detail,
	}

	if err != nil {
		result.Status = m.Failed
		result.Error = err.Error()
		slog.Error("step failed", "step", step.ID, "error", err)
	} else {
		slog.Info("step done", "step", step.ID, "detail", detail)
	}

	sink.DisplayStepCompleted(ctx, result)

	return result, err
}

func (p *provisioner) execute(ctx context.Context, id m.StepID, state *runState) (string, error) {
	switch id {
	case m.StepCreateVenv:
		return p.createVenv(ctx, state)
	case m.StepActivate:
		return p.activate(state)
	case m.StepUpgradeInstaller:
		return p.upgradeInstaller(ctx, state)
	case m.StepInstallPackages:
		return p.installPackages(ctx, state)
	case m.StepCreateLayout:
		return p.createLayout(state)
	default:
		return "", fmt.Errorf("unknown step %q", id)
	}
}

func (p *provisioner) createVenv(ctx context.Context, state *runState) (string, error) {
	python, err := p.runner.LookPath(state.args.Python)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRuntimeNotFound, state.args.Python, err)
	}

	args := []string{"-m", "venv"}
	if state.args.ClearVenv {
		args = append(args, "--clear")
	}

	args = append(args, string(state.args.VenvDir))

	cmd := adapter.Command{Name: python, Args: args, Output: state.args.Output}
	if _, err := p.runner.Run(ctx, cmd); err != nil {
		return "", fmt.Errorf("create virtual environment %s: %w", state.args.VenvDir, err)
	}

	return fmt.Sprintf("%s -m venv %s", state.args.Python, state.args.VenvDir), nil
}

func (p *provisioner) activate(state *runState) (string, error) {
	venvDir, err := p.fs.Abs(state.args.VenvDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", state.args.VenvDir, err)
	}

	interpreter := InterpreterPath(venvDir, p.goos)

	exists, err := p.fs.Exists(interpreter)
	if err != nil {
		return "", fmt.Errorf("stat interpreter %s: %w", interpreter, err)
	}

	if !exists {
		return "", fmt.Errorf("environment interpreter %s not found", interpreter)
	}

	state.interpreter = interpreter
	state.env = ActivatedEnv(p.environ(), venvDir, p.goos)

	return string(interpreter), nil
}

func (p *provisioner) upgradeInstaller(ctx context.Context, state *runState) (string, error) {
	args := append(p.pipInstallArgs(state), "--upgrade", "pip")

	if _, err := p.runner.Run(ctx, p.interpreterCommand(state, args)); err != nil {
		return "", fmt.Errorf("upgrade pip: %w", err)
	}

	return "pip upgraded", nil
}

func (p *provisioner) installPackages(ctx context.Context, state *runState) (string, error) {
	if len(state.packages) == 0 {
		return "nothing to install", nil
	}

	names := m.PackageNames(state.packages)
	args := append(p.pipInstallArgs(state), names...)

	if _, err := p.runner.Run(ctx, p.interpreterCommand(state, args)); err != nil {
		return "", fmt.Errorf("install %v: %w", names, err)
	}

	return fmt.Sprintf("%d package(s) installed", len(names)), nil
}

func (p *provisioner) createLayout(state *runState) (string, error) {
	paths := state.args.Layout.Paths()

	for _, path := range paths {
		if err := p.fs.MkdirAll(path); err != nil {
			return "", fmt.Errorf("create directory %s: %w", path, err)
		}

		if err := p.fs.CheckWritable(path); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%d directories under %s", len(paths), state.args.Layout.Root), nil
}

func (p *provisioner) pipInstallArgs(state *runState) []string {
	args := []string{"-m", "pip", "install"}
	if state.args.IndexURL != "" {
		args = append(args, "--index-url", state.args.IndexURL)
	}

	return args
}

func (p *provisioner) interpreterCommand(state *runState, args []string) adapter.Command {
	return adapter.Command{
		Name:   string(state.interpreter),
		Args:   args,
		Env:    state.env,
		Output: state.args.Output,
	}
}

// resolvePackages applies the GPU policy, returning the packages to install and
// the ones left out.
func (p *provisioner) resolvePackages(args ProvisionArgs) ([]m.Package, []m.Package) {
	policy := args.GPUPolicy
	if policy == "" {
		policy = m.GPURequire
	}

	if policy == m.GPURequire || !hasGPUPackage(args.Packages) {
		return args.Packages, nil
	}

	if policy == m.GPUAuto {
		if vendor := p.gpu.Vendor(); vendor != "" {
			return args.Packages, nil
		}

		slog.Warn("no GPU tooling detected, skipping GPU packages")
	}

	var install, skipped []m.Package

	for _, pkg := range args.Packages {
		if pkg.GPU {
			skipped = append(skipped, pkg)
			continue
		}

		install = append(install, pkg)
	}

	return install, skipped
}

func hasGPUPackage(packages []m.Package) bool {
	for _, pkg := range packages {
		if pkg.GPU {
			return true
		}
	}

	return false
}
