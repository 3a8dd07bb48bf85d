package model

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func results(statuses ...StepStatus) []StepResult {
	ids := []StepID{StepCreateVenv, StepActivate, StepUpgradeInstaller, StepInstallPackages, StepCreateLayout}

	out := make([]StepResult, 0, len(statuses))
	for i, status := range statuses {
		out = append(out, StepResult{Step: Step{ID: ids[i]}, Status: status})
	}

	return out
}

func TestReport_Succeeded(t *testing.T) {
	assert.False(t, Report{}.Succeeded())
	assert.True(t, Report{Steps: results(Done, Done, Done, Done, Done)}.Succeeded())
	assert.False(t, Report{Steps: results(Done, Done, Failed, NotRun, NotRun)}.Succeeded())
}

func TestReport_FailedStep(t *testing.T) {
	failed, ok := Report{Steps: results(Done, Done, Done, Failed, NotRun)}.FailedStep()
	assert.True(t, ok)
	assert.Equal(t, StepInstallPackages, failed.Step.ID)

	_, ok = Report{Steps: results(Done, Done)}.FailedStep()
	assert.False(t, ok)
}

func TestReport_Duration(t *testing.T) {
	start := time.Now()

	assert.Zero(t, Report{StartedAt: start}.Duration())
	assert.Equal(t, 3*time.Second, Report{StartedAt: start, FinishedAt: start.Add(3 * time.Second)}.Duration())
}

func TestStatus_Healthy(t *testing.T) {
	healthy := Status{VenvExists: true, Dirs: []DirStatus{{Path: "energy_monitor/logs", Exists: true, Writable: true}}}
	assert.True(t, healthy.Healthy())

	noVenv := healthy
	noVenv.VenvExists = false
	assert.False(t, noVenv.Healthy())

	missing := healthy
	missing.Missing = []string{"pandas"}
	assert.False(t, missing.Healthy())

	readOnly := Status{VenvExists: true, Dirs: []DirStatus{{Path: "energy_monitor/logs", Exists: true}}}
	assert.False(t, readOnly.Healthy())
}

func TestStepStatus_String(t *testing.T) {
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "not run", NotRun.String())
	assert.Equal(t, "unknown", StepStatus(42).String())
}

func TestLayout_Paths(t *testing.T) {
	layout := Layout{Root: "energy_monitor", Dirs: []string{"logs", "scripts", "results"}}

	assert.Equal(t, []Path{
		Path(filepath.Join("energy_monitor", "logs")),
		Path(filepath.Join("energy_monitor", "scripts")),
		Path(filepath.Join("energy_monitor", "results")),
	}, layout.Paths())
	assert.Empty(t, Layout{Root: "energy_monitor"}.Paths())
}
