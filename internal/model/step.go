package model

import (
	"fmt"
	"time"
)

// StepID identifies one stage of the provisioning sequence.
type StepID string

const (
	// StepCreateVenv creates the virtual environment directory.
	StepCreateVenv StepID = "create-venv"
	// StepActivate resolves the environment interpreter and child process environment.
	StepActivate StepID = "activate"
	// StepUpgradeInstaller upgrades pip inside the environment.
	StepUpgradeInstaller StepID = "upgrade-installer"
	// StepInstallPackages installs the requested packages.
	StepInstallPackages StepID = "install-packages"
	// StepCreateLayout creates the working directory tree.
	StepCreateLayout StepID = "create-layout"
)

// Step is a single entry of the provisioning plan.
type Step struct {
	ID    StepID `yaml:"id"`
	Title string `yaml:"title"`
}

// StepStatus represents the state of a step within a run.
type StepStatus int

const (
	// Pending indicates the step has not started yet.
	Pending StepStatus = iota
	// Running indicates the step is executing.
	Running
	// Done indicates the step finished successfully.
	Done
	// Failed indicates the step failed and aborted the run.
	Failed
	// NotRun indicates the step was never executed because an earlier step failed.
	NotRun
)

func (s StepStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Done:
		return "done"
	case Failed:
		return "failed"
	case NotRun:
		return "not run"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the status by name in persisted reports.
func (s StepStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses a status written by MarshalYAML.
func (s *StepStatus) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	for candidate := Pending; candidate <= NotRun; candidate++ {
		if candidate.String() == name {
			*s = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown step status %q", name)
}

// StepResult records the outcome of one executed (or skipped) step.
type StepResult struct {
	Step     Step          `yaml:"step"`
	Status   StepStatus    `yaml:"status"`
	Duration time.Duration `yaml:"duration"`
	Detail   string        `yaml:"detail,omitempty"`
	Error    string        `yaml:"error,omitempty"`
}
