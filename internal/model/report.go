package model

import "time"

// Report summarizes a provisioning run.
type Report struct {
	StartedAt       time.Time    `yaml:"started_at"`
	FinishedAt      time.Time    `yaml:"finished_at"`
	VenvDir         Path         `yaml:"venv_dir"`
	Interpreter     Path         `yaml:"interpreter,omitempty"`
	Packages        []string     `yaml:"packages"`
	SkippedPackages []string     `yaml:"skipped_packages,omitempty"`
	Layout          Layout       `yaml:"layout"`
	Steps           []StepResult `yaml:"steps"`
}

// Succeeded reports whether every step completed.
func (r Report) Succeeded() bool {
	if len(r.Steps) == 0 {
		return false
	}

	for _, step := range r.Steps {
		if step.Status != Done {
			return false
		}
	}

	return true
}

// FailedStep returns the step that aborted the run, if any.
func (r Report) FailedStep() (StepResult, bool) {
	for _, step := range r.Steps {
		if step.Status == Failed {
			return step, true
		}
	}

	return StepResult{}, false
}

// Duration is the wall time of the run.
func (r Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}

	return r.FinishedAt.Sub(r.StartedAt)
}

// DirStatus describes one layout directory as seen by an inspection.
type DirStatus struct {
	Path     Path
	Exists   bool
	Writable bool
}

// InstalledPackage is a distribution reported by the environment installer.
type InstalledPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Status is a read-only snapshot of a provisioned environment.
type Status struct {
	VenvDir     Path
	VenvExists  bool
	Interpreter Path
	Installed   []InstalledPackage
	Missing     []string
	Dirs        []DirStatus
	GPUVendor   string
	Drift       string
}

// Healthy reports whether the environment matches what provisioning would produce.
func (s Status) Healthy() bool {
	if !s.VenvExists || len(s.Missing) > 0 {
		return false
	}

	for _, dir := range s.Dirs {
		if !dir.Exists || !dir.Writable {
			return false
		}
	}

	return true
}
