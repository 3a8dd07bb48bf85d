package domain

import (
	"errors"
	"fmt"

	"emsetup.dev/pkg/emsetup/internal/adapter"
	m "emsetup.dev/pkg/emsetup/internal/model"
)

// ExitRuntimeNotFound is the exit status used when the Python runtime cannot be found,
// matching what a shell reports for a missing command.
const ExitRuntimeNotFound = 127

// ErrRuntimeNotFound is wrapped by the create-venv failure when the interpreter is absent.
var ErrRuntimeNotFound = errors.New("python runtime not found")

// StepFailure is the single fatal error kind of a provisioning run. The first failing
// step produces one and no later step runs.
type StepFailure struct {
	Step m.Step
	Err  error
}

func newStepFailure(step m.Step, err error) *StepFailure {
	return &StepFailure{Step: step, Err: err}
}

func (f *StepFailure) Error() string {
	return fmt.Sprintf("step %s failed: %v", f.Step.ID, f.Err)
}

func (f *StepFailure) Unwrap() error {
	return f.Err
}

// ExitCode propagates the failing child's status when there is one.
func (f *StepFailure) ExitCode() int {
	var exitErr *adapter.ExitError
	if errors.As(f.Err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}

	if errors.Is(f.Err, ErrRuntimeNotFound) {
		return ExitRuntimeNotFound
	}

	return 1
}
