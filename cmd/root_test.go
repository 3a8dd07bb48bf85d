package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emsetup.dev/pkg/emsetup/internal/adapter"
	"emsetup.dev/pkg/emsetup/internal/domain"
	domainmocks "emsetup.dev/pkg/emsetup/internal/domain/mocks"
	m "emsetup.dev/pkg/emsetup/internal/model"
)

// chdirTemp runs the test from an empty directory so the log file and any
// generated files stay out of the source tree.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

// useWorkflow swaps the package workflow for the duration of the test.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf
	t.Cleanup(func() { workflow = original })
}

// newTestRootCmd builds a root command with the given subcommands. Flag bindings
// are pointed back at rootCmd afterwards so changed flags do not leak into other tests.
func newTestRootCmd(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	t.Cleanup(func() {
		flags := rootCmd.PersistentFlags()
		bindFlagToConfig(flags.Lookup(pythonFlagName), pythonKey)
		bindFlagToConfig(flags.Lookup(venvDirFlagName), venvDirKey)
		bindFlagToConfig(flags.Lookup(clearFlagName), venvClearKey)
		bindFlagToConfig(flags.Lookup(gpuFlagName), gpuPolicyKey)
		bindFlagToConfig(flags.Lookup(indexURLFlagName), indexURLKey)
		bindFlagToConfig(flags.Lookup(layoutRootFlagName), layoutRootKey)
		bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
	})

	return cmd, out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "emsetup", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{pythonFlagName, venvDirFlagName, clearFlagName, gpuFlagName, indexURLFlagName, layoutRootFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	chdirTemp(t)

	cmd, out := newTestRootCmd(t)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "energy_monitor/{logs,scripts,results}")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	chdirTemp(t)
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_ProvisionsWithDefaults(t *testing.T) {
	chdirTemp(t)

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	wf.EXPECT().Provision(mock.Anything, mock.MatchedBy(func(args domain.ProvisionArgs) bool {
		return args.Python == "python3" &&
			args.VenvDir == "energy_monitor_env" &&
			!args.ClearVenv &&
			args.GPUPolicy == m.GPURequire &&
			args.IndexURL == "" &&
			assert.ObjectsAreEqual([]string{"requests", "nvidia-ml-py3", "pandas", "matplotlib"}, m.PackageNames(args.Packages)) &&
			args.Layout.Root == "energy_monitor" &&
			assert.ObjectsAreEqual([]string{"logs", "scripts", "results"}, args.Layout.Dirs) &&
			args.ReportPath == m.Path(filepath.Join("energy_monitor", "logs", "provision-report.yaml"))
	})).Return(nil)

	cmd, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlagsOverrideDefaults(t *testing.T) {
	chdirTemp(t)

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	wf.EXPECT().Provision(mock.Anything, mock.MatchedBy(func(args domain.ProvisionArgs) bool {
		return args.Python == "python3.12" &&
			args.VenvDir == "venv" &&
			args.ClearVenv &&
			args.GPUPolicy == m.GPUSkip &&
			args.IndexURL == "https://mirror.example/simple" &&
			args.Layout.Root == "work"
	})).Return(nil)

	cmd, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{
		"--python", "python3.12", "--venv-dir", "venv", "--clear", "--gpu", "skip",
		"--index-url", "https://mirror.example/simple", "--layout-root", "work",
	})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidGPUPolicy(t *testing.T) {
	chdirTemp(t)

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	cmd, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{"--gpu", "maybe"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gpu policy")
	wf.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
}

func TestRootCmd_PropagatesStepFailure(t *testing.T) {
	chdirTemp(t)

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	failure := &domain.StepFailure{
		Step: m.Step{ID: m.StepInstallPackages},
		Err:  &adapter.ExitError{Code: 1},
	}
	wf.EXPECT().Provision(mock.Anything, mock.Anything).Return(failure)

	cmd, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.ErrorIs(t, err, failure)
}

func TestProvisionArgsFromConfig_EmptyValues(t *testing.T) {
	for _, key := range []string{pythonKey, venvDirKey, layoutRootKey} {
		t.Run(key, func(t *testing.T) {
			setConfig(t, key, "  ")

			_, err := provisionArgsFromConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestStatusArgsFromConfig(t *testing.T) {
	args, err := statusArgsFromConfig()
	require.NoError(t, err)

	assert.Equal(t, m.Path("energy_monitor_env"), args.VenvDir)
	assert.Len(t, args.Packages, 4)
	assert.Equal(t, m.Path("energy_monitor"), args.Layout.Root)
	assert.NotEmpty(t, args.ReportPath)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", errors.New("boom"), 1},
		{"pip exit status", &domain.StepFailure{Err: &adapter.ExitError{Code: 2}}, 2},
		{"wrapped step failure", fmt.Errorf("run: %w", &domain.StepFailure{Err: &adapter.ExitError{Code: 3}}), 3},
		{"missing runtime", &domain.StepFailure{Err: domain.ErrRuntimeNotFound}, domain.ExitRuntimeNotFound},
		{"unhealthy status", domain.ErrUnhealthy, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, commandRunner)
	assert.NotNil(t, gpuProbe)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, provisioner)
	assert.NotNil(t, inspector)
	assert.NotNil(t, workflow)
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_StepFailureExitCode(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use:           "test",
			SilenceErrors: true,
			SilenceUsage:  true,
			RunE: func(_ *cobra.Command, _ []string) error {
				return &domain.StepFailure{
					Step: m.Step{ID: m.StepCreateVenv},
					Err:  fmt.Errorf("%w: python3", domain.ErrRuntimeNotFound),
				}
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_StepFailureExitCode")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, domain.ExitRuntimeNotFound, exitErr.ExitCode())
	assert.NotContains(t, string(output), "Error:", "step failures are reported by the UI only")
}

func TestExecute_ProcessLevel_OtherErrorsArePrinted(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_PLAIN") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use:           "test",
			SilenceErrors: true,
			SilenceUsage:  true,
			RunE: func(_ *cobra.Command, _ []string) error {
				return domain.ErrUnhealthy
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_OtherErrorsArePrinted")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_PLAIN=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "Error: environment is incomplete")
}

func TestRootCmd_MissingRuntimeLeavesWorkingDirEmpty(t *testing.T) {
	workDir := chdirTemp(t)

	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)
	t.Setenv("HOME", cacheDir)
	t.Setenv("LocalAppData", cacheDir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	cmd, _ := newTestRootCmd(t)
	cmd.SetArgs([]string{"--python", "emsetup-test-no-such-python"})

	err := cmd.Execute()

	var failure *domain.StepFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, m.StepCreateVenv, failure.Step.ID)
	assert.Equal(t, domain.ExitRuntimeNotFound, exitCode(err))

	entries, readErr := os.ReadDir(workDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "working directory must stay untouched")

	if runtime.GOOS == "linux" {
		assert.FileExists(t, filepath.Join(cacheDir, logDirName, defaultLogFilename))
	}
}
