package domain_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emsetup.dev/pkg/emsetup/internal/adapter"
	"emsetup.dev/pkg/emsetup/internal/domain"
	m "emsetup.dev/pkg/emsetup/internal/model"
)

// fakePython stands in for a Python runtime: it understands `-m venv [--clear] DIR`
// (copying itself to DIR/bin/python) and `-m pip install ...`, refusing to install
// outside an activated environment or when asked for "does-not-exist".
const fakePython = `#!/bin/sh
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
  shift 2
  if [ "$1" = "--clear" ]; then
    shift
    rm -rf "$1"
  fi
  mkdir -p "$1/bin" || exit 1
  cp "$0" "$1/bin/python" || exit 1
  chmod +x "$1/bin/python"
  echo "created virtual environment $1"
  exit 0
fi
if [ "$1" = "-m" ] && [ "$2" = "pip" ] && [ "$3" = "install" ]; then
  if [ -z "$VIRTUAL_ENV" ]; then
    echo "ERROR: not inside a virtual environment" >&2
    exit 3
  fi
  shift 3
  for arg in "$@"; do
    if [ "$arg" = "does-not-exist" ]; then
      echo "ERROR: No matching distribution found for does-not-exist" >&2
      exit 1
    fi
  done
  echo "Successfully installed $*"
  exit 0
fi
echo "unsupported invocation: $*" >&2
exit 2
`

func newLocalProvisioner() domain.Provisioner {
	runner := adapter.NewLocalCommandRunner()
	return domain.NewProvisioner(adapter.NewLocalFSAdapter(), runner, adapter.NewLocalGPUProbe(runner))
}

// integrationArgs writes the fake runtime outside workDir and targets workDir.
func integrationArgs(t *testing.T, workDir string) domain.ProvisionArgs {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake runtime is a POSIX shell script")
	}

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	binDir := t.TempDir()
	python := filepath.Join(binDir, "python3")
	require.NoError(t, os.WriteFile(python, []byte(fakePython), 0o755))

	args := defaultArgs()
	args.Python = python
	args.VenvDir = m.Path(filepath.Join(workDir, "energy_monitor_env"))
	args.Layout.Root = m.Path(filepath.Join(workDir, "energy_monitor"))

	return args
}

func topLevelDirs(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string

	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names
}

func TestProvisionIntegration_FreshDirectory(t *testing.T) {
	workDir := t.TempDir()
	args := integrationArgs(t, workDir)

	var output strings.Builder
	args.Output = &output

	report, err := newLocalProvisioner().Provision(context.Background(), args, &recordingSink{})
	require.NoError(t, err, "output: %s", output.String())
	assert.True(t, report.Succeeded())

	assert.Equal(t, []string{"energy_monitor", "energy_monitor_env"}, topLevelDirs(t, workDir))

	for _, dir := range []string{"logs", "scripts", "results"} {
		path := filepath.Join(workDir, "energy_monitor", dir)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		require.NoError(t, os.WriteFile(filepath.Join(path, "probe.txt"), []byte("ok"), 0o600))
	}

	assert.Contains(t, output.String(), "Successfully installed requests nvidia-ml-py3 pandas matplotlib")
}

func TestProvisionIntegration_RunTwice(t *testing.T) {
	workDir := t.TempDir()
	args := integrationArgs(t, workDir)
	provisioner := newLocalProvisioner()

	_, err := provisioner.Provision(context.Background(), args, &recordingSink{})
	require.NoError(t, err)

	report, err := provisioner.Provision(context.Background(), args, &recordingSink{})
	require.NoError(t, err)
	assert.True(t, report.Succeeded())
}

func TestProvisionIntegration_InstallFailureSkipsLayout(t *testing.T) {
	workDir := t.TempDir()
	args := integrationArgs(t, workDir)
	args.Packages = append(args.Packages, m.Package{Name: "does-not-exist"})

	var output strings.Builder
	args.Output = &output

	_, err := newLocalProvisioner().Provision(context.Background(), args, &recordingSink{})

	var failure *domain.StepFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, m.StepInstallPackages, failure.Step.ID)
	assert.NotZero(t, failure.ExitCode())
	assert.Contains(t, output.String(), "No matching distribution found for does-not-exist")

	_, statErr := os.Stat(filepath.Join(workDir, "energy_monitor"))
	assert.True(t, os.IsNotExist(statErr), "layout must not be created after a failed install")
}

func TestProvisionIntegration_MissingRuntimeLeavesNoTrace(t *testing.T) {
	workDir := t.TempDir()
	args := integrationArgs(t, workDir)
	args.Python = "emsetup-test-no-such-python"

	_, err := newLocalProvisioner().Provision(context.Background(), args, &recordingSink{})

	var failure *domain.StepFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, m.StepCreateVenv, failure.Step.ID)
	assert.Equal(t, domain.ExitRuntimeNotFound, failure.ExitCode())
	assert.Empty(t, topLevelDirs(t, workDir))
}
