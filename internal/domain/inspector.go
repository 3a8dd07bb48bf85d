package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"emsetup.dev/pkg/emsetup/internal/adapter"
	m "emsetup.dev/pkg/emsetup/internal/model"
)

// StatusArgs contains the inputs of an environment inspection.
type StatusArgs struct {
	VenvDir    m.Path
	Packages   []m.Package
	Layout     m.Layout
	ReportPath m.Path
}

// Inspector reports on an environment without modifying it.
type Inspector interface {
	Inspect(ctx context.Context, args StatusArgs) (m.Status, error)
}

type inspector struct {
	fs     adapter.FSAdapter
	runner adapter.CommandRunner
	gpu    adapter.GPUProbe
	goos   string
}

// NewInspector constructs an Inspector backed by the provided adapters.
func NewInspector(fs adapter.FSAdapter, runner adapter.CommandRunner, gpu adapter.GPUProbe) Inspector {
	return &inspector{fs: fs, runner: runner, gpu: gpu, goos: runtime.GOOS}
}

// Inspect probes the environment, the layout and the GPU tooling concurrently.
func (i *inspector) Inspect(ctx context.Context, args StatusArgs) (m.Status, error) {
	status := m.Status{VenvDir: args.VenvDir}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return i.inspectVenv(groupCtx, args, &status)
	})

	group.Go(func() error {
		dirs, err := i.inspectLayout(args.Layout)
		status.Dirs = dirs

		return err
	})

	group.Go(func() error {
		status.GPUVendor = i.gpu.Vendor()
		return nil
	})

	if err := group.Wait(); err != nil {
		return status, err
	}

	status.Missing = missingPackages(args.Packages, status.Installed)
	status.Drift = packageDrift(args.Packages, status.Installed)

	return status, nil
}

func (i *inspector) inspectVenv(ctx context.Context, args StatusArgs, status *m.Status) error {
	isDir, err := i.fs.IsDir(args.VenvDir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", args.VenvDir, err)
	}

	if !isDir {
		return nil
	}

	venvDir, err := i.fs.Abs(args.VenvDir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args.VenvDir, err)
	}

	interpreter := InterpreterPath(venvDir, i.goos)

	exists, err := i.fs.Exists(interpreter)
	if err != nil {
		return fmt.Errorf("stat interpreter %s: %w", interpreter, err)
	}

	if !exists {
		slog.Warn("environment directory has no interpreter", "venv", args.VenvDir)
		return nil
	}

	status.VenvExists = true
	status.Interpreter = interpreter

	outcome, err := i.runner.Run(ctx, adapter.Command{
		Name: string(interpreter),
		Args: []string{"-m", "pip", "list", "--format=json", "--disable-pip-version-check"},
	})
	if err != nil {
		return fmt.Errorf("list installed packages: %w", err)
	}

	installed, err := parsePipList(outcome.Output)
	if err != nil {
		return err
	}

	status.Installed = installed

	return nil
}

func (i *inspector) inspectLayout(layout m.Layout) ([]m.DirStatus, error) {
	paths := layout.Paths()
	dirs := make([]m.DirStatus, 0, len(paths))

	for _, path := range paths {
		dir := m.DirStatus{Path: path}

		isDir, err := i.fs.IsDir(path)
		if err != nil {
			return dirs, fmt.Errorf("stat %s: %w", path, err)
		}

		dir.Exists = isDir
		dir.Writable = isDir && i.fs.CheckWritable(path) == nil
		dirs = append(dirs, dir)
	}

	return dirs, nil
}

// parsePipList decodes `pip list --format=json`, tolerating notices printed before the array.
func parsePipList(output string) ([]m.InstalledPackage, error) {
	start := strings.Index(output, "[")
	if start < 0 {
		return nil, fmt.Errorf("unexpected pip list output: %q", strings.TrimSpace(output))
	}

	var installed []m.InstalledPackage

	decoder := json.NewDecoder(strings.NewReader(output[start:]))
	if err := decoder.Decode(&installed); err != nil {
		return nil, fmt.Errorf("decode pip list output: %w", err)
	}

	return installed, nil
}

func installedIndex(installed []m.InstalledPackage) map[string]m.InstalledPackage {
	index := make(map[string]m.InstalledPackage, len(installed))
	for _, pkg := range installed {
		index[m.NormalizePackageName(pkg.Name)] = pkg
	}

	return index
}

func missingPackages(wanted []m.Package, installed []m.InstalledPackage) []string {
	index := installedIndex(installed)

	var missing []string

	for _, pkg := range wanted {
		if _, ok := index[m.NormalizePackageName(pkg.Name)]; !ok {
			missing = append(missing, pkg.Name)
		}
	}

	return missing
}

// packageDrift renders a unified diff of normalized package names, wanted against
// installed. Versions are only logged. Empty when nothing is missing.
func packageDrift(wanted []m.Package, installed []m.InstalledPackage) string {
	index := installedIndex(installed)

	var want, have []string

	for _, pkg := range wanted {
		name := m.NormalizePackageName(pkg.Name)
		want = append(want, name)

		if got, ok := index[name]; ok {
			have = append(have, name)
			slog.Debug("package installed", "name", name, "version", got.Version)
		}
	}

	if len(want) == len(have) {
		return ""
	}

	sort.Strings(want)
	sort.Strings(have)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        diffLines(want),
		B:        diffLines(have),
		FromFile: "wanted",
		ToFile:   "installed",
		Context:  1,
	})
	if err != nil {
		slog.Warn("failed to render package drift", "error", err)
		return ""
	}

	return diff
}

func diffLines(names []string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+"\n")
	}

	return lines
}
