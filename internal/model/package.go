package model

import (
	"fmt"
	"strings"
)

// Package is a third-party Python distribution installed into the environment.
type Package struct {
	Name string `yaml:"name"`
	// GPU marks packages that only work on hosts with vendor GPU tooling.
	GPU bool `yaml:"gpu,omitempty"`
}

// GPUPolicy decides what happens to GPU-only packages.
type GPUPolicy string

const (
	// GPURequire installs GPU packages unconditionally.
	GPURequire GPUPolicy = "require"
	// GPUAuto installs GPU packages only when GPU tooling is detected.
	GPUAuto GPUPolicy = "auto"
	// GPUSkip never installs GPU packages.
	GPUSkip GPUPolicy = "skip"
)

// ParseGPUPolicy converts user input into a GPUPolicy. Empty input means GPURequire.
func ParseGPUPolicy(value string) (GPUPolicy, error) {
	switch policy := GPUPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case "":
		return GPURequire, nil
	case GPURequire, GPUAuto, GPUSkip:
		return policy, nil
	default:
		return "", fmt.Errorf("unknown gpu policy %q (want require, auto or skip)", value)
	}
}

// BuildPackages marks every name found in gpuNames as a GPU package.
func BuildPackages(names []string, gpuNames []string) []Package {
	gpu := make(map[string]bool, len(gpuNames))
	for _, name := range gpuNames {
		gpu[NormalizePackageName(name)] = true
	}

	packages := make([]Package, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		packages = append(packages, Package{Name: name, GPU: gpu[NormalizePackageName(name)]})
	}

	return packages
}

// NormalizePackageName folds a distribution name the way the Python package index does,
// so "Nvidia_ML.py3" and "nvidia-ml-py3" compare equal.
func NormalizePackageName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder

	lastDash := false

	for _, r := range name {
		if r == '-' || r == '_' || r == '.' {
			if !lastDash {
				b.WriteRune('-')
			}

			lastDash = true

			continue
		}

		lastDash = false

		b.WriteRune(r)
	}

	return b.String()
}

// PackageNames returns the names of the given packages in order, nil when there are none.
func PackageNames(packages []Package) []string {
	if len(packages) == 0 {
		return nil
	}

	names := make([]string, 0, len(packages))
	for _, p := range packages {
		names = append(names, p.Name)
	}

	return names
}
