package domain

import (
	"strings"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

// BinDir returns the directory holding the environment's executables.
func BinDir(venvDir m.Path, goos string) m.Path {
	if goos == "windows" {
		return venvDir.Join("Scripts")
	}

	return venvDir.Join("bin")
}

// InterpreterPath returns the path of the environment's own Python interpreter.
// Invoking it by path applies the environment without relying on shell state.
func InterpreterPath(venvDir m.Path, goos string) m.Path {
	if goos == "windows" {
		return BinDir(venvDir, goos).Join("python.exe")
	}

	return BinDir(venvDir, goos).Join("python")
}

// ActivatedEnv derives the child process environment an activation script would
// produce: VIRTUAL_ENV set, the bin dir first on PATH and PYTHONHOME removed.
// The input slice is not modified.
func ActivatedEnv(base []string, venvDir m.Path, goos string) []string {
	pathKey := "PATH"
	if goos == "windows" {
		pathKey = "Path"
	}

	binDir := string(BinDir(venvDir, goos))
	currentPath := ""
	env := make([]string, 0, len(base)+2)

	// Windows environment names are case-insensitive.
	sameKey := func(key, name string) bool {
		if goos == "windows" {
			return strings.EqualFold(key, name)
		}

		return key == name
	}

	for _, kv := range base {
		key, value, _ := strings.Cut(kv, "=")

		switch {
		case strings.EqualFold(key, "PATH"):
			currentPath = value
		case sameKey(key, "VIRTUAL_ENV"), sameKey(key, "PYTHONHOME"):
		default:
			env = append(env, kv)
		}
	}

	newPath := binDir
	if currentPath != "" {
		newPath = binDir + string(listSeparator(goos)) + currentPath
	}

	return append(env, "VIRTUAL_ENV="+string(venvDir), pathKey+"="+newPath)
}

func listSeparator(goos string) rune {
	if goos == "windows" {
		return ';'
	}

	return ':'
}
