package adapter

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

func TestLocalFSAdapter_MkdirAll(t *testing.T) {
	t.Run("creates nested directories", func(t *testing.T) {
		fs := NewLocalFSAdapter()
		target := filepath.Join(t.TempDir(), "energy_monitor", "logs")

		if err := fs.MkdirAll(m.Path(target)); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}

		info, err := os.Stat(target)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}

		if !info.IsDir() {
			t.Fatalf("%s is not a directory", target)
		}
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		fs := NewLocalFSAdapter()
		target := t.TempDir()

		for i := 0; i < 2; i++ {
			if err := fs.MkdirAll(m.Path(target)); err != nil {
				t.Fatalf("MkdirAll() run %d error = %v", i, err)
			}
		}
	})

	t.Run("file in the way fails", func(t *testing.T) {
		fs := NewLocalFSAdapter()
		root := t.TempDir()
		blocker := filepath.Join(root, "energy_monitor")
		writeTestFile(t, blocker, "not a dir")

		if err := fs.MkdirAll(m.Path(filepath.Join(blocker, "logs"))); err == nil {
			t.Fatalf("MkdirAll() expected error when a file blocks the path")
		}
	})
}

func TestLocalFSAdapter_ExistsAndIsDir(t *testing.T) {
	fs := NewLocalFSAdapter()
	root := t.TempDir()
	file := filepath.Join(root, "python")
	writeTestFile(t, file, "#!/bin/sh\n")

	tests := []struct {
		name   string
		path   string
		exists bool
		isDir  bool
	}{
		{name: "directory", path: root, exists: true, isDir: true},
		{name: "file", path: file, exists: true, isDir: false},
		{name: "missing", path: filepath.Join(root, "missing"), exists: false, isDir: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fs.Exists(m.Path(tt.path))
			if err != nil {
				t.Fatalf("Exists() error = %v", err)
			}

			if exists != tt.exists {
				t.Fatalf("Exists() = %v, want %v", exists, tt.exists)
			}

			isDir, err := fs.IsDir(m.Path(tt.path))
			if err != nil {
				t.Fatalf("IsDir() error = %v", err)
			}

			if isDir != tt.isDir {
				t.Fatalf("IsDir() = %v, want %v", isDir, tt.isDir)
			}
		})
	}
}

func TestLocalFSAdapter_CheckWritable(t *testing.T) {
	t.Run("writable directory leaves nothing behind", func(t *testing.T) {
		fs := NewLocalFSAdapter()
		dir := t.TempDir()

		if err := fs.CheckWritable(m.Path(dir)); err != nil {
			t.Fatalf("CheckWritable() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}

		if len(entries) != 0 {
			t.Fatalf("CheckWritable() left %d entries behind", len(entries))
		}
	})

	t.Run("read-only directory", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced for this user")
		}

		fs := NewLocalFSAdapter()
		dir := t.TempDir()

		if err := os.Chmod(dir, 0o555); err != nil {
			t.Fatalf("Chmod() error = %v", err)
		}
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		if err := fs.CheckWritable(m.Path(dir)); err == nil {
			t.Fatalf("CheckWritable() expected error for read-only directory")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		fs := NewLocalFSAdapter()

		if err := fs.CheckWritable(m.Path(filepath.Join(t.TempDir(), "missing"))); err == nil {
			t.Fatalf("CheckWritable() expected error for missing directory")
		}
	})
}

func TestLocalFSAdapter_WriteAndReadFile(t *testing.T) {
	fs := NewLocalFSAdapter()
	target := filepath.Join(t.TempDir(), "energy_monitor", "logs", "report.yaml")

	if err := fs.WriteFile(m.Path(target), []byte("steps: []\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := fs.ReadFile(m.Path(target))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "steps: []\n" {
		t.Fatalf("ReadFile() = %q", got)
	}
}

func TestLocalFSAdapter_Abs(t *testing.T) {
	fs := NewLocalFSAdapter()

	abs, err := fs.Abs("energy_monitor_env")
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}

	if !filepath.IsAbs(string(abs)) {
		t.Fatalf("Abs() = %s, want absolute path", abs)
	}

	if filepath.Base(string(abs)) != "energy_monitor_env" {
		t.Fatalf("Abs() = %s, want base energy_monitor_env", abs)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}
