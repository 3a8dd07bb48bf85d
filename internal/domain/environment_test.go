package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

func TestInterpreterPath(t *testing.T) {
	assert.Equal(t, m.Path("/srv/env/bin/python"), InterpreterPath("/srv/env", "linux"))
	assert.Equal(t, m.Path("/srv/env/bin/python"), InterpreterPath("/srv/env", "darwin"))
	assert.Equal(t, m.Path("/srv/env").Join("Scripts", "python.exe"), InterpreterPath("/srv/env", "windows"))
}

func TestActivatedEnv(t *testing.T) {
	t.Run("prepends bin dir and sets VIRTUAL_ENV", func(t *testing.T) {
		base := []string{"HOME=/home/op", "PATH=/usr/bin:/bin", "PYTHONHOME=/opt/python", "VIRTUAL_ENV=/old"}

		env := ActivatedEnv(base, "/srv/env", "linux")

		assert.ElementsMatch(t, []string{
			"HOME=/home/op",
			"VIRTUAL_ENV=/srv/env",
			"PATH=/srv/env/bin:/usr/bin:/bin",
		}, env)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		base := []string{"PATH=/usr/bin"}

		_ = ActivatedEnv(base, "/srv/env", "linux")

		assert.Equal(t, []string{"PATH=/usr/bin"}, base)
	})

	t.Run("empty PATH", func(t *testing.T) {
		env := ActivatedEnv(nil, "/srv/env", "linux")

		assert.Contains(t, env, "PATH=/srv/env/bin")
	})

	t.Run("windows uses Scripts and semicolons", func(t *testing.T) {
		env := ActivatedEnv([]string{`Path=C:\Windows`}, `C:\env`, "windows")

		bin := string(BinDir(`C:\env`, "windows"))
		assert.Contains(t, env, "Path="+bin+`;C:\Windows`)
	})

	t.Run("windows drops variables regardless of case", func(t *testing.T) {
		env := ActivatedEnv([]string{`Path=C:\Windows`, `PythonHome=C:\Python`, `Virtual_Env=C:\old`}, `C:\env`, "windows")

		assert.Len(t, env, 2)
		assert.Contains(t, env, `VIRTUAL_ENV=C:\env`)
	})

	t.Run("linux keeps differently cased names", func(t *testing.T) {
		env := ActivatedEnv([]string{"PythonHome=/opt/python"}, "/srv/env", "linux")

		assert.Contains(t, env, "PythonHome=/opt/python")
	})
}
