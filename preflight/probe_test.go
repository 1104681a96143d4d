package preflight

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner stands in for the go toolchain. It records the probe source
// present at the moment of each invocation and fails from failAt onward.
type fakeRunner struct {
	t       *testing.T
	parent  string
	calls   [][]string
	sources []string
	failAt  int // 1-based call index that fails, 0 = never
}

func (f *fakeRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))

	// args[len-1] is "./<probe-dir>"
	probeDir := filepath.Join(f.parent, filepath.Base(args[len(args)-1]))
	b, err := os.ReadFile(filepath.Join(probeDir, "main.go"))
	require.NoError(f.t, err)
	f.sources = append(f.sources, string(b))

	if f.failAt != 0 && len(f.calls) >= f.failAt {
		return []byte("undefined: probe.Missing"), errors.New("exit status 1")
	}
	return []byte("import ok"), nil
}

func TestProbeVerify(t *testing.T) {
	checks := []Check{
		{Pkg: "riskmentor/bot", Symbol: "RunBot"},
		{Pkg: "riskmentor/bot/keyboard", Symbol: "MainMenu"},
	}

	t.Run("all checks pass", func(t *testing.T) {
		parent := t.TempDir()
		runner := &fakeRunner{t: t, parent: parent}
		var out bytes.Buffer

		probe, err := NewProbe(parent, runner, &out)
		require.NoError(t, err)

		failed, err := probe.Verify(context.Background(), checks)
		require.NoError(t, err)
		assert.Nil(t, failed)
		assert.Len(t, runner.calls, 2)

		// generated source references each package and symbol
		assert.Contains(t, runner.sources[0], `"riskmentor/bot"`)
		assert.Contains(t, runner.sources[0], "probe.RunBot")
		assert.Contains(t, runner.sources[1], `"riskmentor/bot/keyboard"`)
		assert.Contains(t, runner.sources[1], "probe.MainMenu")

		assert.Contains(t, out.String(), "ok   riskmentor/bot.RunBot")
		assert.Contains(t, out.String(), "ok   riskmentor/bot/keyboard.MainMenu")
	})

	t.Run("first failure short-circuits", func(t *testing.T) {
		parent := t.TempDir()
		runner := &fakeRunner{t: t, parent: parent, failAt: 1}
		var out bytes.Buffer

		probe, err := NewProbe(parent, runner, &out)
		require.NoError(t, err)

		failed, err := probe.Verify(context.Background(), checks)
		require.NoError(t, err)
		require.NotNil(t, failed)
		assert.Equal(t, checks[0], failed.Check)
		assert.Contains(t, failed.Output, "undefined")

		// second check must never run
		assert.Len(t, runner.calls, 1)
		assert.Contains(t, out.String(), "FAIL riskmentor/bot.RunBot")
		assert.NotContains(t, out.String(), "keyboard.MainMenu")
	})

	t.Run("second failure reports after first success", func(t *testing.T) {
		parent := t.TempDir()
		runner := &fakeRunner{t: t, parent: parent, failAt: 2}
		var out bytes.Buffer

		probe, err := NewProbe(parent, runner, &out)
		require.NoError(t, err)

		failed, err := probe.Verify(context.Background(), checks)
		require.NoError(t, err)
		require.NotNil(t, failed)
		assert.Equal(t, checks[1], failed.Check)
		assert.Contains(t, out.String(), "ok   riskmentor/bot.RunBot")
		assert.Contains(t, out.String(), "FAIL riskmentor/bot/keyboard.MainMenu")
	})

	t.Run("close removes the probe dir", func(t *testing.T) {
		parent := t.TempDir()
		runner := &fakeRunner{t: t, parent: parent}

		probe, err := NewProbe(parent, runner, &bytes.Buffer{})
		require.NoError(t, err)

		probeDir := filepath.Join(parent, probe.Dir())
		_, err = os.Stat(probeDir)
		require.NoError(t, err)

		require.NoError(t, probe.Close())
		_, err = os.Stat(probeDir)
		assert.True(t, os.IsNotExist(err))
	})
}
