// Package preflight implements the maintenance procedure that repairs the
// bot package stub, verifies that the required packages still import
// cleanly, and only then starts the long-running bot process.
package preflight

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Exit codes reported by Run. A successful launch returns whatever the
// child process exits with.
const (
	ExitOK          = 0
	ExitProbeFailed = 1
	ExitWriteFailed = 2
)

type Options struct {
	// Dir is the project root the procedure operates in.
	Dir string

	// StubPath is the package stub rewritten on every run, relative to Dir.
	StubPath string

	// HandlersPath and Marker drive the advisory handler presence check.
	HandlersPath string
	Marker       string

	// Checks are verified in order, first failure wins.
	Checks []Check

	// Launch is the argv used to start the bot once all checks pass.
	Launch []string

	Runner CommandRunner
	Out    io.Writer
}

func Defaults() Options {
	return Options{
		Dir:          ".",
		StubPath:     filepath.Join("bot", "doc.go"),
		HandlersPath: filepath.Join("bot", "handlers.go"),
		Marker:       "func RunBot(",
		Checks: []Check{
			{Pkg: "riskmentor/bot", Symbol: "RunBot"},
			{Pkg: "riskmentor/bot/keyboard", Symbol: "MainMenu"},
		},
		Launch: []string{"go", "run", ".", "bot"},
		Runner: ExecRunner{},
		Out:    os.Stdout,
	}
}

// Run executes the procedure top to bottom and returns the process exit
// code. The probe artifact is removed before the launch step so nothing
// ephemeral is left behind while the bot runs.
func Run(ctx context.Context, o Options) int {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Runner == nil {
		o.Runner = ExecRunner{}
	}

	// 1. stub rewrite, fatal on write failure
	stubPath := filepath.Join(o.Dir, o.StubPath)
	if err := WriteStub(stubPath); err != nil {
		fmt.Fprintf(o.Out, "[1/4] rewrite bot stub: FAIL: %v\n", err)
		return ExitWriteFailed
	}
	fmt.Fprintf(o.Out, "[1/4] rewrite bot stub: ok (%s)\n", o.StubPath)

	// 2. handler presence, advisory only
	handlersPath := filepath.Join(o.Dir, o.HandlersPath)
	found, err := CheckPresence(handlersPath, o.Marker)
	switch {
	case err != nil:
		fmt.Fprintf(o.Out, "[2/4] handler check: warning: %v (continuing)\n", err)
	case !found:
		fmt.Fprintf(o.Out, "[2/4] handler check: warning: %q not found in %s (continuing)\n", o.Marker, o.HandlersPath)
	default:
		fmt.Fprintf(o.Out, "[2/4] handler check: ok (%q found)\n", o.Marker)
	}

	// 3. import smoke test, fail-fast
	fmt.Fprintf(o.Out, "[3/4] import smoke test (%d checks)\n", len(o.Checks))
	probe, err := NewProbe(o.Dir, o.Runner, o.Out)
	if err != nil {
		fmt.Fprintf(o.Out, "[3/4] import smoke test: FAIL: %v\n", err)
		return ExitWriteFailed
	}

	failed, verr := probe.Verify(ctx, o.Checks)
	if cerr := probe.Close(); cerr != nil {
		slog.Warn("failed to remove probe artifact", "error", cerr)
	}
	if verr != nil {
		fmt.Fprintf(o.Out, "[3/4] import smoke test: FAIL: %v\n", verr)
		return ExitWriteFailed
	}
	if failed != nil {
		fmt.Fprintf(o.Out, "[3/4] import smoke test: FAIL %s\n", failed.Check)
		fmt.Fprintln(o.Out, "bot not started, fix the import above and rerun")
		return ExitProbeFailed
	}
	fmt.Fprintln(o.Out, "all imports OK")

	// 4. launch, blocking until the bot exits
	fmt.Fprintf(o.Out, "[4/4] starting bot: %v\n", o.Launch)
	return Launch(ctx, o.Dir, o.Launch, o.Out)
}
