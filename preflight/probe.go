package preflight

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Check is one (package path, symbol) pair the probe must resolve.
type Check struct {
	Pkg    string
	Symbol string
}

func (c Check) String() string {
	return c.Pkg + "." + c.Symbol
}

// Result describes the first check that failed to compile.
type Result struct {
	Check  Check
	Output string
}

// CommandRunner abstracts command execution so the probe can be tested
// without invoking the toolchain.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

const probeSource = `package main

import (
	"fmt"

	probe %q
)

var _ = probe.%s

func main() {
	fmt.Println("import ok: %s")
}
`

// Probe is an ephemeral verification program materialized inside the
// project tree. It must be inside the module so the generated source can
// import project packages.
type Probe struct {
	dir    string
	parent string
	runner CommandRunner
	out    io.Writer
}

func NewProbe(parent string, runner CommandRunner, out io.Writer) (*Probe, error) {
	dir, err := os.MkdirTemp(parent, "preflight-probe-")
	if err != nil {
		return nil, fmt.Errorf("create probe dir: %w", err)
	}
	return &Probe{dir: dir, parent: parent, runner: runner, out: out}, nil
}

// Dir returns the probe directory path, relative to the parent it was
// created in.
func (p *Probe) Dir() string {
	return filepath.Base(p.dir)
}

// Verify runs the checks in order and stops at the first failure. It
// returns a non-nil Result for an unresolved symbol, and a non-nil error
// only when the probe source itself could not be materialized or run.
func (p *Probe) Verify(ctx context.Context, checks []Check) (*Result, error) {
	mainFile := filepath.Join(p.dir, "main.go")
	for _, c := range checks {
		src := fmt.Sprintf(probeSource, c.Pkg, c.Symbol, c)
		if err := os.WriteFile(mainFile, []byte(src), 0o644); err != nil {
			return nil, fmt.Errorf("write probe source: %w", err)
		}

		out, err := p.runner.Run(ctx, p.parent, "go", "run", "./"+p.Dir())
		if err != nil {
			fmt.Fprintf(p.out, "  FAIL %s: %v\n%s", c, err, indent(out))
			return &Result{Check: c, Output: string(out)}, nil
		}
		fmt.Fprintf(p.out, "  ok   %s\n", c)
	}
	return nil, nil
}

// Close removes the probe directory. Callers run it before launching the
// bot so no ephemeral artifact outlives the verification step.
func (p *Probe) Close() error {
	return os.RemoveAll(p.dir)
}

func indent(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	s := ""
	start := 0
	for i := 0; i <= len(b); i++ {
		if i == len(b) || b[i] == '\n' {
			if i > start {
				s += "       " + string(b[start:i]) + "\n"
			}
			start = i + 1
		}
	}
	return s
}
