package preflight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Launch starts the bot as a blocking foreground process and returns its
// exit code, so the procedure's own exit status mirrors the child's.
func Launch(ctx context.Context, dir string, argv []string, out io.Writer) int {
	if len(argv) == 0 {
		fmt.Fprintln(out, "launch: empty command")
		return ExitProbeFailed
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(out, "launch: %v\n", err)
		return ExitProbeFailed
	}
	return ExitOK
}
