package hledgerweb

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Runner executes the hledger tool and returns its raw stdout. It is the one
// seam between this package and the external process, which keeps every
// report operation testable without a hledger installation.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ToolError reports a failed hledger invocation: either the process exited
// non-zero, or it could not be started at all (ExitCode -1). Failures are
// surfaced to the caller as-is; hledger is assumed idempotent for reads and
// nothing here retries.
type ToolError struct {
	ExitCode int
	Stderr   string
	cause    error
}

func (e *ToolError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("hledger could not be started: %v", e.cause)
	}
	return fmt.Sprintf("hledger exited with status %d: %s", e.ExitCode, strings.TrimSpace(e.Stderr))
}

func (e *ToolError) Unwrap() error { return e.cause }

// ExecRunner runs a real hledger binary found on the PATH (or at an explicit
// location).
type ExecRunner struct {
	// Bin is the executable to run. Empty means "hledger".
	Bin string
	// Verbose logs every invocation.
	Verbose bool
}

func (r ExecRunner) bin() string {
	if r.Bin != "" {
		return r.Bin
	}
	return "hledger"
}

// Run spawns the tool and captures stdout. There is no timeout of its own: a
// hang in hledger blocks until the caller's context gives up.
func (r ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	if r.Verbose {
		log.Printf("exec: %s %s", r.bin(), strings.Join(args, " "))
	}
	cmd := exec.CommandContext(ctx, r.bin(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, &ToolError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String(), cause: err}
		}
		return nil, &ToolError{ExitCode: -1, cause: err}
	}
	return stdout.Bytes(), nil
}
