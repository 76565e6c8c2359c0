package hledgerweb

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExecRunnerDefaultBin(t *testing.T) {
	if got := (ExecRunner{}).bin(); got != "hledger" {
		t.Errorf("bin() = %q, want %q", got, "hledger")
	}
	if got := (ExecRunner{Bin: "/opt/hledger"}).bin(); got != "/opt/hledger" {
		t.Errorf("bin() = %q, want %q", got, "/opt/hledger")
	}
}

func TestExecRunnerLaunchFailure(t *testing.T) {
	r := ExecRunner{Bin: "/nonexistent/hledger"}
	_, err := r.Run(context.Background())
	var terr *ToolError
	if !errors.As(err, &terr) {
		t.Fatalf("error is %T, want *ToolError", err)
	}
	if terr.ExitCode != -1 {
		t.Errorf("exit code = %d, want -1 for a launch failure", terr.ExitCode)
	}
	if !strings.Contains(terr.Error(), "could not be started") {
		t.Errorf("message = %q", terr.Error())
	}
}

func TestToolErrorMessage(t *testing.T) {
	err := &ToolError{ExitCode: 1, Stderr: "hledger: could not parse\n"}
	want := "hledger exited with status 1: hledger: could not parse"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
