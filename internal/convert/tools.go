package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrToolNotFound means a required external command is not on PATH.
	ErrToolNotFound = errors.New("required tool not found")
	// ErrNoOutput means the engine exited without producing its output file.
	ErrNoOutput = errors.New("converter produced no output")
	// ErrTimeout means the engine ran past the configured deadline.
	ErrTimeout = errors.New("converter timed out")
)

// outputTail limits how much engine output gets folded into an error.
const outputTail = 400

// runTool executes an external converter and waits for it to finish.
// Engine output is captured and the tail of it surfaced in the error;
// pdflatex in particular reports failures on stdout, not stderr.
func runTool(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%s: %w", name, ErrTimeout)
	}
	if msg := tail(out.String()); msg != "" {
		return fmt.Errorf("%s failed: %v: %s", name, err, msg)
	}
	return fmt.Errorf("%s failed: %w", name, err)
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > outputTail {
		s = "..." + s[len(s)-outputTail:]
	}
	return s
}
