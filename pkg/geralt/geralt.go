// Package geralt shells out to the geralt executable. All task state
// lives on the other side of that subprocess boundary; this package only
// formats argv, runs the tool, and hands back its text.
package geralt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Invoker runs one geralt subcommand and returns its stdout. An empty
// subcommand runs the bare executable. Implementations block until the
// process exits.
type Invoker interface {
	Invoke(ctx context.Context, sub string, args ...string) (string, error)
}

// ErrExecutableNotFound reports that the geralt binary could not be
// located at startup.
var ErrExecutableNotFound = errors.New("geralt: executable not found")

// InvokeError carries the failed invocation and the process's own output
// text. No exit code is interpreted beyond nonzero; the output is shown
// to the user as-is.
type InvokeError struct {
	Sub    string
	Args   []string
	Output string
	Err    error
}

func (e *InvokeError) Error() string {
	argv := e.Sub
	if len(e.Args) > 0 {
		argv += " " + strings.Join(e.Args, " ")
	}
	return fmt.Sprintf("geralt %s: %s", strings.TrimSpace(argv), e.Output)
}

func (e *InvokeError) Unwrap() error {
	return e.Err
}

// CLI invokes a geralt binary resolved once at construction.
type CLI struct {
	bin     string
	timeout time.Duration
}

// New resolves bin on PATH. A zero timeout means invocations wait for
// the process indefinitely.
func New(bin string, timeout time.Duration) (*CLI, error) {
	if bin == "" {
		bin = "geralt"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExecutableNotFound, bin)
	}
	return &CLI{bin: path, timeout: timeout}, nil
}

func (c *CLI) Invoke(ctx context.Context, sub string, args ...string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	argv := args
	if sub != "" {
		argv = append([]string{sub}, args...)
	}

	cmd := exec.CommandContext(ctx, c.bin, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			msg = err.Error()
		}
		return "", &InvokeError{Sub: sub, Args: args, Output: msg, Err: err}
	}
	return stdout.String(), nil
}
