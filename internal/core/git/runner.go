// Package git runs the git command line against a working directory and
// reads repository metadata with go-git.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/aki/githelper/internal/core/logger"
)

// DefaultTimeout bounds a single git invocation when no timeout is configured
const DefaultTimeout = 2 * time.Minute

// Runner executes one git command in dir. Implementations must pass args as
// a literal argument vector; nothing is interpreted by a shell.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (*Outcome, error)
}

// Outcome is the captured result of one git invocation
type Outcome struct {
	Args     []string
	Dir      string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the command exited with status zero
func (o *Outcome) Success() bool {
	return o != nil && o.ExitCode == 0
}

// CommandError is returned when a git command fails to start or exits non-zero.
type CommandError struct {
	Args     []string
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs git as a child process
type ExecRunner struct {
	binary  string
	timeout time.Duration
	logger  logger.Logger
}

// Option configures an ExecRunner
type Option func(*ExecRunner)

// WithBinary overrides the git executable name or path
func WithBinary(binary string) Option {
	return func(r *ExecRunner) {
		if binary != "" {
			r.binary = binary
		}
	}
}

// WithTimeout bounds every invocation. Zero keeps DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(r *ExecRunner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger used for per-command debug records
func WithLogger(l logger.Logger) Option {
	return func(r *ExecRunner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewExecRunner creates a runner for the git binary found on PATH
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		binary:  "git",
		timeout: DefaultTimeout,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (*Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	outcome := &Outcome{
		Args:     args,
		Dir:      dir,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		outcome.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
		}
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s: %w", r.timeout, ctx.Err())
		}

		r.logger.Debug("git command failed",
			"args", args,
			"dir", dir,
			"exit_code", outcome.ExitCode,
			"duration", outcome.Duration,
		)

		return outcome, &CommandError{
			Args:     args,
			Dir:      dir,
			ExitCode: outcome.ExitCode,
			Stderr:   strings.TrimSpace(outcome.Stderr),
			Err:      err,
		}
	}

	r.logger.Debug("git command finished",
		"args", args,
		"dir", dir,
		"duration", outcome.Duration,
	)

	return outcome, nil
}
