// Package repo runs the push, status and set-path operations against one
// repository location and reports their outcome.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aki/githelper/internal/core/git"
	"github.com/aki/githelper/internal/core/logger"
)

const (
	DefaultRemote        = "origin"
	DefaultBranch        = "main"
	DefaultCommitMessage = "auto commit"
	DefaultLockTimeout   = 30 * time.Second
)

// Report messages
const (
	MsgPushed         = "Code pushed to GitHub!"
	MsgNothingToPush  = "No changes to commit."
	MsgClean          = "Working tree clean - no changes to commit."
	MsgStatusPrefix   = "Status:\n"
	MsgPathNotFound   = "Repository path does not exist: "
	MsgNotRepository  = "Not a git repository: "
	MsgPathUpdated    = "Repository path updated to: "
	MsgInvalidPath    = "Invalid repository path: "
	msgLockFailed     = "failed to lock repository: "
	msgInternalFailed = "internal failure: "
)

// Executor runs git operations against a mutable repository location.
// Operations are serialized; Synchronize also holds a file lock on the
// repository so other processes cannot interleave with it.
type Executor struct {
	runner git.Runner

	remote        string
	branch        string
	commitMessage string
	lockTimeout   time.Duration

	pathMu sync.RWMutex
	path   string

	opMu sync.Mutex
}

// Option configures an Executor
type Option func(*Executor)

// WithRemote sets the remote pushed to by Synchronize
func WithRemote(remote string) Option {
	return func(e *Executor) {
		if remote != "" {
			e.remote = remote
		}
	}
}

// WithBranch sets the upstream branch pushed to by Synchronize
func WithBranch(branch string) Option {
	return func(e *Executor) {
		if branch != "" {
			e.branch = branch
		}
	}
}

// WithDefaultCommitMessage sets the message used when Synchronize gets none
func WithDefaultCommitMessage(message string) Option {
	return func(e *Executor) {
		if strings.TrimSpace(message) != "" {
			e.commitMessage = message
		}
	}
}

// WithLockTimeout bounds the wait for the repository file lock
func WithLockTimeout(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.lockTimeout = d
		}
	}
}

// New creates an Executor for path. The path is not required to exist yet;
// each operation checks its own preconditions.
func New(path string, runner git.Runner, opts ...Option) (*Executor, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	if runner == nil {
		return nil, errors.New("git runner is required")
	}

	e := &Executor{
		runner:        runner,
		remote:        DefaultRemote,
		branch:        DefaultBranch,
		commitMessage: DefaultCommitMessage,
		lockTimeout:   DefaultLockTimeout,
		path:          path,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Path returns the current repository location
func (e *Executor) Path() string {
	e.pathMu.RLock()
	defer e.pathMu.RUnlock()
	return e.path
}

// DefaultCommitMessage returns the message Synchronize uses when given none
func (e *Executor) DefaultCommitMessage() string {
	return e.commitMessage
}

// Synchronize stages every change, commits it with message and pushes the
// current branch with upstream tracking. An empty message falls back to the
// default. Completed steps are not undone when a later step fails.
func (e *Executor) Synchronize(ctx context.Context, message string) (report Report) {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	defer recoverInto(&report)

	path := e.Path()
	log := logger.FromContext(ctx).With("op", "synchronize", "path", path)

	if !git.PathExists(path) {
		return failure(CategoryPathNotFound, MsgPathNotFound+path)
	}
	if !git.HasMarker(path) {
		return failure(CategoryNotARepository, MsgNotRepository+path)
	}

	if strings.TrimSpace(message) == "" {
		message = e.commitMessage
	}

	lock, err := git.Lock(ctx, path, e.lockTimeout)
	if err != nil {
		log.Warn("repository lock unavailable", "error", err)
		return failure(CategoryUnexpected, msgLockFailed+err.Error())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("failed to release repository lock", "error", err)
		}
	}()

	if _, err := e.runner.Run(ctx, path, "add", "."); err != nil {
		return commandFailure(log, StepAdd, err)
	}

	status, err := e.runner.Run(ctx, path, "status", "--porcelain")
	if err != nil {
		return commandFailure(log, StepStatus, err)
	}
	if strings.TrimSpace(status.Stdout) == "" {
		log.Info("nothing to commit")
		return noop(MsgNothingToPush)
	}

	if _, err := e.runner.Run(ctx, path, "commit", "-m", message); err != nil {
		return commandFailure(log, StepCommit, err)
	}

	if _, err := e.runner.Run(ctx, path, "push", "-u", e.remote, e.branch); err != nil {
		return commandFailure(log, StepPush, err)
	}

	log.Info("pushed", "remote", e.remote, "branch", e.branch)
	return ok(MsgPushed)
}

// Inspect returns the short status of the work tree. The status lines are
// passed through untouched.
func (e *Executor) Inspect(ctx context.Context) (report Report) {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	defer recoverInto(&report)

	path := e.Path()
	log := logger.FromContext(ctx).With("op", "inspect", "path", path)

	if !git.PathExists(path) {
		return failure(CategoryPathNotFound, MsgPathNotFound+path)
	}

	status, err := e.runner.Run(ctx, path, "status", "--short")
	if err != nil {
		return commandFailure(log, StepStatus, err)
	}

	if strings.TrimSpace(status.Stdout) == "" {
		return ok(MsgClean)
	}

	report = ok(MsgStatusPrefix + status.Stdout)
	report.Output = status.Stdout
	return report
}

// Relocate points the executor at newPath if it exists and holds a .git
// entry. An invalid path leaves the current location unchanged.
func (e *Executor) Relocate(ctx context.Context, newPath string) Report {
	log := logger.FromContext(ctx).With("op", "relocate")

	if err := Validate(newPath); err != nil {
		log.Info("rejected repository path", "path", newPath, "error", err)
		return failure(CategoryInvalidPath, MsgInvalidPath+newPath)
	}

	e.pathMu.Lock()
	previous := e.path
	e.path = newPath
	e.pathMu.Unlock()

	log.Info("repository path updated", "from", previous, "to", newPath)
	return ok(MsgPathUpdated + newPath)
}

func commandFailure(log logger.Logger, step Step, err error) Report {
	report := failure(CategoryCommandFailed, err.Error())
	report.Step = step

	var cmdErr *git.CommandError
	if errors.As(err, &cmdErr) {
		report.Output = cmdErr.Stderr
	}

	log.Warn("git step failed", "step", step, "error", err)
	return report
}

// recoverInto turns a panic inside an operation into an Unexpected report
func recoverInto(report *Report) {
	if r := recover(); r != nil {
		*report = failure(CategoryUnexpected, fmt.Sprintf("%s%v", msgInternalFailed, r))
	}
}
