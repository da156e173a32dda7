package config

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// DefaultLockTimeout bounds the wait for the configuration file lock
const DefaultLockTimeout = 5 * time.Second

// ErrLockTimeout is returned when the configuration file lock is not acquired in time
var ErrLockTimeout = errors.New("timeout acquiring config file lock")

// ignoreFile keeps the configuration directory out of the repository it
// usually sits in. Its single "*" pattern also matches itself.
const ignoreFile = ".gitignore"

// lockPath is the sidecar lock file. The config file itself is replaced by
// rename on every write, so it cannot carry the lock, and the config
// directory may be inside a work tree, so the lock lives in the temp dir.
func lockPath(configPath string) string {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		abs = configPath
	}
	sum := sha1.Sum([]byte(abs))
	return filepath.Join(os.TempDir(), "githelper-config-"+hex.EncodeToString(sum[:8])+".lock")
}

// ensureIgnored writes .githelper/.gitignore so git add never stages the
// configuration or its secrets. Config files outside a .githelper
// directory are left alone.
func ensureIgnored(configPath string) error {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) != ConfigDir {
		return nil
	}

	path := filepath.Join(dir, ignoreFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte("*\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// withLock runs fn while holding the exclusive lock for configPath
func withLock(ctx context.Context, configPath string, timeout time.Duration, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := ensureIgnored(configPath); err != nil {
		return err
	}

	lock := flock.New(lockPath(configPath))

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrLockTimeout
		}
		return fmt.Errorf("failed to acquire config lock: %w", err)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// writeAtomic replaces path with data through a temp file and rename
func writeAtomic(path string, data []byte) error {
	tempFile := fmt.Sprintf("%s.%d.%d.tmp", path, os.Getpid(), time.Now().UnixNano())

	f, err := os.OpenFile(tempFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	_ = f.Sync()
	if err := f.Close(); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	return nil
}
