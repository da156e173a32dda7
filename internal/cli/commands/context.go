package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aki/githelper/internal/core/config"
	"github.com/aki/githelper/internal/core/git"
	"github.com/aki/githelper/internal/core/logger"
	"github.com/aki/githelper/internal/core/repo"
)

// appContext is what a command needs to run executor operations
type appContext struct {
	manager  *config.Manager
	cfg      *config.Config
	log      logger.Logger
	executor *repo.Executor
}

// configManager returns the manager for --config, the nearest config file
// above the working directory, or the working directory's own location.
func configManager() (*config.Manager, error) {
	if flagConfig != "" {
		return config.NewManager(flagConfig), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := config.FindConfig(wd)
	if errors.Is(err, config.ErrNotFound) {
		return config.NewManagerForDir(wd), nil
	}
	if err != nil {
		return nil, err
	}
	return config.NewManager(path), nil
}

// loadConfig returns the manager and its configuration. A missing file
// yields the defaults; an explicit --config must exist.
func loadConfig() (*config.Manager, *config.Config, error) {
	manager, err := configManager()
	if err != nil {
		return nil, nil, err
	}

	if flagConfig != "" && !manager.Exists() {
		return nil, nil, fmt.Errorf("config file not found: %s", flagConfig)
	}

	cfg, err := manager.LoadOrDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return manager, cfg, nil
}

// repositoryPath resolves the starting repository location: --repo, then
// repository.path (relative to the directory holding .githelper), then the
// working directory.
func repositoryPath(manager *config.Manager, cfg *config.Config) (string, error) {
	if flagRepo != "" {
		return filepath.Abs(flagRepo)
	}

	if p := cfg.Repository.Path; p != "" {
		if filepath.IsAbs(p) {
			return p, nil
		}
		projectDir := filepath.Dir(filepath.Dir(manager.Path()))
		return filepath.Join(projectDir, p), nil
	}

	return os.Getwd()
}

func newExecutor(manager *config.Manager, cfg *config.Config, log logger.Logger) (*repo.Executor, error) {
	timeout, err := cfg.GitTimeout()
	if err != nil {
		return nil, err
	}

	path, err := repositoryPath(manager, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository path: %w", err)
	}

	runner := git.NewExecRunner(
		git.WithBinary(cfg.Git.Binary),
		git.WithTimeout(timeout),
		git.WithLogger(log),
	)

	return repo.New(path, runner,
		repo.WithRemote(cfg.Repository.Remote),
		repo.WithBranch(cfg.Repository.Branch),
		repo.WithDefaultCommitMessage(cfg.Repository.DefaultCommitMessage),
	)
}

// setup loads configuration and builds the logger and executor
func setup() (*appContext, error) {
	log, err := CreateLogger()
	if err != nil {
		return nil, err
	}

	manager, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	executor, err := newExecutor(manager, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor: %w", err)
	}

	return &appContext{
		manager:  manager,
		cfg:      cfg,
		log:      log,
		executor: executor,
	}, nil
}

// withLogger returns parent carrying the command logger
func (a *appContext) withLogger(parent context.Context) context.Context {
	return logger.WithContext(parent, a.log)
}
