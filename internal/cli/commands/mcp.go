package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aki/githelper/internal/cli/ui"
	"github.com/aki/githelper/internal/core/config"
	"github.com/aki/githelper/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long:  "Start the Model Context Protocol server exposing push_to_github, git_status and set_repo_path",
	RunE:  runMCP,
}

var (
	serveTransport string
	servePort      int
	serveAuthType  string
	serveAuthToken string
	serveAuthUser  string
	serveAuthPass  string
)

func registerTransportFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&serveTransport, "transport", "t", "", "Transport type (stdio, http)")
	flags.IntVarP(&servePort, "port", "p", 0, "Port for HTTP transport (default 3000)")
	flags.StringVar(&serveAuthType, "auth", "", "Authentication type (none, bearer, basic)")
	flags.StringVar(&serveAuthToken, "auth-token", "", "Bearer token for authentication")
	flags.StringVar(&serveAuthUser, "auth-user", "", "Username for basic authentication")
	flags.StringVar(&serveAuthPass, "auth-pass", "", "Password for basic authentication")
}

func init() {
	registerTransportFlags(mcpCmd.Flags())
}

// transportConfig merges the transport flags over the configured transport
func transportConfig(cfg *config.Config) (*config.TransportConfig, error) {
	t := cfg.MCP.Transport

	if serveTransport != "" {
		t.Type = serveTransport
	}
	if t.Type == "" {
		t.Type = config.TransportStdio
	}
	if servePort != 0 {
		t.HTTP.Port = servePort
	}
	if t.HTTP.Port == 0 {
		t.HTTP.Port = config.DefaultHTTPPort
	}

	if serveAuthType != "" {
		t.HTTP.Auth.Type = serveAuthType
	}
	if serveAuthToken != "" {
		t.HTTP.Auth.Bearer = serveAuthToken
	}
	if serveAuthUser != "" {
		t.HTTP.Auth.Basic.Username = serveAuthUser
	}
	if serveAuthPass != "" {
		t.HTTP.Auth.Basic.Password = serveAuthPass
	}

	if err := config.ValidateTransport(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func runMCP(cmd *cobra.Command, args []string) error {
	app, err := setup()
	if err != nil {
		return err
	}

	transport, err := transportConfig(app.cfg)
	if err != nil {
		return err
	}

	stdio := transport.Type == config.TransportStdio
	if stdio {
		// stdout carries the protocol; everything else goes to stderr
		ui.Stdout = os.Stderr
	}

	opts := []mcp.Option{
		mcp.WithTransport(transport.Type),
		mcp.WithLogger(app.log),
	}
	if !stdio {
		opts = append(opts, mcp.WithHTTPConfig(&transport.HTTP))
	}

	server, err := mcp.NewServer(app.executor, Version, opts...)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(app.withLogger(cmd.Context()))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			ui.Info("Shutting down MCP server...")
			cancel()
		case <-ctx.Done():
		}
	}()

	printBanner(app.executor.Path(), transport.Type)

	if err := server.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			ui.Success("MCP server stopped")
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func printBanner(repoPath, transport string) {
	ui.OutputLine("%s Starting Git Helper MCP Server...", ui.RocketIcon)
	ui.OutputLine("%s Repository path: %s", ui.FolderIcon, repoPath)
	ui.OutputLine("%s", ui.DimStyle.Render("Transport: "+transport))
	ui.OutputLine("Available tools:")
	printToolsTable()
	ui.OutputLine("%s", ui.DimStyle.Render("Run with --test to exercise the tools directly"))
}
