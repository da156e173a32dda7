package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aki/githelper/internal/core/config"
	"github.com/aki/githelper/internal/core/logger"
	"github.com/aki/githelper/internal/core/repo"
)

// ServerName is the name advertised to MCP clients
const ServerName = "GitHelper"

// Server serves the repository tools over MCP
type Server struct {
	mcpServer  *server.MCPServer
	executor   *repo.Executor
	transport  string
	httpConfig *config.HTTPConfig
	logger     logger.Logger
}

// Option configures a Server
type Option func(*Server)

// WithTransport selects stdio or http. TLS is left to a proxy in front of
// the http transport.
func WithTransport(transport string) Option {
	return func(s *Server) { s.transport = transport }
}

// WithHTTPConfig sets the port and authentication of the HTTP transport
func WithHTTPConfig(cfg *config.HTTPConfig) Option {
	return func(s *Server) { s.httpConfig = cfg }
}

// WithLogger sets the server logger
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates an MCP server exposing executor's operations
func NewServer(executor *repo.Executor, version string, opts ...Option) (*Server, error) {
	if executor == nil {
		return nil, errors.New("executor is required")
	}

	s := &Server{
		mcpServer: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(false),
			server.WithLogging(),
			server.WithRecovery(),
		),
		executor:  executor,
		transport: config.TransportStdio,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// MCPServer returns the underlying mcp-go server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() error {
	tools := []struct {
		name    string
		params  interface{}
		handler server.ToolHandlerFunc
	}{
		{ToolPush, PushParams{}, s.handlePushToGitHub},
		{ToolStatus, StatusParams{}, s.handleGitStatus},
		{ToolSetRepoPath, SetRepoPathParams{}, s.handleSetRepoPath},
	}

	for _, tool := range tools {
		opts, err := WithStructOptions(GetEnhancedDescription(tool.name), tool.params)
		if err != nil {
			return fmt.Errorf("failed to create %s options: %w", tool.name, err)
		}
		s.mcpServer.AddTool(mcp.NewTool(tool.name, opts...), tool.handler)
	}

	return nil
}

// Start serves until ctx is cancelled or the transport fails
func (s *Server) Start(ctx context.Context) error {
	switch s.transport {
	case config.TransportStdio:
		stdio := server.NewStdioServer(s.mcpServer)
		return stdio.Listen(ctx, os.Stdin, os.Stdout)
	case config.TransportHTTP:
		return s.startHTTPServer(ctx)
	default:
		return fmt.Errorf("unsupported transport: %s", s.transport)
	}
}

// Handler returns the SSE endpoints wrapped in CORS and auth middleware
func (s *Server) Handler() http.Handler {
	sseServer := server.NewSSEServer(s.mcpServer)

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	var auth config.AuthConfig
	if s.httpConfig != nil {
		auth = s.httpConfig.Auth
	}
	return corsMiddleware(authMiddleware(auth, mux))
}

func (s *Server) startHTTPServer(ctx context.Context) error {
	if s.httpConfig == nil {
		return fmt.Errorf("HTTP configuration required")
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.httpConfig.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	s.logger.Info("MCP server listening",
		"sse", fmt.Sprintf("http://localhost:%d/sse", s.httpConfig.Port),
		"message", fmt.Sprintf("http://localhost:%d/message", s.httpConfig.Port),
	)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
