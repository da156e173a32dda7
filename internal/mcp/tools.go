package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aki/githelper/internal/core/logger"
	"github.com/aki/githelper/internal/core/repo"
)

func (s *Server) handlePushToGitHub(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params PushParams
	if err := UnmarshalArgs(request, &params); err != nil {
		return mcp.NewToolResultError(InvalidParameterError("commit_message", "a string").Error()), nil
	}

	ctx = s.callContext(ctx, ToolPush)
	return s.reportResult(ctx, s.executor.Synchronize(ctx, params.CommitMessage)), nil
}

func (s *Server) handleGitStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = s.callContext(ctx, ToolStatus)
	return s.reportResult(ctx, s.executor.Inspect(ctx)), nil
}

func (s *Server) handleSetRepoPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params SetRepoPathParams
	if err := UnmarshalArgs(request, &params); err != nil {
		return mcp.NewToolResultError(InvalidParameterError("new_path", "a directory path").Error()), nil
	}

	ctx = s.callContext(ctx, ToolSetRepoPath)
	return s.reportResult(ctx, s.executor.Relocate(ctx, params.NewPath)), nil
}

// callContext attaches a logger tagged with the tool and a fresh call id
func (s *Server) callContext(ctx context.Context, tool string) context.Context {
	callLogger := s.logger.With("tool", tool, "call_id", uuid.NewString())
	callLogger.Debug("tool called")
	return logger.WithContext(ctx, callLogger)
}

func (s *Server) reportResult(ctx context.Context, report repo.Report) *mcp.CallToolResult {
	log := logger.FromContext(ctx)

	if report.IsError() {
		log.Warn("tool failed", "category", report.Category, "step", report.Step)
		return mcp.NewToolResultError(ReportError(report).Error())
	}

	log.Debug("tool finished", "kind", report.Kind)
	return mcp.NewToolResultText(report.Text())
}
