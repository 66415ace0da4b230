// ABOUTME: MCP server initialization and configuration
// ABOUTME: Sets up server with BMI tools and resources for AI agents

package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harper/bmi/internal/logging"
	"github.com/harper/bmi/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps an MCP server around one calculator session.
// Requests may arrive concurrently, so all state access holds mu.
type Server struct {
	mcp    *mcp.Server
	logger *log.Logger

	mu    sync.Mutex
	state *session.State
}

// NewServer creates MCP server with all capabilities.
func NewServer(state *session.State, logger *log.Logger) (*Server, error) {
	if state == nil {
		return nil, fmt.Errorf("session state is required")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "bmi",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:    mcpServer,
		logger: logger,
		state:  state,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("serving MCP over stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
