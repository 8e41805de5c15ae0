package mcpserver

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server of fabrikt-generate.
type Server struct {
	server *mcp.Server
	log    logr.Logger
}

// New creates a new MCP server with the given name and version.
func New(log logr.Logger, name, version string) *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	return &Server{
		server: server,
		log:    log.WithName("mcp"),
	}
}

// RegisterTool registers a tool with the MCP server. The input schema of the
// tool is inferred from In.
func RegisterTool[In any](s *Server, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error)) {
	s.log.V(1).Info("registering tool", "tool", tool.Name)
	mcp.AddTool(s.server, tool, handler)
}

// Run serves requests over stdio until stdin is closed.
// Stdout carries JSON-RPC, so everything else must go to stderr.
func (s *Server) Run(ctx context.Context) error {
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		s.log.Error(err, "MCP server failed")
		return err
	}
	return nil
}

// Connect serves requests over the given transport.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}
