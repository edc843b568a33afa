package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/automata/pkg/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Converter is the conversion core seen by the MCP adapter.
type Converter interface {
	Convert(ctx context.Context, req service.Request) (*service.Result, error)
	Get(ctx context.Context, key string) (*schema.Definition, error)
}

// Server exposes a Converter as MCP tools.
type Server struct {
	conv      Converter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(conv Converter, version string) *Server {
	s := &Server{
		conv:      conv,
		mcpServer: server.NewMCPServer("automata-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	convertTool := mcp.NewTool("convert_nfa",
		mcp.WithDescription("Convert an NFA (YAML or JSON definition with states, start, final and transitions) into an equivalent DFA using subset construction. The symbol 'e' marks epsilon transitions."),
		mcp.WithString("definition", mcp.Description("The NFA definition document as text")),
		mcp.WithObject("nfa", mcp.Description("The NFA definition as an object with states, start, final and transitions; used instead of 'definition'")),
		mcp.WithString("format", mcp.Description("Document format: 'yaml' (default) or 'json'")),
		mcp.WithBoolean("dead_state", mcp.Description("Route undefined transitions to a shared '[]' sink state")),
	)
	s.mcpServer.AddTool(convertTool, s.HandleConvert)

	getTool := mcp.NewTool("get_dfa",
		mcp.WithDescription("Fetch a previously converted DFA by the key returned from convert_nfa."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Conversion key")),
	)
	s.mcpServer.AddTool(getTool, s.HandleGet)
}

// HandleConvert implements the convert_nfa tool.
func (s *Server) HandleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	def, err := definitionFrom(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.conv.Convert(ctx, service.Request{
		Definition: def,
		DeadState:  request.GetBool("dead_state", false),
	})
	if err != nil {
		slog.Warn("MCP convert_nfa rejected", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("conversion failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// HandleGet implements the get_dfa tool.
func (s *Server) HandleGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	def, err := s.conv.Get(ctx, key)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dfa: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// definitionFrom reads the NFA from the structured "nfa" argument when
// present, else parses the "definition" text.
func definitionFrom(request mcp.CallToolRequest) (schema.Definition, error) {
	if raw, ok := request.GetArguments()["nfa"]; ok {
		obj, ok := raw.(map[string]any)
		if !ok {
			return schema.Definition{}, fmt.Errorf("argument nfa must be an object, got %T", raw)
		}
		return schema.Decode(obj)
	}

	text, err := request.RequireString("definition")
	if err != nil {
		return schema.Definition{}, err
	}
	return schema.Parse([]byte(text), request.GetString("format", schema.FormatYAML))
}
