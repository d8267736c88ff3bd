package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nuagehq/mediagate/pkg/tool"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server exposes the registered tools to conversational agents over the
// MCP streamable HTTP transport. Tool sets are static; they are
// registered once at startup.
type Server struct {
	http.Handler

	server *mcp.Server
}

func NewServer(name string, tools []tool.Provider) (*Server, error) {
	impl := &mcp.Implementation{
		Name: name,
	}

	server := mcp.NewServer(impl, nil)

	if err := register(server, tools); err != nil {
		return nil, err
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	return &Server{
		Handler: handler,

		server: server,
	}, nil
}

func register(server *mcp.Server, providers []tool.Provider) error {
	ctx := context.Background()

	for _, p := range providers {
		tools, err := p.Tools(ctx)

		if err != nil {
			return err
		}

		for _, t := range tools {
			data, _ := json.Marshal(t.Parameters)

			schema := new(jsonschema.Schema)

			if err := schema.UnmarshalJSON(data); err != nil {
				return err
			}

			server.AddTool(&mcp.Tool{
				Name:        t.Name,
				Description: t.Description,

				InputSchema: schema,
			}, handler(p, t.Name))
		}
	}

	return nil
}

func handler(p tool.Provider, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any

		if len(req.Params.Arguments) > 0 {
			json.Unmarshal(req.Params.Arguments, &args)
		}

		result, err := p.Execute(ctx, name, args)

		if err != nil {
			return nil, err
		}

		switch v := result.(type) {
		case *mcp.CallToolResult:
			return v, nil

		case string:
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{
						Text: v,
					},
				},
			}, nil

		default:
			data, _ := json.Marshal(v)

			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{
						Text: string(data),
					},
				},
			}, nil
		}
	}
}
