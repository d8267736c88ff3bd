package otel

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/tool"

	"go.opentelemetry.io/otel"
)

type Tool interface {
	Observable
	tool.Provider
}

type observableTool struct {
	name string

	tool tool.Provider
}

func NewTool(name string, p tool.Provider) Tool {
	return &observableTool{
		tool: p,

		name: name,
	}
}

func (p *observableTool) otelSetup() {
}

func (p *observableTool) Tools(ctx context.Context) ([]tool.Tool, error) {
	return p.tool.Tools(ctx)
}

func (p *observableTool) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "tool "+name)
	defer span.End()

	return p.tool.Execute(ctx, name, parameters)
}
