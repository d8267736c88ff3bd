package tool

import (
	"context"
	"errors"
)

var (
	ErrInvalidTool = errors.New("invalid tool")
)

type Tool struct {
	Name        string
	Description string

	Parameters map[string]any
}

type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
	Execute(ctx context.Context, name string, parameters map[string]any) (any, error)
}
