package provider

import (
	"context"

	"github.com/vincent-petithory/dataurl"
)

type Composer interface {
	Compose(ctx context.Context, prompt string, options *ComposeOptions) (*Composition, error)
}

type ComposeOptions struct {
	Duration *float64

	Format string
}

type Composition struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}

func (c *Composition) DataURL() string {
	return dataurl.New(c.Content, c.ContentType).String()
}
