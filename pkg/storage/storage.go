package storage

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"
)

type Provider interface {
	Upload(ctx context.Context, file provider.File, options *UploadOptions) (*Asset, error)
	Delete(ctx context.Context, id string, options *DeleteOptions) error
}

type UploadOptions struct {
	Folder string
	ID     string

	Tags []string
}

type DeleteOptions struct {
	ResourceType string
}

// Asset describes a stored object as reported by the storage provider.
// The provider owns persistence and delivery; an Asset is a reference,
// not the content itself.
type Asset struct {
	ID string

	URL       string
	SecureURL string

	ResourceType string
	Format       string

	Bytes  int64
	Width  int
	Height int
}
