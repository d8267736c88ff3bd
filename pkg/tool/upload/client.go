package upload

import (
	"context"
	"errors"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"
	"github.com/nuagehq/mediagate/pkg/tool"

	"github.com/vincent-petithory/dataurl"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	storage storage.Provider

	folder string
}

type Option func(*Client)

func WithFolder(folder string) Option {
	return func(c *Client) {
		c.folder = folder
	}
}

func New(provider storage.Provider, options ...Option) (*Client, error) {
	if provider == nil {
		return nil, errors.New("missing storage provider")
	}

	c := &Client{
		storage: provider,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "store_media",
			Description: "Upload media content to the storage provider and return its public URL",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"data": map[string]any{
						"type":        "string",
						"description": "the media content as a data URL (data:<mediaType>;base64,<payload>)",
					},

					"name": map[string]any{
						"type":        "string",
						"description": "optional file name for the stored asset",
					},
				},

				"required": []string{"data"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "store_media" {
		return nil, tool.ErrInvalidTool
	}

	data, ok := parameters["data"].(string)

	if !ok || data == "" {
		return nil, errors.New("missing data parameter")
	}

	decoded, err := dataurl.DecodeString(data)

	if err != nil {
		return nil, errors.New("data parameter is not a valid data URL")
	}

	file := provider.File{
		Content:     decoded.Data,
		ContentType: decoded.ContentType(),
	}

	if name, ok := parameters["name"].(string); ok {
		file.Name = name
	}

	asset, err := c.storage.Upload(ctx, file, &storage.UploadOptions{
		Folder: c.folder,
	})

	if err != nil {
		return nil, err
	}

	return Result{
		ID:  asset.ID,
		URL: asset.SecureURL,
	}, nil
}

type Result struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
