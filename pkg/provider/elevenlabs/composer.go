package elevenlabs

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Composer = (*Composer)(nil)

type Composer struct {
	*Config
}

func NewComposer(model string, options ...Option) (*Composer, error) {
	if model == "" {
		model = "music_v1"
	}

	return &Composer{
		Config: newConfig(model, options...),
	}, nil
}

func (c *Composer) Compose(ctx context.Context, prompt string, options *provider.ComposeOptions) (*provider.Composition, error) {
	if options == nil {
		options = new(provider.ComposeOptions)
	}

	if err := c.ensure(); err != nil {
		return nil, err
	}

	if prompt == "" {
		return nil, &provider.ValidationError{
			Field:   "prompt",
			Message: "prompt must not be empty",
		}
	}

	format, mime := outputFormat(options.Format)

	body := map[string]any{
		"prompt":   prompt,
		"model_id": c.model,
	}

	if options.Duration != nil {
		body["music_length_ms"] = int(*options.Duration * 1000)
	}

	u, _ := url.JoinPath(c.url, "music")
	u += "?output_format=" + format

	req, _ := http.NewRequestWithContext(ctx, "POST", u, jsonReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Composition{
		ID:    uuid.NewString(),
		Model: c.model,

		Content:     data,
		ContentType: mime,
	}, nil
}
