package speak

import (
	"context"
	"errors"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	synthesizer provider.Synthesizer
}

func New(synthesizer provider.Synthesizer) (*Client, error) {
	if synthesizer == nil {
		return nil, errors.New("missing synthesizer")
	}

	return &Client{
		synthesizer: synthesizer,
	}, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "generate_speech",
			Description: "Convert text to spoken audio. Returns the audio as a data URL that can be embedded directly in a response",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "the text to speak",
					},

					"voice": map[string]any{
						"type":        "string",
						"description": "optional voice id to speak with",
					},
				},

				"required": []string{"text"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "generate_speech" {
		return nil, tool.ErrInvalidTool
	}

	text, ok := parameters["text"].(string)

	if !ok || text == "" {
		return nil, errors.New("missing text parameter")
	}

	options := &provider.SynthesizeOptions{}

	if voice, ok := parameters["voice"].(string); ok {
		options.Voice = voice
	}

	synthesis, err := c.synthesizer.Synthesize(ctx, text, options)

	if err != nil {
		return nil, err
	}

	return Result{
		Audio:       synthesis.DataURL(),
		ContentType: synthesis.ContentType,
	}, nil
}

type Result struct {
	Audio       string `json:"audio"`
	ContentType string `json:"content_type"`
}
