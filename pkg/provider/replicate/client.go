package replicate

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/replicate/replicate-go"
)

type Client struct {
	*Config
	client *replicate.Client
}

type PredictionInput = replicate.PredictionInput
type PredictionOutput = replicate.PredictionOutput

type FileOutput = replicate.FileOutput

func New(model string, options ...Option) (*Client, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	c := &Client{
		Config: cfg,
	}

	// without a token the SDK refuses to construct a client. ensure()
	// reports the missing credential on first use instead.
	if cfg.token != "" {
		client, err := replicate.NewClient(cfg.Options()...)

		if err != nil {
			return nil, err
		}

		c.client = client
	}

	return c, nil
}

func (c *Client) Run(ctx context.Context, input PredictionInput) (PredictionOutput, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}

	return c.client.RunWithOptions(ctx, c.model, input, nil, replicate.WithBlockUntilDone(), replicate.WithFileOutput())
}

func (c *Client) ensure() error {
	if c.token == "" {
		return &provider.ConfigurationError{
			Provider: "replicate",
			Name:     "token",
		}
	}

	return nil
}
