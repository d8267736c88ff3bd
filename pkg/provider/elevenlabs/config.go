package elevenlabs

import (
	"net/http"
	"strings"

	"github.com/nuagehq/mediagate/pkg/provider"
)

type Config struct {
	client *http.Client

	url   string
	token string

	model string
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func newConfig(model string, options ...Option) *Config {
	c := &Config{
		client: http.DefaultClient,

		url: "https://api.elevenlabs.io/v1/",

		model: model,
	}

	for _, option := range options {
		option(c)
	}

	c.url = strings.TrimRight(c.url, "/") + "/"

	return c
}

// ensure verifies credential presence before any network activity.
func (c *Config) ensure() error {
	if c.token == "" {
		return &provider.ConfigurationError{
			Provider: "elevenlabs",
			Name:     "token",
		}
	}

	return nil
}
