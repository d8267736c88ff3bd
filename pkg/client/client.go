package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	Models ModelService

	Syntheses SynthesisService
	Dialogs   DialogService
	Music     MusicService
	Sounds    SoundService

	Voices VoiceService

	Media MediaService

	Campaigns CampaignService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Models: NewModelService(opts...),

		Syntheses: NewSynthesisService(opts...),
		Dialogs:   NewDialogService(opts...),
		Music:     NewMusicService(opts...),
		Sounds:    NewSoundService(opts...),

		Voices: NewVoiceService(opts...),

		Media: NewMediaService(opts...),

		Campaigns: NewCampaignService(opts...),
	}
}

type RequestConfig struct {
	Client *http.Client

	URL   string
	Token string
}

type RequestOption func(*RequestConfig)

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = strings.TrimRight(url, "/")
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *RequestConfig) do(ctx context.Context, method, path string, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.URL+path, body)

	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		data, _ := io.ReadAll(resp.Body)

		text := strings.TrimSpace(string(data))

		if text == "" {
			text = resp.Status
		}

		return nil, errors.New(text)
	}

	return resp, nil
}

func jsonReader(v any) io.Reader {
	b := new(strings.Builder)

	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)

	enc.Encode(v)

	return strings.NewReader(b.String())
}

func Ptr[T any](v T) *T {
	return &v
}
