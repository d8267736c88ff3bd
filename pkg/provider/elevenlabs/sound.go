package elevenlabs

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.SoundGenerator = (*SoundGenerator)(nil)

type SoundGenerator struct {
	*Config
}

func NewSoundGenerator(model string, options ...Option) (*SoundGenerator, error) {
	if model == "" {
		model = "eleven_text_to_sound_v2"
	}

	return &SoundGenerator{
		Config: newConfig(model, options...),
	}, nil
}

func (g *SoundGenerator) GenerateSound(ctx context.Context, prompt string, options *provider.SoundOptions) (*provider.Sound, error) {
	if options == nil {
		options = new(provider.SoundOptions)
	}

	if err := g.ensure(); err != nil {
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
		"text":     prompt,
		"model_id": g.model,
	}

	if options.Duration != nil {
		body["duration_seconds"] = *options.Duration
	}

	if options.Loop != nil {
		body["loop"] = *options.Loop
	}

	u, _ := url.JoinPath(g.url, "sound-generation")
	u += "?output_format=" + format

	req, _ := http.NewRequestWithContext(ctx, "POST", u, jsonReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Sound{
		ID:    uuid.NewString(),
		Model: g.model,

		Content:     data,
		ContentType: mime,
	}, nil
}
