package elevenlabs

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

// DefaultVoice is used when the caller does not select a voice.
const DefaultVoice = "21m00Tcm4TlvDq8ikWAM"

type Synthesizer struct {
	*Config
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	if model == "" {
		model = "eleven_multilingual_v2"
	}

	return &Synthesizer{
		Config: newConfig(model, options...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if err := s.ensure(); err != nil {
		return nil, err
	}

	if input == "" {
		return nil, &provider.ValidationError{
			Field:   "input",
			Message: "text must not be empty",
		}
	}

	voice := options.Voice

	if voice == "" {
		voice = DefaultVoice
	}

	format, mime := outputFormat(options.Format)

	type settingsType struct {
		Speed *float32 `json:"speed,omitempty"`
	}

	type bodyType struct {
		Text    string `json:"text"`
		ModelID string `json:"model_id"`

		VoiceSettings *settingsType `json:"voice_settings,omitempty"`
	}

	body := bodyType{
		Text:    input,
		ModelID: s.model,
	}

	if options.Speed != nil {
		body.VoiceSettings = &settingsType{
			Speed: options.Speed,
		}
	}

	u, _ := url.JoinPath(s.url, "text-to-speech", voice)
	u += "?output_format=" + format

	req, _ := http.NewRequestWithContext(ctx, "POST", u, jsonReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: mime,
	}, nil
}
