package openai

import (
	"context"
	"io"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if err := s.ensure(); err != nil {
		return nil, err
	}

	if content == "" {
		return nil, &provider.ValidationError{
			Field:   "input",
			Message: "text must not be empty",
		}
	}

	voice := string(openai.AudioSpeechNewParamsVoiceStringAlloy)

	if options.Voice != "" {
		voice = options.Voice
	}

	params := openai.AudioSpeechNewParams{
		Model: openai.SpeechModel(s.model),
		Input: content,

		Voice: openai.AudioSpeechNewParamsVoiceUnion{OfString: openai.String(voice)},

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}

	if options.Speed != nil {
		params.Speed = openai.Float(float64(*options.Speed))
	}

	result, err := s.speech.New(ctx, params)

	if err != nil {
		return nil, convertError(err)
	}

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: "audio/mpeg",
	}, nil
}
