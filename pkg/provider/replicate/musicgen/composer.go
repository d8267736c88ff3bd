package musicgen

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/provider/replicate"

	"github.com/google/uuid"
)

var _ provider.Composer = (*Composer)(nil)

type Composer struct {
	*replicate.Client

	model string
}

const (
	MusicGen string = "meta/musicgen"
)

var SupportedModels = []string{
	MusicGen,
}

func NewComposer(model string, options ...replicate.Option) (*Composer, error) {
	if model == "" {
		model = MusicGen
	}

	if !slices.Contains(SupportedModels, model) {
		return nil, errors.New("unsupported model")
	}

	client, err := replicate.New(model, options...)

	if err != nil {
		return nil, err
	}

	return &Composer{
		Client: client,

		model: model,
	}, nil
}

func (c *Composer) Compose(ctx context.Context, prompt string, options *provider.ComposeOptions) (*provider.Composition, error) {
	if options == nil {
		options = new(provider.ComposeOptions)
	}

	if prompt == "" {
		return nil, &provider.ValidationError{
			Field:   "prompt",
			Message: "prompt must not be empty",
		}
	}

	// https://replicate.com/meta/musicgen/api/schema#input-schema
	input := replicate.PredictionInput{
		"prompt": prompt,

		"model_version": "stereo-large",
		"output_format": "mp3",
	}

	if options.Duration != nil {
		input["duration"] = int(*options.Duration)
	}

	resp, err := c.Run(ctx, input)

	if err != nil {
		return nil, err
	}

	return c.convertComposition(resp)
}

func (c *Composer) convertComposition(output replicate.PredictionOutput) (*provider.Composition, error) {
	file, ok := output.(*replicate.FileOutput)

	if !ok {
		if items, ok := output.([]any); ok && len(items) > 0 {
			file, _ = items[0].(*replicate.FileOutput)
		}
	}

	if file == nil {
		return nil, errors.New("unsupported prediction output")
	}

	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return &provider.Composition{
		ID:    uuid.NewString(),
		Model: c.model,

		Content:     data,
		ContentType: "audio/mpeg",
	}, nil
}
