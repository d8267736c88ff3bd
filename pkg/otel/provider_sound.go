package otel

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"

	"go.opentelemetry.io/otel"
)

type SoundGenerator interface {
	Observable
	provider.SoundGenerator
}

type observableSoundGenerator struct {
	model    string
	provider string

	generator provider.SoundGenerator
}

func NewSoundGenerator(provider, model string, p provider.SoundGenerator) SoundGenerator {
	return &observableSoundGenerator{
		generator: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableSoundGenerator) otelSetup() {
}

func (p *observableSoundGenerator) GenerateSound(ctx context.Context, prompt string, options *provider.SoundOptions) (*provider.Sound, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "sound "+p.model)
	defer span.End()

	return p.generator.GenerateSound(ctx, prompt, options)
}
