package otel

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"

	"go.opentelemetry.io/otel"
)

type Composer interface {
	Observable
	provider.Composer
}

type observableComposer struct {
	model    string
	provider string

	composer provider.Composer
}

func NewComposer(provider, model string, p provider.Composer) Composer {
	return &observableComposer{
		composer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableComposer) otelSetup() {
}

func (p *observableComposer) Compose(ctx context.Context, prompt string, options *provider.ComposeOptions) (*provider.Composition, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "compose "+p.model)
	defer span.End()

	return p.composer.Compose(ctx, prompt, options)
}
