package otel

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"

	"go.opentelemetry.io/otel"
)

type DialogSynthesizer interface {
	Observable
	provider.DialogSynthesizer
}

type observableDialog struct {
	model    string
	provider string

	dialog provider.DialogSynthesizer
}

func NewDialogSynthesizer(provider, model string, p provider.DialogSynthesizer) DialogSynthesizer {
	return &observableDialog{
		dialog: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableDialog) otelSetup() {
}

func (p *observableDialog) SynthesizeDialog(ctx context.Context, turns []provider.DialogTurn, options *provider.DialogOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "dialog "+p.model)
	defer span.End()

	return p.dialog.SynthesizeDialog(ctx, turns, options)
}
