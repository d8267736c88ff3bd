package otel

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/campaign"

	"go.opentelemetry.io/otel"
)

type Campaigner interface {
	Observable
	campaign.Provider
}

type observableCampaigner struct {
	name string

	campaigner campaign.Provider
}

func NewCampaigner(name string, p campaign.Provider) Campaigner {
	return &observableCampaigner{
		campaigner: p,

		name: name,
	}
}

func (p *observableCampaigner) otelSetup() {
}

func (p *observableCampaigner) Campaigns(ctx context.Context, account string) ([]campaign.Campaign, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "campaigns "+p.name)
	defer span.End()

	return p.campaigner.Campaigns(ctx, account)
}

func (p *observableCampaigner) Insights(ctx context.Context, id string, options *campaign.InsightsOptions) ([]campaign.Insights, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "insights "+p.name)
	defer span.End()

	return p.campaigner.Insights(ctx, id, options)
}
