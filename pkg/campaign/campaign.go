package campaign

import (
	"context"
	"encoding/json"
)

type Provider interface {
	Campaigns(ctx context.Context, account string) ([]Campaign, error)
	Insights(ctx context.Context, id string, options *InsightsOptions) ([]Insights, error)
}

type Campaign struct {
	ID   string
	Name string

	Status    string
	Objective string

	// DailyBudget is reported in the account's minor currency unit.
	DailyBudget json.Number
}

type InsightsOptions struct {
	DatePreset string
}

// Insights carries metrics exactly as the platform reports them.
// json.Number avoids precision loss on monetary and ratio fields.
type Insights struct {
	Impressions json.Number
	Clicks      json.Number

	Spend json.Number
	CTR   json.Number
	CPC   json.Number

	DateStart string
	DateStop  string
}
