package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/nuagehq/mediagate/pkg/campaign"
)

type CampaignService struct {
	Options []RequestOption
}

func NewCampaignService(opts ...RequestOption) CampaignService {
	return CampaignService{
		Options: opts,
	}
}

type Campaign = campaign.Campaign
type Insights = campaign.Insights

func (r *CampaignService) List(ctx context.Context, account string, opts ...RequestOption) ([]Campaign, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "GET", "/v1/campaigns?account="+url.QueryEscape(account), "", nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type campaignList struct {
		Campaigns []struct {
			ID   string `json:"id"`
			Name string `json:"name"`

			Status    string `json:"status"`
			Objective string `json:"objective"`

			DailyBudget json.Number `json:"daily_budget"`
		} `json:"campaigns"`
	}

	var result campaignList

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var campaigns []Campaign

	for _, item := range result.Campaigns {
		campaigns = append(campaigns, Campaign{
			ID:   item.ID,
			Name: item.Name,

			Status:    item.Status,
			Objective: item.Objective,

			DailyBudget: item.DailyBudget,
		})
	}

	return campaigns, nil
}

func (r *CampaignService) Insights(ctx context.Context, id string, opts ...RequestOption) ([]Insights, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "GET", "/v1/campaigns/"+url.PathEscape(id)+"/insights", "", nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type insightsList struct {
		Insights []struct {
			Impressions json.Number `json:"impressions"`
			Clicks      json.Number `json:"clicks"`

			Spend json.Number `json:"spend"`
			CTR   json.Number `json:"ctr"`
			CPC   json.Number `json:"cpc"`

			DateStart string `json:"date_start"`
			DateStop  string `json:"date_stop"`
		} `json:"insights"`
	}

	var result insightsList

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var insights []Insights

	for _, item := range result.Insights {
		insights = append(insights, Insights{
			Impressions: item.Impressions,
			Clicks:      item.Clicks,

			Spend: item.Spend,
			CTR:   item.CTR,
			CPC:   item.CPC,

			DateStart: item.DateStart,
			DateStop:  item.DateStop,
		})
	}

	return insights, nil
}
