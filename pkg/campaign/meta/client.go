package meta

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nuagehq/mediagate/pkg/campaign"
	"github.com/nuagehq/mediagate/pkg/provider"
)

var _ campaign.Provider = (*Client)(nil)

type Client struct {
	client *http.Client

	url   string
	token string
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

func New(token string, options ...Option) (*Client, error) {
	c := &Client{
		client: http.DefaultClient,

		url:   "https://graph.facebook.com/v23.0/",
		token: token,
	}

	for _, option := range options {
		option(c)
	}

	c.url = strings.TrimRight(c.url, "/") + "/"

	return c, nil
}

func (c *Client) ensure() error {
	if c.token == "" {
		return &provider.ConfigurationError{
			Provider: "meta",
			Name:     "token",
		}
	}

	return nil
}

// Get forwards a read to the Graph API, attaching the access token.
// There is no local logic beyond credential lookup and forwarding.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}

	if params == nil {
		params = url.Values{}
	}

	params.Set("access_token", c.token)

	u, _ := url.JoinPath(c.url, path)
	u += "?" + params.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u, nil)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, &provider.TransportError{Err: err}
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &provider.ProviderError{
			Provider: "meta",

			Status: resp.StatusCode,
			Body:   data,
		}
	}

	return data, nil
}

func (c *Client) Campaigns(ctx context.Context, account string) ([]campaign.Campaign, error) {
	if account == "" {
		return nil, &provider.ValidationError{
			Field:   "account",
			Message: "ad account id must not be empty",
		}
	}

	if !strings.HasPrefix(account, "act_") {
		account = "act_" + account
	}

	params := url.Values{}
	params.Set("fields", "id,name,status,objective,daily_budget")

	data, err := c.Get(ctx, account+"/campaigns", params)

	if err != nil {
		return nil, err
	}

	type campaignType struct {
		ID   string `json:"id"`
		Name string `json:"name"`

		Status    string `json:"status"`
		Objective string `json:"objective"`

		DailyBudget json.Number `json:"daily_budget"`
	}

	type resultType struct {
		Data []campaignType `json:"data"`
	}

	var result resultType

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	campaigns := make([]campaign.Campaign, 0, len(result.Data))

	for _, item := range result.Data {
		campaigns = append(campaigns, campaign.Campaign{
			ID:   item.ID,
			Name: item.Name,

			Status:    item.Status,
			Objective: item.Objective,

			DailyBudget: item.DailyBudget,
		})
	}

	return campaigns, nil
}

func (c *Client) Insights(ctx context.Context, id string, options *campaign.InsightsOptions) ([]campaign.Insights, error) {
	if options == nil {
		options = new(campaign.InsightsOptions)
	}

	if id == "" {
		return nil, &provider.ValidationError{
			Field:   "id",
			Message: "campaign id must not be empty",
		}
	}

	params := url.Values{}
	params.Set("fields", "impressions,clicks,spend,ctr,cpc")

	if options.DatePreset != "" {
		params.Set("date_preset", options.DatePreset)
	}

	data, err := c.Get(ctx, id+"/insights", params)

	if err != nil {
		return nil, err
	}

	type insightsType struct {
		Impressions json.Number `json:"impressions"`
		Clicks      json.Number `json:"clicks"`

		Spend json.Number `json:"spend"`
		CTR   json.Number `json:"ctr"`
		CPC   json.Number `json:"cpc"`

		DateStart string `json:"date_start"`
		DateStop  string `json:"date_stop"`
	}

	type resultType struct {
		Data []insightsType `json:"data"`
	}

	var result resultType

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	insights := make([]campaign.Insights, 0, len(result.Data))

	for _, item := range result.Data {
		insights = append(insights, campaign.Insights{
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
