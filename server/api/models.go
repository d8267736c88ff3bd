package api

import (
	"encoding/json"
)

type ModelList struct {
	Models []Model `json:"models"`
}

type Model struct {
	ID string `json:"id"`
}

type SpeechRequest struct {
	Model string `json:"model,omitempty"`

	Input string `json:"input"`

	Voice string   `json:"voice,omitempty"`
	Speed *float32 `json:"speed,omitempty"`

	Format string `json:"format,omitempty"`
}

type DialogRequest struct {
	Model string `json:"model,omitempty"`

	Turns []DialogTurn `json:"turns"`

	Format string `json:"format,omitempty"`
}

type DialogTurn struct {
	Voice string `json:"voice"`
	Text  string `json:"text"`
}

type MusicRequest struct {
	Model string `json:"model,omitempty"`

	Prompt string `json:"prompt"`

	Duration *float64 `json:"duration,omitempty"`

	Format string `json:"format,omitempty"`
}

type SoundRequest struct {
	Model string `json:"model,omitempty"`

	Prompt string `json:"prompt"`

	Duration *float64 `json:"duration,omitempty"`
	Loop     *bool    `json:"loop,omitempty"`

	Format string `json:"format,omitempty"`
}

type VoiceList struct {
	Voices []Voice `json:"voices"`
}

type Voice struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

type VoiceDesignRequest struct {
	Description string `json:"description"`

	Text string `json:"text,omitempty"`
}

type VoicePreviewList struct {
	Previews []VoicePreview `json:"previews"`
}

type VoicePreview struct {
	ID string `json:"id"`

	Audio       string `json:"audio"`
	ContentType string `json:"content_type"`
}

type Asset struct {
	ID string `json:"id"`

	URL       string `json:"url,omitempty"`
	SecureURL string `json:"secure_url,omitempty"`

	ResourceType string `json:"resource_type,omitempty"`
	Format       string `json:"format,omitempty"`

	Bytes  int64 `json:"bytes,omitempty"`
	Width  int   `json:"width,omitempty"`
	Height int   `json:"height,omitempty"`
}

type CampaignList struct {
	Campaigns []Campaign `json:"campaigns"`
}

type Campaign struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	Status    string `json:"status,omitempty"`
	Objective string `json:"objective,omitempty"`

	DailyBudget json.Number `json:"daily_budget,omitempty"`
}

type InsightsList struct {
	Insights []Insights `json:"insights"`
}

type Insights struct {
	Impressions json.Number `json:"impressions,omitempty"`
	Clicks      json.Number `json:"clicks,omitempty"`

	Spend json.Number `json:"spend,omitempty"`
	CTR   json.Number `json:"ctr,omitempty"`
	CPC   json.Number `json:"cpc,omitempty"`

	DateStart string `json:"date_start,omitempty"`
	DateStop  string `json:"date_stop,omitempty"`
}
