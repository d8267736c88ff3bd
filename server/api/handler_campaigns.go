package api

import (
	"net/http"

	"github.com/nuagehq/mediagate/pkg/campaign"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	c, err := h.Campaigner(r.URL.Query().Get("provider"))

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	campaigns, err := c.Campaigns(r.Context(), r.URL.Query().Get("account"))

	if err != nil {
		writeError(w, err)
		return
	}

	result := CampaignList{
		Campaigns: make([]Campaign, 0, len(campaigns)),
	}

	for _, item := range campaigns {
		result.Campaigns = append(result.Campaigns, Campaign{
			ID:   item.ID,
			Name: item.Name,

			Status:    item.Status,
			Objective: item.Objective,

			DailyBudget: item.DailyBudget,
		})
	}

	writeJson(w, result)
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	c, err := h.Campaigner(r.URL.Query().Get("provider"))

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	options := &campaign.InsightsOptions{
		DatePreset: r.URL.Query().Get("date_preset"),
	}

	insights, err := c.Insights(r.Context(), chi.URLParam(r, "id"), options)

	if err != nil {
		writeError(w, err)
		return
	}

	result := InsightsList{
		Insights: make([]Insights, 0, len(insights)),
	}

	for _, item := range insights {
		result.Insights = append(result.Insights, Insights{
			Impressions: item.Impressions,
			Clicks:      item.Clicks,

			Spend: item.Spend,
			CTR:   item.CTR,
			CPC:   item.CPC,

			DateStart: item.DateStart,
			DateStop:  item.DateStop,
		})
	}

	writeJson(w, result)
}
