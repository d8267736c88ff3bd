package meta_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nuagehq/mediagate/pkg/campaign"
	"github.com/nuagehq/mediagate/pkg/campaign/meta"
	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/stretchr/testify/require"
)

func TestCampaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/act_1234/campaigns", r.URL.Path)
		require.Equal(t, "secret-token", r.URL.Query().Get("access_token"))
		require.Equal(t, "id,name,status,objective,daily_budget", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"c-1","name":"Spring Sale","status":"ACTIVE","objective":"OUTCOME_TRAFFIC","daily_budget":"50000"},
			{"id":"c-2","name":"Retargeting","status":"PAUSED","objective":"OUTCOME_SALES"}
		]}`))
	}))

	defer server.Close()

	c, err := meta.New("secret-token", meta.WithURL(server.URL))
	require.NoError(t, err)

	campaigns, err := c.Campaigns(t.Context(), "1234")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	require.Equal(t, "c-1", campaigns[0].ID)
	require.Equal(t, "Spring Sale", campaigns[0].Name)
	require.Equal(t, "ACTIVE", campaigns[0].Status)
	require.Equal(t, "50000", campaigns[0].DailyBudget.String())
}

func TestCampaignsMissingToken(t *testing.T) {
	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	defer server.Close()

	c, err := meta.New("", meta.WithURL(server.URL))
	require.NoError(t, err)

	_, err = c.Campaigns(t.Context(), "1234")

	var configErr *provider.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "meta", configErr.Provider)

	require.Zero(t, calls.Load())
}

func TestInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/c-1/insights", r.URL.Path)
		require.Equal(t, "last_7d", r.URL.Query().Get("date_preset"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"impressions":"123456","clicks":"789","spend":"12.3456789","ctr":"0.639","cpc":"0.01564851",
			 "date_start":"2026-08-17","date_stop":"2026-08-23"}
		]}`))
	}))

	defer server.Close()

	c, err := meta.New("secret-token", meta.WithURL(server.URL))
	require.NoError(t, err)

	insights, err := c.Insights(t.Context(), "c-1", &campaign.InsightsOptions{DatePreset: "last_7d"})
	require.NoError(t, err)
	require.Len(t, insights, 1)

	// monetary fields pass through verbatim, no float rounding
	require.Equal(t, "12.3456789", insights[0].Spend.String())
	require.Equal(t, "0.01564851", insights[0].CPC.String())
	require.Equal(t, "123456", insights[0].Impressions.String())
	require.Equal(t, "2026-08-17", insights[0].DateStart)
}

func TestInsightsProviderError(t *testing.T) {
	body := `{"error":{"message":"Invalid OAuth access token.","code":190}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(body))
	}))

	defer server.Close()

	c, err := meta.New("secret-token", meta.WithURL(server.URL))
	require.NoError(t, err)

	_, err = c.Insights(t.Context(), "c-1", nil)

	var providerErr *provider.ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, http.StatusInternalServerError, providerErr.Status)
	require.Equal(t, body, string(providerErr.Body))
}

func TestGetForwardsVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/adaccounts", r.URL.Path)
		require.Equal(t, "secret-token", r.URL.Query().Get("access_token"))

		w.Write([]byte(`{"data":[{"id":"act_1"}]}`))
	}))

	defer server.Close()

	c, err := meta.New("secret-token", meta.WithURL(server.URL))
	require.NoError(t, err)

	data, err := c.Get(t.Context(), "me/adaccounts", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[{"id":"act_1"}]}`, string(data))
}
