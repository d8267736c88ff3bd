package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nuagehq/mediagate/config"
	"github.com/nuagehq/mediagate/pkg/campaign"
	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"
	"github.com/nuagehq/mediagate/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	input string
	voice string
}

func (s *fakeSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	s.input = input

	if options != nil {
		s.voice = options.Voice
	}

	return &provider.Synthesis{
		Content:     []byte("fake-audio"),
		ContentType: "audio/mpeg",
	}, nil
}

type failingSynthesizer struct {
	err error
}

func (s *failingSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	return nil, s.err
}

type fakeComposer struct {
	prompt string
}

func (c *fakeComposer) Compose(ctx context.Context, prompt string, options *provider.ComposeOptions) (*provider.Composition, error) {
	c.prompt = prompt

	return &provider.Composition{
		Content:     []byte("fake-music"),
		ContentType: "audio/mpeg",
	}, nil
}

type fakeVoices struct {
}

func (v *fakeVoices) CloneVoice(ctx context.Context, name string, samples []provider.File, options *provider.CloneOptions) (*provider.Voice, error) {
	if name == "" {
		return nil, &provider.ValidationError{Field: "name", Message: "voice name must not be empty"}
	}

	return &provider.Voice{
		ID:   "voice-1",
		Name: name,
	}, nil
}

func (v *fakeVoices) DesignVoice(ctx context.Context, description string, options *provider.DesignOptions) ([]provider.VoicePreview, error) {
	return []provider.VoicePreview{
		{
			ID: "preview-1",

			Content:     []byte("fake-audio"),
			ContentType: "audio/mpeg",
		},
	}, nil
}

func (v *fakeVoices) ListVoices(ctx context.Context) ([]provider.Voice, error) {
	return []provider.Voice{
		{
			ID:   "voice-1",
			Name: "Rachel",
		},
	}, nil
}

type fakeStorage struct {
	uploaded *provider.File
	deleted  string
}

func (s *fakeStorage) Upload(ctx context.Context, file provider.File, options *storage.UploadOptions) (*storage.Asset, error) {
	s.uploaded = &file

	return &storage.Asset{
		ID: "asset-1",

		SecureURL: "https://res.example.com/asset-1",

		Bytes: int64(len(file.Content)),
	}, nil
}

func (s *fakeStorage) Delete(ctx context.Context, id string, options *storage.DeleteOptions) error {
	s.deleted = id
	return nil
}

type fakeCampaigner struct {
}

func (c *fakeCampaigner) Campaigns(ctx context.Context, account string) ([]campaign.Campaign, error) {
	if account == "" {
		return nil, &provider.ValidationError{Field: "account", Message: "ad account id must not be empty"}
	}

	return []campaign.Campaign{
		{
			ID:   "123",
			Name: "Summer Launch",

			DailyBudget: json.Number("123456789"),
		},
	}, nil
}

func (c *fakeCampaigner) Insights(ctx context.Context, id string, options *campaign.InsightsOptions) ([]campaign.Insights, error) {
	return []campaign.Insights{
		{
			Impressions: json.Number("1000"),
			CTR:         json.Number("12.3456789"),
		},
	}, nil
}

func testServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Attach(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func TestSpeech(t *testing.T) {
	synthesizer := &fakeSynthesizer{}

	cfg := &config.Config{}
	cfg.RegisterSynthesizer("fake", "speech-1", synthesizer, nil)

	server := testServer(t, cfg)

	body := `{"input": "hello world", "voice": "voice-1"}`

	resp, err := http.Post(server.URL+"/audio/speech", "application/json", strings.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "audio/mpeg", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, []byte("fake-audio"), data)

	require.Equal(t, "hello world", synthesizer.input)
	require.Equal(t, "voice-1", synthesizer.voice)
}

func TestSpeechProviderError(t *testing.T) {
	synthesizer := &failingSynthesizer{
		err: &provider.ProviderError{
			Provider: "elevenlabs",

			Status: http.StatusTooManyRequests,
			Body:   []byte(`{"detail": "rate limited"}`),
		},
	}

	cfg := &config.Config{}
	cfg.RegisterSynthesizer("fake", "speech-1", synthesizer, nil)

	server := testServer(t, cfg)

	resp, err := http.Post(server.URL+"/audio/speech", "application/json", strings.NewReader(`{"input": "hi"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestSpeechValidationError(t *testing.T) {
	synthesizer := &failingSynthesizer{
		err: &provider.ValidationError{Field: "input", Message: "input must not be empty"},
	}

	cfg := &config.Config{}
	cfg.RegisterSynthesizer("fake", "speech-1", synthesizer, nil)

	server := testServer(t, cfg)

	resp, err := http.Post(server.URL+"/audio/speech", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMusic(t *testing.T) {
	composer := &fakeComposer{}

	cfg := &config.Config{}
	cfg.RegisterComposer("fake", "music-1", composer, nil)

	server := testServer(t, cfg)

	resp, err := http.Post(server.URL+"/audio/music", "application/json", strings.NewReader(`{"prompt": "uplifting synthwave"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "uplifting synthwave", composer.prompt)
}

func TestUnknownModel(t *testing.T) {
	cfg := &config.Config{}

	server := testServer(t, cfg)

	resp, err := http.Post(server.URL+"/audio/speech", "application/json", strings.NewReader(`{"input": "hi"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVoices(t *testing.T) {
	cfg := &config.Config{}
	cfg.RegisterVoices("voices-1", &fakeVoices{})

	server := testServer(t, cfg)

	resp, err := http.Get(server.URL + "/voices")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Voices []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"voices"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Voices, 1)
	require.Equal(t, "Rachel", result.Voices[0].Name)
}

func TestVoiceClone(t *testing.T) {
	cfg := &config.Config{}
	cfg.RegisterVoices("voices-1", &fakeVoices{})

	server := testServer(t, cfg)

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	w.WriteField("name", "Narrator")

	f, err := w.CreateFormFile("files", "sample.mp3")
	require.NoError(t, err)

	_, err = f.Write([]byte("fake-sample"))
	require.NoError(t, err)

	w.Close()

	resp, err := http.Post(server.URL+"/voices", w.FormDataContentType(), &b)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var voice struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&voice))
	require.Equal(t, "voice-1", voice.ID)
	require.Equal(t, "Narrator", voice.Name)
}

func TestVoiceDesign(t *testing.T) {
	cfg := &config.Config{}
	cfg.RegisterVoices("voices-1", &fakeVoices{})

	server := testServer(t, cfg)

	resp, err := http.Post(server.URL+"/voices/design", "application/json", strings.NewReader(`{"description": "a calm narrator"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Previews []struct {
			ID    string `json:"id"`
			Audio string `json:"audio"`
		} `json:"previews"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Previews, 1)
	require.NotEmpty(t, result.Previews[0].Audio)
}

func TestMediaUpload(t *testing.T) {
	store := &fakeStorage{}

	cfg := &config.Config{}
	cfg.RegisterStorage("fake", "media-1", store, nil)

	server := testServer(t, cfg)

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	f, err := w.CreateFormFile("file", "clip.mp3")
	require.NoError(t, err)

	_, err = f.Write([]byte("fake-media"))
	require.NoError(t, err)

	w.Close()

	resp, err := http.Post(server.URL+"/media", w.FormDataContentType(), &b)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var asset struct {
		ID        string `json:"id"`
		SecureURL string `json:"secure_url"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&asset))
	require.Equal(t, "asset-1", asset.ID)
	require.Equal(t, "https://res.example.com/asset-1", asset.SecureURL)

	require.NotNil(t, store.uploaded)
	require.Equal(t, "clip.mp3", store.uploaded.Name)
}

func TestMediaDelete(t *testing.T) {
	store := &fakeStorage{}

	cfg := &config.Config{}
	cfg.RegisterStorage("fake", "media-1", store, nil)

	server := testServer(t, cfg)

	req, err := http.NewRequest("DELETE", server.URL+"/media/asset-1", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "asset-1", store.deleted)
}

func TestCampaigns(t *testing.T) {
	cfg := &config.Config{}
	cfg.RegisterCampaigner("fake", "meta-1", &fakeCampaigner{})

	server := testServer(t, cfg)

	resp, err := http.Get(server.URL + "/campaigns?account=123")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// budget digits must survive the round trip verbatim
	require.Contains(t, string(data), `"daily_budget":123456789`)
}

func TestInsights(t *testing.T) {
	cfg := &config.Config{}
	cfg.RegisterCampaigner("fake", "meta-1", &fakeCampaigner{})

	server := testServer(t, cfg)

	resp, err := http.Get(server.URL + "/campaigns/123/insights")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(data), "12.3456789")
}
