package elevenlabs_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/provider/elevenlabs"

	"github.com/stretchr/testify/require"
)

// countingTransport counts outbound calls so tests can assert that a
// failed precondition never reached the network.
type countingTransport struct {
	calls atomic.Int64

	rt http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return t.rt.RoundTrip(req)
}

func TestSynthesizeMissingToken(t *testing.T) {
	transport := &countingTransport{rt: http.DefaultTransport}

	s, err := elevenlabs.NewSynthesizer("", elevenlabs.WithClient(&http.Client{Transport: transport}))
	require.NoError(t, err)

	_, err = s.Synthesize(t.Context(), "hello", nil)

	var configErr *provider.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "elevenlabs", configErr.Provider)
	require.Equal(t, "token", configErr.Name)

	require.Zero(t, transport.calls.Load())
}

func TestSynthesizeEmptyInput(t *testing.T) {
	transport := &countingTransport{rt: http.DefaultTransport}

	s, err := elevenlabs.NewSynthesizer("",
		elevenlabs.WithToken("test"),
		elevenlabs.WithClient(&http.Client{Transport: transport}),
	)
	require.NoError(t, err)

	_, err = s.Synthesize(t.Context(), "", nil)

	var validationErr *provider.ValidationError
	require.ErrorAs(t, err, &validationErr)

	require.Zero(t, transport.calls.Load())
}

func TestSynthesize(t *testing.T) {
	audio := []byte{0x49, 0x44, 0x33, 0x04}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/text-to-speech/voice-1", r.URL.Path)
		require.Equal(t, "mp3_44100_128", r.URL.Query().Get("output_format"))
		require.Equal(t, "test-token", r.Header.Get("xi-api-key"))

		var body struct {
			Text    string `json:"text"`
			ModelID string `json:"model_id"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "hello world", body.Text)
		require.Equal(t, "eleven_multilingual_v2", body.ModelID)

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))

	defer server.Close()

	s, err := elevenlabs.NewSynthesizer("",
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test-token"),
	)
	require.NoError(t, err)

	result, err := s.Synthesize(t.Context(), "hello world", &provider.SynthesizeOptions{Voice: "voice-1"})
	require.NoError(t, err)

	require.NotEmpty(t, result.ID)
	require.Equal(t, "eleven_multilingual_v2", result.Model)
	require.Equal(t, audio, result.Content)
	require.Equal(t, "audio/mpeg", result.ContentType)
}

func TestSynthesizeProviderError(t *testing.T) {
	body := `{"detail":{"status":"quota_exceeded"}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(body))
	}))

	defer server.Close()

	s, err := elevenlabs.NewSynthesizer("",
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	_, err = s.Synthesize(t.Context(), "hello", nil)

	var providerErr *provider.ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, http.StatusInternalServerError, providerErr.Status)
	require.Equal(t, body, string(providerErr.Body))
}

func TestSynthesizeTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s, err := elevenlabs.NewSynthesizer("",
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	_, err = s.Synthesize(t.Context(), "hello", nil)

	var transportErr *provider.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Error(t, transportErr.Unwrap())
}

func TestSynthesizeConcurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}

		json.NewDecoder(r.Body).Decode(&body)

		w.Write([]byte("audio:" + body.Text))
	}))

	defer server.Close()

	s, err := elevenlabs.NewSynthesizer("",
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	inputs := []string{"first request", "second request"}

	var wg sync.WaitGroup

	for _, input := range inputs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			result, err := s.Synthesize(context.Background(), input, nil)
			require.NoError(t, err)
			require.Equal(t, "audio:"+input, string(result.Content))
		}()
	}

	wg.Wait()
}

func TestComposeValidation(t *testing.T) {
	transport := &countingTransport{rt: http.DefaultTransport}

	c, err := elevenlabs.NewComposer("",
		elevenlabs.WithToken("test"),
		elevenlabs.WithClient(&http.Client{Transport: transport}),
	)
	require.NoError(t, err)

	_, err = c.Compose(t.Context(), "", nil)

	var validationErr *provider.ValidationError
	require.ErrorAs(t, err, &validationErr)

	require.Zero(t, transport.calls.Load())
}

func TestCompose(t *testing.T) {
	audio := []byte("music-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/music", r.URL.Path)

		var body struct {
			Prompt  string `json:"prompt"`
			ModelID string `json:"model_id"`
			Length  int    `json:"music_length_ms"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "uplifting piano", body.Prompt)
		require.Equal(t, "music_v1", body.ModelID)
		require.Equal(t, 30000, body.Length)

		w.Write(audio)
	}))

	defer server.Close()

	c, err := elevenlabs.NewComposer("",
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	duration := 30.0

	result, err := c.Compose(t.Context(), "uplifting piano", &provider.ComposeOptions{Duration: &duration})
	require.NoError(t, err)
	require.Equal(t, audio, result.Content)
	require.Equal(t, "audio/mpeg", result.ContentType)
}

func TestGenerateSound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sound-generation", r.URL.Path)

		var body struct {
			Text     string  `json:"text"`
			Duration float64 `json:"duration_seconds"`
			Loop     bool    `json:"loop"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "rain on a tin roof", body.Text)
		require.Equal(t, 5.5, body.Duration)
		require.True(t, body.Loop)

		w.Write([]byte("sound-bytes"))
	}))

	defer server.Close()

	g, err := elevenlabs.NewSoundGenerator("",
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	duration := 5.5
	loop := true

	result, err := g.GenerateSound(t.Context(), "rain on a tin roof", &provider.SoundOptions{
		Duration: &duration,
		Loop:     &loop,
	})
	require.NoError(t, err)
	require.Equal(t, "sound-bytes", string(result.Content))
}

func TestSynthesizeDialog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/text-to-dialogue", r.URL.Path)

		var body struct {
			Inputs []struct {
				Text    string `json:"text"`
				VoiceID string `json:"voice_id"`
			} `json:"inputs"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Inputs, 2)
		require.Equal(t, "voice-a", body.Inputs[0].VoiceID)
		require.Equal(t, "voice-b", body.Inputs[1].VoiceID)

		w.Write([]byte("dialog-bytes"))
	}))

	defer server.Close()

	d, err := elevenlabs.NewDialog("",
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	result, err := d.SynthesizeDialog(t.Context(), []provider.DialogTurn{
		{Voice: "voice-a", Text: "hi there"},
		{Voice: "voice-b", Text: "hello back"},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "dialog-bytes", string(result.Content))
}

func TestSynthesizeDialogEmpty(t *testing.T) {
	transport := &countingTransport{rt: http.DefaultTransport}

	d, err := elevenlabs.NewDialog("",
		elevenlabs.WithToken("test"),
		elevenlabs.WithClient(&http.Client{Transport: transport}),
	)
	require.NoError(t, err)

	_, err = d.SynthesizeDialog(t.Context(), nil, nil)

	var validationErr *provider.ValidationError
	require.ErrorAs(t, err, &validationErr)

	require.Zero(t, transport.calls.Load())
}

func TestCloneVoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/voices/add", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "narrator", r.FormValue("name"))
		require.Equal(t, "calm narrator voice", r.FormValue("description"))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 1)
		require.Equal(t, "sample.mp3", files[0].Filename)

		writeJSON(w, map[string]any{"voice_id": "voice-123"})
	}))

	defer server.Close()

	v, err := elevenlabs.NewVoices(
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	voice, err := v.CloneVoice(t.Context(), "narrator", []provider.File{
		{Name: "sample.mp3", Content: []byte("sample-bytes"), ContentType: "audio/mpeg"},
	}, &provider.CloneOptions{Description: "calm narrator voice"})
	require.NoError(t, err)
	require.Equal(t, "voice-123", voice.ID)
	require.Equal(t, "narrator", voice.Name)
}

func TestCloneVoiceWithoutSamples(t *testing.T) {
	transport := &countingTransport{rt: http.DefaultTransport}

	v, err := elevenlabs.NewVoices(
		elevenlabs.WithToken("test"),
		elevenlabs.WithClient(&http.Client{Transport: transport}),
	)
	require.NoError(t, err)

	_, err = v.CloneVoice(t.Context(), "narrator", nil, nil)

	var validationErr *provider.ValidationError
	require.ErrorAs(t, err, &validationErr)

	require.Zero(t, transport.calls.Load())
}

func TestDesignVoice(t *testing.T) {
	preview := []byte{0x01, 0x02, 0x03}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/text-to-voice/design", r.URL.Path)

		var body struct {
			Description string `json:"voice_description"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "deep movie trailer voice", body.Description)

		writeJSON(w, map[string]any{
			"previews": []map[string]any{
				{
					"generated_voice_id": "preview-1",
					"audio_base_64":      base64.StdEncoding.EncodeToString(preview),
					"media_type":         "audio/mpeg",
				},
			},
		})
	}))

	defer server.Close()

	v, err := elevenlabs.NewVoices(
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	previews, err := v.DesignVoice(t.Context(), "deep movie trailer voice", nil)
	require.NoError(t, err)
	require.Len(t, previews, 1)
	require.Equal(t, "preview-1", previews[0].ID)
	require.Equal(t, preview, previews[0].Content)
	require.Equal(t, "audio/mpeg", previews[0].ContentType)
}

func TestVoicesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		require.Equal(t, "/voices", r.URL.Path)

		writeJSON(w, map[string]any{
			"voices": []map[string]any{
				{"voice_id": "voice-1", "name": "Rachel"},
				{"voice_id": "voice-2", "name": "Adam", "labels": map[string]string{"accent": "american"}},
			},
		})
	}))

	defer server.Close()

	v, err := elevenlabs.NewVoices(
		elevenlabs.WithURL(server.URL),
		elevenlabs.WithToken("test"),
	)
	require.NoError(t, err)

	voices, err := v.ListVoices(t.Context())
	require.NoError(t, err)
	require.Len(t, voices, 2)
	require.Equal(t, "Rachel", voices[0].Name)
	require.Equal(t, "american", voices[1].Labels["accent"])
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	var b strings.Builder
	json.NewEncoder(&b).Encode(v)

	w.Write([]byte(b.String()))
}
