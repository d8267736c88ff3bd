package elevenlabs

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/nuagehq/mediagate/pkg/provider"
)

var (
	_ provider.VoiceCloner   = (*Voices)(nil)
	_ provider.VoiceDesigner = (*Voices)(nil)
	_ provider.VoiceLister   = (*Voices)(nil)
)

type Voices struct {
	*Config
}

func NewVoices(options ...Option) (*Voices, error) {
	return &Voices{
		Config: newConfig("", options...),
	}, nil
}

func (v *Voices) CloneVoice(ctx context.Context, name string, samples []provider.File, options *provider.CloneOptions) (*provider.Voice, error) {
	if options == nil {
		options = new(provider.CloneOptions)
	}

	if err := v.ensure(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, &provider.ValidationError{
			Field:   "name",
			Message: "voice name must not be empty",
		}
	}

	if len(samples) == 0 {
		return nil, &provider.ValidationError{
			Field:   "samples",
			Message: "at least one audio sample is required",
		}
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	w.WriteField("name", name)

	if options.Description != "" {
		w.WriteField("description", options.Description)
	}

	if len(options.Labels) > 0 {
		labels, _ := json.Marshal(options.Labels)
		w.WriteField("labels", string(labels))
	}

	for _, sample := range samples {
		f, err := w.CreateFormFile("files", sample.Name)

		if err != nil {
			return nil, err
		}

		if _, err := f.Write(sample.Content); err != nil {
			return nil, err
		}
	}

	w.Close()

	u, _ := url.JoinPath(v.url, "voices/add")

	req, _ := http.NewRequestWithContext(ctx, "POST", u, &b)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := v.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type resultType struct {
		VoiceID string `json:"voice_id"`
	}

	var result resultType

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if result.VoiceID == "" {
		return nil, &provider.ValidationError{
			Field:   "voice_id",
			Message: "provider response did not contain a voice id",
		}
	}

	return &provider.Voice{
		ID:   result.VoiceID,
		Name: name,

		Description: options.Description,
		Labels:      options.Labels,
	}, nil
}

func (v *Voices) DesignVoice(ctx context.Context, description string, options *provider.DesignOptions) ([]provider.VoicePreview, error) {
	if options == nil {
		options = new(provider.DesignOptions)
	}

	if err := v.ensure(); err != nil {
		return nil, err
	}

	if description == "" {
		return nil, &provider.ValidationError{
			Field:   "description",
			Message: "voice description must not be empty",
		}
	}

	body := map[string]any{
		"voice_description": description,
	}

	if options.Text != "" {
		body["text"] = options.Text
	}

	u, _ := url.JoinPath(v.url, "text-to-voice/design")

	req, _ := http.NewRequestWithContext(ctx, "POST", u, jsonReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type previewType struct {
		GeneratedVoiceID string `json:"generated_voice_id"`

		AudioBase64 string `json:"audio_base_64"`
		MediaType   string `json:"media_type"`
	}

	type resultType struct {
		Previews []previewType `json:"previews"`
	}

	var result resultType

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	previews := make([]provider.VoicePreview, 0, len(result.Previews))

	for _, p := range result.Previews {
		data, err := base64.StdEncoding.DecodeString(p.AudioBase64)

		if err != nil {
			return nil, &provider.ValidationError{
				Field:   "audio_base_64",
				Message: "provider returned malformed audio payload",
			}
		}

		mime := p.MediaType

		if mime == "" {
			mime = "audio/mpeg"
		}

		previews = append(previews, provider.VoicePreview{
			ID: p.GeneratedVoiceID,

			Content:     data,
			ContentType: mime,
		})
	}

	return previews, nil
}

// ListVoices returns the voices available to the configured account.
func (v *Voices) ListVoices(ctx context.Context) ([]provider.Voice, error) {
	if err := v.ensure(); err != nil {
		return nil, err
	}

	u, _ := url.JoinPath(v.url, "voices")

	req, _ := http.NewRequestWithContext(ctx, "GET", u, nil)

	resp, err := v.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type voiceType struct {
		VoiceID string `json:"voice_id"`
		Name    string `json:"name"`

		Description string            `json:"description"`
		Labels      map[string]string `json:"labels"`
	}

	type resultType struct {
		Voices []voiceType `json:"voices"`
	}

	var result resultType

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	voices := make([]provider.Voice, 0, len(result.Voices))

	for _, item := range result.Voices {
		voices = append(voices, provider.Voice{
			ID:   item.VoiceID,
			Name: item.Name,

			Description: item.Description,
			Labels:      item.Labels,
		})
	}

	return voices, nil
}
