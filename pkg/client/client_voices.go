package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"

	"github.com/nuagehq/mediagate/pkg/provider"
)

type VoiceService struct {
	Options []RequestOption
}

func NewVoiceService(opts ...RequestOption) VoiceService {
	return VoiceService{
		Options: opts,
	}
}

type Voice = provider.Voice
type VoicePreview = provider.VoicePreview

func (r *VoiceService) List(ctx context.Context, opts ...RequestOption) ([]Voice, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "GET", "/v1/voices", "", nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type voiceList struct {
		Voices []struct {
			ID   string `json:"id"`
			Name string `json:"name"`

			Description string            `json:"description"`
			Labels      map[string]string `json:"labels"`
		} `json:"voices"`
	}

	var result voiceList

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var voices []Voice

	for _, v := range result.Voices {
		voices = append(voices, Voice{
			ID:   v.ID,
			Name: v.Name,

			Description: v.Description,
			Labels:      v.Labels,
		})
	}

	return voices, nil
}

type CloneRequest struct {
	Name string

	Description string
	Labels      map[string]string

	Samples []provider.File
}

func (r *VoiceService) Clone(ctx context.Context, input CloneRequest, opts ...RequestOption) (*Voice, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	w.WriteField("name", input.Name)

	if input.Description != "" {
		w.WriteField("description", input.Description)
	}

	if len(input.Labels) > 0 {
		labels, _ := json.Marshal(input.Labels)
		w.WriteField("labels", string(labels))
	}

	for _, sample := range input.Samples {
		f, err := w.CreateFormFile("files", sample.Name)

		if err != nil {
			return nil, err
		}

		if _, err := f.Write(sample.Content); err != nil {
			return nil, err
		}
	}

	w.Close()

	resp, err := c.do(ctx, "POST", "/v1/voices", w.FormDataContentType(), &b)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var voice struct {
		ID   string `json:"id"`
		Name string `json:"name"`

		Description string            `json:"description"`
		Labels      map[string]string `json:"labels"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&voice); err != nil {
		return nil, err
	}

	return &Voice{
		ID:   voice.ID,
		Name: voice.Name,

		Description: voice.Description,
		Labels:      voice.Labels,
	}, nil
}

type DesignRequest struct {
	Description string `json:"description"`

	Text string `json:"text,omitempty"`
}

func (r *VoiceService) Design(ctx context.Context, input DesignRequest, opts ...RequestOption) ([]VoicePreview, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "POST", "/v1/voices/design", "application/json", jsonReader(input))

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type previewList struct {
		Previews []struct {
			ID string `json:"id"`

			Audio       string `json:"audio"`
			ContentType string `json:"content_type"`
		} `json:"previews"`
	}

	var result previewList

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var previews []VoicePreview

	for _, p := range result.Previews {
		data, err := base64.StdEncoding.DecodeString(p.Audio)

		if err != nil {
			return nil, err
		}

		previews = append(previews, VoicePreview{
			ID: p.ID,

			Content:     data,
			ContentType: p.ContentType,
		})
	}

	return previews, nil
}
