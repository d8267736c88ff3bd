package elevenlabs

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.DialogSynthesizer = (*Dialog)(nil)

type Dialog struct {
	*Config
}

func NewDialog(model string, options ...Option) (*Dialog, error) {
	if model == "" {
		model = "eleven_v3"
	}

	return &Dialog{
		Config: newConfig(model, options...),
	}, nil
}

func (d *Dialog) SynthesizeDialog(ctx context.Context, turns []provider.DialogTurn, options *provider.DialogOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.DialogOptions)
	}

	if err := d.ensure(); err != nil {
		return nil, err
	}

	if len(turns) == 0 {
		return nil, &provider.ValidationError{
			Field:   "turns",
			Message: "dialog must contain at least one turn",
		}
	}

	type inputType struct {
		Text    string `json:"text"`
		VoiceID string `json:"voice_id"`
	}

	inputs := make([]inputType, 0, len(turns))

	for _, turn := range turns {
		if turn.Text == "" {
			return nil, &provider.ValidationError{
				Field:   "turns",
				Message: "turn text must not be empty",
			}
		}

		voice := turn.Voice

		if voice == "" {
			voice = DefaultVoice
		}

		inputs = append(inputs, inputType{
			Text:    turn.Text,
			VoiceID: voice,
		})
	}

	format, mime := outputFormat(options.Format)

	body := map[string]any{
		"inputs":   inputs,
		"model_id": d.model,
	}

	u, _ := url.JoinPath(d.url, "text-to-dialogue")
	u += "?output_format=" + format

	req, _ := http.NewRequestWithContext(ctx, "POST", u, jsonReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: d.model,

		Content:     data,
		ContentType: mime,
	}, nil
}
