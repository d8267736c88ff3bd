package client

import (
	"context"
	"io"
	"net/http"

	"github.com/nuagehq/mediagate/pkg/provider"
)

type SynthesisService struct {
	Options []RequestOption
}

func NewSynthesisService(opts ...RequestOption) SynthesisService {
	return SynthesisService{
		Options: opts,
	}
}

type Synthesis = provider.Synthesis

type SynthesizeRequest struct {
	Model string `json:"model,omitempty"`

	Input string `json:"input"`

	Voice string   `json:"voice,omitempty"`
	Speed *float32 `json:"speed,omitempty"`

	Format string `json:"format,omitempty"`
}

func (r *SynthesisService) New(ctx context.Context, input SynthesizeRequest, opts ...RequestOption) (*Synthesis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "POST", "/v1/audio/speech", "application/json", jsonReader(input))

	if err != nil {
		return nil, err
	}

	return readSynthesis(resp, input.Model)
}

type DialogService struct {
	Options []RequestOption
}

func NewDialogService(opts ...RequestOption) DialogService {
	return DialogService{
		Options: opts,
	}
}

type DialogTurn struct {
	Voice string `json:"voice"`
	Text  string `json:"text"`
}

type DialogRequest struct {
	Model string `json:"model,omitempty"`

	Turns []DialogTurn `json:"turns"`

	Format string `json:"format,omitempty"`
}

func (r *DialogService) New(ctx context.Context, input DialogRequest, opts ...RequestOption) (*Synthesis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "POST", "/v1/audio/dialog", "application/json", jsonReader(input))

	if err != nil {
		return nil, err
	}

	return readSynthesis(resp, input.Model)
}

type MusicService struct {
	Options []RequestOption
}

func NewMusicService(opts ...RequestOption) MusicService {
	return MusicService{
		Options: opts,
	}
}

type Composition = provider.Composition

type MusicRequest struct {
	Model string `json:"model,omitempty"`

	Prompt string `json:"prompt"`

	Duration *float64 `json:"duration,omitempty"`

	Format string `json:"format,omitempty"`
}

func (r *MusicService) New(ctx context.Context, input MusicRequest, opts ...RequestOption) (*Composition, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "POST", "/v1/audio/music", "application/json", jsonReader(input))

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &Composition{
		Model: input.Model,

		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

type SoundService struct {
	Options []RequestOption
}

func NewSoundService(opts ...RequestOption) SoundService {
	return SoundService{
		Options: opts,
	}
}

type Sound = provider.Sound

type SoundRequest struct {
	Model string `json:"model,omitempty"`

	Prompt string `json:"prompt"`

	Duration *float64 `json:"duration,omitempty"`
	Loop     *bool    `json:"loop,omitempty"`

	Format string `json:"format,omitempty"`
}

func (r *SoundService) New(ctx context.Context, input SoundRequest, opts ...RequestOption) (*Sound, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "POST", "/v1/audio/sound-effects", "application/json", jsonReader(input))

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &Sound{
		Model: input.Model,

		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func readSynthesis(resp *http.Response, model string) (*Synthesis, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &Synthesis{
		Model: model,

		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
