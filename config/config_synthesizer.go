package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/limiter"
	"github.com/nuagehq/mediagate/pkg/otel"
	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/provider/elevenlabs"
	"github.com/nuagehq/mediagate/pkg/provider/openai"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterSynthesizer(name, id string, p provider.Synthesizer, l *rate.Limiter) {
	cfg.RegisterModel(id)

	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	p = otel.NewSynthesizer(name, id, p)

	if l != nil {
		p = limiter.NewSynthesizer(l, p)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

func createSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "elevenlabs":
		return elevenlabsSynthesizer(cfg, model)

	case "openai", "openai-compatible":
		return openaiSynthesizer(cfg, model)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func elevenlabsSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	options := elevenlabsOptions(cfg, model)

	return elevenlabs.NewSynthesizer(model.ID, options...)
}

func openaiSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, openai.WithClient(model.Client))
	}

	return openai.NewSynthesizer(cfg.URL, model.ID, options...)
}

func elevenlabsOptions(cfg providerConfig, model modelContext) []elevenlabs.Option {
	var options []elevenlabs.Option

	if cfg.URL != "" {
		options = append(options, elevenlabs.WithURL(cfg.URL))
	}

	if cfg.Token != "" {
		options = append(options, elevenlabs.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, elevenlabs.WithClient(model.Client))
	}

	return options
}
