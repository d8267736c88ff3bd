package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/limiter"
	"github.com/nuagehq/mediagate/pkg/otel"
	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/provider/elevenlabs"
	"github.com/nuagehq/mediagate/pkg/provider/replicate"
	"github.com/nuagehq/mediagate/pkg/provider/replicate/musicgen"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterComposer(name, id string, p provider.Composer, l *rate.Limiter) {
	cfg.RegisterModel(id)

	if cfg.composer == nil {
		cfg.composer = make(map[string]provider.Composer)
	}

	p = otel.NewComposer(name, id, p)

	if l != nil {
		p = limiter.NewComposer(l, p)
	}

	if _, ok := cfg.composer[""]; !ok {
		cfg.composer[""] = p
	}

	cfg.composer[id] = p
}

func (cfg *Config) Composer(id string) (provider.Composer, error) {
	if cfg.composer != nil {
		if c, ok := cfg.composer[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("composer not found: " + id)
}

func createComposer(cfg providerConfig, model modelContext) (provider.Composer, error) {
	switch strings.ToLower(cfg.Type) {
	case "elevenlabs":
		return elevenlabs.NewComposer(model.ID, elevenlabsOptions(cfg, model)...)

	case "replicate":
		return replicateComposer(cfg, model)

	default:
		return nil, errors.New("invalid composer type: " + cfg.Type)
	}
}

func replicateComposer(cfg providerConfig, model modelContext) (provider.Composer, error) {
	var options []replicate.Option

	if cfg.Token != "" {
		options = append(options, replicate.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, replicate.WithClient(model.Client))
	}

	return musicgen.NewComposer(model.ID, options...)
}
