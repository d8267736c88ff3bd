package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/otel"
	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/provider/elevenlabs"
)

func (cfg *Config) RegisterSoundGenerator(name, id string, p provider.SoundGenerator) {
	cfg.RegisterModel(id)

	if cfg.sound == nil {
		cfg.sound = make(map[string]provider.SoundGenerator)
	}

	p = otel.NewSoundGenerator(name, id, p)

	if _, ok := cfg.sound[""]; !ok {
		cfg.sound[""] = p
	}

	cfg.sound[id] = p
}

func (cfg *Config) SoundGenerator(id string) (provider.SoundGenerator, error) {
	if cfg.sound != nil {
		if s, ok := cfg.sound[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("sound generator not found: " + id)
}

func createSoundGenerator(cfg providerConfig, model modelContext) (provider.SoundGenerator, error) {
	switch strings.ToLower(cfg.Type) {
	case "elevenlabs":
		return elevenlabs.NewSoundGenerator(model.ID, elevenlabsOptions(cfg, model)...)

	default:
		return nil, errors.New("invalid sound generator type: " + cfg.Type)
	}
}
