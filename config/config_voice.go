package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/provider/elevenlabs"
)

type VoiceProvider interface {
	provider.VoiceCloner
	provider.VoiceDesigner
	provider.VoiceLister
}

func (cfg *Config) RegisterVoices(id string, v VoiceProvider) {
	if cfg.cloner == nil {
		cfg.cloner = make(map[string]provider.VoiceCloner)
	}

	if cfg.designer == nil {
		cfg.designer = make(map[string]provider.VoiceDesigner)
	}

	if cfg.lister == nil {
		cfg.lister = make(map[string]provider.VoiceLister)
	}

	if _, ok := cfg.cloner[""]; !ok {
		cfg.cloner[""] = v
	}

	if _, ok := cfg.designer[""]; !ok {
		cfg.designer[""] = v
	}

	if _, ok := cfg.lister[""]; !ok {
		cfg.lister[""] = v
	}

	cfg.cloner[id] = v
	cfg.designer[id] = v
	cfg.lister[id] = v
}

func (cfg *Config) VoiceCloner(id string) (provider.VoiceCloner, error) {
	if cfg.cloner != nil {
		if c, ok := cfg.cloner[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("voice cloner not found: " + id)
}

func (cfg *Config) VoiceDesigner(id string) (provider.VoiceDesigner, error) {
	if cfg.designer != nil {
		if d, ok := cfg.designer[id]; ok {
			return d, nil
		}
	}

	return nil, errors.New("voice designer not found: " + id)
}

func (cfg *Config) VoiceLister(id string) (provider.VoiceLister, error) {
	if cfg.lister != nil {
		if l, ok := cfg.lister[id]; ok {
			return l, nil
		}
	}

	return nil, errors.New("voice lister not found: " + id)
}

func createVoices(cfg providerConfig, model modelContext) (*elevenlabs.Voices, error) {
	switch strings.ToLower(cfg.Type) {
	case "elevenlabs":
		return elevenlabs.NewVoices(elevenlabsOptions(cfg, model)...)

	default:
		return nil, errors.New("invalid voices type: " + cfg.Type)
	}
}
