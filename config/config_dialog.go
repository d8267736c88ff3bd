package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/otel"
	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/provider/elevenlabs"
)

func (cfg *Config) RegisterDialog(name, id string, p provider.DialogSynthesizer) {
	cfg.RegisterModel(id)

	if cfg.dialog == nil {
		cfg.dialog = make(map[string]provider.DialogSynthesizer)
	}

	p = otel.NewDialogSynthesizer(name, id, p)

	if _, ok := cfg.dialog[""]; !ok {
		cfg.dialog[""] = p
	}

	cfg.dialog[id] = p
}

func (cfg *Config) Dialog(id string) (provider.DialogSynthesizer, error) {
	if cfg.dialog != nil {
		if d, ok := cfg.dialog[id]; ok {
			return d, nil
		}
	}

	return nil, errors.New("dialog synthesizer not found: " + id)
}

func createDialog(cfg providerConfig, model modelContext) (provider.DialogSynthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "elevenlabs":
		return elevenlabs.NewDialog(model.ID, elevenlabsOptions(cfg, model)...)

	default:
		return nil, errors.New("invalid dialog type: " + cfg.Type)
	}
}
