package config

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Proxy *proxyConfig `yaml:"proxy"`

	Models map[string]modelConfig `yaml:"models"`
}

type modelConfig struct {
	Type string `yaml:"type"`

	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

type modelContext struct {
	ID string

	Client  *http.Client
	Limiter *rate.Limiter
}

func (cfg *Config) registerProviders(f *configFile) error {
	for _, p := range f.Providers {
		client, err := p.Proxy.proxyClient()

		if err != nil {
			return err
		}

		for id, m := range p.Models {
			context := modelContext{
				ID: m.Model,

				Client:  client,
				Limiter: createLimiter(m.Limit),
			}

			if context.ID == "" {
				context.ID = id
			}

			switch strings.ToLower(m.Type) {
			case "", "speech":
				synthesizer, err := createSynthesizer(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterSynthesizer(p.Type, id, synthesizer, context.Limiter)

			case "dialog":
				dialog, err := createDialog(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterDialog(p.Type, id, dialog)

			case "music":
				composer, err := createComposer(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterComposer(p.Type, id, composer, context.Limiter)

			case "sound":
				sound, err := createSoundGenerator(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterSoundGenerator(p.Type, id, sound)

			case "voices":
				voices, err := createVoices(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterVoices(id, voices)

			default:
				return errors.New("invalid model type: " + m.Type)
			}
		}
	}

	return nil
}
