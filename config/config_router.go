package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/router/roundrobin"
)

type routerConfig struct {
	Type string `yaml:"type"`

	Models []string `yaml:"models"`
}

func (cfg *Config) registerRouters(f *configFile) error {
	var configs map[string]routerConfig

	if !f.Routers.IsZero() {
		if err := f.Routers.Decode(&configs); err != nil {
			return err
		}
	}

	for id, r := range configs {
		switch strings.ToLower(r.Type) {
		case "", "roundrobin":
			var synthesizers []provider.Synthesizer

			for _, m := range r.Models {
				s, err := cfg.Synthesizer(m)

				if err != nil {
					return err
				}

				synthesizers = append(synthesizers, s)
			}

			s, err := roundrobin.NewSynthesizer(synthesizers...)

			if err != nil {
				return err
			}

			cfg.RegisterSynthesizer("roundrobin", id, s, nil)

		default:
			return errors.New("invalid router type: " + r.Type)
		}
	}

	return nil
}
