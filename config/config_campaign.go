package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/campaign"
	"github.com/nuagehq/mediagate/pkg/campaign/meta"
	"github.com/nuagehq/mediagate/pkg/otel"
)

type campaignConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

func (cfg *Config) RegisterCampaigner(name, id string, p campaign.Provider) {
	if cfg.campaigner == nil {
		cfg.campaigner = make(map[string]campaign.Provider)
	}

	p = otel.NewCampaigner(name, p)

	if _, ok := cfg.campaigner[""]; !ok {
		cfg.campaigner[""] = p
	}

	cfg.campaigner[id] = p
}

func (cfg *Config) Campaigner(id string) (campaign.Provider, error) {
	if cfg.campaigner != nil {
		if c, ok := cfg.campaigner[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("campaign provider not found: " + id)
}

func (cfg *Config) registerCampaigners(f *configFile) error {
	var configs map[string]campaignConfig

	if !f.Campaigns.IsZero() {
		if err := f.Campaigns.Decode(&configs); err != nil {
			return err
		}
	}

	for id, c := range configs {
		provider, err := createCampaigner(c)

		if err != nil {
			return err
		}

		cfg.RegisterCampaigner(c.Type, id, provider)
	}

	return nil
}

func createCampaigner(cfg campaignConfig) (campaign.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "meta":
		var options []meta.Option

		if cfg.URL != "" {
			options = append(options, meta.WithURL(cfg.URL))
		}

		return meta.New(cfg.Token, options...)

	default:
		return nil, errors.New("invalid campaign type: " + cfg.Type)
	}
}
