package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/limiter"
	"github.com/nuagehq/mediagate/pkg/otel"
	"github.com/nuagehq/mediagate/pkg/storage"
	"github.com/nuagehq/mediagate/pkg/storage/cloudinary"

	"golang.org/x/time/rate"
)

type storageConfig struct {
	Type string `yaml:"type"`

	URL string `yaml:"url"`

	Cloud  string `yaml:"cloud"`
	Key    string `yaml:"key"`
	Secret string `yaml:"secret"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) RegisterStorage(name, id string, p storage.Provider, limiter *rate.Limiter) {
	if cfg.storage == nil {
		cfg.storage = make(map[string]storage.Provider)
	}

	p = otel.NewStorage(name, p)
	p = limitedStorage(limiter, p)

	if _, ok := cfg.storage[""]; !ok {
		cfg.storage[""] = p
	}

	cfg.storage[id] = p
}

func (cfg *Config) Storage(id string) (storage.Provider, error) {
	if cfg.storage != nil {
		if s, ok := cfg.storage[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("storage not found: " + id)
}

func (cfg *Config) registerStorage(f *configFile) error {
	var configs map[string]storageConfig

	if !f.Storage.IsZero() {
		if err := f.Storage.Decode(&configs); err != nil {
			return err
		}
	}

	for id, s := range configs {
		provider, err := createStorage(s)

		if err != nil {
			return err
		}

		cfg.RegisterStorage(s.Type, id, provider, createLimiter(s.Limit))
	}

	return nil
}

func createStorage(cfg storageConfig) (storage.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "cloudinary":
		var options []cloudinary.Option

		if cfg.URL != "" {
			options = append(options, cloudinary.WithURL(cfg.URL))
		}

		return cloudinary.New(cfg.Cloud, cfg.Key, cfg.Secret, options...)

	default:
		return nil, errors.New("invalid storage type: " + cfg.Type)
	}
}

func limitedStorage(l *rate.Limiter, p storage.Provider) storage.Provider {
	if l == nil {
		return p
	}

	return limiter.NewStorage(l, p)
}
