package config

import (
	"bytes"
	"os"

	"github.com/nuagehq/mediagate/pkg/auth"
	"github.com/nuagehq/mediagate/pkg/campaign"
	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"
	"github.com/nuagehq/mediagate/pkg/tool"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	models map[string]provider.Model

	synthesizer map[string]provider.Synthesizer
	dialog      map[string]provider.DialogSynthesizer
	composer    map[string]provider.Composer
	sound       map[string]provider.SoundGenerator

	cloner   map[string]provider.VoiceCloner
	designer map[string]provider.VoiceDesigner
	lister   map[string]provider.VoiceLister

	storage    map[string]storage.Provider
	campaigner map[string]campaign.Provider

	tools map[string]tool.Provider
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if err := c.registerAuthorizers(file); err != nil {
		return nil, err
	}

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	if err := c.registerRouters(file); err != nil {
		return nil, err
	}

	if err := c.registerStorage(file); err != nil {
		return nil, err
	}

	if err := c.registerCampaigners(file); err != nil {
		return nil, err
	}

	if err := c.registerTools(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (cfg *Config) RegisterModel(id string) {
	if cfg.models == nil {
		cfg.models = make(map[string]provider.Model)
	}

	cfg.models[id] = provider.Model{
		ID: id,
	}
}

func (cfg *Config) Models() []provider.Model {
	models := make([]provider.Model, 0, len(cfg.models))

	for _, m := range cfg.models {
		models = append(models, m)
	}

	return models
}

type configFile struct {
	Authorizers []authorizerConfig `yaml:"authorizers"`

	Providers []providerConfig `yaml:"providers"`

	Routers yaml.Node `yaml:"routers"`

	Storage   yaml.Node `yaml:"storage"`
	Campaigns yaml.Node `yaml:"campaigns"`

	Tools yaml.Node `yaml:"tools"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
