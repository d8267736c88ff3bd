package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/otel"
	"github.com/nuagehq/mediagate/pkg/tool"
	"github.com/nuagehq/mediagate/pkg/tool/speak"
	"github.com/nuagehq/mediagate/pkg/tool/upload"
)

type toolConfig struct {
	Type string `yaml:"type"`

	Model string `yaml:"model"`

	Storage string `yaml:"storage"`
	Folder  string `yaml:"folder"`
}

func (cfg *Config) RegisterTool(name, id string, p tool.Provider) {
	if cfg.tools == nil {
		cfg.tools = make(map[string]tool.Provider)
	}

	p = otel.NewTool(name, p)

	cfg.tools[id] = p
}

func (cfg *Config) Tools() []tool.Provider {
	tools := make([]tool.Provider, 0, len(cfg.tools))

	for _, t := range cfg.tools {
		tools = append(tools, t)
	}

	return tools
}

func (cfg *Config) registerTools(f *configFile) error {
	var configs map[string]toolConfig

	if !f.Tools.IsZero() {
		if err := f.Tools.Decode(&configs); err != nil {
			return err
		}
	}

	for id, t := range configs {
		provider, err := cfg.createTool(t)

		if err != nil {
			return err
		}

		cfg.RegisterTool(t.Type, id, provider)
	}

	return nil
}

func (cfg *Config) createTool(c toolConfig) (tool.Provider, error) {
	switch strings.ToLower(c.Type) {
	case "speak":
		synthesizer, err := cfg.Synthesizer(c.Model)

		if err != nil {
			return nil, err
		}

		return speak.New(synthesizer)

	case "upload":
		storage, err := cfg.Storage(c.Storage)

		if err != nil {
			return nil, err
		}

		var options []upload.Option

		if c.Folder != "" {
			options = append(options, upload.WithFolder(c.Folder))
		}

		return upload.New(storage, options...)

	default:
		return nil, errors.New("invalid tool type: " + c.Type)
	}
}
