package config

import (
	"errors"
	"strings"

	"github.com/nuagehq/mediagate/pkg/auth"
	"github.com/nuagehq/mediagate/pkg/auth/oidc"
	"github.com/nuagehq/mediagate/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

func (cfg *Config) registerAuthorizers(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		cfg.Authorizers = append(cfg.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "static":
		return static.New(cfg.Token)

	case "oidc":
		return oidc.New(cfg.Issuer, cfg.Audience)

	default:
		return nil, errors.New("invalid authorizer type: " + cfg.Type)
	}
}
