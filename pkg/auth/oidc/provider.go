package oidc

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nuagehq/mediagate/pkg/auth"

	"github.com/coreos/go-oidc/v3/oidc"
)

type Provider struct {
	verifier *oidc.IDTokenVerifier
}

func New(issuer, audience string) (*Provider, error) {
	provider, err := oidc.NewProvider(context.Background(), issuer)

	if err != nil {
		return nil, err
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: audience,
	})

	return &Provider{
		verifier: verifier,
	}, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	header := r.Header.Get("Authorization")

	if header == "" {
		return ctx, errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")

	if !ok {
		return ctx, errors.New("invalid authorization header")
	}

	idtoken, err := p.verifier.Verify(ctx, token)

	if err != nil {
		return ctx, err
	}

	var claims struct {
		Subject string `json:"sub"`
	}

	if err := idtoken.Claims(&claims); err == nil && claims.Subject != "" {
		ctx = context.WithValue(ctx, auth.UserContextKey, claims.Subject)
	}

	return ctx, nil
}
