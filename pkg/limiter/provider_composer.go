package limiter

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"

	"golang.org/x/time/rate"
)

type Composer interface {
	Limiter
	provider.Composer
}

type limitedComposer struct {
	limiter  *rate.Limiter
	provider provider.Composer
}

func NewComposer(l *rate.Limiter, p provider.Composer) Composer {
	return &limitedComposer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedComposer) limiterSetup() {
}

func (p *limitedComposer) Compose(ctx context.Context, prompt string, options *provider.ComposeOptions) (*provider.Composition, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Compose(ctx, prompt, options)
}
