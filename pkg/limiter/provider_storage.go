package limiter

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"

	"golang.org/x/time/rate"
)

type Storage interface {
	Limiter
	storage.Provider
}

type limitedStorage struct {
	limiter  *rate.Limiter
	provider storage.Provider
}

func NewStorage(l *rate.Limiter, p storage.Provider) Storage {
	return &limitedStorage{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedStorage) limiterSetup() {
}

func (p *limitedStorage) Upload(ctx context.Context, file provider.File, options *storage.UploadOptions) (*storage.Asset, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Upload(ctx, file, options)
}

func (p *limitedStorage) Delete(ctx context.Context, id string, options *storage.DeleteOptions) error {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Delete(ctx, id, options)
}
