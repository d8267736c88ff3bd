package otel

import (
	"context"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"

	"go.opentelemetry.io/otel"
)

type Storage interface {
	Observable
	storage.Provider
}

type observableStorage struct {
	name string

	storage storage.Provider
}

func NewStorage(name string, p storage.Provider) Storage {
	return &observableStorage{
		storage: p,

		name: name,
	}
}

func (p *observableStorage) otelSetup() {
}

func (p *observableStorage) Upload(ctx context.Context, file provider.File, options *storage.UploadOptions) (*storage.Asset, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "upload "+p.name)
	defer span.End()

	return p.storage.Upload(ctx, file, options)
}

func (p *observableStorage) Delete(ctx context.Context, id string, options *storage.DeleteOptions) error {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "delete "+p.name)
	defer span.End()

	return p.storage.Delete(ctx, id, options)
}
