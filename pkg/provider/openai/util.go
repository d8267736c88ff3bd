package openai

import (
	"errors"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return &provider.ProviderError{
			Provider: "openai",

			Status: apierr.StatusCode,
			Body:   []byte(apierr.RawJSON()),
		}
	}

	return &provider.TransportError{Err: err}
}
