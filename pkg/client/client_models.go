package client

import (
	"context"
	"encoding/json"

	"github.com/nuagehq/mediagate/pkg/provider"
)

type ModelService struct {
	Options []RequestOption
}

func NewModelService(opts ...RequestOption) ModelService {
	return ModelService{
		Options: opts,
	}
}

type Model = provider.Model

func (r *ModelService) List(ctx context.Context, opts ...RequestOption) ([]Model, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "GET", "/v1/models", "", nil)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	type modelList struct {
		Models []struct {
			ID string `json:"id"`
		} `json:"models"`
	}

	var result modelList

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var models []provider.Model

	for _, m := range result.Models {
		models = append(models, provider.Model{
			ID: m.ID,
		})
	}

	return models, nil
}
