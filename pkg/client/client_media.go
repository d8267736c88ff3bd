package client

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"
)

type MediaService struct {
	Options []RequestOption
}

func NewMediaService(opts ...RequestOption) MediaService {
	return MediaService{
		Options: opts,
	}
}

type Asset = storage.Asset

type UploadRequest struct {
	File provider.File

	Folder string
	ID     string
	Tags   []string
}

func (r *MediaService) Upload(ctx context.Context, input UploadRequest, opts ...RequestOption) (*Asset, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	if input.Folder != "" {
		w.WriteField("folder", input.Folder)
	}

	if input.ID != "" {
		w.WriteField("id", input.ID)
	}

	if len(input.Tags) > 0 {
		w.WriteField("tags", strings.Join(input.Tags, ","))
	}

	f, err := w.CreateFormFile("file", input.File.Name)

	if err != nil {
		return nil, err
	}

	if _, err := f.Write(input.File.Content); err != nil {
		return nil, err
	}

	w.Close()

	resp, err := c.do(ctx, "POST", "/v1/media", w.FormDataContentType(), &b)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result struct {
		ID string `json:"id"`

		URL       string `json:"url"`
		SecureURL string `json:"secure_url"`

		ResourceType string `json:"resource_type"`
		Format       string `json:"format"`

		Bytes  int64 `json:"bytes"`
		Width  int   `json:"width"`
		Height int   `json:"height"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &Asset{
		ID: result.ID,

		URL:       result.URL,
		SecureURL: result.SecureURL,

		ResourceType: result.ResourceType,
		Format:       result.Format,

		Bytes:  result.Bytes,
		Width:  result.Width,
		Height: result.Height,
	}, nil
}

func (r *MediaService) Delete(ctx context.Context, id string, opts ...RequestOption) error {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := c.do(ctx, "DELETE", "/v1/media/"+url.PathEscape(id), "", nil)

	if err != nil {
		return err
	}

	resp.Body.Close()

	return nil
}
