package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"
)

var _ storage.Provider = (*Client)(nil)

type Client struct {
	client *http.Client

	url string

	cloud  string
	key    string
	secret string
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

func New(cloud, key, secret string, options ...Option) (*Client, error) {
	c := &Client{
		client: http.DefaultClient,

		url: "https://api.cloudinary.com/v1_1/",

		cloud:  cloud,
		key:    key,
		secret: secret,
	}

	for _, option := range options {
		option(c)
	}

	c.url = strings.TrimRight(c.url, "/") + "/"

	return c, nil
}

func (c *Client) ensure() error {
	if c.cloud == "" {
		return &provider.ConfigurationError{Provider: "cloudinary", Name: "cloud"}
	}

	if c.key == "" {
		return &provider.ConfigurationError{Provider: "cloudinary", Name: "key"}
	}

	if c.secret == "" {
		return &provider.ConfigurationError{Provider: "cloudinary", Name: "secret"}
	}

	return nil
}

func (c *Client) Upload(ctx context.Context, file provider.File, options *storage.UploadOptions) (*storage.Asset, error) {
	if options == nil {
		options = new(storage.UploadOptions)
	}

	if err := c.ensure(); err != nil {
		return nil, err
	}

	if len(file.Content) == 0 {
		return nil, &provider.ValidationError{
			Field:   "file",
			Message: "file content must not be empty",
		}
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := map[string]string{
		"timestamp": timestamp,
	}

	if options.Folder != "" {
		params["folder"] = options.Folder
	}

	if options.ID != "" {
		params["public_id"] = options.ID
	}

	if len(options.Tags) > 0 {
		params["tags"] = strings.Join(options.Tags, ",")
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	for name, value := range params {
		w.WriteField(name, value)
	}

	w.WriteField("api_key", c.key)
	w.WriteField("signature", c.sign(params))

	f, err := w.CreateFormFile("file", file.Name)

	if err != nil {
		return nil, err
	}

	if _, err := f.Write(file.Content); err != nil {
		return nil, err
	}

	w.Close()

	u, _ := url.JoinPath(c.url, c.cloud, "auto/upload")

	req, _ := http.NewRequestWithContext(ctx, "POST", u, &b)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, &provider.TransportError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result uploadResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if result.PublicID == "" {
		return nil, &provider.ValidationError{
			Field:   "public_id",
			Message: "provider response did not contain an asset id",
		}
	}

	return &storage.Asset{
		ID: result.PublicID,

		URL:       result.URL,
		SecureURL: result.SecureURL,

		ResourceType: result.ResourceType,
		Format:       result.Format,

		Bytes:  result.Bytes,
		Width:  result.Width,
		Height: result.Height,
	}, nil
}

func (c *Client) Delete(ctx context.Context, id string, options *storage.DeleteOptions) error {
	if options == nil {
		options = new(storage.DeleteOptions)
	}

	if err := c.ensure(); err != nil {
		return err
	}

	if id == "" {
		return &provider.ValidationError{
			Field:   "id",
			Message: "asset id must not be empty",
		}
	}

	resourceType := options.ResourceType

	if resourceType == "" {
		resourceType = "image"
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := map[string]string{
		"public_id": id,
		"timestamp": timestamp,
	}

	body := url.Values{}

	for name, value := range params {
		body.Set(name, value)
	}

	body.Set("api_key", c.key)
	body.Set("signature", c.sign(params))

	u, _ := url.JoinPath(c.url, c.cloud, resourceType, "destroy")

	req, _ := http.NewRequestWithContext(ctx, "POST", u, strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)

	if err != nil {
		return &provider.TransportError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return convertError(resp)
	}

	var result struct {
		Result string `json:"result"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	if result.Result != "ok" {
		return &provider.ValidationError{
			Field:   "result",
			Message: "provider did not confirm deletion: " + result.Result,
		}
	}

	return nil
}

// sign computes the Cloudinary request signature: the SHA-1 hex digest
// of the alphabetically sorted parameters followed by the API secret.
func (c *Client) sign(params map[string]string) string {
	names := make([]string, 0, len(params))

	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	pairs := make([]string, 0, len(names))

	for _, name := range names {
		pairs = append(pairs, name+"="+params[name])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.secret))

	return hex.EncodeToString(sum[:])
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	return &provider.ProviderError{
		Provider: "cloudinary",

		Status: resp.StatusCode,
		Body:   data,
	}
}

type uploadResponse struct {
	PublicID string `json:"public_id"`

	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`

	ResourceType string `json:"resource_type"`
	Format       string `json:"format"`

	Bytes  int64 `json:"bytes"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
}
