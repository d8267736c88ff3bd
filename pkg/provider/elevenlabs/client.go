package elevenlabs

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nuagehq/mediagate/pkg/provider"
)

func (c *Config) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("xi-api-key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, &provider.TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, convertError(resp)
	}

	return resp, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	return &provider.ProviderError{
		Provider: "elevenlabs",

		Status: resp.StatusCode,
		Body:   data,
	}
}

func jsonReader(v any) io.Reader {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.Encode(v)

	return &b
}

// outputFormat maps a short format name to the provider's output_format
// query value and the resulting media type.
func outputFormat(format string) (string, string) {
	switch format {
	case "", "mp3":
		return "mp3_44100_128", "audio/mpeg"

	case "opus":
		return "opus_48000_128", "audio/opus"

	case "pcm":
		return "pcm_44100", "audio/pcm"

	case "ulaw":
		return "ulaw_8000", "audio/basic"

	default:
		return format, "audio/mpeg"
	}
}
