package cloudinary

import (
	"strconv"
	"strings"
)

type Transform struct {
	Width  int
	Height int

	Crop string

	Format string
}

// DeliveryURL builds a CDN delivery URL for a stored asset. No network
// call is involved; delivery itself is owned by the provider.
func (c *Client) DeliveryURL(id string, transform *Transform) string {
	parts := []string{"https://res.cloudinary.com", c.cloud, "image/upload"}

	if transform != nil {
		var segments []string

		if transform.Width > 0 {
			segments = append(segments, "w_"+strconv.Itoa(transform.Width))
		}

		if transform.Height > 0 {
			segments = append(segments, "h_"+strconv.Itoa(transform.Height))
		}

		if transform.Crop != "" {
			segments = append(segments, "c_"+transform.Crop)
		}

		if len(segments) > 0 {
			parts = append(parts, strings.Join(segments, ","))
		}
	}

	parts = append(parts, id)

	url := strings.Join(parts, "/")

	if transform != nil && transform.Format != "" {
		url += "." + transform.Format
	}

	return url
}
