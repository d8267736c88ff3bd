package provider_test

import (
	"strings"
	"testing"

	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/stretchr/testify/require"
	"github.com/vincent-petithory/dataurl"
)

func TestSynthesisDataURL(t *testing.T) {
	content := []byte{0x00, 0x01, 0x02}

	synthesis := provider.Synthesis{
		Content:     content,
		ContentType: "audio/mp3",
	}

	url := synthesis.DataURL()
	require.True(t, strings.HasPrefix(url, "data:audio/mp3;base64,"))

	decoded, err := dataurl.DecodeString(url)
	require.NoError(t, err)
	require.Equal(t, content, decoded.Data)
	require.Equal(t, "audio/mp3", decoded.ContentType())
}

func TestErrorTaxonomy(t *testing.T) {
	configErr := &provider.ConfigurationError{Provider: "elevenlabs", Name: "token"}
	require.Contains(t, configErr.Error(), "token")

	validationErr := &provider.ValidationError{Field: "input", Message: "text must not be empty"}
	require.Contains(t, validationErr.Error(), "input")

	providerErr := &provider.ProviderError{Provider: "cloudinary", Status: 500, Body: []byte("remote failure")}
	require.Contains(t, providerErr.Error(), "remote failure")
	require.Contains(t, providerErr.Error(), "500")
}
