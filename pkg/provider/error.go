package provider

import (
	"fmt"
	"net/http"
)

// ConfigurationError reports a missing or empty credential. A façade
// returns it before any network activity is attempted.
type ConfigurationError struct {
	Provider string
	Name     string
}

func (e *ConfigurationError) Error() string {
	return e.Provider + ": missing configuration " + e.Name
}

// ValidationError reports a malformed request or response shape at the
// translation boundary. It is never repaired silently.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "invalid " + e.Field + ": " + e.Message
	}

	return e.Message
}

// TransportError wraps a network-level failure (timeout, DNS, reset).
// Retrying is the caller's decision.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProviderError carries a non-success status and the remote error body
// unmodified.
type ProviderError struct {
	Provider string

	Status int
	Body   []byte
}

func (e *ProviderError) Error() string {
	text := http.StatusText(e.Status)

	if len(e.Body) > 0 {
		text = string(e.Body)
	}

	return fmt.Sprintf("%s: %s (status %d)", e.Provider, text, e.Status)
}
