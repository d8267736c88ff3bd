package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nuagehq/mediagate/config"
	"github.com/nuagehq/mediagate/pkg/provider"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/models", h.handleModels)

	r.Post("/audio/speech", h.handleSpeech)
	r.Post("/audio/dialog", h.handleDialog)
	r.Post("/audio/music", h.handleMusic)
	r.Post("/audio/sound-effects", h.handleSoundEffects)

	r.Get("/voices", h.handleVoices)
	r.Post("/voices", h.handleVoiceClone)
	r.Post("/voices/design", h.handleVoiceDesign)

	r.Post("/media", h.handleMediaUpload)
	r.Delete("/media/{id}", h.handleMediaDelete)

	r.Get("/campaigns", h.handleCampaigns)
	r.Get("/campaigns/{id}/insights", h.handleInsights)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorCode(w, errorCode(err), err)
}

func writeErrorCode(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

// errorCode maps a façade error to the HTTP status written to the
// caller. Upstream errors keep the upstream status.
func errorCode(err error) int {
	var validationError *provider.ValidationError

	if errors.As(err, &validationError) {
		return http.StatusBadRequest
	}

	var configurationError *provider.ConfigurationError

	if errors.As(err, &configurationError) {
		return http.StatusInternalServerError
	}

	var transportError *provider.TransportError

	if errors.As(err, &transportError) {
		return http.StatusBadGateway
	}

	var providerError *provider.ProviderError

	if errors.As(err, &providerError) {
		return providerError.Status
	}

	return http.StatusBadRequest
}

func (h *Handler) handleModels(w http.ResponseWriter, r *http.Request) {
	models := h.Models()

	result := ModelList{
		Models: make([]Model, 0, len(models)),
	}

	for _, m := range models {
		result.Models = append(result.Models, Model{
			ID: m.ID,
		})
	}

	writeJson(w, result)
}
