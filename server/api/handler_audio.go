package api

import (
	"encoding/json"
	"net/http"

	"github.com/nuagehq/mediagate/pkg/provider"
)

func (h *Handler) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	synthesizer, err := h.Synthesizer(req.Model)

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	options := &provider.SynthesizeOptions{
		Voice: req.Voice,
		Speed: req.Speed,

		Format: req.Format,
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), req.Input, options)

	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", synthesis.ContentType)
	w.Write(synthesis.Content)
}

func (h *Handler) handleDialog(w http.ResponseWriter, r *http.Request) {
	var req DialogRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	dialog, err := h.Dialog(req.Model)

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	turns := make([]provider.DialogTurn, 0, len(req.Turns))

	for _, t := range req.Turns {
		turns = append(turns, provider.DialogTurn{
			Voice: t.Voice,
			Text:  t.Text,
		})
	}

	options := &provider.DialogOptions{
		Format: req.Format,
	}

	synthesis, err := dialog.SynthesizeDialog(r.Context(), turns, options)

	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", synthesis.ContentType)
	w.Write(synthesis.Content)
}

func (h *Handler) handleMusic(w http.ResponseWriter, r *http.Request) {
	var req MusicRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	composer, err := h.Composer(req.Model)

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	options := &provider.ComposeOptions{
		Duration: req.Duration,

		Format: req.Format,
	}

	composition, err := composer.Compose(r.Context(), req.Prompt, options)

	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", composition.ContentType)
	w.Write(composition.Content)
}

func (h *Handler) handleSoundEffects(w http.ResponseWriter, r *http.Request) {
	var req SoundRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	generator, err := h.SoundGenerator(req.Model)

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	options := &provider.SoundOptions{
		Duration: req.Duration,
		Loop:     req.Loop,

		Format: req.Format,
	}

	sound, err := generator.GenerateSound(r.Context(), req.Prompt, options)

	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", sound.ContentType)
	w.Write(sound.Content)
}
