package api

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nuagehq/mediagate/pkg/provider"
)

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	lister, err := h.VoiceLister(r.FormValue("model"))

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	voices, err := lister.ListVoices(r.Context())

	if err != nil {
		writeError(w, err)
		return
	}

	result := VoiceList{
		Voices: make([]Voice, 0, len(voices)),
	}

	for _, v := range voices {
		result.Voices = append(result.Voices, Voice{
			ID:   v.ID,
			Name: v.Name,

			Description: v.Description,
			Labels:      v.Labels,
		})
	}

	writeJson(w, result)
}

func (h *Handler) handleVoiceClone(w http.ResponseWriter, r *http.Request) {
	cloner, err := h.VoiceCloner(r.FormValue("model"))

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	name := r.FormValue("name")

	options := &provider.CloneOptions{
		Description: r.FormValue("description"),
	}

	if val := r.FormValue("labels"); val != "" {
		if err := json.Unmarshal([]byte(val), &options.Labels); err != nil {
			writeErrorCode(w, http.StatusBadRequest, err)
			return
		}
	}

	if r.MultipartForm == nil {
		writeErrorCode(w, http.StatusBadRequest, nil)
		return
	}

	var samples []provider.File

	for _, header := range r.MultipartForm.File["files"] {
		file, err := header.Open()

		if err != nil {
			writeErrorCode(w, http.StatusBadRequest, err)
			return
		}

		data, err := io.ReadAll(file)
		file.Close()

		if err != nil {
			writeErrorCode(w, http.StatusBadRequest, err)
			return
		}

		samples = append(samples, provider.File{
			Name: header.Filename,

			Content:     data,
			ContentType: header.Header.Get("Content-Type"),
		})
	}

	voice, err := cloner.CloneVoice(r.Context(), name, samples, options)

	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, Voice{
		ID:   voice.ID,
		Name: voice.Name,

		Description: voice.Description,
		Labels:      voice.Labels,
	})
}

func (h *Handler) handleVoiceDesign(w http.ResponseWriter, r *http.Request) {
	var req VoiceDesignRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	designer, err := h.VoiceDesigner("")

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	options := &provider.DesignOptions{
		Text: req.Text,
	}

	previews, err := designer.DesignVoice(r.Context(), req.Description, options)

	if err != nil {
		writeError(w, err)
		return
	}

	result := VoicePreviewList{
		Previews: make([]VoicePreview, 0, len(previews)),
	}

	for _, p := range previews {
		result.Previews = append(result.Previews, VoicePreview{
			ID: p.ID,

			Audio:       base64.StdEncoding.EncodeToString(p.Content),
			ContentType: p.ContentType,
		})
	}

	writeJson(w, result)
}
