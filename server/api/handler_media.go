package api

import (
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/storage"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleMediaUpload(w http.ResponseWriter, r *http.Request) {
	s, err := h.Storage(r.FormValue("storage"))

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	file, err := readFile(r)

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	options := &storage.UploadOptions{
		Folder: r.FormValue("folder"),
		ID:     r.FormValue("id"),
	}

	if val := r.FormValue("tags"); val != "" {
		options.Tags = strings.Split(val, ",")
	}

	asset, err := s.Upload(r.Context(), *file, options)

	if err != nil {
		writeError(w, err)
		return
	}

	writeJson(w, Asset{
		ID: asset.ID,

		URL:       asset.URL,
		SecureURL: asset.SecureURL,

		ResourceType: asset.ResourceType,
		Format:       asset.Format,

		Bytes:  asset.Bytes,
		Width:  asset.Width,
		Height: asset.Height,
	})
}

func (h *Handler) handleMediaDelete(w http.ResponseWriter, r *http.Request) {
	s, err := h.Storage(r.URL.Query().Get("storage"))

	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, err)
		return
	}

	options := &storage.DeleteOptions{
		ResourceType: r.URL.Query().Get("resource_type"),
	}

	if err := s.Delete(r.Context(), chi.URLParam(r, "id"), options); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func readFile(r *http.Request) (*provider.File, error) {
	if file, header, err := r.FormFile("file"); err == nil {
		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		contentType := header.Header.Get("Content-Type")

		if mediatype, _, err := mime.ParseMediaType(contentType); err == nil {
			contentType = mediatype
		}

		return &provider.File{
			Name: header.Filename,

			Content:     data,
			ContentType: contentType,
		}, nil
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Content:     data,
		ContentType: r.Header.Get("Content-Type"),
	}, nil
}
