package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"skyledger-backend/internal/storage"
)

// ReceiptHandler serves the upload and download URLs handed out by the local
// storage backend. The URLs stand in for presigned cloud storage links, so
// these routes take no Authorization header; possession of the key is the
// credential.
type ReceiptHandler struct {
	store    storage.Interface
	maxBytes int64
}

func NewReceiptHandler(store storage.Interface, maxBytes int64) *ReceiptHandler {
	return &ReceiptHandler{store: store, maxBytes: maxBytes}
}

// Upload handles the PUT leg of a receipt attachment.
func (h *ReceiptHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "missing key parameter")
		return
	}

	contentType := r.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "application/pdf":
	default:
		writeBadRequest(w, "unsupported content type")
		return
	}

	body := r.Body
	if h.maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	if err := h.store.SaveFile(key, body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "receipt exceeds the upload size limit"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save file"})
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ReceiptHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "missing key parameter")
		return
	}

	file, err := h.store.ReadFile(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "file not found"})
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=300")
	io.Copy(w, file)
}
