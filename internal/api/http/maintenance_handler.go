package http

import (
	"net/http"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/service"
)

type MaintenanceHandler struct {
	maintService service.MaintenanceService
}

func NewMaintenanceHandler(maintService service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintService: maintService}
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	var entry domain.MaintenanceEntry
	if !decodeBody(w, r, &entry) {
		return
	}
	entry.AircraftID = aircraftID

	if err := h.maintService.AddEntry(r.Context(), userIDFromContext(r.Context()), &entry); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid entry id")
		return
	}

	entry, err := h.maintService.GetEntry(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid entry id")
		return
	}

	var entry domain.MaintenanceEntry
	if !decodeBody(w, r, &entry) {
		return
	}
	entry.ID = id

	if err := h.maintService.UpdateEntry(r.Context(), userIDFromContext(r.Context()), &entry); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid entry id")
		return
	}

	if err := h.maintService.DeleteEntry(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	entries, err := h.maintService.ListEntries(r.Context(), userIDFromContext(r.Context()), aircraftID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type attachReceiptRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type attachReceiptResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// AttachReceipt reserves a storage key for a receipt image and returns the
// URL the client uploads the bytes to.
func (h *MaintenanceHandler) AttachReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid entry id")
		return
	}

	var req attachReceiptRequest
	if !decodeBody(w, r, &req) {
		return
	}

	key, uploadURL, err := h.maintService.AttachReceipt(r.Context(), userIDFromContext(r.Context()), id, req.Filename, req.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attachReceiptResponse{Key: key, UploadURL: uploadURL})
}

func (h *MaintenanceHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid entry id")
		return
	}

	url, err := h.maintService.ReceiptURL(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"download_url": url})
}
