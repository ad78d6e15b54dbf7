package http

import (
	"net/http"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/metrics"
	"skyledger-backend/internal/service"
)

type RentalHandler struct {
	rentalService service.RentalService
}

func NewRentalHandler(rentalService service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

func (h *RentalHandler) SetRate(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	var rate domain.RentalRate
	if !decodeBody(w, r, &rate) {
		return
	}
	rate.AircraftID = aircraftID

	if err := h.rentalService.SetRate(r.Context(), userIDFromContext(r.Context()), &rate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rate)
}

func (h *RentalHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	rates, err := h.rentalService.ListRates(r.Context(), userIDFromContext(r.Context()), aircraftID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}

// CurrentRate returns the rate in effect on ?as_of=yyyy-mm-dd, today when
// omitted. A 200 with null body means no rate is configured.
func (h *RentalHandler) CurrentRate(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	asOf := r.URL.Query().Get("as_of")
	if asOf == "" {
		asOf = metrics.FormatDate(time.Now().UTC())
	} else if _, err := metrics.ParseDate(asOf); err != nil {
		writeBadRequest(w, "as_of must be yyyy-mm-dd")
		return
	}

	rate, err := h.rentalService.CurrentRate(r.Context(), userIDFromContext(r.Context()), aircraftID, asOf)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RentalHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	var log domain.RentalLog
	if !decodeBody(w, r, &log) {
		return
	}
	log.AircraftID = aircraftID

	if err := h.rentalService.LogRental(r.Context(), userIDFromContext(r.Context()), &log); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (h *RentalHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid log id")
		return
	}

	log, err := h.rentalService.GetLog(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (h *RentalHandler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid log id")
		return
	}

	var log domain.RentalLog
	if !decodeBody(w, r, &log) {
		return
	}
	log.ID = id

	if err := h.rentalService.UpdateLog(r.Context(), userIDFromContext(r.Context()), &log); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (h *RentalHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid log id")
		return
	}

	if err := h.rentalService.DeleteLog(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *RentalHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	logs, err := h.rentalService.ListLogs(r.Context(), userIDFromContext(r.Context()), aircraftID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
