package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/service"
)

type AircraftHandler struct {
	aircraftService service.AircraftService
}

func NewAircraftHandler(aircraftService service.AircraftService) *AircraftHandler {
	return &AircraftHandler{aircraftService: aircraftService}
}

func muxVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// pathID parses a numeric path variable set by the router.
func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *AircraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var aircraft domain.Aircraft
	if !decodeBody(w, r, &aircraft) {
		return
	}

	if err := h.aircraftService.CreateAircraft(r.Context(), userIDFromContext(r.Context()), &aircraft); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, aircraft)
}

func (h *AircraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	aircraft, err := h.aircraftService.GetAircraft(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aircraft)
}

func (h *AircraftHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	var aircraft domain.Aircraft
	if !decodeBody(w, r, &aircraft) {
		return
	}
	aircraft.ID = id

	if err := h.aircraftService.UpdateAircraft(r.Context(), userIDFromContext(r.Context()), &aircraft); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aircraft)
}

func (h *AircraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	if err := h.aircraftService.DeleteAircraft(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AircraftHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.aircraftService.ListMyAircraft(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
