package http

import (
	"net/http"
	"strconv"
	"time"

	"skyledger-backend/internal/metrics"
	"skyledger-backend/internal/service"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseRange reads the period query parameters:
//
//	?period=month&year=2025&month=3
//	?period=year&year=2025
//	?period=all (default)
//
// Month and year default to the current UTC month when omitted.
func parseRange(r *http.Request) (metrics.Range, bool) {
	q := r.URL.Query()
	now := time.Now().UTC()

	year := now.Year()
	if raw := q.Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1900 || y > 3000 {
			return metrics.Range{}, false
		}
		year = y
	}

	switch q.Get("period") {
	case "", "all":
		return metrics.AllTime(), true
	case "year":
		return metrics.Year(year), true
	case "month":
		month := int(now.Month())
		if raw := q.Get("month"); raw != "" {
			m, err := strconv.Atoi(raw)
			if err != nil || m < 1 || m > 12 {
				return metrics.Range{}, false
			}
			month = m
		}
		return metrics.Month(year, time.Month(month)), true
	default:
		return metrics.Range{}, false
	}
}

func (h *ReportHandler) CostSummary(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}
	rng, ok := parseRange(r)
	if !ok {
		writeBadRequest(w, "invalid period parameters")
		return
	}

	report, err := h.reportService.CostSummary(r.Context(), userIDFromContext(r.Context()), aircraftID, rng)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) RentalSummary(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}
	rng, ok := parseRange(r)
	if !ok {
		writeBadRequest(w, "invalid period parameters")
		return
	}

	summary, err := h.reportService.RentalSummary(r.Context(), userIDFromContext(r.Context()), aircraftID, rng)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) MonthlySeries(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1900 || y > 3000 {
			writeBadRequest(w, "invalid year")
			return
		}
		year = y
	}

	report, err := h.reportService.MonthlySeries(r.Context(), userIDFromContext(r.Context()), aircraftID, year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
