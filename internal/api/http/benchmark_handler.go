package http

import (
	"net/http"
	"time"

	"skyledger-backend/internal/metrics"
	"skyledger-backend/internal/service"
)

type BenchmarkHandler struct {
	benchmarkService service.BenchmarkService
}

func NewBenchmarkHandler(benchmarkService service.BenchmarkService) *BenchmarkHandler {
	return &BenchmarkHandler{benchmarkService: benchmarkService}
}

func (h *BenchmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	benchmarks, err := h.benchmarkService.ListBenchmarks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, benchmarks)
}

// Current resolves the benchmark in effect for a type tag, e.g.
// GET /api/v1/benchmarks/C172/current?as_of=2025-03-01. Returns null when the
// type has no benchmark data.
func (h *BenchmarkHandler) Current(w http.ResponseWriter, r *http.Request) {
	typeTag := muxVar(r, "type_tag")
	if typeTag == "" {
		writeBadRequest(w, "type tag is required")
		return
	}

	asOf := r.URL.Query().Get("as_of")
	if asOf == "" {
		asOf = metrics.FormatDate(time.Now().UTC())
	} else if _, err := metrics.ParseDate(asOf); err != nil {
		writeBadRequest(w, "as_of must be yyyy-mm-dd")
		return
	}

	benchmark, err := h.benchmarkService.CurrentBenchmark(r.Context(), typeTag, asOf)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, benchmark)
}
