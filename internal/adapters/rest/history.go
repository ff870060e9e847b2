package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// History handles GET /api/history. An optional userId query parameter
// narrows the listing to one user's records.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.History(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		h.respondError(w, err, "Failed to fetch history")
		return
	}
	if records == nil {
		records = []domain.AnalysisRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// GetAnalysis handles GET /api/analysis/{id}.
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "Failed to fetch analysis")
		return
	}
	writeJSON(w, http.StatusOK, record)
}
