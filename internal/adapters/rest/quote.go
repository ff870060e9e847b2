package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

type quoteResponse struct {
	Emotion domain.Emotion `json:"emotion"`
	Quote   string         `json:"quote"`
}

// Quote handles GET /api/quote/{emotion}. Unknown labels resolve to CALM.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	emotion, quote := h.svc.MotivationalQuote(r.Context(), chi.URLParam(r, "emotion"))
	writeJSON(w, http.StatusOK, quoteResponse{Emotion: emotion, Quote: quote})
}
