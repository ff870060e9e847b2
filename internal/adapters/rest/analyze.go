package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// analyzeRequest defines what the client sends us.
type analyzeRequest struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Language string `json:"language,omitempty"`
	UserID   string `json:"userId,omitempty"`
}

type analyzeResponse struct {
	ID                  string                       `json:"id"`
	Emotion             domain.Emotion               `json:"emotion"`
	Confidence          float64                      `json:"confidence"`
	Intensity           domain.Intensity             `json:"intensity"`
	Quote               string                       `json:"quote"`
	MusicRecommendation string                       `json:"musicRecommendation"`
	SpotifyTracks       []domain.TrackRecommendation `json:"spotifyTracks"`
	Timestamp           time.Time                    `json:"timestamp"`
}

// Analyze handles POST /api/analyze.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", "")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to analyze emotion", "invalid request body")
		return
	}

	record, err := h.svc.Analyze(r.Context(), domain.AnalysisRequest{
		Text:     req.Text,
		Type:     domain.InputType(req.Type),
		Language: req.Language,
		UserID:   req.UserID,
	})
	if err != nil {
		h.respondError(w, err, "Failed to analyze emotion")
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		ID:                  record.ID,
		Emotion:             record.Emotion,
		Confidence:          record.Confidence,
		Intensity:           record.Intensity,
		Quote:               record.Quote,
		MusicRecommendation: record.StyleSuggestion,
		SpotifyTracks:       record.Tracks,
		Timestamp:           record.CreatedAt,
	})
}
