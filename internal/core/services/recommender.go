package services

import (
	"context"
	"log/slog"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
	"github.com/moodtune-labs/moodtune/internal/locale"
)

const (
	// perQueryLimit is how many results each catalog query asks for.
	perQueryLimit = 5
	// maxUniqueTracks bounds accumulation across queries so a run never
	// collects more candidates than it could ever return twice over.
	maxUniqueTracks = 10
	// maxTracks caps the returned recommendation list.
	maxTracks = 5
)

// Recommender turns an emotion into at most maxTracks catalog
// recommendations. Catalog failures and empty merges degrade to the static
// per-emotion catalog, so Recommend never fails.
type Recommender struct {
	catalog ports.TrackCatalog
	logger  *slog.Logger
}

// NewRecommender constructs a Recommender. A nil catalog is allowed and
// routes every request to the static fallback catalog.
func NewRecommender(catalog ports.TrackCatalog, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recommender{catalog: catalog, logger: logger}
}

// Recommend issues the diversified query list for the emotion against the
// catalog, merges results with trackId dedup, and returns the first
// maxTracks unique tracks. Any catalog error or an empty merge yields the
// static fallback list instead.
func (r *Recommender) Recommend(ctx context.Context, emotion domain.Emotion, language string) []domain.TrackRecommendation {
	if r.catalog == nil {
		return FallbackTracks(emotion)
	}

	market := locale.Market(language)
	merged := make([]domain.TrackRecommendation, 0, maxUniqueTracks)
	seen := make(map[string]struct{}, maxUniqueTracks)

	for _, query := range searchQueries(emotion, language) {
		if len(merged) >= maxUniqueTracks {
			break
		}
		tracks, err := r.catalog.SearchTracks(ctx, query, market, perQueryLimit)
		if err != nil {
			r.logger.Warn("catalog search failed, using static catalog",
				"emotion", emotion, "market", market, "error", err)
			return FallbackTracks(emotion)
		}
		for _, track := range tracks {
			if _, dup := seen[track.TrackID]; dup {
				continue
			}
			if len(merged) >= maxUniqueTracks {
				break
			}
			seen[track.TrackID] = struct{}{}
			merged = append(merged, track)
		}
	}

	if len(merged) == 0 {
		return FallbackTracks(emotion)
	}
	if len(merged) > maxTracks {
		merged = merged[:maxTracks]
	}
	return merged
}
