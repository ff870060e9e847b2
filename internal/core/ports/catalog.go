package ports

import (
	"context"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// TrackCatalog is the external music catalog's text-search surface.
// market is a two-letter region code biasing results; limit caps the number
// of items returned for one query.
type TrackCatalog interface {
	SearchTracks(ctx context.Context, query string, market string, limit int) ([]domain.TrackRecommendation, error)
}
