package ports

import (
	"context"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// ListFilter narrows List results. The zero value returns everything.
type ListFilter struct {
	UserID string
}

// AnalysisRepository is the capability set a result store must provide.
// Create assigns a fresh unique id and the creation timestamp. GetByID
// returns domain.ErrNotFound for unknown ids. List returns records ordered
// by creation time descending.
type AnalysisRepository interface {
	Create(ctx context.Context, data domain.NewAnalysis) (domain.AnalysisRecord, error)
	GetByID(ctx context.Context, id string) (domain.AnalysisRecord, error)
	List(ctx context.Context, filter ListFilter) ([]domain.AnalysisRecord, error)
}
