// Package memory provides the in-process implementation of the result
// store. Records live for the process lifetime and are safe for concurrent
// use.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
)

// Store keeps records in a map for lookup and an insertion-ordered slice
// for listing. Ids come from a collision-resistant source, so concurrent
// creates never contend over id assignment.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]domain.AnalysisRecord
	ordered []domain.AnalysisRecord
	now     func() time.Time
}

// compile-time interface assertion
var _ ports.AnalysisRepository = (*Store)(nil)

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]domain.AnalysisRecord),
		now:  time.Now,
	}
}

// Create assigns a fresh id and timestamp, stores the record, and returns
// it. The stored track list is a copy, never an alias of caller data.
func (s *Store) Create(ctx context.Context, data domain.NewAnalysis) (domain.AnalysisRecord, error) {
	record := domain.AnalysisRecord{
		ID:                   uuid.NewString(),
		UserID:               data.UserID,
		InputText:            data.InputText,
		InputType:            data.InputType,
		ClassificationResult: data.Classification,
		Tracks:               cloneTracks(data.Tracks),
		CreatedAt:            s.now().UTC(),
	}

	s.mu.Lock()
	s.byID[record.ID] = record
	s.ordered = append(s.ordered, record)
	s.mu.Unlock()

	record.Tracks = cloneTracks(record.Tracks)
	return record, nil
}

// GetByID returns a copy of one record, or domain.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (domain.AnalysisRecord, error) {
	s.mu.RLock()
	record, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return domain.AnalysisRecord{}, domain.ErrNotFound
	}
	record.Tracks = cloneTracks(record.Tracks)
	return record, nil
}

// List returns copies of all matching records, newest first. Records
// created at the same instant keep reverse insertion order.
func (s *Store) List(ctx context.Context, filter ports.ListFilter) ([]domain.AnalysisRecord, error) {
	s.mu.RLock()
	out := make([]domain.AnalysisRecord, 0, len(s.ordered))
	for i := len(s.ordered) - 1; i >= 0; i-- {
		record := s.ordered[i]
		if filter.UserID != "" && record.UserID != filter.UserID {
			continue
		}
		record.Tracks = cloneTracks(record.Tracks)
		out = append(out, record)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneTracks(tracks []domain.TrackRecommendation) []domain.TrackRecommendation {
	out := make([]domain.TrackRecommendation, len(tracks))
	copy(out, tracks)
	return out
}
