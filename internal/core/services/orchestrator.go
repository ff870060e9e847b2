package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
)

// Orchestrator composes the classifier, recommender, and result store into
// the single analyze operation. It is the only writer of new records.
type Orchestrator struct {
	classifier  *Classifier
	recommender *Recommender
	repo        ports.AnalysisRepository
	logger      *slog.Logger
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(classifier *Classifier, recommender *Recommender, repo ports.AnalysisRepository, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		classifier:  classifier,
		recommender: recommender,
		repo:        repo,
		logger:      logger,
	}
}

// Analyze validates the request, classifies the text, attaches track
// recommendations, and persists the composite result. A recommendation
// failure never blocks record creation; only validation and store failures
// reach the caller.
func (o *Orchestrator) Analyze(ctx context.Context, req domain.AnalysisRequest) (domain.AnalysisRecord, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.AnalysisRecord{}, &domain.ValidationError{Field: "text", Message: "text is required"}
	}
	if !req.Type.Valid() {
		return domain.AnalysisRecord{}, &domain.ValidationError{Field: "type", Message: `type must be "text" or "voice"`}
	}

	classification := o.classifier.Classify(ctx, req.Text, req.Language)

	tracks := o.recommender.Recommend(ctx, classification.Emotion, req.Language)
	if tracks == nil {
		tracks = []domain.TrackRecommendation{}
	}

	record, err := o.repo.Create(ctx, domain.NewAnalysis{
		UserID:         req.UserID,
		InputText:      req.Text,
		InputType:      req.Type,
		Classification: classification,
		Tracks:         tracks,
	})
	if err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("service: failed to save analysis: %w", err)
	}

	o.logger.Info("analysis created", "id", record.ID, "emotion", record.Emotion, "tracks", len(record.Tracks))
	return record, nil
}

// History returns stored records newest first, optionally filtered by user.
func (o *Orchestrator) History(ctx context.Context, userID string) ([]domain.AnalysisRecord, error) {
	records, err := o.repo.List(ctx, ports.ListFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list analyses: %w", err)
	}
	return records, nil
}

// Get returns one stored record by id.
func (o *Orchestrator) Get(ctx context.Context, id string) (domain.AnalysisRecord, error) {
	if strings.TrimSpace(id) == "" {
		return domain.AnalysisRecord{}, &domain.ValidationError{Field: "id", Message: "id is required"}
	}
	record, err := o.repo.GetByID(ctx, id)
	if err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("service: failed to load analysis: %w", err)
	}
	return record, nil
}

// MotivationalQuote returns a supportive quote for a raw emotion label.
// Unknown labels resolve to CALM before the lookup.
func (o *Orchestrator) MotivationalQuote(ctx context.Context, rawEmotion string) (domain.Emotion, string) {
	emotion := domain.ParseEmotion(rawEmotion)
	return emotion, o.classifier.MotivationalQuote(ctx, emotion)
}
