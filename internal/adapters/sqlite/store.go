// Package sqlite provides a durable, single-file implementation of the
// result store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // driver registration

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
)

// Store implements the result store on SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// compile-time interface assertion
var _ ports.AnalysisRepository = (*Store)(nil)

// NewStore opens the database file and runs the schema migration.
func NewStore(storagePath string) (*Store, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return store, nil
}

// Close ensures the DB connection is closed gracefully.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS emotion_analyses (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		input_text TEXT NOT NULL,
		input_type TEXT NOT NULL,
		detected_emotion TEXT NOT NULL,
		confidence REAL NOT NULL,
		intensity TEXT NOT NULL,
		quote TEXT,
		music_recommendation TEXT,
		spotify_tracks TEXT,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_emotion_analyses_created_at
		ON emotion_analyses (created_at DESC);
	`
	if _, err := s.db.Exec(query); err != nil {
		return err
	}
	return nil
}

// Create assigns id and timestamp and inserts one row. The track list is
// stored as a JSON string so it round-trips losslessly.
func (s *Store) Create(ctx context.Context, data domain.NewAnalysis) (domain.AnalysisRecord, error) {
	record := domain.AnalysisRecord{
		ID:                   uuid.NewString(),
		UserID:               data.UserID,
		InputText:            data.InputText,
		InputType:            data.InputType,
		ClassificationResult: data.Classification,
		Tracks:               data.Tracks,
		CreatedAt:            s.now().UTC(),
	}
	if record.Tracks == nil {
		record.Tracks = []domain.TrackRecommendation{}
	}

	tracksJSON, err := json.Marshal(record.Tracks)
	if err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("failed to encode tracks: %w", err)
	}

	query := `
		INSERT INTO emotion_analyses (
			id, user_id, input_text, input_type, detected_emotion,
			confidence, intensity, quote, music_recommendation,
			spotify_tracks, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		nullIfEmpty(record.UserID),
		record.InputText,
		string(record.InputType),
		string(record.Emotion),
		record.Confidence,
		string(record.Intensity),
		record.Quote,
		record.StyleSuggestion,
		string(tracksJSON),
		record.CreatedAt,
	); err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("failed to save analysis: %w", err)
	}

	return record, nil
}

// GetByID loads one record, or domain.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (domain.AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" FROM emotion_analyses WHERE id = ?", id)
	record, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.AnalysisRecord{}, domain.ErrNotFound
		}
		return domain.AnalysisRecord{}, fmt.Errorf("failed to load analysis: %w", err)
	}
	return record, nil
}

// List returns matching records newest first.
func (s *Store) List(ctx context.Context, filter ports.ListFilter) ([]domain.AnalysisRecord, error) {
	query := selectColumns + " FROM emotion_analyses"
	args := []any{}
	if filter.UserID != "" {
		query += " WHERE user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY created_at DESC, rowid DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []domain.AnalysisRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return records, nil
}

const selectColumns = `SELECT id, user_id, input_text, input_type, detected_emotion,
	confidence, intensity, quote, music_recommendation, spotify_tracks, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.AnalysisRecord, error) {
	var record domain.AnalysisRecord
	var userID, quote, style, tracksJSON sql.NullString
	var inputType, emotion, intensity string

	if err := row.Scan(
		&record.ID,
		&userID,
		&record.InputText,
		&inputType,
		&emotion,
		&record.Confidence,
		&intensity,
		&quote,
		&style,
		&tracksJSON,
		&record.CreatedAt,
	); err != nil {
		return domain.AnalysisRecord{}, err
	}

	record.UserID = userID.String
	record.InputType = domain.InputType(inputType)
	record.Emotion = domain.Emotion(emotion)
	record.Intensity = domain.Intensity(intensity)
	record.Quote = quote.String
	record.StyleSuggestion = style.String

	record.Tracks = []domain.TrackRecommendation{}
	if tracksJSON.Valid && tracksJSON.String != "" {
		if err := json.Unmarshal([]byte(tracksJSON.String), &record.Tracks); err != nil {
			return domain.AnalysisRecord{}, fmt.Errorf("failed to decode tracks: %w", err)
		}
	}
	return record, nil
}

func nullIfEmpty(v string) any {
	if v == "" {
		return nil
	}
	return v
}
