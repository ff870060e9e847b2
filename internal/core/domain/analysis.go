package domain

import "time"

// InputType says how the analyzed text was produced by the caller.
type InputType string

const (
	InputTypeText  InputType = "text"
	InputTypeVoice InputType = "voice"
)

// Valid reports whether t is one of the accepted input types.
func (t InputType) Valid() bool {
	return t == InputTypeText || t == InputTypeVoice
}

// AnalysisRequest is the transient input to one analyze operation. It is
// never persisted as-is.
type AnalysisRequest struct {
	Text     string
	Type     InputType
	Language string
	UserID   string
}

// NewAnalysis carries everything the result store needs to create a record.
// The store assigns ID and CreatedAt.
type NewAnalysis struct {
	UserID         string
	InputText      string
	InputType      InputType
	Classification ClassificationResult
	Tracks         []TrackRecommendation
}

// AnalysisRecord is the persisted, immutable result of one
// classify+recommend operation. ID and CreatedAt are assigned once by the
// store; callers receive copies.
type AnalysisRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	InputText string    `json:"inputText"`
	InputType InputType `json:"inputType"`
	ClassificationResult
	Tracks    []TrackRecommendation `json:"spotifyTracks"`
	CreatedAt time.Time             `json:"createdAt"`
}
