package domain

// TrackRecommendation is one catalog entry suggested for an emotion.
// Identity is TrackID; a recommendation list never repeats it.
type TrackRecommendation struct {
	TrackID     string  `json:"trackId"`
	TrackName   string  `json:"trackName"`
	Artist      string  `json:"artist"`
	ExternalURL string  `json:"spotifyUrl"`
	PreviewURL  *string `json:"previewUrl"`
}
