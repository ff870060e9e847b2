package spotify

import (
	"strings"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

// spotifyTrack is the wire shape of one search result item.
type spotifyTrack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	PreviewURL *string `json:"preview_url"`
}

type searchResponse struct {
	Tracks struct {
		Items []spotifyTrack `json:"items"`
	} `json:"tracks"`
}

// toDomain flattens a wire track into a recommendation; contributing
// artists are joined into one display string.
func (st spotifyTrack) toDomain() domain.TrackRecommendation {
	names := make([]string, 0, len(st.Artists))
	for _, artist := range st.Artists {
		names = append(names, artist.Name)
	}
	return domain.TrackRecommendation{
		TrackID:     st.ID,
		TrackName:   st.Name,
		Artist:      strings.Join(names, ", "),
		ExternalURL: st.ExternalURLs.Spotify,
		PreviewURL:  st.PreviewURL,
	}
}
