package services

import "github.com/moodtune-labs/moodtune/internal/core/domain"

func trackURL(id string) string {
	return "https://open.spotify.com/track/" + id
}

// fallbackCatalog is the static two-entry catalog served per emotion when
// the external catalog is unreachable or yields nothing. Preview URLs are
// intentionally absent.
var fallbackCatalog = map[domain.Emotion][]domain.TrackRecommendation{
	domain.EmotionHappy: {
		{TrackID: "60nZcImufyMA1MKQY3dcCH", TrackName: "Happy", Artist: "Pharrell Williams", ExternalURL: trackURL("60nZcImufyMA1MKQY3dcCH")},
		{TrackID: "0BxE4FqsDD1Ot4YuBXwlpU", TrackName: "Can't Stop the Feeling!", Artist: "Justin Timberlake", ExternalURL: trackURL("0BxE4FqsDD1Ot4YuBXwlpU")},
	},
	domain.EmotionSad: {
		{TrackID: "1zwMYTA5nlNjZxYrvBB2pV", TrackName: "Someone Like You", Artist: "Adele", ExternalURL: trackURL("1zwMYTA5nlNjZxYrvBB2pV")},
		{TrackID: "3JOVTQ5h8HGFnDdp4VT3MP", TrackName: "Mad World", Artist: "Gary Jules", ExternalURL: trackURL("3JOVTQ5h8HGFnDdp4VT3MP")},
	},
	domain.EmotionAngry: {
		{TrackID: "60a0Rd6pjrkxjPbaKzXjfq", TrackName: "In the End", Artist: "Linkin Park", ExternalURL: trackURL("60a0Rd6pjrkxjPbaKzXjfq")},
		{TrackID: "3zBhihYUHBmGd2bcQIobrF", TrackName: "Break Stuff", Artist: "Limp Bizkit", ExternalURL: trackURL("3zBhihYUHBmGd2bcQIobrF")},
	},
	domain.EmotionAnxious: {
		{TrackID: "2WfaOiMkCvy7F5fcp2zZ8L", TrackName: "Weightless", Artist: "Marconi Union", ExternalURL: trackURL("2WfaOiMkCvy7F5fcp2zZ8L")},
		{TrackID: "5XKIy7EzGRqEQcOJ6uZlhX", TrackName: "Clair de Lune", Artist: "Claude Debussy", ExternalURL: trackURL("5XKIy7EzGRqEQcOJ6uZlhX")},
	},
	domain.EmotionExcited: {
		{TrackID: "32OlwWuMpZ6b0aN2RZOeMS", TrackName: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", ExternalURL: trackURL("32OlwWuMpZ6b0aN2RZOeMS")},
		{TrackID: "1zB4vmk8tFRmM9UULNzbLB", TrackName: "Thunder", Artist: "Imagine Dragons", ExternalURL: trackURL("1zB4vmk8tFRmM9UULNzbLB")},
	},
	domain.EmotionCalm: {
		{TrackID: "4Gb6rBVeAHZKKp8gJyZuF3", TrackName: "River", Artist: "Leon Bridges", ExternalURL: trackURL("4Gb6rBVeAHZKKp8gJyZuF3")},
		{TrackID: "6KBeJB6Q3uOUTmmpF7AbzU", TrackName: "Holocene", Artist: "Bon Iver", ExternalURL: trackURL("6KBeJB6Q3uOUTmmpF7AbzU")},
	},
}

// FallbackTracks returns the static catalog entry for an emotion. Callers
// receive a fresh copy so stored records never alias the table.
func FallbackTracks(emotion domain.Emotion) []domain.TrackRecommendation {
	tracks, ok := fallbackCatalog[emotion]
	if !ok {
		tracks = fallbackCatalog[domain.EmotionCalm]
	}
	out := make([]domain.TrackRecommendation, len(tracks))
	copy(out, tracks)
	return out
}
