package services

import (
	"fmt"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/locale"
)

// searchQueries builds the diversified query list for one recommendation
// pass: three fixed emotion queries, plus three locale-flavored ones when a
// language hint is present.
func searchQueries(emotion domain.Emotion, language string) []string {
	queries := append([]string(nil), emotionQueries(emotion)...)
	return append(queries, localeQueries(emotion, language)...)
}

func emotionQueries(emotion domain.Emotion) []string {
	switch emotion {
	case domain.EmotionHappy:
		return []string{"happy upbeat feel good", "joyful celebration dance", "positive energy motivation"}
	case domain.EmotionSad:
		return []string{"sad melancholy emotional", "heartbreak acoustic ballad", "melancholic indie folk"}
	case domain.EmotionAngry:
		return []string{"aggressive rock intense", "angry metal hardcore", "rage punk alternative"}
	case domain.EmotionAnxious:
		return []string{"calm relaxing peaceful", "anxiety relief meditation", "soothing ambient instrumental"}
	case domain.EmotionExcited:
		return []string{"energetic pump up motivation", "party celebration high energy", "workout intense beat"}
	default:
		return []string{"chill relaxing ambient", "peaceful meditation zen", "soft acoustic tranquil"}
	}
}

// emotionKeywords holds the hand-curated per-locale emotion keywords used to
// flavor locale-specific queries. This is configuration data; extending
// locale coverage means extending this table.
var emotionKeywords = map[domain.Emotion]map[string]string{
	domain.EmotionHappy:   {"fa": "شاد", "de": "fröhlich", "en": "happy"},
	domain.EmotionSad:     {"fa": "غمگین", "de": "traurig", "en": "sad"},
	domain.EmotionAngry:   {"fa": "عصبانی", "de": "wütend", "en": "angry"},
	domain.EmotionAnxious: {"fa": "آرام", "de": "entspannend", "en": "calm"},
	domain.EmotionExcited: {"fa": "هیجان‌زده", "de": "aufgeregt", "en": "excited"},
	domain.EmotionCalm:    {"fa": "آرام", "de": "ruhig", "en": "calm"},
}

func localizedKeyword(emotion domain.Emotion, lang string) string {
	if keyword, ok := emotionKeywords[emotion][lang]; ok {
		return keyword
	}
	return "music"
}

func localeQueries(emotion domain.Emotion, language string) []string {
	lang := locale.Normalize(language)
	if lang == "" {
		return nil
	}
	keyword := localizedKeyword(emotion, lang)
	switch lang {
	case "fa":
		return []string{
			fmt.Sprintf("persian %s traditional", keyword),
			fmt.Sprintf("iranian %s classical", keyword),
			fmt.Sprintf("farsi pop %s", keyword),
		}
	case "de":
		return []string{
			fmt.Sprintf("german %s musik", keyword),
			fmt.Sprintf("deutsche %s songs", keyword),
			fmt.Sprintf("german pop %s", keyword),
		}
	default:
		return []string{
			fmt.Sprintf("english %s popular", keyword),
			fmt.Sprintf("american %s hits", keyword),
			fmt.Sprintf("british %s indie", keyword),
		}
	}
}
