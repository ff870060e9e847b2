// Package locale maps caller language hints onto the canonical codes and
// catalog markets the recommendation pipeline understands.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // en, the default
	language.German,  // de
	language.Persian, // fa
}

var matcher = language.NewMatcher(supported)

// Normalize resolves a caller-supplied language hint ("de", "de-AT",
// "fa-IR") to one of the supported base codes. Unrecognized hints come back
// lowercased so table lookups fall through to their generic defaults; an
// empty hint stays empty.
func Normalize(code string) string {
	trimmed := strings.ToLower(strings.TrimSpace(code))
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	if _, index, conf := matcher.Match(tag); conf >= language.High {
		base, _ := supported[index].Base()
		return base.String()
	}
	return trimmed
}

// Market selects the catalog region code biasing search results for a
// language hint.
func Market(code string) string {
	switch Normalize(code) {
	case "fa":
		return "IR"
	case "de":
		return "DE"
	default:
		return "US"
	}
}
