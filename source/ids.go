package source

import (
	"regexp"
	"strings"
)

const episodeMarker = "$episode$"

var embedIDPattern = regexp.MustCompile(`(\d{5})$`)

// AnimeIDFromEpisode derives the parent anime id from an episode id.
//
//	"one-piece-100$episode$2142" -> "one-piece-100"
//	"one-piece-100-2142"         -> "one-piece-100"
//	"standalone"                 -> "standalone"
func AnimeIDFromEpisode(episodeID string) string {
	if before, _, found := strings.Cut(episodeID, episodeMarker); found {
		return before
	}

	parts := strings.Split(episodeID, "-")
	if len(parts) >= 2 {
		return strings.Join(parts[:len(parts)-1], "-")
	}
	return episodeID
}

// EmbedID is the identifier the embeddable player expects: the trailing five digits
// of the episode id. It is empty when the id does not end in five digits.
func EmbedID(episodeID string) string {
	if m := embedIDPattern.FindStringSubmatch(episodeID); m != nil {
		return m[1]
	}
	return ""
}
