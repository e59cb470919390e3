package home

import "github.com/aizenverse/aizen/source"

const fallbackImage = "https://cdn.myanimelist.net/images/anime/1171/109222.jpg"

func fallback(id, title, year string, rating float64) *source.AnimeSummary {
	return &source.AnimeSummary{ID: id, Title: title, Image: fallbackImage, ReleaseDate: year, Rating: rating}
}

// Trending is the static trending dataset used when the API is unreachable.
func Trending() []*source.AnimeSummary {
	return []*source.AnimeSummary{
		fallback("jujutsu-kaisen", "Jujutsu Kaisen", "2020", 8.7),
		fallback("solo-leveling", "Solo Leveling", "2024", 8.9),
		fallback("chainsaw-man", "Chainsaw Man", "2022", 8.5),
	}
}

// Popular is the static popular dataset used when the API is unreachable.
func Popular() []*source.AnimeSummary {
	return []*source.AnimeSummary{
		fallback("demon-slayer", "Demon Slayer", "2019", 8.6),
		fallback("attack-on-titan", "Attack on Titan", "2013", 9.0),
	}
}
