package api

import (
	"github.com/aizenverse/aizen/source"
	"github.com/samber/lo"
)

type animeResult struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Image         string   `json:"image"`
	ReleaseDate   string   `json:"releaseDate"`
	SubOrDub      string   `json:"subOrDub"`
	EpisodeNumber int      `json:"episodeNumber"`
	Rating        float64  `json:"rating"`
	Description   string   `json:"description"`
	BannerURL     string   `json:"bannerUrl"`
	Status        string   `json:"status"`
	Type          string   `json:"type"`
	Episodes      int      `json:"episodes"`
	Genres        []string `json:"genres"`
}

func (r *animeResult) summary() *source.AnimeSummary {
	return &source.AnimeSummary{
		ID:           r.ID,
		Title:        r.Title,
		URL:          r.URL,
		Image:        r.Image,
		Banner:       r.BannerURL,
		ReleaseDate:  r.ReleaseDate,
		Rating:       r.Rating,
		Genres:       r.Genres,
		EpisodeCount: max(r.Episodes, r.EpisodeNumber),
		Status:       r.Status,
		Type:         r.Type,
		SubOrDub:     r.SubOrDub,
		Description:  r.Description,
	}
}

type searchResponse struct {
	CurrentPage int            `json:"currentPage"`
	HasNextPage bool           `json:"hasNextPage"`
	Results     []*animeResult `json:"results"`
}

func (r *searchResponse) page() *source.Page[*source.AnimeSummary] {
	return &source.Page[*source.AnimeSummary]{
		CurrentPage: r.CurrentPage,
		HasNextPage: r.HasNextPage,
		Results: lo.Map(r.Results, func(a *animeResult, _ int) *source.AnimeSummary {
			return a.summary()
		}),
	}
}

type episode struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

type animeInfo struct {
	animeResult
	OtherName     string     `json:"otherName"`
	TotalEpisodes int        `json:"totalEpisodes"`
	EpisodeList   []*episode `json:"episodes"`
}

func (r *animeInfo) detail() *source.AnimeDetail {
	summary := r.summary()
	summary.EpisodeCount = max(r.TotalEpisodes, len(r.EpisodeList))

	return &source.AnimeDetail{
		AnimeSummary:  *summary,
		OtherName:     r.OtherName,
		TotalEpisodes: r.TotalEpisodes,
		Episodes: lo.Map(r.EpisodeList, func(e *episode, _ int) *source.Episode {
			return &source.Episode{ID: e.ID, Number: e.Number, Title: e.Title, URL: e.URL}
		}),
	}
}

type streamingLinks struct {
	Headers map[string]string `json:"headers"`
	Sources []struct {
		URL     string `json:"url"`
		Quality string `json:"quality"`
		IsM3U8  bool   `json:"isM3U8"`
		Server  string `json:"server"`
	} `json:"sources"`
	Download  string `json:"download"`
	Subtitles []struct {
		Lang string `json:"lang"`
		URL  string `json:"url"`
	} `json:"subtitles"`
}

func (r *streamingLinks) stream() *source.StreamSource {
	s := &source.StreamSource{
		Headers:  r.Headers,
		Download: r.Download,
	}

	for _, v := range r.Sources {
		s.Sources = append(s.Sources, &source.Video{URL: v.URL, Quality: v.Quality, IsM3U8: v.IsM3U8, Server: v.Server})
	}

	for _, sub := range r.Subtitles {
		s.Subtitles = append(s.Subtitles, &source.Subtitle{Lang: sub.Lang, URL: sub.URL})
	}

	return s
}
