package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/source"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Backend is the part of the API client the pages need.
type Backend interface {
	Catalog(ctx context.Context, kind api.Kind, page int) (*source.Page[*source.AnimeSummary], error)
	Search(ctx context.Context, query string, page int) (*source.Page[*source.AnimeSummary], error)
	Info(ctx context.Context, id string) (*source.AnimeDetail, error)
	InfoForEpisode(ctx context.Context, episodeID string) (*source.AnimeDetail, error)
	Watch(ctx context.Context, episodeID string, server source.Server, category source.Category) (*source.StreamSource, error)
}

type handlers struct {
	backend Backend
}

// Router mounts every page on a chi router.
func Router(backend Backend) http.Handler {
	h := &handlers{backend: backend}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.home)
	for _, kind := range api.Kinds {
		r.Get("/"+string(kind), h.catalog(kind))
	}

	r.Get("/search", h.searchRedirect)
	r.Get("/search/{query}", h.search)
	r.Get("/anime/{id}", h.anime)
	r.Get("/watch/{episodeID}", h.watch)
	r.Get("/favorites", h.favorites)
	r.Get("/profile", h.profile)

	r.Post("/favorites/{id}", h.toggle(favorites.Favorites))
	r.Post("/watchlist/{id}", h.toggle(favorites.Watchlist))
	r.Post("/history/clear", h.clearHistory)
	r.Post("/history/{id}/delete", h.deleteHistory)
	r.Post("/continue/{id}/delete", h.deleteContinue)
	r.Post("/theme", h.toggleTheme)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, http.StatusNotFound, errors.New("page not found"))
	})

	return r
}
