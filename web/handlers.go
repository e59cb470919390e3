package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/home"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/navigation"
	"github.com/aizenverse/aizen/preference"
	"github.com/aizenverse/aizen/proxy"
	"github.com/aizenverse/aizen/query"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/watch"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// param is a decoded path parameter. chi matches against RawPath when it is set,
// and only then is the segment still escaped.
func param(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && (ref.Host == "" || ref.Host == r.Host) {
		target = ref.RequestURI()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type homePage struct {
	Landing        *home.Landing
	Continue       []history.ContinueEntry
	IntervalMillis int64
	SwipeThreshold int
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	landing := home.Load(r.Context(), h.backend)

	interval := time.Duration(viper.GetInt(key.TUICarouselInterval)) * time.Second
	if interval <= 0 {
		interval = navigation.DefaultInterval
	}

	render(w, r, http.StatusOK, "home", "Home", homePage{
		Landing:        landing,
		Continue:       history.Continue().List(),
		IntervalMillis: interval.Milliseconds(),
		SwipeThreshold: navigation.SwipeThreshold,
	})
}

type listingPage struct {
	Heading string
	Path    string
	Page    *source.Page[*source.AnimeSummary]
}

func (h *handlers) catalog(kind api.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.backend.Catalog(r.Context(), kind, pageParam(r))
		if err != nil {
			renderError(w, r, http.StatusBadGateway, err)
			return
		}

		render(w, r, http.StatusOK, "listing", kind.Title(), listingPage{
			Heading: kind.Title(),
			Path:    "/" + string(kind),
			Page:    page,
		})
	}
}

func (h *handlers) searchRedirect(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/search/"+url.PathEscape(q), http.StatusFound)
}

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(param(r, "query"))
	if q == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page, err := h.backend.Search(r.Context(), q, pageParam(r))
	if err != nil {
		renderError(w, r, http.StatusBadGateway, err)
		return
	}

	if err := query.Remember(q, 1); err != nil {
		log.Warnf("failed to remember query %q: %v", q, err)
	}

	render(w, r, http.StatusOK, "listing", "Search", listingPage{
		Heading: fmt.Sprintf("Results for %q", q),
		Path:    "/search/" + url.PathEscape(q),
		Page:    page,
	})
}

type animePage struct {
	Anime       *source.AnimeDetail
	Favorite    bool
	Watchlisted bool
	Resume      *history.ContinueEntry
}

func (h *handlers) anime(w http.ResponseWriter, r *http.Request) {
	id := param(r, "id")
	anime, err := h.backend.Info(r.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			status = http.StatusNotFound
		}
		renderError(w, r, status, err)
		return
	}

	data := animePage{
		Anime:       anime,
		Favorite:    favorites.Favorites().Has(anime.ID),
		Watchlisted: favorites.Watchlist().Has(anime.ID),
	}
	if entry, ok := lo.Find(history.Continue().List(), func(e history.ContinueEntry) bool {
		return e.AnimeID == anime.ID
	}); ok {
		data.Resume = &entry
	}

	render(w, r, http.StatusOK, "anime", anime.Title, data)
}

type watchPage struct {
	Session *watch.Session
	Video   *source.Video
	Other   source.Category
	Prev    string
	Next    string
	Watched map[string]bool

	// Upstream is the host the proxied stream is fetched from.
	Upstream string
}

func (h *handlers) watch(w http.ResponseWriter, r *http.Request) {
	var category source.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := source.ParseCategory(raw)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err)
			return
		}
		category = parsed
	}

	session, err := watch.Open(r.Context(), h.backend, param(r, "episodeID"), category)
	if err != nil {
		renderError(w, r, http.StatusBadGateway, err)
		return
	}

	data := watchPage{
		Session: session,
		Other:   session.Category.Other(),
		Prev:    session.Prev().OrEmpty(),
		Next:    session.Next().OrEmpty(),
		Watched: lo.SliceToMap(history.History().List(), func(e history.WatchEntry) (string, bool) {
			return e.ID, true
		}),
	}
	if session.Stream != nil {
		data.Video = session.Stream.Primary().OrEmpty()
	}
	if target, err := proxy.FromConfig().Decode(session.ProxiedURL); err == nil {
		if u, err := url.Parse(target.URL); err == nil {
			data.Upstream = u.Host
		}
	}

	render(w, r, http.StatusOK, "watch", session.Title(), data)
}

func (h *handlers) favorites(w http.ResponseWriter, r *http.Request) {
	animes := favorites.Resolve(r.Context(), h.backend, favorites.Favorites().List())
	render(w, r, http.StatusOK, "listing", "Favorites", listingPage{
		Heading: "Favorites",
		Path:    "/favorites",
		Page:    &source.Page[*source.AnimeSummary]{CurrentPage: 1, Results: animes},
	})
}

type profilePage struct {
	Continue  []history.ContinueEntry
	History   []history.WatchEntry
	Watchlist []*source.AnimeSummary
	Favorites int
}

func (h *handlers) profile(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "profile", "Profile", profilePage{
		Continue:  history.Continue().List(),
		History:   history.History().List(),
		Watchlist: favorites.Resolve(r.Context(), h.backend, favorites.Watchlist().List()),
		Favorites: len(favorites.Favorites().List()),
	})
}

func (h *handlers) toggle(set func() *favorites.Set) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := param(r, "id")
		set().Toggle(id)
		redirectBack(w, r, "/anime/"+url.PathEscape(id))
	}
}

func (h *handlers) clearHistory(w http.ResponseWriter, r *http.Request) {
	history.History().Clear()
	redirectBack(w, r, "/profile")
}

func (h *handlers) deleteHistory(w http.ResponseWriter, r *http.Request) {
	history.History().Remove(param(r, "id"))
	redirectBack(w, r, "/profile")
}

func (h *handlers) deleteContinue(w http.ResponseWriter, r *http.Request) {
	history.Continue().Remove(param(r, "id"))
	redirectBack(w, r, "/profile")
}

func (h *handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	preference.Toggle()
	redirectBack(w, r, "/")
}
