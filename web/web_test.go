package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/preference"
	"github.com/aizenverse/aizen/source"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.PlayerServer, string(source.VidCloud))
	viper.Set(key.PlayerCategory, string(source.Sub))
	viper.Set(key.PlayerEmbedURL, constant.DefaultEmbedURL)
	viper.Set(key.ProxyURL, constant.DefaultProxyURL)
	viper.Set(key.HistorySaveOnWatch, true)
	viper.Set(key.HistoryMax, 50)
	viper.Set(key.HistoryContinueMax, 20)
}

type fakeBackend struct {
	catalogErr error

	mu        sync.Mutex
	lastKind  api.Kind
	lastPage  int
	lastQuery string
}

func frieren() *source.AnimeDetail {
	return &source.AnimeDetail{
		AnimeSummary: source.AnimeSummary{ID: "frieren-18542", Title: "Frieren", Description: "After the party of heroes defeated the Demon King"},
		Episodes: []*source.Episode{
			{ID: "frieren-18542$episode$107257", Number: 1, Title: "The Journey's End"},
			{ID: "frieren-18542$episode$107258", Number: 2},
		},
	}
}

func (f *fakeBackend) Catalog(_ context.Context, kind api.Kind, page int) (*source.Page[*source.AnimeSummary], error) {
	f.mu.Lock()
	f.lastKind, f.lastPage = kind, page
	f.mu.Unlock()

	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return &source.Page[*source.AnimeSummary]{
		CurrentPage: page,
		HasNextPage: true,
		Results:     []*source.AnimeSummary{&frieren().AnimeSummary, {ID: "dandadan-19319", Title: "Dandadan"}},
	}, nil
}

func (f *fakeBackend) Search(_ context.Context, query string, page int) (*source.Page[*source.AnimeSummary], error) {
	f.lastQuery, f.lastPage = query, page
	return &source.Page[*source.AnimeSummary]{CurrentPage: page, Results: []*source.AnimeSummary{&frieren().AnimeSummary}}, nil
}

func (f *fakeBackend) Info(_ context.Context, id string) (*source.AnimeDetail, error) {
	if id != "frieren-18542" {
		return nil, &api.StatusError{Code: http.StatusNotFound, URL: "/info?id=" + id}
	}
	return frieren(), nil
}

func (f *fakeBackend) InfoForEpisode(ctx context.Context, episodeID string) (*source.AnimeDetail, error) {
	return f.Info(ctx, source.AnimeIDFromEpisode(episodeID))
}

func (f *fakeBackend) Watch(_ context.Context, _ string, _ source.Server, _ source.Category) (*source.StreamSource, error) {
	return &source.StreamSource{
		Sources:   []*source.Video{{URL: "https://cdn.example.net/master.m3u8", Quality: "auto", IsM3U8: true}},
		Headers:   map[string]string{"Referer": "https://megacloud.tv/"},
		Subtitles: []*source.Subtitle{{Lang: "English", URL: "https://subs.example.net/en.vtt"}},
	}, nil
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHome(t *testing.T) {
	router := Router(&fakeBackend{})

	rec := do(t, router, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Frieren")
	assert.Contains(t, rec.Body.String(), `data-threshold="50"`)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestCatalog(t *testing.T) {
	backend := &fakeBackend{}
	router := Router(backend)

	rec := do(t, router, http.MethodGet, "/most-popular?page=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.MostPopular, backend.lastKind)
	assert.Equal(t, 2, backend.lastPage)

	body := rec.Body.String()
	assert.Contains(t, body, "Most Popular")
	assert.Contains(t, body, "Dandadan")
	assert.Contains(t, body, "/most-popular?page=1")
	assert.Contains(t, body, "/most-popular?page=3")

	do(t, router, http.MethodGet, "/movies?page=nope")
	assert.Equal(t, api.Movies, backend.lastKind)
	assert.Equal(t, 1, backend.lastPage)
}

func TestCatalogUpstreamFailure(t *testing.T) {
	router := Router(&fakeBackend{catalogErr: errors.New("connection refused")})

	rec := do(t, router, http.MethodGet, "/trending")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestSearch(t *testing.T) {
	backend := &fakeBackend{}
	router := Router(backend)

	rec := do(t, router, http.MethodGet, "/search?q=frieren+beyond")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/search/frieren%20beyond", rec.Header().Get("Location"))

	rec = do(t, router, http.MethodGet, "/search?q=++")
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = do(t, router, http.MethodGet, "/search/frieren%20beyond")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "frieren beyond", backend.lastQuery)
	assert.Contains(t, rec.Body.String(), "Frieren")

	do(t, router, http.MethodGet, "/search/50%2541")
	assert.Equal(t, "50%41", backend.lastQuery)

	do(t, router, http.MethodGet, "/search/fate%2Fzero")
	assert.Equal(t, "fate/zero", backend.lastQuery)
}

func TestAnime(t *testing.T) {
	router := Router(&fakeBackend{})

	rec := do(t, router, http.MethodGet, "/anime/frieren-18542")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Journey&#39;s End")
	assert.Contains(t, rec.Body.String(), "Episode 2")

	rec = do(t, router, http.MethodGet, "/anime/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWatch(t *testing.T) {
	history.History().Clear()
	history.Continue().Clear()
	router := Router(&fakeBackend{})

	rec := do(t, router, http.MethodGet, "/watch/frieren-18542$episode$107257?category=dub")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Switch to sub")
	assert.Contains(t, body, "<iframe")
	assert.Contains(t, body, constant.DefaultProxyURL+"/?u=")
	assert.Contains(t, body, "English")
	assert.Contains(t, body, "from cdn.example.net")

	latest, ok := history.Latest().Get()
	require.True(t, ok)
	assert.Equal(t, "frieren-18542$episode$107257", latest.ID)

	rec = do(t, router, http.MethodGet, "/watch/frieren-18542$episode$107257?category=raw")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/watch/unknown$episode$1")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestToggles(t *testing.T) {
	router := Router(&fakeBackend{})
	favorites.Favorites().Remove("frieren-18542")

	rec := do(t, router, http.MethodPost, "/favorites/frieren-18542")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/anime/frieren-18542", rec.Header().Get("Location"))
	assert.True(t, favorites.Favorites().Has("frieren-18542"))

	rec = do(t, router, http.MethodGet, "/favorites")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Frieren")

	do(t, router, http.MethodPost, "/favorites/frieren-18542")
	assert.False(t, favorites.Favorites().Has("frieren-18542"))

	before := preference.Get()
	do(t, router, http.MethodPost, "/theme")
	assert.Equal(t, before.Opposite(), preference.Get())
}

func TestHistoryEdits(t *testing.T) {
	router := Router(&fakeBackend{})
	do(t, router, http.MethodGet, "/watch/frieren-18542$episode$107258")
	require.NotEmpty(t, history.History().List())

	rec := do(t, router, http.MethodPost, "/continue/frieren-18542$episode$107258/delete")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
	for _, e := range history.Continue().List() {
		assert.NotEqual(t, "frieren-18542$episode$107258", e.ID)
	}

	do(t, router, http.MethodPost, "/history/clear")
	assert.Empty(t, history.History().List())

	rec = do(t, router, http.MethodGet, "/profile")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No history yet.")
}

func TestNotFound(t *testing.T) {
	rec := do(t, Router(&fakeBackend{}), http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "page not found"))
}

func TestServerShutsDownWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewServer(ln.Addr().String(), Router(&fakeBackend{})).Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/nope")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
