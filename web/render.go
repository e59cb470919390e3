package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/preference"
	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"add":      func(a, b int) int { return a + b },
	"subtract": func(a, b int) int { return a - b },
	"ago":      humanize.Time,
	"escape":   url.PathEscape,
	"app":      func() string { return constant.App },
	"version":  func() string { return constant.Version },
}

func parseTemplates(files ...string) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, files...)
}

// layout is what templates/base.html renders around every page.
type layout struct {
	Title string
	Theme preference.Theme
	Path  string
	Data  any
}

// render executes templates/<name>.html inside the base layout. The page is buffered
// so a template failure never leaves a half-written response.
func render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	tmpl, err := parseTemplates("templates/base.html", "templates/"+name+".html")
	if err != nil {
		fail(w, r, fmt.Errorf("parse %s: %w", name, err))
		return
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "base", layout{
		Title: title,
		Theme: preference.Get(),
		Path:  r.URL.Path,
		Data:  data,
	})
	if err != nil {
		fail(w, r, fmt.Errorf("execute %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorPage struct {
	Status  int
	Message string
}

// renderError shows err inline. Upstream failures use http.StatusBadGateway.
func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	log.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"path":       r.URL.Path,
		"status":     status,
	}).WithError(err).Warn("request failed")

	render(w, r, status, "error", http.StatusText(status), errorPage{Status: status, Message: err.Error()})
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	log.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"path":       r.URL.Path,
	}).WithError(err).Error("template failure")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
