package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nao1215/versioncompare/internal/config"
	"github.com/nao1215/versioncompare/internal/i18n"
	"github.com/nao1215/versioncompare/internal/model"
	"github.com/nao1215/versioncompare/internal/pipeline"
	"github.com/nao1215/versioncompare/internal/report"
	"github.com/nao1215/versioncompare/internal/siteinfo"
)

// Paths of the comparison page.
const (
	PathRoot    = "/"
	PathSpecial = "/Special:VersionCompare"
	PathHealth  = "/healthz"
)

// Query parameters of the comparison page.
const (
	ParamURL1          = "url1"
	ParamURL2          = "url2"
	ParamHideDiff      = "hidediff"
	ParamHideMatch     = "hidematch"
	ParamIgnoreVersion = "ignoreversion"
	ParamUseLang       = "uselang"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Server is the HTTP surface of versioncompare.
type Server struct {
	cfg     *config.Config
	fetcher pipeline.SiteFetcher
	router  chi.Router
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithFetcher replaces the siteinfo fetcher built from the configuration.
func WithFetcher(f pipeline.SiteFetcher) Option {
	return func(s *Server) {
		s.fetcher = f
	}
}

// New creates a Server for cfg.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.fetcher == nil {
		f, err := siteinfo.NewFetcherFromConfig(cfg, s.logger)
		if err != nil {
			return nil, fmt.Errorf("create fetcher: %w", err)
		}
		s.fetcher = f
	}

	s.router = chi.NewRouter()
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get(PathRoot, s.handleCompare)
	r.Get(PathSpecial, s.handleCompare)
	r.Get(PathHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
}

// ServeHTTP logs the request and dispatches it to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

	s.router.ServeHTTP(ww, r)

	s.logger.Info("http_request",
		"method", r.Method,
		"path", r.URL.Path,
		"url1", r.URL.Query().Get(ParamURL1),
		"url2", r.URL.Query().Get(ParamURL2),
		"status", ww.Status(),
		"duration", time.Since(start),
	)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
// The write timeout leaves room for two sequential siteinfo requests.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2*s.cfg.Timeout + 10*time.Second,
	}
}

// pageLabels are the localized form labels.
type pageLabels struct {
	URL1, URL2                         string
	HideDiff, HideMatch, IgnoreVersion string
	Submit                             string
}

// pageData is the input of the page template.
type pageData struct {
	Lang    string
	Title   string
	Action  string
	Labels  pageLabels
	URL1    string
	URL2    string
	UseLang string
	Options model.CompareOptions
	Result  template.HTML
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tr := i18n.New(i18n.Match(q.Get(ParamUseLang), s.cfg.Language, r.Header.Get("Accept-Language")))

	data := pageData{
		Lang:    tr.Tag().String(),
		Title:   tr.T(i18n.MsgTitle),
		Action:  r.URL.Path,
		URL1:    strings.TrimSpace(q.Get(ParamURL1)),
		URL2:    strings.TrimSpace(q.Get(ParamURL2)),
		UseLang: q.Get(ParamUseLang),
		Options: s.requestOptions(q),
		Labels: pageLabels{
			URL1:          tr.T(i18n.MsgFirstURL),
			URL2:          tr.T(i18n.MsgSecondURL),
			HideDiff:      tr.T(i18n.MsgHideDiff),
			HideMatch:     tr.T(i18n.MsgHideMatch),
			IgnoreVersion: tr.T(i18n.MsgIgnoreVersion),
			Submit:        tr.T(i18n.MsgSubmit),
		},
	}

	if url1, url2, ok := s.cfg.ResolveURLs(data.URL1, data.URL2); ok {
		result, err := s.compare(r, url1, url2, data.Options, tr)
		if err != nil {
			s.logger.Error("comparison failed", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		data.Result = result
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// compare runs the pipeline and returns the table, or the error paragraph
// when one of the wikis could not be read. Other failures are returned.
func (s *Server) compare(r *http.Request, url1, url2 string, opts model.CompareOptions, tr *i18n.Translator) (template.HTML, error) {
	var buf bytes.Buffer
	job := pipeline.NewJob(url1, url2, opts)
	p := pipeline.DefaultPipeline(s.fetcher, report.NewHTMLWriter(&buf, tr), pipeline.WithLogger(s.logger))

	err := p.Execute(r.Context(), job)
	var fetchErr *siteinfo.FetchError
	switch {
	case err == nil:
		return template.HTML(buf.String()), nil //nolint:gosec // built by report.HTMLWriter, which escapes all text
	case errors.As(err, &fetchErr):
		return template.HTML(report.ErrorHTML(fetchErr.URL, tr)), nil //nolint:gosec // escaped by report.ErrorHTML
	default:
		return "", err
	}
}

// requestOptions reads the three checkboxes. The configured defaults only
// apply before the form has been submitted, because an unchecked box is
// simply missing from the query.
func (s *Server) requestOptions(q map[string][]string) model.CompareOptions {
	_, has1 := q[ParamURL1]
	_, has2 := q[ParamURL2]
	if !has1 && !has2 {
		return s.cfg.Options
	}
	return model.CompareOptions{
		HideDiff:      flag(q, ParamHideDiff),
		HideMatch:     flag(q, ParamHideMatch),
		IgnoreVersion: flag(q, ParamIgnoreVersion),
	}
}

// flag reports whether a checkbox parameter is set to a true value.
// "1", "true" and "on" are true; anything else, including absence, is false.
func flag(q map[string][]string, name string) bool {
	values := q[name]
	if len(values) == 0 {
		return false
	}
	v := strings.TrimSpace(values[0])
	if strings.EqualFold(v, "on") {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
