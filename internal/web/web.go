package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/orgball2608/crypto-blog/internal/blog"
	"github.com/orgball2608/crypto-blog/pkg/config"
	"github.com/orgball2608/crypto-blog/pkg/formatter"
	"github.com/orgball2608/crypto-blog/pkg/logger"
	"go.uber.org/fx"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Controller blog.Controller
}

type Server struct {
	Controller blog.Controller
	Logger     logger.Logger
	Config     *config.Config

	HTTP *http.Server

	page     *template.Template
	location *time.Location
}

func New(opts Opts) (*Server, error) {
	log := opts.Logger.WithComponent("WebServer")

	loc, err := formatter.LoadLocation(opts.Config.View.TimeZone)
	if err != nil {
		log.Warn("Unknown time zone, falling back to local time",
			"timeZone", opts.Config.View.TimeZone, "error", err)
	}

	page, err := template.New("page.html").
		Funcs(template.FuncMap{
			"postDate": func(ns int64) string { return formatter.FormatPostDate(ns, loc) },
		}).
		ParseFS(templatesFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	s := &Server{
		Controller: opts.Controller,
		Logger:     log,
		Config:     opts.Config,
		page:       page,
		location:   loc,
	}

	s.HTTP = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:      s.Router(),
		WriteTimeout: writeTimeout(opts.Config.Backend.Timeout),
		ReadTimeout:  15 * time.Second,
	}

	return s, nil
}

// writeTimeout leaves room for a submit, which makes one addPost and one
// getPosts call before answering. Without a backend timeout there is no bound.
func writeTimeout(backend time.Duration) time.Duration {
	if backend <= 0 {
		return 0
	}
	return 2*backend + 15*time.Second
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, s.logRequests)

	r.HandleFunc("/", s.HandlePage).Methods(http.MethodGet)
	r.HandleFunc("/posts", s.HandleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/api/state", s.HandleState).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.HandleHealthCheck).Methods(http.MethodGet)

	return r
}
