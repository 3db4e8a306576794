// Package server serves the portfolio site: one gin engine rendering the six
// sections as full pages or as HTMX fragments.
package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Choovyy/portfolio/internal/config"
	"github.com/Choovyy/portfolio/internal/portfolio"
	"github.com/Choovyy/portfolio/internal/session"
	"github.com/Choovyy/portfolio/internal/visits"
)

//go:embed templates/*.html
var templateFS embed.FS

// VisitStore is the analytics backend. A nil VisitStore disables tracking.
type VisitStore interface {
	visits.Recorder
	Stats(ctx context.Context) (*visits.Stats, error)
}

// Options wires the server's dependencies.
type Options struct {
	Config   *config.Config
	Catalog  *portfolio.Catalog
	Sessions *session.Manager
	Visits   VisitStore
	Rand     portfolio.IntSource // activity chart source; defaults to portfolio.GlobalSource
}

// Server is the HTTP front end.
type Server struct {
	engine   *gin.Engine
	cfg      *config.Config
	catalog  *portfolio.Catalog
	sessions *session.Manager
	visits   VisitStore
	rand     portfolio.IntSource
}

// New builds the router and parses the templates.
func New(opts Options) (*Server, error) {
	s := &Server{
		cfg:      opts.Config,
		catalog:  opts.Catalog,
		sessions: opts.Sessions,
		visits:   opts.Visits,
		rand:     opts.Rand,
	}
	if s.rand == nil {
		s.rand = portfolio.GlobalSource
	}
	if s.sessions == nil {
		s.sessions = session.NewManager(s.cfg.SessionTTL)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	if s.visits != nil {
		r.Use(visits.Middleware(s.visits))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/stats", s.handleStats)
	r.GET("/profile-image", s.handleProfileImage)
	r.GET("/resume.txt", s.handleResumeDownload)
	r.GET("/projects/:index/download", s.handleProjectDownload)

	pages := r.Group("/")
	pages.Use(s.sessionMiddleware())
	pages.GET("/", s.handleIndex)
	pages.GET("/sections/:name", s.handleSection)
	pages.POST("/contact", s.handleContact)
	pages.POST("/session/reset", s.handleSessionReset)

	s.engine = r
	return s, nil
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// profileImageURL checks for the local photo on every render and falls back
// to the remote placeholder when it is missing.
func (s *Server) profileImageURL() string {
	if s.hasLocalProfileImage() {
		return "/profile-image"
	}
	return s.cfg.FallbackImageURL
}

func (s *Server) hasLocalProfileImage() bool {
	info, err := os.Stat(s.cfg.ProfileImagePath)
	return err == nil && !info.IsDir()
}

func (s *Server) handleProfileImage(c *gin.Context) {
	if !s.hasLocalProfileImage() {
		c.Redirect(http.StatusFound, s.cfg.FallbackImageURL)
		return
	}
	c.File(s.cfg.ProfileImagePath)
}

func (s *Server) handleStats(c *gin.Context) {
	if s.visits == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "visit tracking disabled"})
		return
	}
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		c.JSON(HTTPStatus(err), gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
