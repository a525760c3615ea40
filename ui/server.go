package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"gofit/domain/gof"
	"gofit/internal/config"
	"gofit/internal/dataset"
)

//go:embed templates/* static/* docs/*
var embeddedFiles embed.FS

// Server represents the web server for the goodness-of-fit UI
type Server struct {
	router     *gin.Engine
	templates  *template.Template
	store      *dataset.Store
	calculator *gof.Calculator
	config     *config.Config
}

// NewServer creates a new web server instance
func NewServer(appConfig *config.Config) (*Server, error) {
	gin.SetMode(appConfig.Server.GinMode)

	funcMap := template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:     gin.Default(),
		templates:  templates,
		store:      dataset.NewStore(appConfig.Upload.CacheLimit),
		calculator: gof.NewCalculator(),
		config:     appConfig,
	}

	s.router.SetHTMLTemplate(templates)
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/methodology", s.handleMethodology)

	s.router.POST("/api/datasets/upload", s.handleFileUpload)
	s.router.POST("/api/test", s.handleRunTest)

	s.router.StaticFS("/static", mustSub(embeddedFiles, "static"))
}

// Handler exposes the underlying HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

func mustSub(fsys embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
