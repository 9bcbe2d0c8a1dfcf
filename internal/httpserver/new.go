package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"sehrimilan/internal/cache"
	"sehrimilan/internal/generator"
	"sehrimilan/internal/middleware"
	"sehrimilan/internal/planparser"
	"sehrimilan/pkg/log"
	"sehrimilan/pkg/markdown"
	"sehrimilan/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db         *sql.DB
	cache      cache.Cache
	jwtManager scope.Manager
	transport  generator.Transport

	// Tuning
	middleware middleware.Config
	generator  generator.Options
	parser     planparser.Options
	markdown   markdown.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	Cache      cache.Cache
	JWTManager scope.Manager
	Transport  generator.Transport

	Middleware middleware.Config
	Generator  generator.Options
	Parser     planparser.Options
	Markdown   markdown.Options
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		cache:       cfg.Cache,
		jwtManager:  cfg.JWTManager,
		transport:   cfg.Transport,
		middleware:  cfg.Middleware,
		generator:   cfg.Generator,
		parser:      cfg.Parser,
		markdown:    cfg.Markdown,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.cache == nil {
		return errors.New("cache is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.transport == nil {
		return errors.New("generation transport is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
