package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sehrimilan/config"
	_ "sehrimilan/docs" // Swagger docs
	"sehrimilan/internal/cache"
	"sehrimilan/internal/generator"
	"sehrimilan/internal/httpserver"
	"sehrimilan/internal/middleware"
	"sehrimilan/internal/planparser"
	"sehrimilan/pkg/gemini"
	"sehrimilan/pkg/log"
	"sehrimilan/pkg/markdown"
	"sehrimilan/pkg/picoapps"
	"sehrimilan/pkg/scope"
	"sehrimilan/pkg/sqlite"
)

// @title       SehriMilan API
// @description Ramadan meal plans generated in parallel day segments, day views and shopping lists.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SehriMilan API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Connect(ctx, cfg.Storage.SQLitePath)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite store ready at %s", cfg.Storage.SQLitePath)

	// 4. Session tokens
	jwtManager, err := scope.New(cfg.Auth.JWTSecret)
	if err != nil {
		logger.Error(ctx, "Failed to init token verifier: ", err)
		return
	}

	// 5. Generation transport
	transport, err := newTransport(ctx, cfg.Generator)
	if err != nil {
		logger.Error(ctx, "Failed to init generation transport: ", err)
		return
	}
	logger.Infof(ctx, "Generation provider: %s", cfg.Generator.Provider)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Cache:       cache.New(cache.Config{Size: cfg.Cache.Size, TTL: cfg.Cache.TTL}),
		JWTManager:  jwtManager,
		Transport:   transport,
		Middleware: middleware.Config{
			DemoEnabled:         cfg.Auth.DemoEnabled,
			RateLimitPerMin:     cfg.Generator.RateLimitPerMin,
			ChatRateLimitPerMin: cfg.Chat.RateLimitPerMin,
		},
		Generator: generator.Options{
			ChunkSize: cfg.Generator.ChunkSize,
			MaxDays:   cfg.Generator.MaxDays,
		},
		Parser:   planparser.Options{StrictSections: cfg.Generator.StrictSections},
		Markdown: markdown.Options{HideTitle: true},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newTransport(ctx context.Context, cfg config.GeneratorConfig) (generator.Transport, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.New(ctx, gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model})
	default:
		client, err := picoapps.New(picoapps.Config{URL: cfg.URL, AppID: cfg.AppID})
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
