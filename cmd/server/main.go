package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"blockpress/internal/auth"
	"blockpress/internal/config"
	"blockpress/internal/converter"
	"blockpress/internal/handler"
	"blockpress/internal/media"
	"blockpress/internal/middleware"
	"blockpress/internal/repository/postgres"
	"blockpress/internal/rules"
	"blockpress/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Optional bearer auth: shared secret or JWKS, secret wins when both are set
	var verifier auth.Verifier
	switch {
	case cfg.AuthSecret != "":
		verifier = auth.NewSecretVerifier(cfg.AuthSecret)
		logger.Info("auth enabled", "mode", "secret")
	case cfg.AuthJWKSURL != "":
		v, err := auth.NewJWKSVerifier(ctx, cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
		verifier = v
		logger.Info("auth enabled", "mode", "jwks")
	default:
		logger.Warn("auth disabled, convert endpoint is open")
	}

	// Media uploader with an asset cache in front. The cache is Postgres-backed
	// when a database is configured, in-process otherwise.
	var uploader media.Uploader
	if cfg.MediaEndpoint != "" {
		var cache media.AssetCache = media.NewMemoryCache()
		if cfg.DatabaseURL != "" {
			pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
			if err != nil {
				log.Fatalf("Failed to create connection pool: %v", err)
			}
			defer pool.Close()

			repo := postgres.NewMediaAssetRepository(pool, postgres.NewTableNames(cfg.TablePrefix), logger)
			if err := repo.EnsureSchema(ctx); err != nil {
				log.Fatalf("Failed to ensure media asset schema: %v", err)
			}
			cache = repo
			logger.Info("media asset cache", "backend", "postgres", "table_prefix", cfg.TablePrefix)
		}

		client := media.NewHTTPUploader(cfg.MediaEndpoint, cfg.MediaToken, nil, logger)
		uploader = media.NewCachingUploader(client, cache, logger)
		logger.Info("media sideloading enabled", "endpoint", cfg.MediaEndpoint)
	}

	// Optional mapping/allow-list overrides, from a file or a built-in preset
	var rulesFile *rules.File
	switch {
	case cfg.RulesFile != "":
		f, err := rules.Load(cfg.RulesFile)
		if err != nil {
			log.Fatalf("Failed to load rules file: %v", err)
		}
		rulesFile = f
		logger.Info("rules loaded", "path", cfg.RulesFile)
	case cfg.RulesPreset != "":
		registry, err := rules.NewPresetRegistry()
		if err != nil {
			log.Fatalf("Failed to load rule presets: %v", err)
		}
		f, err := registry.Get(cfg.RulesPreset)
		if err != nil {
			log.Fatalf("Failed to resolve rule preset: %v", err)
		}
		rulesFile = f
		logger.Info("rules loaded", "preset", cfg.RulesPreset)
	}

	defaults := converter.Options{
		UploadMedia:   cfg.UploadMedia,
		ForceHTTPS:    cfg.ForceHTTPS,
		AutoParagraph: cfg.AutoParagraph,
	}

	convertService := service.NewConvertService(uploader, rulesFile, defaults, logger)
	convertHandler := handler.NewConvertHandler(convertService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /api/convert", convertHandler.Convert)

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestLog → Auth → Routes
	var root http.Handler = mux
	root = middleware.Auth(verifier)(root)
	root = middleware.RequestLog(logger)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
