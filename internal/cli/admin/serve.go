package admin

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/blkoutuk/ivor/internal/api/handlers"
	"github.com/blkoutuk/ivor/internal/cache"
	"github.com/blkoutuk/ivor/internal/config"
	"github.com/blkoutuk/ivor/internal/content"
	"github.com/blkoutuk/ivor/internal/index"
	"github.com/blkoutuk/ivor/internal/jobs"
	"github.com/blkoutuk/ivor/internal/limiter"
	"github.com/blkoutuk/ivor/internal/openai"
	"github.com/blkoutuk/ivor/internal/server"
	"github.com/blkoutuk/ivor/internal/service"
	"github.com/blkoutuk/ivor/internal/store"
	"github.com/blkoutuk/ivor/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the IVOR API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Bool("no-migrate", false, "Skip automatic database migrations on startup")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if a DSN is configured
	if cfg.SentryDSN != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	// Run migrations before the postgres provider first reads
	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if cfg.ContentSource == config.ContentSourcePostgres && !noMigrate {
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	provider, closeProvider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProvider()

	pipeline, knowledgeStore, similarityIndex, err := buildPipeline(ctx, cfg, provider)
	if err != nil {
		return err
	}

	// Static content is compiled in; only external providers need refreshing
	if cfg.ContentSource != config.ContentSourceStatic {
		refresher := jobs.NewContentRefresher(provider, knowledgeStore, similarityIndex)
		worker := jobs.NewWorker(refresher, cfg.ContentRefreshInterval)

		workerCtx, cancelWorker := context.WithCancel(ctx)
		defer cancelWorker()
		go worker.Start(workerCtx)
		defer worker.Stop()
	}

	router := server.NewRouter(server.RouterConfig{
		ChatHandler:   handlers.NewChatHandler(pipeline),
		SearchHandler: handlers.NewSearchHandler(knowledgeStore, similarityIndex),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// buildPipeline loads both content collections, indexes them, and wires the
// pipeline with its collaborators.
func buildPipeline(ctx context.Context, cfg *config.Config, provider content.Provider) (*service.Pipeline, *store.KnowledgeStore, *index.SimilarityIndex, error) {
	knowledgeStore, err := store.NewKnowledgeStoreFromProvider(ctx, provider)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load content: %w", err)
	}

	similarityIndex := index.NewSimilarityIndex()
	added := similarityIndex.Upsert(index.ContentDocuments(knowledgeStore.KnowledgeItems(), knowledgeStore.ResourceItems()))
	log.Printf("similarity index ready (%d documents)", added)

	var generator service.Generator
	if cfg.HasOpenAI() {
		generator = openai.NewClient(cfg.OpenAIAPIKey)
	} else {
		log.Println("IVOR_OPENAI_API_KEY not set; chat responses will return the fallback message")
		generator = unconfiguredGenerator{}
	}

	pipeline := service.NewPipeline(
		limiter.NewRateLimiterWithConfig(cfg.RateLimitThreshold, cfg.RateLimitWindow),
		cache.NewResponseCacheWithTTL(cfg.CacheTTL),
		service.NewContextBuilder(service.LocalIndex{Index: similarityIndex}),
		generator,
		knowledgeStore,
	)

	return pipeline, knowledgeStore, similarityIndex, nil
}

// unconfiguredGenerator fails every call so the pipeline surfaces its fixed
// fallback message instead of crashing on a missing API key.
type unconfiguredGenerator struct{}

func (unconfiguredGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	return "", fmt.Errorf("generator not configured: IVOR_OPENAI_API_KEY required")
}

func runMigrations(databaseURL string) error {
	// Create a sql.DB connection for golang-migrate
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	// Create postgres driver instance
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Create migrate instance with file source
	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	// Run migrations
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Get migration version and status
	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if err == migrate.ErrNilVersion {
		log.Println("migrations: database is up to date (no migrations applied)")
	} else if dirty {
		return fmt.Errorf("migration version %d is dirty - manual intervention required", version)
	} else if err == migrate.ErrNoChange {
		log.Printf("migrations: database is up to date (version %d)", version)
	} else {
		log.Printf("migrations: applied successfully (version %d)", version)
	}

	return nil
}
