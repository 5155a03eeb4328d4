package admin

import (
	"context"
	"fmt"
	"log"

	"github.com/blkoutuk/ivor/internal/config"
	"github.com/blkoutuk/ivor/internal/content"
	"github.com/blkoutuk/ivor/internal/database"
)

// newProvider constructs the content provider selected by the configuration.
// The returned close function releases any backing connections; it is a no-op
// for providers without them.
func newProvider(ctx context.Context, cfg *config.Config) (content.Provider, func(), error) {
	switch cfg.ContentSource {
	case config.ContentSourceStatic:
		return content.NewStaticProvider(), func() {}, nil

	case config.ContentSourcePostgres:
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("connected to database")
		return content.NewPostgresProvider(pool), pool.Close, nil

	case config.ContentSourceS3:
		provider, err := content.NewS3Provider(ctx, content.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.S3Bucket,
			UsePathStyle:    true,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create S3 provider: %w", err)
		}
		return provider, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown content source %q", cfg.ContentSource)
	}
}
