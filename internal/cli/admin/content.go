package admin

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/blkoutuk/ivor/internal/config"
	"github.com/blkoutuk/ivor/internal/content"
	"github.com/blkoutuk/ivor/internal/database"
)

// ContentCmd returns the content command group.
func ContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage community content",
	}

	cmd.AddCommand(contentSeedCmd())
	cmd.AddCommand(contentListCmd())

	return cmd
}

func contentSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the postgres content tables from the built-in fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("IVOR_DATABASE_URL is required to seed content")
			}

			if err := runMigrations(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			pool, err := database.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			provider := content.NewPostgresProvider(pool)
			static := content.NewStaticProvider()

			knowledge, err := static.LoadKnowledgeItems(ctx)
			if err != nil {
				return err
			}
			for _, item := range knowledge {
				if err := provider.SeedKnowledgeItem(ctx, item); err != nil {
					return fmt.Errorf("failed to seed knowledge item %s: %w", item.ID, err)
				}
			}

			resources, err := static.LoadResourceItems(ctx)
			if err != nil {
				return err
			}
			for _, item := range resources {
				if err := provider.SeedResourceItem(ctx, item); err != nil {
					return fmt.Errorf("failed to seed resource item %s: %w", item.ID, err)
				}
			}

			log.Printf("seeded %d knowledge items and %d resource items", len(knowledge), len(resources))
			return nil
		},
	}
}

func contentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the content the configured provider serves",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			provider, closeProvider, err := newProvider(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeProvider()

			knowledge, err := provider.LoadKnowledgeItems(ctx)
			if err != nil {
				return fmt.Errorf("failed to load knowledge items: %w", err)
			}
			resources, err := provider.LoadResourceItems(ctx)
			if err != nil {
				return fmt.Errorf("failed to load resource items: %w", err)
			}

			fmt.Printf("knowledge items (%d):\n", len(knowledge))
			for _, item := range knowledge {
				active := " "
				if item.Active {
					active = "*"
				}
				fmt.Printf("  %s %-8s [%-13s] %s (%s)\n", active, item.ID, item.Category, item.Question, item.Organization)
			}

			fmt.Printf("\nresource items (%d):\n", len(resources))
			for _, item := range resources {
				active := " "
				if item.Active {
					active = "*"
				}
				fmt.Printf("  %s %-8s [%-13s] %s (%s, %s)\n", active, item.ID, item.Category, item.Name, item.Organization, item.Cost)
			}

			return nil
		},
	}
}
