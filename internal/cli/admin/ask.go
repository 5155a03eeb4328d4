package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blkoutuk/ivor/internal/config"
)

// AskCmd returns the ask command: a one-shot pipeline invocation without
// starting the server.
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask IVOR a single question",
		Long:  "Run one question through the full response pipeline and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	cmd.Flags().String("user", "cli", "Caller id for rate limiting")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
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

	pipeline, _, _, err := buildPipeline(ctx, cfg, provider)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	callerID, _ := cmd.Flags().GetString("user")

	result := pipeline.Respond(ctx, question, callerID)

	fmt.Println(result.Message)
	if len(result.Sources) > 0 {
		fmt.Printf("\nSources: %s\n", strings.Join(result.Sources, ", "))
	}
	if !result.Success {
		return fmt.Errorf("request did not complete (%s)", result.ErrorKind)
	}
	return nil
}
