package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blkoutuk/ivor/internal/cli"
	"github.com/blkoutuk/ivor/internal/cli/admin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ivord",
		Short: "IVOR community assistant daemon and CLI",
		Long:  "IVOR daemon for running the community assistant API server and managing its content",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.AskCmd())
	rootCmd.AddCommand(admin.ContentCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
