package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketdesk/internal/interfaces/cli/migrate"
	"ticketdesk/internal/interfaces/cli/server"
)

// @title Ticketdesk API
// @version 1.0
// @description Support tickets with automatic classification, and API request logs.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketdesk",
		Short: "Ticketdesk - support tickets and API request logs",
		Long:  `Ticketdesk serves a REST API for support tickets, which are classified by keyword on creation, and for API request logs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
