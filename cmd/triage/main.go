package main

import (
	"os"

	"github.com/spf13/cobra"

	"triage/internal/interfaces/cli/migrate"
	"triage/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triage",
		Short: "Triage - support ticket analysis service",
		Long:  `Triage stores customer support tickets and runs an automated classification and summarization pass over them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
