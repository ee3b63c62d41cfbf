package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"provisio/internal/interfaces/cli/migrate"
	"provisio/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "provisio",
		Short: "Provisio production work-order service",
		Long:  `Provisio tracks telecom provisioning work orders and their fulfillment tasks.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
