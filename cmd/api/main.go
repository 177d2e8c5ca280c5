package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopstack/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shopstack",
		Short: "ShopStack API Server",
		Long:  `ShopStack is a small catalog and basket service backed by flat JSON files and a local image upload directory.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
