package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nscache",
	Short: "Namespaced cache tooling",
	Long: `nscache - namespaced cache tooling and small companion utilities.

The cache subcommand talks to a key-value store (Redis or in-process memory)
through the nscache facade; password and timezone are the standalone helpers
that ship with the library.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(passwordCmd)
	rootCmd.AddCommand(timezoneCmd)
	rootCmd.AddCommand(cacheCmd)
}
