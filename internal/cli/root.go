// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/autoluxe/autoluxe-migrate/internal/config"
)

// NewRootCmd creates and configures the main "root" command
// for the application. It attaches all sub-commands.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autoluxe",
		Short: "Data migration toolkit for the AutoLuxe catalog",
		Long: `autoluxe moves the car-rental catalog out of the legacy document store:
entity migrations into Postgres, a search index sync and a two-phase
image asset move between storage providers.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(newMigrateCmd(cfg))
	rootCmd.AddCommand(newPrecheckCmd(cfg))
	rootCmd.AddCommand(newSyncIndexCmd(cfg))
	rootCmd.AddCommand(newAssetsCmd(cfg))

	return rootCmd
}
