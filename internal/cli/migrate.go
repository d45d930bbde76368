package cli

import (
	"github.com/spf13/cobra"

	"github.com/autoluxe/autoluxe-migrate/internal/config"
)

type migrateOptions struct {
	DryRun    bool
	LedgerDir string
}

// newMigrateCmd creates the "migrate" sub-command and its per-entity
// sub-commands. Cars depend on brands for reference resolution, so "all"
// runs brands first.
func newMigrateCmd(cfg *config.Config) *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate legacy records into the target store",
	}

	cmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "read and map documents without writing")
	cmd.PersistentFlags().StringVar(&opts.LedgerDir, "ledger-dir", cfg.LedgerDir.Value, "directory holding per-entity migration ledgers")

	cmd.AddCommand(&cobra.Command{
		Use:   "brands",
		Short: "Migrate brand documents",
		RunE: func(c *cobra.Command, args []string) error {
			return runEntityMigration(c.Context(), cfg, opts, []string{entityBrands})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "Migrate category documents",
		RunE: func(c *cobra.Command, args []string) error {
			return runEntityMigration(c.Context(), cfg, opts, []string{entityCategories})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "cars",
		Short: "Migrate car documents (brands should be migrated first)",
		RunE: func(c *cobra.Command, args []string) error {
			return runEntityMigration(c.Context(), cfg, opts, []string{entityCars})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Migrate brands, categories and cars in dependency order",
		RunE: func(c *cobra.Command, args []string) error {
			return runEntityMigration(c.Context(), cfg, opts, []string{entityBrands, entityCategories, entityCars})
		},
	})

	return cmd
}
