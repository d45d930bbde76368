package cli

import (
	"github.com/spf13/cobra"

	"github.com/autoluxe/autoluxe-migrate/internal/config"
)

// exportDirDefault mirrors the directory the legacy export produced, so
// the two asset phases compose without flags.
const exportDirDefault = "firebase-storage-export"

func newPrecheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "precheck",
		Short: "Count records on both sides without writing anything",
		RunE: func(c *cobra.Command, args []string) error {
			return runPrecheck(c.Context(), cfg)
		},
	}
}

func newSyncIndexCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-index",
		Short: "Rebuild the hosted search index from the migrated car table",
		RunE: func(c *cobra.Command, args []string) error {
			return runIndexSync(c.Context(), cfg)
		},
	}
}

func newAssetsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Move image assets between storage providers",
	}

	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download every legacy bucket object to a local export directory",
		RunE: func(c *cobra.Command, args []string) error {
			return runAssetExport(c.Context(), cfg, outDir)
		},
	}
	exportCmd.Flags().StringVar(&outDir, "out", exportDirDefault, "export root directory")

	var fromDir string
	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the export directory to the new storage provider",
		RunE: func(c *cobra.Command, args []string) error {
			return runAssetUpload(c.Context(), cfg, fromDir)
		},
	}
	uploadCmd.Flags().StringVar(&fromDir, "from", exportDirDefault, "export root directory to upload")

	cmd.AddCommand(exportCmd, uploadCmd)
	return cmd
}
