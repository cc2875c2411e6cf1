package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpmvc/helpers/internal/app"
	"github.com/wpmvc/helpers/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var importCmd = &cobra.Command{
	Use:   "import [flags] {files}",
	Short: "Import local files into the media library.",
	Long: `Import one or more local files into the media library.
Every file is uploaded through the regular pipeline: it is validated,
stored under a year/month key, registered as an attachment record, and
its metadata (including image size variants) is generated.
The source files are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteImportCommand(cmd.Context(), appConfig, paths)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to register the command before execution.
func init() {
	rootCmd.AddCommand(importCmd)
}
