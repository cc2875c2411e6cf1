package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpmvc/helpers/internal/app"
	"github.com/wpmvc/helpers/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var regenerateCmd = &cobra.Command{
	Use:   "regenerate [flags] [ids]",
	Short: "Regenerate attachment metadata and image size variants.",
	Long: `Regenerate the metadata of the given attachments, or of every
attachment in the library when no identifiers are passed. Image
attachments get their pixel dimensions re-read and their registered
size variants re-rendered.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		attachmentIDs, err := parseAttachmentIDs(args)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse attachment identifiers: %v", err)
		}

		app.ExecuteRegenerateCommand(cmd.Context(), appConfig, attachmentIDs)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to register the command before execution.
func init() {
	rootCmd.AddCommand(regenerateCmd)
}
