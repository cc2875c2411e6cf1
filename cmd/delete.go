package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wpmvc/helpers/internal/app"
	"github.com/wpmvc/helpers/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var deleteCmd = &cobra.Command{
	Use:   "delete [flags] {ids}",
	Short: "Force-delete attachments, best effort.",
	Long: `Force-delete the given attachments: each record is removed together
with its stored file and generated size variants. Deletion is best
effort; attachments that cannot be deleted are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		attachmentIDs, err := parseAttachmentIDs(args)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse attachment identifiers: %v", err)
		}

		app.ExecuteDeleteCommand(cmd.Context(), appConfig, attachmentIDs)
	},
}

// parseAttachmentIDs converts positional arguments into attachment identifiers.
func parseAttachmentIDs(args []string) ([]int64, error) {
	attachmentIDs := make([]int64, 0, len(args))

	for _, arg := range args {
		attachmentID, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a valid attachment identifier: %w", arg, err)
		}

		attachmentIDs = append(attachmentIDs, attachmentID)
	}

	return attachmentIDs, nil
}

//nolint:gochecknoinits // Cobra requires the init function to register the command before execution.
func init() {
	rootCmd.AddCommand(deleteCmd)
}
