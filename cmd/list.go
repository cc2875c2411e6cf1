package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpmvc/helpers/internal/app"
	"github.com/wpmvc/helpers/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the attachment records of the media library.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteListCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to register the command before execution.
func init() {
	rootCmd.AddCommand(listCmd)
}
