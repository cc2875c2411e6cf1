package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpmvc/helpers/internal/config"
	"github.com/wpmvc/helpers/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file.",
	Long: `Write a starter configuration file with sensible defaults.
An existing file is updated in place, preserving its key order;
only the values passed via flags are changed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		config.UseConfigFile(configFilenameFromFlag)

		cfg := &config.Config{
			UploadsPath:    "uploads",
			BaseURL:        "http://localhost:8080/uploads",
			DatabasePath:   "media.db",
			StorageBackend: config.StorageBackendLocal,
			MaxUploadSize:  "10MB",
			LogLevel:       "info",
		}

		flags := cmd.Flags()

		if flag := flags.Lookup("uploads"); flag != nil && flag.Changed {
			cfg.UploadsPath, _ = flags.GetString("uploads")
		}

		if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
			cfg.BaseURL, _ = flags.GetString("base-url")
		}

		if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
			cfg.LogLevel, _ = flags.GetString("log-level")
		}

		if err := config.SaveConfig(cfg); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to write configuration: %v", err)
		}

		logger.Info(cmd.Context(), "Configuration file written successfully!")
	},
}

//nolint:gochecknoinits // Cobra requires the init function to register the command before execution.
func init() {
	rootCmd.AddCommand(initCmd)
}
