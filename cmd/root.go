package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wpmvc/helpers/internal/config"
	"github.com/wpmvc/helpers/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "wpmvc-media",
		Short: "Maintain a media library: import files, list, regenerate metadata, delete attachments.",
		Long: `wpmvc-media is the maintenance CLI of the wpmvc media library.
It supports:
- Importing local files as media-library attachments
- Listing attachment records
- Regenerating attachment metadata and image size variants
- Best-effort batch deletion of attachments

Uploaded files are kept in a local uploads directory or an S3-compatible
bucket; attachment records live in a SQLite database.`,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().StringP(
		"uploads",
		"u",
		"",
		"directory where the local storage backend keeps uploaded files.")

	rootCmd.PersistentFlags().StringP(
		"base-url",
		"b",
		"",
		"public URL prefix under which stored files are served.")

	rootCmd.PersistentFlags().StringP(
		"log-level",
		"l",
		"",
		"logging verbosity level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	// The init command writes the configuration file, so it must run without one.
	if cmd.Name() == "init" {
		return
	}

	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("uploads"); flag != nil && flag.Changed {
		cfg.UploadsPath, _ = flags.GetString("uploads")
	}

	if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
