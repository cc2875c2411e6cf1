package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wpmvc/helpers/internal/constants"
	"github.com/wpmvc/helpers/internal/logger"
	"github.com/wpmvc/helpers/internal/utils"
)

// ImageSize describes one registered image size variant.
type ImageSize struct {
	// Width is the maximum variant width in pixels (0 = unconstrained).
	Width int `mapstructure:"width"`
	// Height is the maximum variant height in pixels (0 = unconstrained).
	Height int `mapstructure:"height"`
	// Crop indicates whether the variant is cropped to the exact dimensions
	// instead of scaled to fit within them.
	Crop bool `mapstructure:"crop"`
}

// S3Settings holds the S3-compatible storage backend settings.
type S3Settings struct {
	// Bucket is the bucket name (required for the s3 backend).
	Bucket string `mapstructure:"bucket"`
	// Region is the bucket region (empty uses the SDK default chain).
	Region string `mapstructure:"region"`
	// Endpoint is a custom endpoint URL for S3-compatible providers
	// such as MinIO or Cloudflare R2. Empty uses the default AWS endpoint.
	Endpoint string `mapstructure:"endpoint"`
	// AccessKey is the static access key. Empty falls back to the SDK
	// default credential chain (env vars, shared config, IAM role).
	AccessKey string `mapstructure:"access_key"`
	// SecretKey is the static secret key paired with AccessKey.
	SecretKey string `mapstructure:"secret_key"`
	// KeyPrefix is prepended to every object key written to the bucket.
	KeyPrefix string `mapstructure:"key_prefix"`
	// UsePathStyle forces path-style addressing (bucket in path, not
	// subdomain), required by most S3-compatible providers.
	UsePathStyle bool `mapstructure:"use_path_style"`
}

// Config holds all configuration settings.
type Config struct {
	// UploadsPath is the directory where the local storage backend keeps uploaded files.
	UploadsPath string `mapstructure:"uploads_path"`
	// BaseURL is the public URL prefix under which stored files are served.
	BaseURL string `mapstructure:"base_url"`
	// DatabasePath is the path of the SQLite database holding attachment records.
	DatabasePath string `mapstructure:"database_path"`
	// StorageBackend selects where uploaded files are kept: "local" or "s3".
	StorageBackend string `mapstructure:"storage_backend"`
	// S3 holds the settings of the s3 storage backend.
	S3 S3Settings `mapstructure:"s3"`
	// MaxUploadSize is the maximum accepted upload size (e.g. "10MB").
	// Empty or "0" disables the limit.
	MaxUploadSize string `mapstructure:"max_upload_size"`
	// AllowedMimeTypes lists the MIME types accepted for upload.
	// An empty list accepts every type.
	AllowedMimeTypes []string `mapstructure:"allowed_mime_types"`
	// ImageSizes registers the size variants generated for image uploads,
	// indexed by size name.
	ImageSizes map[string]ImageSize `mapstructure:"image_sizes"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedMaxUploadSize is the parsed maximum upload size in bytes (0 = unlimited).
	ParsedMaxUploadSize int64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".wpmvc-media.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged HTTP dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// StorageBackendLocal keeps uploaded files on the local filesystem.
	StorageBackendLocal = "local"

	// StorageBackendS3 keeps uploaded files in an S3-compatible bucket.
	StorageBackendS3 = "s3"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyUploadsPath indicates that the uploads directory is missing.
	ErrEmptyUploadsPath = errors.New("uploads_path cannot be empty")
	// ErrEmptyBaseURL indicates that the public base URL is missing.
	ErrEmptyBaseURL = errors.New("base_url cannot be empty")
	// ErrInvalidBaseURL indicates that the public base URL is not an absolute URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute URL")
	// ErrEmptyDatabasePath indicates that the attachment database path is missing.
	ErrEmptyDatabasePath = errors.New("database_path cannot be empty")
	// ErrUnknownStorageBackend indicates that the storage backend is not recognized.
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
	// ErrEmptyS3Bucket indicates that the s3 backend is selected without a bucket.
	ErrEmptyS3Bucket = errors.New("s3.bucket cannot be empty when storage_backend is s3")
	// ErrInvalidImageSize indicates that a registered image size has no usable dimensions.
	ErrInvalidImageSize = errors.New("image size must have a positive width or height")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// UseConfigFile points subsequent configuration operations at the given file.
// An empty name falls back to DefaultConfigFilename.
func UseConfigFile(configFilename string) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
}

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	UseConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var (
		maxUploadSize       = strings.TrimSpace(cfg.MaxUploadSize)
		parsedMaxUploadSize uint64
		err                 error
	)

	if strings.TrimSpace(cfg.DatabasePath) == "" {
		return ErrEmptyDatabasePath
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return ErrEmptyBaseURL
	}

	parsedBaseURL, parseErr := url.Parse(baseURL)
	if parseErr != nil || parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	switch cfg.StorageBackend {
	case StorageBackendLocal:
		if strings.TrimSpace(cfg.UploadsPath) == "" {
			return ErrEmptyUploadsPath
		}
	case StorageBackendS3:
		if strings.TrimSpace(cfg.S3.Bucket) == "" {
			return ErrEmptyS3Bucket
		}
	default:
		return fmt.Errorf("%w: '%s' (expected '%s' or '%s')",
			ErrUnknownStorageBackend, cfg.StorageBackend, StorageBackendLocal, StorageBackendS3)
	}

	for name, size := range cfg.ImageSizes {
		if size.Width <= 0 && size.Height <= 0 {
			return fmt.Errorf("%w: '%s'", ErrInvalidImageSize, name)
		}
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if maxUploadSize != "" && maxUploadSize != "0" {
		parsedMaxUploadSize, err = humanize.ParseBytes(maxUploadSize)
		if err != nil {
			return fmt.Errorf("failed to parse max upload size: %w", err)
		}
	}

	// Size checks compare against int64 byte counts, so we transform it safely here.
	cfg.ParsedMaxUploadSize = utils.SafeUint64ToInt64(parsedMaxUploadSize)

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the scalar settings in the node tree.
	updateScalarInNode(&node, "uploads_path", cfg.UploadsPath)
	updateScalarInNode(&node, "base_url", cfg.BaseURL)
	updateScalarInNode(&node, "database_path", cfg.DatabasePath)
	updateScalarInNode(&node, "storage_backend", cfg.StorageBackend)
	updateScalarInNode(&node, "log_level", cfg.LogLevel)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile string, cfg *Config, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("uploads_path", cfg.UploadsPath)
	viper.Set("base_url", cfg.BaseURL)
	viper.Set("database_path", cfg.DatabasePath)
	viper.Set("storage_backend", cfg.StorageBackend)
	viper.Set("max_upload_size", cfg.MaxUploadSize)
	viper.Set("log_level", cfg.LogLevel)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateScalarInNode updates one top-level scalar value in the YAML node tree.
// Keys absent from the original file are left alone so that SaveConfig never
// reorders or invents entries.
func updateScalarInNode(node *yaml.Node, key, value string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == key {
			// Update the value while preserving style.
			valueNode.Value = value

			break
		}
	}
}
