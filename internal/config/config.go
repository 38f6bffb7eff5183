package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// UploadDefaults defines the metadata applied to videos that have no
// sidecar metadata of their own.
type UploadDefaults struct {
	Privacy     string   `mapstructure:"privacy"`
	CategoryID  string   `mapstructure:"category_id"`
	Tags        []string `mapstructure:"tags"`
	Description string   `mapstructure:"description"`
}

// TubeflowConfig defines the configuration for Tubeflow.
type TubeflowConfig struct {
	// VideosRoot is the directory scanned for video files to upload.
	VideosRoot string `mapstructure:"videos_root"`

	// ClientSecretPath points at the OAuth client secret JSON downloaded
	// from the Google API console.
	ClientSecretPath string `mapstructure:"client_secret_path"`
	TokenPath        string `mapstructure:"token_path"`
	LedgerPath       string `mapstructure:"ledger_path"`

	PollInterval time.Duration `mapstructure:"poll_interval"`

	Defaults UploadDefaults `mapstructure:"defaults"`

	// ArchiveMode pairs each video with a sidecar JSON file sharing its
	// numeric ID prefix for richer title/description/thumbnail data.
	ArchiveMode bool `mapstructure:"archive_mode"`

	// AutoPlaylist files each upload into a playlist named after the
	// video's source subfolder.
	AutoPlaylist    bool   `mapstructure:"auto_playlist"`
	DefaultPlaylist string `mapstructure:"default_playlist"`

	// RemoteDedupe cross-checks derived titles against the channel's
	// existing uploads before uploading.
	RemoteDedupe bool `mapstructure:"remote_dedupe"`

	WebhookURL string `mapstructure:"webhook_url"`

	path string `mapstructure:"-"`
}

func (c *TubeflowConfig) Validate() error {
	// Check that at least a base set of fields have values.
	if c.VideosRoot == "" {
		return fmt.Errorf("missing videos_root (%s)", c.path)
	}
	if c.ClientSecretPath == "" {
		return fmt.Errorf("missing client_secret_path (%s)", c.path)
	}
	if _, err := os.Stat(c.ClientSecretPath); err != nil {
		return fmt.Errorf("client secret not readable: %w", err)
	}
	return nil
}

// ConfigDir returns the directory holding the config file; the token and
// ledger files default to living alongside it.
func (c *TubeflowConfig) ConfigDir() string {
	return filepath.Dir(c.path)
}

// getConfigPath determines where to read the config file from.
func getConfigPath(configPathFlag string) (string, error) {
	// Prefer user-specified config file path.
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	// Fall back to user config dir.
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tubeflow", "config.toml"), nil
	}
	return "", fmt.Errorf("unable to determine config file path")
}

// LoadConfig reads the config file.
func LoadConfig(configPathFlag string) (TubeflowConfig, error) {
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return TubeflowConfig{}, err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// Allow users to override config values with environment variables.
	// In particular, useful for the webhook URL and the local paths.
	v.SetEnvPrefix("TUBEFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("poll_interval", 15*time.Minute)
	v.SetDefault("remote_dedupe", true)
	v.SetDefault("default_playlist", "Uploads")
	v.SetDefault("defaults.privacy", "private")
	v.SetDefault("defaults.category_id", "22")
	v.SetDefault("defaults.description", "Uploaded by tubeflow")

	if err := v.ReadInConfig(); err != nil {
		return TubeflowConfig{}, fmt.Errorf("error reading (%s): %w", path, err)
	}
	config := TubeflowConfig{path: path}
	if err := v.Unmarshal(&config); err != nil {
		return TubeflowConfig{}, fmt.Errorf("error unmarshaling (%s): %w", path, err)
	}

	configDir := filepath.Dir(path)
	if config.TokenPath == "" {
		config.TokenPath = filepath.Join(configDir, "youtube_token.json")
	}
	if config.LedgerPath == "" {
		config.LedgerPath = filepath.Join(configDir, "upload_ledger.json")
	}

	return config, nil
}
