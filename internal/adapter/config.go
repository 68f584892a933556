package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	UI      UIConfig      `mapstructure:"ui"`
	Storage StorageConfig `mapstructure:"storage"`
	Opener  OpenerConfig  `mapstructure:"opener"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds metadata API configuration
type TMDBConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	PosterSize   string        `mapstructure:"poster_size"`   // e.g. "w500"
	BackdropSize string        `mapstructure:"backdrop_size"` // e.g. "original"
	ProfileSize  string        `mapstructure:"profile_size"`  // e.g. "w185"
	Timeout      time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
	Theme          string        `mapstructure:"theme"`
}

// StorageConfig holds the local store location. An empty path keeps
// favorites in memory only.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// OpenerConfig holds the command used to open URLs
type OpenerConfig struct {
	Command string   `mapstructure:"command"` // Empty uses the system handler
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			PosterSize:   "w500",
			BackdropSize: "original",
			ProfileSize:  "w185",
			Timeout:      15 * time.Second,
		},
		UI: UIConfig{
			SearchDebounce: 500 * time.Millisecond,
			Theme:          "default",
		},
		Storage: StorageConfig{
			Path: defaultStorePath(),
		},
		Opener: OpenerConfig{
			Args: []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultDataDir returns the per-user data directory for the current OS
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee")
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	return filepath.Join(defaultDataDir(), "marquee.log")
}

// defaultStorePath returns the default bbolt file path for the current OS
func defaultStorePath() string {
	return filepath.Join(defaultDataDir(), "marquee.db")
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// ConfigFile returns the path SaveConfig writes to
func ConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// setDefaults registers every key so env overrides apply even when the
// config file does not mention them.
func setDefaults(cfg *Config) {
	viper.SetDefault("tmdb.api_key", cfg.TMDB.APIKey)
	viper.SetDefault("tmdb.base_url", cfg.TMDB.BaseURL)
	viper.SetDefault("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	viper.SetDefault("tmdb.poster_size", cfg.TMDB.PosterSize)
	viper.SetDefault("tmdb.backdrop_size", cfg.TMDB.BackdropSize)
	viper.SetDefault("tmdb.profile_size", cfg.TMDB.ProfileSize)
	viper.SetDefault("tmdb.timeout", cfg.TMDB.Timeout)

	viper.SetDefault("ui.search_debounce", cfg.UI.SearchDebounce)
	viper.SetDefault("ui.theme", cfg.UI.Theme)

	viper.SetDefault("storage.path", cfg.Storage.Path)

	viper.SetDefault("opener.command", cfg.Opener.Command)
	viper.SetDefault("opener.args", cfg.Opener.Args)

	viper.SetDefault("logging.file", cfg.Logging.File)
	viper.SetDefault("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(cfg)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides, e.g. MARQUEE_TMDB_API_KEY
	viper.SetEnvPrefix("MARQUEE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("tmdb.api_key", cfg.TMDB.APIKey)
	viper.Set("tmdb.base_url", cfg.TMDB.BaseURL)
	viper.Set("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	viper.Set("tmdb.poster_size", cfg.TMDB.PosterSize)
	viper.Set("tmdb.backdrop_size", cfg.TMDB.BackdropSize)
	viper.Set("tmdb.profile_size", cfg.TMDB.ProfileSize)
	viper.Set("tmdb.timeout", cfg.TMDB.Timeout.String())

	viper.Set("ui.search_debounce", cfg.UI.SearchDebounce.String())
	viper.Set("ui.theme", cfg.UI.Theme)

	viper.Set("storage.path", cfg.Storage.Path)

	viper.Set("opener.command", cfg.Opener.Command)
	viper.Set("opener.args", cfg.Opener.Args)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	if err := viper.WriteConfigAs(ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveAPIKey updates just the API key in the configuration
func SaveAPIKey(key string) error {
	viper.Set("tmdb.api_key", key)

	if err := os.MkdirAll(defaultConfigPath(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}
