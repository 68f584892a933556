package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.IsConfigured() {
		t.Fatalf("IsConfigured = true without an API key")
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Fatalf("BaseURL = %q", cfg.TMDB.BaseURL)
	}
	if cfg.UI.SearchDebounce != 500*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 500ms", cfg.UI.SearchDebounce)
	}
	if cfg.TMDB.PosterSize != "w500" || cfg.TMDB.BackdropSize != "original" || cfg.TMDB.ProfileSize != "w185" {
		t.Fatalf("image sizes = %q/%q/%q", cfg.TMDB.PosterSize, cfg.TMDB.BackdropSize, cfg.TMDB.ProfileSize)
	}
}

func TestLoadConfig_ReadsFileAndEnv(t *testing.T) {
	resetViper(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "marquee")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := "tmdb:\n  api_key: from-file\nui:\n  search_debounce: 250ms\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("MARQUEE_LOGGING_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "from-file" {
		t.Fatalf("APIKey = %q, want from-file", cfg.TMDB.APIKey)
	}
	if cfg.UI.SearchDebounce != 250*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 250ms", cfg.UI.SearchDebounce)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Logging.Level = %q, want env override", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvAPIKey(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MARQUEE_TMDB_API_KEY", "env-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.IsConfigured() || cfg.TMDB.APIKey != "env-key" {
		t.Fatalf("APIKey = %q, want env-key", cfg.TMDB.APIKey)
	}
}

func TestSaveConfig_RoundTrips(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "saved"
	cfg.TMDB.Timeout = 3 * time.Second
	cfg.Opener.Command = "firefox"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}
	if _, err := os.Stat(ConfigFile()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.TMDB.APIKey != "saved" || loaded.TMDB.Timeout != 3*time.Second || loaded.Opener.Command != "firefox" {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
		"":        "INFO",
	}
	for in, want := range cases {
		if got := parseLogLevel(in).String(); got != want {
			t.Errorf("parseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestSetupLogger_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "marquee.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("SetupLogger returned error: %v", err)
	}
	logger.Info("hello", "id", 5)
	_ = closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Fatalf("log file = %q, want JSON lines", data)
	}
}
