package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./catalogo.db" {
			t.Errorf("expected database path ./catalogo.db, got %s", config.Database.Path)
		}

		if config.Storage.Key != "@catalogo_demo_v1" {
			t.Errorf("expected storage key @catalogo_demo_v1, got %s", config.Storage.Key)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}

		if config.Log.TUIPath != "./tmp/catalogo-tui.log" {
			t.Errorf("expected TUI log path ./tmp/catalogo-tui.log, got %s", config.Log.TUIPath)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Storage.Key != defaultConfig.Storage.Key {
			t.Errorf("created config storage key doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[storage]
key = "@catalogo_test"

[log]
level = "debug"
tui_path = "/tmp/tui.log"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Storage.Key != "@catalogo_test" {
			t.Errorf("expected storage key @catalogo_test, got %s", config.Storage.Key)
		}

		if config.LogLevel() != log.DebugLevel {
			t.Errorf("expected debug log level, got %v", config.LogLevel())
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("loading a missing config file should fail")
		}
	})

	t.Run("LogLevel Fallback", func(t *testing.T) {
		config := &Config{}
		config.Log.Level = "verbose"

		if config.LogLevel() != log.InfoLevel {
			t.Errorf("unknown level should fall back to info, got %v", config.LogLevel())
		}
	})
}
