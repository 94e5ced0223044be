package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"parkview/internal/models"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARKVIEW_BASE_URL", "")
	t.Setenv("PARKVIEW_DATA_DIR", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://www.clien.net" {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.RefreshInterval != 10*time.Second {
		t.Errorf("RefreshInterval = %v, want 10s", cfg.RefreshInterval)
	}
	if len(cfg.Boards) == 0 {
		t.Fatal("Boards is empty, want built-in registry")
	}
	if cfg.Boards[0].Path != "/service/board/park" {
		t.Errorf("Boards[0].Path = %q, want /service/board/park", cfg.Boards[0].Path)
	}
	if !strings.Contains(cfg.DataDir, "parkview") {
		t.Errorf("DataDir = %q, want path under parkview", cfg.DataDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv("PARKVIEW_BASE_URL", "")
	t.Setenv("PARKVIEW_DATA_DIR", "")

	path := writeConfig(t, `
base_url = "  https://board.example.com/  "
user_agent = " custom-agent/2.0 "
refresh_seconds = 30
data_dir = "/var/lib/parkview"

[[boards]]
name = "news"
path = "/service/board/news"

[[boards]]
name = "deals"
path = "service/board/jirum"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://board.example.com" {
		t.Errorf("BaseURL = %q, want trimmed origin without trailing slash", cfg.BaseURL)
	}
	if cfg.UserAgent != "custom-agent/2.0" {
		t.Errorf("UserAgent = %q, want trimmed value", cfg.UserAgent)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("RefreshInterval = %v, want 30s", cfg.RefreshInterval)
	}
	if len(cfg.Boards) != 2 {
		t.Fatalf("len(Boards) = %d, want 2", len(cfg.Boards))
	}
	if cfg.Boards[1].Path != "/service/board/jirum" {
		t.Errorf("Boards[1].Path = %q, want leading slash added", cfg.Boards[1].Path)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARKVIEW_BASE_URL", "")
	t.Setenv("PARKVIEW_DATA_DIR", "")

	path := writeConfig(t, `
base_url = "   "
refresh_seconds = 0

[[boards]]
name = ""
path = "/service/board/park"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://www.clien.net" {
		t.Errorf("BaseURL = %q, want default for blank value", cfg.BaseURL)
	}
	if cfg.RefreshInterval != 10*time.Second {
		t.Errorf("RefreshInterval = %v, want default for zero value", cfg.RefreshInterval)
	}
	if len(cfg.Boards) != len(models.DefaultBoards()) {
		t.Errorf("len(Boards) = %d, want built-in registry when no entry is valid", len(cfg.Boards))
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
base_url = "https://file.example.com"
data_dir = "/tmp/from-file"
`)
	t.Setenv("PARKVIEW_BASE_URL", "https://env.example.com/")
	t.Setenv("PARKVIEW_DATA_DIR", filepath.Join(t.TempDir(), "from-env"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env override", cfg.BaseURL)
	}
	if !strings.HasSuffix(cfg.DataDir, "from-env") {
		t.Errorf("DataDir = %q, want env override", cfg.DataDir)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `base_url = [broken`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse failure")
	} else if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Load() error = %v, want parse config wrapping", err)
	}
}

func TestDBPath(t *testing.T) {
	cfg := Config{DataDir: "/data/parkview"}
	want := filepath.Join("/data/parkview", "parkview.db")
	if got := cfg.DBPath(); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
}

func TestExpandPath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/.config/parkview/config.toml")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	want := filepath.Join(home, ".config", "parkview", "config.toml")
	if got != want {
		t.Errorf("expandPath() = %q, want %q", got, want)
	}
}

func TestExpandPath_Empty(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatal("expandPath() error = nil, want failure for empty path")
	}
}
