// Package config loads the reader's settings: site origin, refresh cadence,
// data directory, and the board registry. Precedence is defaults, then the
// TOML file, then PARKVIEW_* environment variables; command-line flags are
// applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"parkview/internal/models"
)

// Config captures everything the reader needs at startup.
type Config struct {
	BaseURL         string
	UserAgent       string
	RefreshInterval time.Duration
	DataDir         string
	Boards          []models.Board
}

const (
	defaultConfigPath     = "~/.config/parkview/config.toml"
	defaultDataDir        = "~/.local/share/parkview"
	defaultBaseURL        = "https://www.clien.net"
	defaultRefreshSeconds = 10
)

// Load locates and parses the config file, falling back to defaults when it
// is missing. An empty path means the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:         defaultBaseURL,
		RefreshInterval: defaultRefreshSeconds * time.Second,
		DataDir:         mustExpand(defaultDataDir),
		Boards:          models.DefaultBoards(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL        string `toml:"base_url"`
		UserAgent      string `toml:"user_agent"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		DataDir        string `toml:"data_dir"`
		Boards         []struct {
			Name string `toml:"name"`
			Path string `toml:"path"`
		} `toml:"boards"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	if raw.RefreshSeconds > 0 {
		cfg.RefreshInterval = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
	}

	var boards []models.Board
	for _, b := range raw.Boards {
		name := strings.TrimSpace(b.Name)
		path := strings.TrimSpace(b.Path)
		if name == "" || path == "" {
			continue
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		boards = append(boards, models.Board{Name: name, Path: path})
	}
	if len(boards) > 0 {
		cfg.Boards = boards
	}

	applyEnv(&cfg)
	return cfg, nil
}

// DBPath returns the location of the read-history database.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "parkview.db")
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PARKVIEW_BASE_URL")); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("PARKVIEW_DATA_DIR")); v != "" {
		cfg.DataDir = mustExpand(v)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
