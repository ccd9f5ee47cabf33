// Package config loads optional generator settings from observer.toml.
//
// The tool runs fine with no config file at all; the file exists for
// tournament organizers who keep their content tree somewhere non-standard
// or want a different overlay typeface.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "observer.toml"

// Config holds generator settings.
type Config struct {
	// ContentRoot is the directory holding league/season/division trees.
	ContentRoot string `toml:"content_root"`

	// OutputRoot is where generated assets land. Empty means
	// <content_root>/generated.
	OutputRoot string `toml:"output_root"`

	// Workers bounds concurrent logo analysis. Zero means GOMAXPROCS.
	Workers int `toml:"workers"`

	Overlay OverlayConfig `toml:"overlay"`
}

// OverlayConfig controls the slot-number stamp.
type OverlayConfig struct {
	// Fonts is the preferred font file list, tried in order. Empty uses the
	// builtin preference list.
	Fonts []string `toml:"fonts"`

	// FontSize is the point size of the slot number. Zero uses the default.
	FontSize float64 `toml:"font_size"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{ContentRoot: "content"}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned so the config file stays optional.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.ContentRoot == "" {
		cfg.ContentRoot = Default().ContentRoot
	}
	return cfg, nil
}
