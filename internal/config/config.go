package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"udim-splitter/internal/palette"
)

// Config holds all configurable paths and split settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Split settings
	MinColorDist float64 `json:"min_color_dist"`
	Seed         uint64  `json:"seed"` // 0 = non-reproducible colors
	Workers      int     `json:"workers"`

	// Preview settings
	SkipPreviews  bool   `json:"skip_previews"`
	PreviewSize   int    `json:"preview_size"` // pixels per tile unit
	Supersample   int    `json:"supersample"`
	PreviewFormat string `json:"preview_format"` // webp or tga
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir     string
	OutputDir    string
	MinColorDist float64
	Seed         uint64
	Workers      int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.MinColorDist > 0 {
		c.MinColorDist = flags.MinColorDist
	}
	if flags.Seed > 0 {
		c.Seed = flags.Seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.InputDir == "" {
		c.InputDir, _ = os.Getwd()
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "udim-split")
	}
	if c.MinColorDist <= 0 {
		c.MinColorDist = palette.DefaultMinDist
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.PreviewFormat == "" {
		c.PreviewFormat = "webp"
	}
}
