package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Paths contains input and output directory configuration.
type Paths struct {
	// ProjectsDir holds one subdirectory per project.
	ProjectsDir string `toml:"projects_dir"`
	// OutputDir receives the derivative tree and gallery.json.
	OutputDir string `toml:"output_dir"`
	// BuildLog is the optional SQLite build-history database. Empty disables it.
	BuildLog string `toml:"build_log"`
	// MetricsFile is the optional Prometheus textfile destination. Empty disables it.
	MetricsFile string `toml:"metrics_file"`
}

// Images contains the derivative geometry and encoding settings.
type Images struct {
	ThumbMax    int `toml:"thumb_max"`
	LargeMax    int `toml:"large_max"`
	JPEGQuality int `toml:"jpeg_quality"`

	// LetterboxBackground fills the margins of the square thumbnail canvas.
	LetterboxBackground string `toml:"letterbox_background"`
	// FlattenBackground replaces transparency before JPEG encoding.
	FlattenBackground string `toml:"flatten_background"`

	ImageExtensions []string `toml:"image_extensions"`
	VideoExtensions []string `toml:"video_extensions"`
}

// Build contains execution settings.
type Build struct {
	// Workers overrides the automatic transform pool sizing when positive.
	Workers int `toml:"workers"`
	// Scaffold controls creation of missing project detail pages.
	Scaffold bool `toml:"scaffold"`
}

// Log contains logging settings.
type Log struct {
	Level string `toml:"level"`
}

// Config is the full tool configuration. It is assembled once at startup and
// treated as immutable by every component it is passed to.
type Config struct {
	Paths  Paths  `toml:"paths"`
	Images Images `toml:"images"`
	Build  Build  `toml:"build"`
	Log    Log    `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: "projects",
			OutputDir:   "generated",
		},
		Images: Images{
			ThumbMax:            720,
			LargeMax:            2200,
			JPEGQuality:         82,
			LetterboxBackground: "#ffffff",
			FlattenBackground:   "#0b0f17",
			ImageExtensions:     []string{".jpg", ".jpeg", ".png", ".webp", ".tif", ".tiff"},
			VideoExtensions:     []string{".mp4", ".webm", ".mov"},
		},
		Build: Build{
			Workers:  0,
			Scaffold: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a TOML configuration file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c Config) Validate() error {
	if c.Paths.ProjectsDir == "" {
		return fmt.Errorf("paths.projects_dir must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("paths.output_dir must not be empty")
	}
	if c.Images.ThumbMax < 1 {
		return fmt.Errorf("images.thumb_max must be positive, got %d", c.Images.ThumbMax)
	}
	if c.Images.LargeMax < 1 {
		return fmt.Errorf("images.large_max must be positive, got %d", c.Images.LargeMax)
	}
	if c.Images.JPEGQuality < 1 || c.Images.JPEGQuality > 100 {
		return fmt.Errorf("images.jpeg_quality must be in 1..100, got %d", c.Images.JPEGQuality)
	}
	if _, err := ParseColor(c.Images.LetterboxBackground); err != nil {
		return fmt.Errorf("images.letterbox_background: %w", err)
	}
	if _, err := ParseColor(c.Images.FlattenBackground); err != nil {
		return fmt.Errorf("images.flatten_background: %w", err)
	}
	if c.Build.Workers < 0 {
		return fmt.Errorf("build.workers must not be negative, got %d", c.Build.Workers)
	}
	for _, ext := range append(append([]string{}, c.Images.ImageExtensions...), c.Images.VideoExtensions...) {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

// LetterboxColor returns the parsed letterbox background.
// Validate must have accepted the configuration first.
func (c Config) LetterboxColor() color.NRGBA {
	col, _ := ParseColor(c.Images.LetterboxBackground)
	return col
}

// FlattenColor returns the parsed transparency-flattening background.
func (c Config) FlattenColor() color.NRGBA {
	col, _ := ParseColor(c.Images.FlattenBackground)
	return col
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color %q must be of the form #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q must be of the form #rrggbb", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
