package project

import (
	"encoding/json"
	"fmt"
	"os"

	"gallerygen/internal/media"
)

// ConfigFileName is the per-project metadata file.
const ConfigFileName = "project.json"

// Config is the typed form of project.json. Every field is optional in the
// file and defaults to its zero value; consumers never see untyped data.
type Config struct {
	Title        string `json:"title"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	ProjectType  string `json:"projectType"`
	Scope        string `json:"scope"`
	Status       string `json:"status"`
	BuildingArea string `json:"buildingArea"`
	Client       string `json:"client"`
	Notes        string `json:"notes"`
	Summary      string `json:"summary"`

	Tags []string `json:"tags"`

	// Videos maps a phase name to its config-declared video entries.
	Videos map[string][]media.RawLink `json:"videos"`
}

// LoadConfig reads and parses a project.json.
//
// A missing file is the common case and returns a zero Config with no error.
// An unreadable or malformed file returns a zero Config together with the
// error, so the caller can log a warning and continue with defaults — a bad
// config never aborts the build.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// PhaseLinks returns the config-declared video entries for a phase.
func (c Config) PhaseLinks(phase media.Phase) []media.RawLink {
	if c.Videos == nil {
		return nil
	}
	return c.Videos[string(phase)]
}
