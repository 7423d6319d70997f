package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gallerygen/internal/media"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing file is not an error", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "absent.json"))
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if !reflect.DeepEqual(cfg, Config{}) {
			t.Errorf("cfg = %+v, want zero value", cfg)
		}
	})

	t.Run("Full config", func(t *testing.T) {
		path := filepath.Join(dir, "project.json")
		content := `{
			"title": "Lake House",
			"location": "Tahoe, CA",
			"date": "2025-09",
			"projectType": "residential",
			"scope": "full remodel",
			"status": "completed",
			"buildingArea": "420sqm",
			"client": "private",
			"notes": "phased occupancy",
			"summary": "A lakeside retreat.",
			"tags": ["residential", "timber"],
			"videos": {
				"after": [
					"https://www.youtube.com/watch?v=abc12345",
					{"url": "https://cdn.example.com/tour.mp4", "kind": "file"}
				]
			}
		}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Title != "Lake House" || cfg.Date != "2025-09" || cfg.BuildingArea != "420sqm" {
			t.Errorf("unexpected fields in %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.Tags, []string{"residential", "timber"}) {
			t.Errorf("Tags = %v", cfg.Tags)
		}

		links := cfg.PhaseLinks(media.PhaseAfter)
		if len(links) != 2 {
			t.Fatalf("PhaseLinks(after) = %v, want 2 entries", links)
		}
		if !links[0].Bare || links[0].URL != "https://www.youtube.com/watch?v=abc12345" {
			t.Errorf("first link = %+v, want bare string entry", links[0])
		}
		if links[1].Bare || links[1].Kind != media.VideoFile {
			t.Errorf("second link = %+v, want object entry with kind file", links[1])
		}

		if got := cfg.PhaseLinks(media.PhaseBefore); got != nil {
			t.Errorf("PhaseLinks(before) = %v, want nil", got)
		}
	})

	t.Run("Malformed JSON returns zero config and error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte(`{"title": `), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err == nil {
			t.Fatal("LoadConfig of malformed file succeeded")
		}
		if !reflect.DeepEqual(cfg, Config{}) {
			t.Errorf("cfg = %+v, want zero value on parse failure", cfg)
		}
	})
}

func TestPhaseLinksNilVideos(t *testing.T) {
	var cfg Config
	if got := cfg.PhaseLinks(media.PhaseAfter); got != nil {
		t.Errorf("PhaseLinks on zero config = %v, want nil", got)
	}
}
