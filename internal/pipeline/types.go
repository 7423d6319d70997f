package pipeline

import (
	"time"

	"gallerygen/internal/media"
)

// ProjectRecord is one project's entry in the gallery index.
type ProjectRecord struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Date         string   `json:"date"`
	ProjectType  string   `json:"projectType"`
	Scope        string   `json:"scope"`
	Status       string   `json:"status"`
	BuildingArea string   `json:"buildingArea"`
	Client       string   `json:"client"`
	Notes        string   `json:"notes"`
	Summary      string   `json:"summary"`
	Tags         []string `json:"tags"`

	// CoverThumb is the site-relative path of the representative thumbnail,
	// or empty when no phase has any image.
	CoverThumb string `json:"coverThumb"`

	// SortKey is the config date when present, else the slug. Consumers sort
	// by it; the index itself stays in discovery order.
	SortKey string `json:"sortKey"`

	Phases map[media.Phase]media.PhaseManifest `json:"phases"`
}

// Index is the published gallery index. Project order matches the scanner's
// sorted directory order; no sort is applied here.
type Index struct {
	Projects []ProjectRecord `json:"projects"`
}

// ProjectStats summarizes the work done for one project.
type ProjectStats struct {
	Slug     string
	Images   int // image references emitted
	Rebuilt  int // derivative files written
	Videos   int // video references emitted
	Failures int // source images dropped
}

// Summary summarizes one build run.
type Summary struct {
	Projects     []ProjectStats
	PagesCreated int
	Duration     time.Duration
}

// Totals sums the per-project statistics.
func (s *Summary) Totals() (images, rebuilt, videos, failures int) {
	for _, p := range s.Projects {
		images += p.Images
		rebuilt += p.Rebuilt
		videos += p.Videos
		failures += p.Failures
	}
	return images, rebuilt, videos, failures
}
