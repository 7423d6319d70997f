package pipeline

import (
	"path/filepath"

	"gallerygen/internal/logging"
	"gallerygen/internal/media"
	"gallerygen/internal/metrics"
	"gallerygen/internal/project"
)

// buildProject processes every phase of one project and assembles its index
// record. A bad project.json degrades to defaults; the returned error is
// always infrastructural.
func (b *Builder) buildProject(slug string) (ProjectRecord, ProjectStats, error) {
	projectDir := filepath.Join(b.cfg.Paths.ProjectsDir, slug)

	cfg, err := project.LoadConfig(filepath.Join(projectDir, project.ConfigFileName))
	if err != nil {
		logging.Warn("failed to parse config for %s: %v (using defaults)", slug, err)
		metrics.ConfigFallbacksTotal.Inc()
	}

	title := cfg.Title
	if title == "" {
		title = project.TitleFromSlug(slug)
	}

	stats := ProjectStats{Slug: slug}
	phases := make(map[media.Phase]media.PhaseManifest, len(media.Phases()))
	for _, phase := range media.Phases() {
		manifest, ps, err := b.processPhase(slug, projectDir, phase, cfg.PhaseLinks(phase))
		if err != nil {
			return ProjectRecord{}, stats, err
		}
		phases[phase] = manifest
		stats.Images += ps.images
		stats.Rebuilt += ps.rebuilt
		stats.Videos += ps.videos
		stats.Failures += ps.failures
	}

	tags := cfg.Tags
	if tags == nil {
		tags = []string{}
	}

	sortKey := cfg.Date
	if sortKey == "" {
		sortKey = slug
	}

	record := ProjectRecord{
		Slug:         slug,
		Title:        title,
		Location:     cfg.Location,
		Date:         cfg.Date,
		ProjectType:  cfg.ProjectType,
		Scope:        cfg.Scope,
		Status:       cfg.Status,
		BuildingArea: cfg.BuildingArea,
		Client:       cfg.Client,
		Notes:        cfg.Notes,
		Summary:      cfg.Summary,
		Tags:         tags,
		CoverThumb:   SelectCover(phases),
		SortKey:      sortKey,
		Phases:       phases,
	}
	return record, stats, nil
}
