package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gallerygen/internal/buildlog"
	"gallerygen/internal/config"
	"gallerygen/internal/logging"
	"gallerygen/internal/media"
	"gallerygen/internal/metrics"
	"gallerygen/internal/project"
	"gallerygen/internal/scaffold"
	"gallerygen/internal/workers"
)

// IndexFileName is the aggregated gallery index inside the output dir.
const IndexFileName = "gallery.json"

// transformWorkerCap bounds the pool even on large machines; transforms are
// memory hungry and the wins flatten out well before this.
const transformWorkerCap = 16

// Builder runs the full gallery build.
type Builder struct {
	cfg         config.Config
	scanner     *media.Scanner
	transformer *media.Transformer
	workers     int
	urlPrefix   string

	log   *buildlog.Log // nil when build history is disabled
	runID int64
}

// New creates a Builder for the given configuration. log may be nil.
func New(cfg config.Config, log *buildlog.Log) *Builder {
	return &Builder{
		cfg:     cfg,
		scanner: media.NewScanner(cfg.Images.ImageExtensions, cfg.Images.VideoExtensions),
		transformer: media.NewTransformer(
			cfg.Images.ThumbMax,
			cfg.Images.LargeMax,
			cfg.Images.JPEGQuality,
			cfg.LetterboxColor(),
			cfg.FlattenColor(),
		),
		workers:   workers.ForMixed(transformWorkerCap, cfg.Build.Workers),
		urlPrefix: "/" + filepath.Base(filepath.Clean(cfg.Paths.OutputDir)),
		log:       log,
	}
}

// Build runs one full pass: discover projects, transform stale derivatives,
// assemble the index, write it, and scaffold missing detail pages. The
// returned error is infrastructural and means the build must exit non-zero;
// per-file and per-config failures are recovered and reflected in the
// Summary instead.
func (b *Builder) Build() (*Summary, error) {
	start := time.Now()
	b.startRun(start)

	if err := os.MkdirAll(b.cfg.Paths.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", b.cfg.Paths.OutputDir, err)
	}

	slugs, err := project.Discover(b.cfg.Paths.ProjectsDir)
	if err != nil {
		return nil, err
	}
	logging.Info("building %d project(s) with %d worker(s)", len(slugs), b.workers)

	index := Index{Projects: []ProjectRecord{}}
	summary := &Summary{}

	for _, slug := range slugs {
		record, stats, err := b.buildProject(slug)
		if err != nil {
			return nil, err
		}
		index.Projects = append(index.Projects, record)
		summary.Projects = append(summary.Projects, stats)

		if b.cfg.Build.Scaffold {
			created, err := scaffold.EnsurePage(filepath.Join(b.cfg.Paths.ProjectsDir, slug), slug, record.Title)
			if err != nil {
				logging.Warn("failed to scaffold detail page for %s: %v", slug, err)
			} else if created {
				summary.PagesCreated++
				logging.Info("created detail page for %s", slug)
			}
		}
	}

	if err := b.writeIndex(index); err != nil {
		return nil, err
	}

	summary.Duration = time.Since(start)
	b.observeBuild(index, summary)
	b.finishRun(index, summary)

	logging.Info("wrote %s with %d project(s) in %v",
		filepath.Join(b.cfg.Paths.OutputDir, IndexFileName), len(index.Projects), summary.Duration)
	return summary, nil
}

func (b *Builder) writeIndex(index Index) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	path := filepath.Join(b.cfg.Paths.OutputDir, IndexFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}

func (b *Builder) observeBuild(index Index, summary *Summary) {
	metrics.ProjectsIndexed.Set(float64(len(index.Projects)))
	metrics.BuildDurationSeconds.Set(summary.Duration.Seconds())
	metrics.BuildLastRunTimestamp.Set(float64(time.Now().Unix()))
}

func (b *Builder) startRun(start time.Time) {
	if b.log == nil {
		return
	}
	id, err := b.log.StartRun(start)
	if err != nil {
		logging.Warn("build log unavailable: %v", err)
		return
	}
	b.runID = id
}

func (b *Builder) finishRun(index Index, summary *Summary) {
	if b.log == nil || b.runID == 0 {
		return
	}
	images, rebuilt, videos, failures := summary.Totals()
	stats := buildlog.RunStats{
		Projects:        len(index.Projects),
		ImagesProcessed: images,
		ImagesRebuilt:   rebuilt,
		VideosResolved:  videos,
		Failures:        failures,
	}
	if err := b.log.FinishRun(b.runID, time.Now(), stats); err != nil {
		logging.Warn("failed to finish build log run: %v", err)
	}
}
