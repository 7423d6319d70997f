package pipeline

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"gallerygen/internal/logging"
	"gallerygen/internal/media"
	"gallerygen/internal/metrics"

	"golang.org/x/sync/errgroup"
)

// imageResult is the outcome of one per-image unit of work. Failures are
// values collected by the phase aggregator, never panics or aborts.
type imageResult struct {
	ref     media.ImageRef
	rebuilt int
	name    string
	err     error
}

type phaseStats struct {
	images   int
	rebuilt  int
	videos   int
	failures int
}

// processPhase builds the manifest for one (project, phase) pair. Image
// transforms run concurrently on the bounded pool; results land in a slice
// indexed by source position so the manifest keeps sorted source order. The
// only error returned is infrastructural (output directories could not be
// created); per-image failures are logged and excluded from the manifest.
func (b *Builder) processPhase(slug, projectDir string, phase media.Phase, links []media.RawLink) (media.PhaseManifest, phaseStats, error) {
	images := b.scanner.ListImages(filepath.Join(projectDir, string(phase)))

	thumbDir := filepath.Join(b.cfg.Paths.OutputDir, slug, string(phase), "thumb")
	largeDir := filepath.Join(b.cfg.Paths.OutputDir, slug, string(phase), "large")
	for _, dir := range []string{thumbDir, largeDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return media.PhaseManifest{}, phaseStats{}, fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	results := make([]imageResult, len(images))
	g := new(errgroup.Group)
	g.SetLimit(b.workers)
	for i, src := range images {
		g.Go(func() error {
			results[i] = b.processImage(slug, phase, src, thumbDir, largeDir)
			return nil
		})
	}
	// Barrier: the manifest is finalized only after every unit completed.
	// Units report their failures through the results slice.
	_ = g.Wait()

	manifest := media.PhaseManifest{
		Images: []media.ImageRef{},
		Videos: []media.VideoRef{},
	}
	var stats phaseStats

	for _, res := range results {
		metrics.ImagesProcessedTotal.WithLabelValues(string(phase)).Inc()
		if res.err != nil {
			stats.failures++
			metrics.TransformFailuresTotal.Inc()
			logging.Warn("failed to process %s/%s/%s: %v", slug, phase, res.name, res.err)
			b.recordFailure(slug, phase, res.name, res.err)
			continue
		}
		manifest.Images = append(manifest.Images, res.ref)
		stats.rebuilt += res.rebuilt
	}
	stats.images = len(manifest.Images)

	// Config-declared links come first, locally discovered files after.
	for _, link := range links {
		ref, ok := media.ResolveLink(link)
		if !ok {
			logging.Debug("dropping unrecognized video link %q in %s/%s", link.URL, slug, phase)
			continue
		}
		manifest.Videos = append(manifest.Videos, ref)
		metrics.VideosResolvedTotal.WithLabelValues(string(ref.Kind)).Inc()
	}
	for _, name := range b.scanner.ListVideos(filepath.Join(projectDir, "video", string(phase))) {
		ref := media.FileRef(slug, phase, name)
		manifest.Videos = append(manifest.Videos, ref)
		metrics.VideosResolvedTotal.WithLabelValues(string(ref.Kind)).Inc()
	}
	stats.videos = len(manifest.Videos)

	return manifest, stats, nil
}

// processImage transforms one source image into its stale derivatives and
// returns its manifest reference. Current derivatives are reused untouched,
// but a reference is emitted either way.
func (b *Builder) processImage(slug string, phase media.Phase, src media.SourceImage, thumbDir, largeDir string) imageResult {
	outName := media.SafeName(src.Name)
	dstThumb := filepath.Join(thumbDir, outName)
	dstLarge := filepath.Join(largeDir, outName)

	needThumb := media.NeedsRebuild(src.ModTime, dstThumb)
	needLarge := media.NeedsRebuild(src.ModTime, dstLarge)

	res := imageResult{name: src.Name}

	if needThumb || needLarge {
		start := time.Now()

		img, err := b.transformer.Load(src.Path)
		if err != nil {
			res.err = err
			return res
		}

		if needThumb {
			if err := b.transformer.Save(b.transformer.Thumbnail(img), dstThumb); err != nil {
				res.err = err
				return res
			}
			res.rebuilt++
			metrics.DerivativesRebuiltTotal.WithLabelValues("thumb").Inc()
		}
		if needLarge {
			if err := b.transformer.Save(b.transformer.Large(img), dstLarge); err != nil {
				res.err = err
				return res
			}
			res.rebuilt++
			metrics.DerivativesRebuiltTotal.WithLabelValues("large").Inc()
		}

		metrics.TransformDuration.Observe(time.Since(start).Seconds())
		logging.Debug("rebuilt %d derivative(s) for %s/%s/%s in %v",
			res.rebuilt, slug, phase, src.Name, time.Since(start))
	}

	res.ref = media.ImageRef{
		SrcThumb: path.Join(b.urlPrefix, slug, string(phase), "thumb", outName),
		SrcLarge: path.Join(b.urlPrefix, slug, string(phase), "large", outName),
	}
	return res
}

func (b *Builder) recordFailure(slug string, phase media.Phase, file string, err error) {
	if b.log == nil || b.runID == 0 {
		return
	}
	if logErr := b.log.AddFailure(b.runID, slug, string(phase), file, err.Error()); logErr != nil {
		logging.Warn("failed to record failure in build log: %v", logErr)
	}
}
