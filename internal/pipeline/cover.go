package pipeline

import "gallerygen/internal/media"

// SelectCover picks the representative thumbnail for a project: the first
// image of the first non-empty phase in priority order (renderings, after,
// during, before). Returns empty when no phase has any image.
func SelectCover(phases map[media.Phase]media.PhaseManifest) string {
	for _, phase := range media.CoverPriority() {
		if manifest, ok := phases[phase]; ok && len(manifest.Images) > 0 {
			return manifest.Images[0].SrcThumb
		}
	}
	return ""
}
