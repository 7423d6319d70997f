package media

import "time"

// Phase is one stage of a project's documentation. The storage order fixes
// directory layout and processing order; cover selection uses its own
// priority order (see CoverPriority).
type Phase string

const (
	// PhaseRenderings holds pre-construction renderings.
	PhaseRenderings Phase = "renderings"
	// PhaseBefore holds photos taken before construction.
	PhaseBefore Phase = "before"
	// PhaseDuring holds photos taken during construction.
	PhaseDuring Phase = "during"
	// PhaseAfter holds photos taken after completion.
	PhaseAfter Phase = "after"
)

var phaseOrder = [...]Phase{PhaseRenderings, PhaseBefore, PhaseDuring, PhaseAfter}

var coverPriority = [...]Phase{PhaseRenderings, PhaseAfter, PhaseDuring, PhaseBefore}

// Phases returns the phases in storage and processing order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder[:])
	return out
}

// CoverPriority returns the phases in cover-selection priority order.
func CoverPriority() []Phase {
	out := make([]Phase, len(coverPriority))
	copy(out, coverPriority[:])
	return out
}

// SourceImage is a filesystem reference to one original image.
type SourceImage struct {
	// Path is the full path to the source file.
	Path string
	// Name is the base file name.
	Name string
	// ModTime is the source's modification time, used for staleness checks.
	ModTime time.Time
}

// ImageRef references the two derivatives produced from one source image.
type ImageRef struct {
	SrcThumb string `json:"srcThumb"`
	SrcLarge string `json:"srcLarge"`
	Alt      string `json:"alt"`
}

// VideoKind distinguishes hosted embeds from local video files.
type VideoKind string

const (
	// VideoEmbed is a player-ready URL for a hosted video.
	VideoEmbed VideoKind = "embed"
	// VideoFile is a site-relative path to a local video file.
	VideoFile VideoKind = "file"
)

// VideoRef is a normalized video reference.
type VideoRef struct {
	Kind VideoKind `json:"kind"`
	URL  string    `json:"url"`
}

// PhaseManifest lists the media of one (project, phase) pair. Image order is
// the sorted source order; video order is config-declared links first, then
// locally discovered files.
type PhaseManifest struct {
	Images []ImageRef `json:"images"`
	Videos []VideoRef `json:"videos"`
}
