package media

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gallerygen/internal/logging"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

// Transformer turns one decoded source image into its thumb and large
// derivatives. All geometry and encoding settings are fixed at construction.
type Transformer struct {
	thumbMax  int
	largeMax  int
	quality   int
	letterbox color.NRGBA
	flatten   color.NRGBA
}

// NewTransformer creates a Transformer.
//
// thumbMax is the edge length of the square thumbnail canvas, largeMax the
// cap on the large derivative's longer edge, quality the JPEG quality for
// both. letterbox fills the thumbnail margins; flatten replaces transparency.
func NewTransformer(thumbMax, largeMax, quality int, letterbox, flatten color.NRGBA) *Transformer {
	return &Transformer{
		thumbMax:  thumbMax,
		largeMax:  largeMax,
		quality:   quality,
		letterbox: letterbox,
		flatten:   flatten,
	}
}

// Load decodes a source image with its orientation metadata applied. Very
// large sources go through libvips when available, which shrinks during
// decode instead of materializing the full bitmap first.
func (t *Transformer) Load(path string) (image.Image, error) {
	if VipsAvailable() {
		if dims, err := decodeDimensions(path); err == nil && max(dims.width, dims.height) > t.largeMax {
			img, err := loadShrunk(path, t.largeMax)
			if err == nil {
				return img, nil
			}
			logging.Debug("vips load failed for %s: %v, falling back to imaging", path, err)
		}
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Thumbnail produces the square letterboxed thumbnail. The source is
// flattened, contain-fitted so its longer edge equals the canvas edge, and
// composited centered onto an opaque canvas. The result is always exactly
// thumbMax x thumbMax pixels.
func (t *Transformer) Thumbnail(img image.Image) *image.NRGBA {
	flat := t.flattenAlpha(img)
	fitted := contain(flat, t.thumbMax)
	canvas := imaging.New(t.thumbMax, t.thumbMax, t.letterbox)
	return imaging.OverlayCenter(canvas, fitted, 1.0)
}

// Large produces the large derivative: downscaled proportionally when the
// longer edge exceeds largeMax, left at original size otherwise. Never
// upscales.
func (t *Transformer) Large(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if max(b.Dx(), b.Dy()) > t.largeMax {
		img = contain(img, t.largeMax)
	}
	return t.flattenAlpha(img)
}

// Save encodes a derivative as JPEG at the configured quality.
func (t *Transformer) Save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(t.quality)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// flattenAlpha composites a non-opaque image onto the flatten background.
// Opaque images are cloned unchanged.
func (t *Transformer) flattenAlpha(img image.Image) *image.NRGBA {
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return imaging.Clone(img)
	}
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), t.flatten)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// contain scales img so that its longer edge equals box, preserving aspect
// ratio. Unlike imaging.Fit this also scales small images up, matching the
// thumbnail contract of filling the bounding box along one axis.
func contain(img image.Image, box int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return imaging.New(box, box, color.NRGBA{})
	}

	scale := float64(box) / float64(max(w, h))
	nw := int(float64(w)*scale + 0.5)
	nh := int(float64(h)*scale + 0.5)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}

type dimensions struct {
	width  int
	height int
}

// decodeDimensions reads image dimensions without decoding pixel data.
func decodeDimensions(path string) (dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return dimensions{}, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", path, err)
		}
	}()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return dimensions{}, err
	}
	return dimensions{width: cfg.Width, height: cfg.Height}, nil
}
