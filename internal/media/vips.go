package media

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"gallerygen/internal/logging"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/disintegration/imaging"
)

var (
	vipsMu        sync.Mutex
	vipsStarted   bool
	vipsAvailable bool
)

// InitVips initializes libvips. Call once at startup; transforms fall back to
// pure-Go decoding when it was never called.
func InitVips() {
	vipsMu.Lock()
	defer vipsMu.Unlock()

	if vipsStarted {
		return
	}

	vips.LoggingSettings(func(domain string, level vips.LogLevel, msg string) {
		switch level {
		case vips.LogLevelError, vips.LogLevelCritical:
			logging.Error("[%s] %s", domain, msg)
		case vips.LogLevelWarning:
			logging.Warn("[%s] %s", domain, msg)
		default:
			logging.Debug("[%s] %s", domain, msg)
		}
	}, vips.LogLevelWarning)

	vips.Startup(&vips.Config{
		ConcurrencyLevel: 1,                // workers parallelize across images, not within one
		MaxCacheMem:      50 * 1024 * 1024, // 50MB operation cache
		MaxCacheSize:     100,
	})

	vipsStarted = true
	vipsAvailable = true
	logging.Info("libvips initialized (version: %s)", vips.Version)
}

// ShutdownVips releases libvips resources.
func ShutdownVips() {
	vipsMu.Lock()
	defer vipsMu.Unlock()

	if vipsStarted {
		vips.Shutdown()
		vipsStarted = false
		vipsAvailable = false
	}
}

// VipsAvailable reports whether libvips is initialized.
func VipsAvailable() bool {
	vipsMu.Lock()
	defer vipsMu.Unlock()
	return vipsAvailable
}

// loadShrunk loads an image through libvips with decode-time shrinking so the
// longer edge does not exceed maxEdge. Much cheaper than decoding the full
// bitmap for very large sources.
func loadShrunk(path string, maxEdge int) (image.Image, error) {
	ref, err := vips.LoadImageFromFile(path, vips.NewImportParams())
	if err != nil {
		return nil, fmt.Errorf("vips load: %w", err)
	}
	defer ref.Close()

	logging.Debug("vips loaded %s: %dx%d, shrinking to fit %d",
		filepath.Base(path), ref.Width(), ref.Height(), maxEdge)

	if err := ref.Thumbnail(maxEdge, maxEdge, vips.InterestingNone); err != nil {
		return nil, fmt.Errorf("vips thumbnail: %w", err)
	}

	// Near-lossless intermediate; final quality is applied at Save time.
	buf, _, err := ref.ExportJpeg(&vips.JpegExportParams{
		Quality:        95,
		OptimizeCoding: true,
	})
	if err != nil {
		return nil, fmt.Errorf("vips export: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(buf), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode vips output: %w", err)
	}
	return img, nil
}
