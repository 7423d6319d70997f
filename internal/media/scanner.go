package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gallerygen/internal/logging"
)

// Scanner enumerates recognized media files in deterministic order.
type Scanner struct {
	imageExts map[string]bool
	videoExts map[string]bool
}

// NewScanner creates a Scanner recognizing the given extensions.
// Extensions are matched case-insensitively and must include the dot.
func NewScanner(imageExts, videoExts []string) *Scanner {
	return &Scanner{
		imageExts: extSet(imageExts),
		videoExts: extSet(videoExts),
	}
}

func extSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}

// ListImages returns the recognized image files in dir, sorted by name, with
// their modification times. A missing directory yields an empty list; an
// unreadable entry is skipped with a warning.
func (s *Scanner) ListImages(dir string) []SourceImage {
	var images []SourceImage
	for _, entry := range s.listFiles(dir, s.imageExts) {
		info, err := entry.Info()
		if err != nil {
			logging.Warn("skipping %s: %v", filepath.Join(dir, entry.Name()), err)
			continue
		}
		images = append(images, SourceImage{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			ModTime: info.ModTime(),
		})
	}
	return images
}

// ListVideos returns the names of recognized video files in dir, sorted.
func (s *Scanner) ListVideos(dir string) []string {
	var names []string
	for _, entry := range s.listFiles(dir, s.videoExts) {
		names = append(names, entry.Name())
	}
	return names
}

func (s *Scanner) listFiles(dir string, exts map[string]bool) []os.DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Phase directories are optional; absence is the common case.
		return nil
	}

	var files []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if exts[ext] {
			files = append(files, entry)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})
	return files
}
