package project

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gallerygen/internal/logging"
)

// Discover returns the valid project slugs under dir in sorted directory
// order. Entries that are not directories are ignored; directories whose name
// is not a valid slug are skipped with a warning. An unreadable projects
// directory is an infrastructure error and aborts the build.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read projects dir %s: %w", dir, err)
	}

	var slugs []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !ValidSlug(entry.Name()) {
			logging.Warn("skipping invalid slug folder name: %s", entry.Name())
			continue
		}
		slugs = append(slugs, entry.Name())
	}

	sort.Strings(slugs)
	return slugs, nil
}
