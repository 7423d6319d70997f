package media

import (
	"path/filepath"
	"regexp"
	"strings"
)

// OutputExt is the extension of every generated derivative.
const OutputExt = ".jpg"

// fallbackStem names outputs whose source stem normalizes to nothing.
const fallbackStem = "img"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// SafeName derives the deterministic derivative file name for a source file
// name: the stem is trimmed, whitespace runs become single hyphens, characters
// outside [A-Za-z0-9_-] are removed, and the result gets the JPEG output
// extension. An empty normalized stem falls back to "img". The mapping is a
// pure function of the input, so rebuilding never changes output paths.
func SafeName(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	stem = whitespaceRun.ReplaceAllString(strings.TrimSpace(stem), "-")
	stem = disallowed.ReplaceAllString(stem, "")
	if stem == "" {
		stem = fallbackStem
	}
	return stem + OutputExt
}
