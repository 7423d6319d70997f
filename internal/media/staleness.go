package media

import (
	"os"
	"time"
)

// NeedsRebuild reports whether the derivative at outputPath must be
// (re)generated for a source last modified at sourceModTime. A derivative is
// stale when it does not exist or is older than its source. Any stat failure
// on the output is treated as "does not exist" — a missing cache entry is
// expected steady state, never an error.
//
// Staleness is purely modification-time based. Clock skew, network
// filesystems, and mtime-preserving copies can fool it; that is a documented
// limitation, not something this function tries to detect.
func NeedsRebuild(sourceModTime time.Time, outputPath string) bool {
	info, err := os.Stat(outputPath)
	if err != nil {
		return true
	}
	return info.ModTime().Before(sourceModTime)
}
