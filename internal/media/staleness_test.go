package media

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNeedsRebuild(t *testing.T) {
	dir := t.TempDir()
	srcMod := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	writeWithModTime := func(t *testing.T, name string, mod time.Time) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
		return path
	}

	t.Run("Missing output needs rebuild", func(t *testing.T) {
		if !NeedsRebuild(srcMod, filepath.Join(dir, "absent.jpg")) {
			t.Error("NeedsRebuild = false for missing output")
		}
	})

	t.Run("Older output needs rebuild", func(t *testing.T) {
		out := writeWithModTime(t, "older.jpg", srcMod.Add(-time.Hour))
		if !NeedsRebuild(srcMod, out) {
			t.Error("NeedsRebuild = false for output older than source")
		}
	})

	t.Run("Newer output is reused", func(t *testing.T) {
		out := writeWithModTime(t, "newer.jpg", srcMod.Add(time.Hour))
		if NeedsRebuild(srcMod, out) {
			t.Error("NeedsRebuild = true for output newer than source")
		}
	})

	t.Run("Equal mtime is reused", func(t *testing.T) {
		// Strictly-older comparison: an output stamped exactly at the source
		// time is current.
		out := writeWithModTime(t, "equal.jpg", srcMod)
		if NeedsRebuild(srcMod, out) {
			t.Error("NeedsRebuild = true for output with equal mtime")
		}
	})

	t.Run("Unreadable path treated as missing", func(t *testing.T) {
		if !NeedsRebuild(srcMod, filepath.Join(dir, "no", "such", "dir", "x.jpg")) {
			t.Error("NeedsRebuild = false for stat failure")
		}
	})
}
