package media

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestScanner() *Scanner {
	return NewScanner(
		[]string{".jpg", ".jpeg", ".png", ".webp", ".tif", ".tiff"},
		[]string{".mp4", ".webm", ".mov"},
	)
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestListImages(t *testing.T) {
	s := newTestScanner()

	t.Run("Sorted and filtered", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "b.jpg")
		touch(t, dir, "a.png")
		touch(t, dir, "c.JPEG") // extension matching is case-insensitive
		touch(t, dir, "notes.txt")
		touch(t, dir, "clip.mp4")
		touch(t, dir, ".hidden.jpg")
		if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}

		imgs := s.ListImages(dir)

		var names []string
		for _, img := range imgs {
			names = append(names, img.Name)
		}
		want := []string{"a.png", "b.jpg", "c.JPEG"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("ListImages names = %v, want %v", names, want)
		}

		for _, img := range imgs {
			if img.ModTime.IsZero() {
				t.Errorf("ModTime not set for %s", img.Name)
			}
			if img.Path != filepath.Join(dir, img.Name) {
				t.Errorf("Path = %q, want %q", img.Path, filepath.Join(dir, img.Name))
			}
		}
	})

	t.Run("Missing directory yields empty list", func(t *testing.T) {
		if imgs := s.ListImages(filepath.Join(t.TempDir(), "absent")); len(imgs) != 0 {
			t.Errorf("ListImages = %v, want empty", imgs)
		}
	})
}

func TestListVideos(t *testing.T) {
	s := newTestScanner()

	dir := t.TempDir()
	touch(t, dir, "walkthrough.mov")
	touch(t, dir, "aerial.mp4")
	touch(t, dir, "photo.jpg")
	touch(t, dir, "readme.md")

	got := s.ListVideos(dir)
	want := []string{"aerial.mp4", "walkthrough.mov"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListVideos = %v, want %v", got, want)
	}

	if vids := s.ListVideos(filepath.Join(dir, "absent")); len(vids) != 0 {
		t.Errorf("ListVideos of missing dir = %v, want empty", vids)
	}
}

func TestPhaseOrders(t *testing.T) {
	storage := Phases()
	want := []Phase{PhaseRenderings, PhaseBefore, PhaseDuring, PhaseAfter}
	if !reflect.DeepEqual(storage, want) {
		t.Errorf("Phases() = %v, want %v", storage, want)
	}

	priority := CoverPriority()
	wantPriority := []Phase{PhaseRenderings, PhaseAfter, PhaseDuring, PhaseBefore}
	if !reflect.DeepEqual(priority, wantPriority) {
		t.Errorf("CoverPriority() = %v, want %v", priority, wantPriority)
	}

	// Returned slices are copies; mutating them must not leak back.
	storage[0] = Phase("mutated")
	if Phases()[0] != PhaseRenderings {
		t.Error("Phases() shares backing storage with callers")
	}
}
