package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsurePage(t *testing.T) {
	t.Run("Creates missing page", func(t *testing.T) {
		dir := t.TempDir()

		created, err := EnsurePage(dir, "lake-house", "Lake House")
		if err != nil {
			t.Fatalf("EnsurePage: %v", err)
		}
		if !created {
			t.Fatal("EnsurePage reported nothing created")
		}

		data, err := os.ReadFile(filepath.Join(dir, "index.html"))
		if err != nil {
			t.Fatalf("read page: %v", err)
		}
		html := string(data)

		for _, want := range []string{
			"<title>Lake House</title>",
			`data-slug="lake-house"`,
			"<h1>Lake House</h1>",
			"site-nav",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("page missing %q", want)
			}
		}
	})

	t.Run("Never overwrites an existing page", func(t *testing.T) {
		dir := t.TempDir()
		pagePath := filepath.Join(dir, "index.html")
		if err := os.WriteFile(pagePath, []byte("hand edited"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		created, err := EnsurePage(dir, "lake-house", "Lake House")
		if err != nil {
			t.Fatalf("EnsurePage: %v", err)
		}
		if created {
			t.Error("EnsurePage recreated an existing page")
		}

		data, err := os.ReadFile(pagePath)
		if err != nil {
			t.Fatalf("read page: %v", err)
		}
		if string(data) != "hand edited" {
			t.Error("existing page content was replaced")
		}
	})

	t.Run("Missing project dir is an error", func(t *testing.T) {
		if _, err := EnsurePage(filepath.Join(t.TempDir(), "absent"), "x", "X"); err == nil {
			t.Error("EnsurePage into missing dir succeeded")
		}
	})
}
