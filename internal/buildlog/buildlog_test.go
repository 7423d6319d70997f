package buildlog

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRunLifecycle(t *testing.T) {
	log, err := Open(filepath.Join(t.TempDir(), "build.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer log.Close()

	started := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	id, err := log.StartRun(started)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if id == 0 {
		t.Fatal("StartRun returned id 0")
	}

	if err := log.AddFailure(id, "lake-house", "after", "blurry.jpg", "decode failed"); err != nil {
		t.Fatalf("AddFailure: %v", err)
	}

	stats := RunStats{
		Projects:        2,
		ImagesProcessed: 14,
		ImagesRebuilt:   5,
		VideosResolved:  3,
		Failures:        1,
	}
	if err := log.FinishRun(id, started.Add(42*time.Second), stats); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	run, err := log.LastRun()
	if err != nil {
		t.Fatalf("LastRun: %v", err)
	}
	if run == nil {
		t.Fatal("LastRun returned nil after a recorded run")
	}
	if run.ID != id {
		t.Errorf("LastRun id = %d, want %d", run.ID, id)
	}
	if run.RunStats != stats {
		t.Errorf("LastRun stats = %+v, want %+v", run.RunStats, stats)
	}
	if run.FinishedAt.IsZero() {
		t.Error("FinishedAt not recorded")
	}

	n, err := log.FailureCount(id)
	if err != nil {
		t.Fatalf("FailureCount: %v", err)
	}
	if n != 1 {
		t.Errorf("FailureCount = %d, want 1", n)
	}
}

func TestLastRunEmpty(t *testing.T) {
	log, err := Open(filepath.Join(t.TempDir(), "build.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer log.Close()

	run, err := log.LastRun()
	if err != nil {
		t.Fatalf("LastRun: %v", err)
	}
	if run != nil {
		t.Errorf("LastRun on empty log = %+v, want nil", run)
	}
}

func TestOpenBadPath(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "no", "such", "dir", "build.db")); err == nil {
		t.Error("Open into missing dir succeeded")
	}
}
