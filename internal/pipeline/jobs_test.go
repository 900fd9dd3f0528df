package pipeline

import (
	"testing"
	"time"
)

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "j1", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("j1"); got != job {
		t.Errorf("expected stored job back, got %v", got)
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %v", got)
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(time.Minute)
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-2 * time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(stale)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("stale") != nil {
		t.Errorf("expected expired job to be evicted")
	}
	if store.Get("fresh") == nil {
		t.Errorf("fresh job must survive cleanup")
	}
}

func TestJob_SetStatusUpdatesTimestamp(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}
	before := job.UpdatedAt
	job.SetStatus(StatusReading, "reading")

	if job.Status != StatusReading || job.Phase != "reading" {
		t.Errorf("status not applied: %s/%s", job.Status, job.Phase)
	}
	if !job.UpdatedAt.After(before) {
		t.Errorf("UpdatedAt not advanced")
	}
}

func TestJob_SnapshotNeverNilErrors(t *testing.T) {
	job := &Job{ID: "j1", DocID: "d1", Status: StatusQueued, Filename: "a.pdf"}

	snap := job.Snapshot()
	if snap.Errors == nil {
		t.Fatalf("snapshot errors must serialize as [], not null")
	}
	if snap.ID != "j1" || snap.DocID != "d1" || snap.Filename != "a.pdf" {
		t.Errorf("snapshot fields not copied: %+v", snap)
	}

	job.AddError("boom")
	if got := job.Snapshot().Errors; len(got) != 1 || got[0] != "boom" {
		t.Errorf("expected recorded error in snapshot, got %v", got)
	}
}

func TestNewJobID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q (%d)", id, len(id))
		}
		for _, r := range id {
			if r < '0' || r > 'Z' {
				t.Fatalf("non-base32 character %q in %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate job id %q", id)
		}
		seen[id] = true
	}
}

func TestContentHashHex(t *testing.T) {
	// SHA-256 of the empty string.
	const emptyHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := ContentHashHex(nil); got != emptyHash {
		t.Errorf("ContentHashHex(nil) = %q", got)
	}
	if ContentHashHex([]byte("a")) == ContentHashHex([]byte("b")) {
		t.Errorf("distinct inputs should hash differently")
	}
}
