package runlog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"fappstore/pkg/database"
	"fappstore/pkg/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(db)
}

func TestRecordAndRecent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	runs := []models.SyncReport{
		{ID: "run-1", StartedAt: time.Unix(1000, 0).UTC(), Duration: 3 * time.Second, Total: 10, New: 10},
		{ID: "run-2", StartedAt: time.Unix(2000, 0).UTC(), Duration: 2 * time.Second, Total: 12, New: 2, Updated: 10, Skipped: 1, Partial: true},
	}
	for _, r := range runs {
		if err := repo.Record(ctx, r); err != nil {
			t.Fatalf("record %s: %v", r.ID, err)
		}
	}

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d runs, want 2", len(got))
	}

	// newest first
	if got[0].ID != "run-2" || got[1].ID != "run-1" {
		t.Errorf("order = [%s %s]", got[0].ID, got[1].ID)
	}
	if !got[0].Partial {
		t.Error("partial flag lost")
	}
	if got[0].Skipped != 1 || got[0].Updated != 10 {
		t.Errorf("counts lost: %+v", got[0])
	}
	if !got[0].StartedAt.Equal(time.Unix(2000, 0)) {
		t.Errorf("startedAt = %v", got[0].StartedAt)
	}
	if got[0].Duration != 2*time.Second {
		t.Errorf("duration = %v", got[0].Duration)
	}
}

func TestRecentLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		report := models.SyncReport{
			ID:        string(rune('a' + i)),
			StartedAt: time.Unix(int64(i*100), 0),
		}
		if err := repo.Record(ctx, report); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("got %d, want 3", len(got))
	}

	// out-of-range limits fall back to the default
	got, err = repo.Recent(ctx, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("default limit returned %d runs", len(got))
	}
}

func TestRecordDuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	report := models.SyncReport{ID: "dup", StartedAt: time.Unix(1000, 0)}
	if err := repo.Record(ctx, report); err != nil {
		t.Fatal(err)
	}
	if err := repo.Record(ctx, report); err == nil {
		t.Error("duplicate run id should fail the primary key")
	}
}
