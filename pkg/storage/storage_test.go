package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndListRuns(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{OccurredAt: base, Format: "config", Destination: "/tmp/config.json", ItemCount: 2, Items: "Prismatic Shard x1, Wood x50"},
		{OccurredAt: base.Add(time.Hour), Format: "contentpack", Destination: "/tmp/pack", ItemCount: 1, Items: "Galaxy Sword x1"},
	}
	for _, r := range runs {
		if err := db.RecordRun(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(got))
	}
	// Newest first.
	if got[0].Format != "contentpack" || got[1].Format != "config" {
		t.Fatalf("unexpected order: %v then %v", got[0].Format, got[1].Format)
	}
	if got[1].ItemCount != 2 || got[1].Items != "Prismatic Shard x1, Wood x50" {
		t.Fatalf("run not round-tripped: %+v", got[1])
	}
}

func TestListRunsLimit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		run := Run{
			OccurredAt:  time.Now().Add(time.Duration(i) * time.Minute),
			Format:      "config",
			Destination: "/tmp/config.json",
			ItemCount:   1,
			Items:       "Stone x1",
		}
		if err := db.RecordRun(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.ListRuns(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(got))
	}
}

func TestRecordRunRejectsUnknownFormat(t *testing.T) {
	db := openTestDB(t)

	err := db.RecordRun(context.Background(), Run{
		OccurredAt:  time.Now(),
		Format:      "xml",
		Destination: "/tmp/out",
	})
	if err == nil {
		t.Fatal("expected the format check constraint to reject xml")
	}
}
