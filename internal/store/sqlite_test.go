package store

import (
	"context"
	"os"
	"testing"

	"github.com/starford/ansuz/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "ansuz-store-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetDocuments(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id, err := db.CreateDocument(ctx, "saved_notes", models.SavedNote{
		OriginalNote:  "water cycle raw",
		ProcessedNote: "Summary: water cycle",
		Tags:          []string{"science", "water"},
	})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	docs, err := db.GetDocuments(ctx, "saved_notes", Filter{}, 0)
	if err != nil {
		t.Fatalf("GetDocuments: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(docs))
	}
	got := docs[0]
	if got.ID != id {
		t.Errorf("id = %q, want %q", got.ID, id)
	}
	if got.OriginalNote != "water cycle raw" || got.ProcessedNote != "Summary: water cycle" {
		t.Errorf("unexpected note content: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "science" {
		t.Errorf("tags = %v", got.Tags)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp was not stamped")
	}
}

func TestGetDocuments_InsertionOrderAndLimit(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	var ids []string
	for _, text := range []string{"first", "second", "third"} {
		id, err := db.CreateDocument(ctx, "saved_notes", models.SavedNote{OriginalNote: text})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	docs, err := db.GetDocuments(ctx, "saved_notes", Filter{}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	if docs[0].ID != ids[0] || docs[1].ID != ids[1] {
		t.Errorf("order = %q, %q; want insertion order", docs[0].OriginalNote, docs[1].OriginalNote)
	}
}

func TestGetDocuments_TagFilter(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := db.CreateDocument(ctx, "saved_notes", models.SavedNote{OriginalNote: "a", Tags: []string{"biology"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateDocument(ctx, "saved_notes", models.SavedNote{OriginalNote: "b", Tags: []string{"history"}}); err != nil {
		t.Fatal(err)
	}

	docs, err := db.GetDocuments(ctx, "saved_notes", Filter{Tag: "biology"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].OriginalNote != "a" {
		t.Errorf("filtered docs = %+v", docs)
	}
}

func TestGetDocuments_CollectionsAreIsolated(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := db.CreateDocument(ctx, "saved_notes", models.SavedNote{OriginalNote: "keep"}); err != nil {
		t.Fatal(err)
	}
	docs, err := db.GetDocuments(ctx, "other", Filter{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no docs in empty collection, got %d", len(docs))
	}
}

func TestGetDocuments_NilTagsBecomeEmptySlice(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := db.CreateDocument(ctx, "saved_notes", models.SavedNote{OriginalNote: "x"}); err != nil {
		t.Fatal(err)
	}
	docs, err := db.GetDocuments(ctx, "saved_notes", Filter{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if docs[0].Tags == nil {
		t.Error("tags should be an empty slice, not nil")
	}
}
