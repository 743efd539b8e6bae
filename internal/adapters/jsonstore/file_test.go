package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file reads as empty", func(t *testing.T) {
		store := NewFileStore(t.TempDir())

		records, err := store.Read(ctx, "products.json")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if records != nil {
			t.Fatalf("expected nil records, got %v", records)
		}
	})

	t.Run("empty file reads as empty", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "products.json"), nil, 0o644); err != nil {
			t.Fatal(err)
		}
		store := NewFileStore(dir)

		records, err := store.Read(ctx, "products.json")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected no records, got %d", len(records))
		}
	})

	t.Run("whitespace-only file reads as empty", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte("   \n\t"), 0o644); err != nil {
			t.Fatal(err)
		}
		store := NewFileStore(dir)

		records, err := store.Read(ctx, "products.json")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected no records, got %d", len(records))
		}
	})

	t.Run("non-array document reads as empty", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte(`{"not":"an array"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		store := NewFileStore(dir)

		records, err := store.Read(ctx, "products.json")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected no records, got %d", len(records))
		}
	})

	t.Run("malformed json fails", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte(`[{"id":`), 0o644); err != nil {
			t.Fatal(err)
		}
		store := NewFileStore(dir)

		_, err := store.Read(ctx, "products.json")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var opErr *FileOperationError
		if !errors.As(err, &opErr) {
			t.Fatalf("expected FileOperationError, got %T", err)
		}
		if opErr.Op != "parse" {
			t.Fatalf("expected parse op, got %q", opErr.Op)
		}
	})
}

func TestFileStore_WriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	// the directory does not exist yet, Write must create it
	store := NewFileStore(filepath.Join(t.TempDir(), "data"))

	records := []map[string]any{{"id": "a"}, {"id": "b"}}
	if err := store.Write(ctx, "products.json", records); err != nil {
		t.Fatalf("write: %v", err)
	}

	read, err := store.Read(ctx, "products.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(read) != 2 {
		t.Fatalf("expected 2 records, got %d", len(read))
	}
}

func TestFileStore_Backup(t *testing.T) {
	ctx := context.Background()

	t.Run("copies the current file", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte(`[{"id":"a"}]`)
		if err := os.WriteFile(filepath.Join(dir, "products.json"), content, 0o644); err != nil {
			t.Fatal(err)
		}
		store := NewFileStore(dir)

		if err := store.Backup(ctx, "products.json"); err != nil {
			t.Fatalf("backup: %v", err)
		}

		backups, err := filepath.Glob(filepath.Join(dir, "products.json.backup.*"))
		if err != nil {
			t.Fatal(err)
		}
		if len(backups) != 1 {
			t.Fatalf("expected 1 backup, got %d", len(backups))
		}
		data, err := os.ReadFile(backups[0])
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != string(content) {
			t.Fatalf("backup content mismatch: %s", data)
		}
	})

	t.Run("missing source is a no-op", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(dir)

		if err := store.Backup(ctx, "products.json"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		backups, _ := filepath.Glob(filepath.Join(dir, "products.json.backup.*"))
		if len(backups) != 0 {
			t.Fatalf("expected no backups, got %d", len(backups))
		}
	})
}
