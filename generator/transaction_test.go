package generator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTransaction_Success(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "file1.txt"), []byte("content1"), 0644)
	tx.AddFile(filepath.Join(tempDir, "nested", "file2.txt"), []byte("content2"), 0600)

	if tx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tx.Len())
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	content1, err := os.ReadFile(filepath.Join(tempDir, "file1.txt"))
	if err != nil || string(content1) != "content1" {
		t.Error("file1.txt not written correctly")
	}

	info, err := os.Stat(filepath.Join(tempDir, "nested", "file2.txt"))
	if err != nil {
		t.Fatalf("file2.txt not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("file2.txt mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestTransaction_RollbackRemovesNewFiles(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "file1.txt"), []byte("content1"), 0644)
	tx.AddFile(filepath.Join(tempDir, "\x00invalid", "file2.txt"), []byte("content2"), 0644)

	if err := tx.Commit(); err == nil {
		t.Fatal("Expected commit to fail with invalid path")
	}

	if _, err := os.Stat(filepath.Join(tempDir, "file1.txt")); !os.IsNotExist(err) {
		t.Error("file1.txt should have been removed")
	}
}

func TestTransaction_RollbackRestoresOverwrittenFiles(t *testing.T) {
	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "existing.txt")
	if err := os.WriteFile(existing, []byte("keep me"), 0600); err != nil {
		t.Fatal(err)
	}

	tx := NewTransaction()
	tx.AddFile(existing, []byte("replacement"), 0644)
	tx.AddFile(filepath.Join(tempDir, "\x00invalid"), []byte("x"), 0644)

	if err := tx.Commit(); err == nil {
		t.Fatal("Expected commit to fail with invalid path")
	}

	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("existing.txt missing after rollback: %v", err)
	}
	if string(content) != "keep me" {
		t.Errorf("existing.txt = %q, want original content", content)
	}
}

func TestTransaction_CannotCommitTwice(t *testing.T) {
	tx := NewTransaction()
	tx.AddFile(filepath.Join(t.TempDir(), "file1.txt"), []byte("content1"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("First commit failed: %v", err)
	}
	if err := tx.Commit(); err == nil {
		t.Fatal("Expected second commit to fail")
	}
}
