package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Transaction is a batch of file writes applied all together or not at all.
type Transaction struct {
	writes    []stagedWrite
	committed bool
}

type stagedWrite struct {
	path    string
	content []byte
	mode    os.FileMode
}

// snapshot is the state of a path before the transaction touched it.
type snapshot struct {
	path    string
	existed bool
	content []byte
	mode    fs.FileMode
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

// AddFile stages a write. Nothing touches the disk before Commit.
func (t *Transaction) AddFile(path string, content []byte, mode os.FileMode) {
	t.writes = append(t.writes, stagedWrite{
		path:    path,
		content: content,
		mode:    mode,
	})
}

// Len returns the number of staged writes.
func (t *Transaction) Len() int {
	return len(t.writes)
}

// Commit writes all staged files to disk.
// If any write fails, files written so far are restored: overwritten files
// get their previous content back, new files are removed.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}

	done := make([]snapshot, 0, len(t.writes))

	for _, w := range t.writes {
		snap, err := takeSnapshot(w.path)
		if err != nil {
			t.rollback(done)
			return err
		}
		done = append(done, snap)

		if err := w.apply(); err != nil {
			t.rollback(done)
			return err
		}
	}

	t.committed = true
	return nil
}

func (w stagedWrite) apply() error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(w.path, w.content, w.mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", w.path, err)
	}
	return nil
}

func takeSnapshot(path string) (snapshot, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return snapshot{path: path}, nil
	}
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to back up %s: %w", path, err)
	}

	return snapshot{path: path, existed: true, content: content, mode: info.Mode().Perm()}, nil
}

// rollback restores snapshots in reverse order. Best effort.
func (t *Transaction) rollback(done []snapshot) {
	for i := len(done) - 1; i >= 0; i-- {
		s := done[i]
		if s.existed {
			_ = os.WriteFile(s.path, s.content, s.mode)
		} else {
			_ = os.Remove(s.path)
		}
	}
}
