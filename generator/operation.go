package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation is one queued change to the destination tree. Validate runs
// for every queued operation before any Execute; force skips the
// "already exists" check, which the resolver has already settled for
// emitted files.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// Stager is implemented by operations that can join a Transaction.
type Stager interface {
	Stage(tx *Transaction)
}

// WriteFileOp writes Content to Path, creating parent directories.
// Empty content is allowed, nil content is not.
type WriteFileOp struct {
	Path    string
	Display string // Path shown in descriptions (default: Path)
	Content []byte
	Mode    fs.FileMode
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("cannot write file over directory: %s", op.Path)
	case err == nil && !force:
		return fmt.Errorf("file already exists: %s", op.Path)
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Stage(tx *Transaction) {
	tx.AddFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.display(), len(op.Content))
}

func (op *WriteFileOp) display() string {
	if op.Display != "" {
		return op.Display
	}
	return op.Path
}

// MkdirOp creates a directory (and its parents). An existing directory is
// not an error.
type MkdirOp struct {
	Path    string
	Display string
	Mode    fs.FileMode
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("cannot create directory over file: %s", op.Path)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	mode := op.Mode
	if mode == 0 {
		mode = 0755
	}
	return os.MkdirAll(op.Path, mode)
}

func (op *MkdirOp) Description() string {
	name := op.Display
	if name == "" {
		name = op.Path
	}
	return fmt.Sprintf("Create %s/", name)
}
