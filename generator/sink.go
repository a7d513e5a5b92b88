package generator

import (
	"context"
	"fmt"
)

// OperationSink turns accepted candidates into file operations and runs
// them when the stream ends. Nothing touches the disk before End, so an
// aborted run leaves the destination untouched.
type OperationSink struct {
	opts ExecuteOptions
	ops  []Operation
}

// NewOperationSink creates a sink executing with opts. Writes are always
// forced (the resolver has already settled conflicts) and atomic.
func NewOperationSink(opts ExecuteOptions) *OperationSink {
	opts.Force = true
	opts.Atomic = true
	return &OperationSink{opts: opts}
}

// Emit queues the operation for f. Stream content is drained here.
func (s *OperationSink) Emit(_ context.Context, f *File) error {
	if f.IsDir() {
		s.ops = append(s.ops, &MkdirOp{Path: f.Path, Display: f.Relative, Mode: f.FileMode()})
		return nil
	}

	content, err := f.Bytes()
	if err != nil {
		return err
	}
	if content == nil {
		content = []byte{}
	}

	s.ops = append(s.ops, &WriteFileOp{
		Path:    f.Path,
		Display: f.Relative,
		Content: content,
		Mode:    f.FileMode(),
	})
	return nil
}

// End executes every queued operation.
func (s *OperationSink) End(ctx context.Context) error {
	if len(s.ops) == 0 {
		return nil
	}
	if err := Execute(ctx, s.ops, s.opts); err != nil {
		return fmt.Errorf("failed to write accepted files: %w", err)
	}
	return nil
}

// Operations returns the queued operations.
func (s *OperationSink) Operations() []Operation {
	return s.ops
}
