package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Atomic bool      // Commit staged writes through a Transaction (rollback on failure)
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute runs operations with validation
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if opts.DryRun {
		for _, op := range ops {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
		}
		return nil
	}

	if opts.Atomic {
		return executeAtomic(ctx, ops, opts.Writer)
	}

	// Phase 2: Execute and report
	for _, op := range ops {
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return nil
}

// executeAtomic runs non-stageable operations first (directories), then
// commits every staged write in one transaction.
func executeAtomic(ctx context.Context, ops []Operation, w io.Writer) error {
	tx := NewTransaction()
	var staged []Operation

	for _, op := range ops {
		if s, ok := op.(Stager); ok {
			s.Stage(tx)
			staged = append(staged, op)
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(w, "✓ %s\n", op.Description())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	for _, op := range staged {
		fmt.Fprintf(w, "✓ %s\n", op.Description())
	}

	return nil
}
