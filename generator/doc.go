// Package generator resolves overwrite conflicts between generated files
// and an existing destination tree.
//
// # Features
//
//   - Per-file conflict resolution (replace, skip, replace all, abort, diff)
//   - Identical files are skipped without asking
//   - Myers line diff for file comparison
//   - Transactional writes for accepted files
//
// # Resolving a stream
//
// A Resolver is built for one destination and one run. Run feeds it
// candidates one at a time and hands accepted files to a Sink:
//
//	r, err := generator.NewResolver("out", &generator.Options{
//	    Probe:    filesystem.NewOSProbe(),
//	    Prompter: input.NewExpand(os.Stdin, os.Stdout),
//	    Logger:   output.NewLogger(os.Stdout),
//	})
//	if err != nil {
//	    return err
//	}
//
//	sink := generator.NewOperationSink(generator.ExecuteOptions{})
//	_, err = generator.Run(ctx, r, src, sink)
//	if errors.Is(err, generator.ErrAborted) {
//	    os.Exit(0)
//	}
//
// Once the operator answers "replace this and all others", the resolver
// stops probing and emits every remaining file.
//
// # Transactions
//
// The OperationSink commits all writes atomically:
//
//	tx := generator.NewTransaction()
//	tx.AddFile("file1.go", content1, 0644)
//	tx.AddFile("file2.go", content2, 0644)
//
//	if err := tx.Commit(); err != nil {
//	    // Files written so far are restored
//	    return err
//	}
package generator
