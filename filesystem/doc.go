// Package filesystem connects the conflict resolver to real (or in-memory)
// file trees.
//
// # Overview
//
// Everything here works on an afero.Fs, so callers can use the OS
// filesystem in production and afero.NewMemMapFs in tests:
//   - Probe: existence/type checks and text reads of destination paths
//   - DirSource: walks a staging directory and yields candidate files
//   - Walk: traversal that skips .git, node_modules, vendor and hidden files
//
// # Usage
//
// Feed a staging tree through a resolver:
//
//	fsys := afero.NewOsFs()
//	src, err := filesystem.NewDirSource(fsys, "build/generated", filesystem.SourceOptions{})
//	if err != nil {
//	    return err
//	}
//
//	r, err := generator.NewResolver(".", &generator.Options{
//	    Probe:    filesystem.NewProbe(fsys),
//	    Prompter: prompter,
//	})
//
// Custom walk with ignore patterns:
//
//	err := filesystem.Walk(fsys, ".", filesystem.WalkOptions{
//	    IgnoreDirs:     []string{".git", "tmp"},
//	    IgnorePatterns: []string{"*.tmp", "*.bak"},
//	}, func(path string, info os.FileInfo) error {
//	    // Process file
//	    return nil
//	})
package filesystem
