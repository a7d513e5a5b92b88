package filesystem

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// DefaultIgnoreDirs are directory names never descended into.
var DefaultIgnoreDirs = []string{
	"node_modules", "vendor", ".git", ".svn", ".hg",
	".idea", ".vscode", ".vs",
}

// WalkOptions controls which entries Walk reports.
type WalkOptions struct {
	IgnoreDirs     []string // Directory names to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // filepath.Match patterns on file base names, e.g. "*.tmp"
	IncludeHidden  bool     // Report dot files and descend into dot directories
}

// Walk visits the tree under root on fsys in lexical order. The root itself
// is always visited. Returning filepath.SkipDir from visit skips a directory.
func Walk(fsys afero.Fs, root string, opts WalkOptions, visit func(path string, info os.FileInfo) error) error {
	if len(opts.IgnoreDirs) == 0 {
		opts.IgnoreDirs = DefaultIgnoreDirs
	}

	return afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path != root && opts.excluded(info) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		return visit(path, info)
	})
}

func (o WalkOptions) excluded(info os.FileInfo) bool {
	name := info.Name()
	if !o.IncludeHidden && strings.HasPrefix(name, ".") {
		return true
	}
	if info.IsDir() {
		return slices.Contains(o.IgnoreDirs, name)
	}
	return slices.ContainsFunc(o.IgnorePatterns, func(pattern string) bool {
		ok, _ := filepath.Match(pattern, name)
		return ok
	})
}
