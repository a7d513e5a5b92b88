package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/simonhull/firebird-suite/conflict/generator"
	"github.com/spf13/afero"
)

// SourceOptions configures a DirSource.
type SourceOptions struct {
	Walk    WalkOptions
	Streams bool // Hand out file contents as one-shot streams instead of buffers
}

type entry struct {
	path string
	rel  string
	info os.FileInfo
}

// DirSource yields the files of a staging directory as candidates, in
// lexical order. Directory entries come before their contents.
// Contents are read lazily, one file per Next call.
type DirSource struct {
	fs      afero.Fs
	entries []entry
	pos     int
	streams bool
}

// NewDirSource lists root on fsys. The root itself is not a candidate.
func NewDirSource(fsys afero.Fs, root string, opts SourceOptions) (*DirSource, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source is not a directory: %s", root)
	}

	var entries []entry
	err = Walk(fsys, root, opts.Walk, func(path string, info os.FileInfo) error {
		if path == root {
			return nil
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		entries = append(entries, entry{path: path, rel: rel, info: info})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source: %w", err)
	}

	return &DirSource{fs: fsys, entries: entries, streams: opts.Streams}, nil
}

// Len returns the number of candidates the source holds.
func (s *DirSource) Len() int {
	return len(s.entries)
}

// Next returns the next candidate, or io.EOF.
func (s *DirSource) Next(ctx context.Context) (*generator.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.entries) {
		return nil, io.EOF
	}

	e := s.entries[s.pos]
	s.pos++

	if e.info.IsDir() {
		f := generator.NewDir(e.rel)
		f.Mode = e.info.Mode().Perm()
		return f, nil
	}

	if s.streams {
		r, err := s.fs.Open(e.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", e.rel, err)
		}
		f := generator.NewStreamFile(e.rel, r)
		f.Mode = e.info.Mode().Perm()
		return f, nil
	}

	data, err := afero.ReadFile(s.fs, e.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", e.rel, err)
	}

	f := generator.NewFile(e.rel, data)
	f.Mode = e.info.Mode().Perm()
	return f, nil
}
