package generator

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
)

// File is a candidate output file flowing through the resolver.
//
// Exactly one of Contents or Stream carries the content of a regular file.
// Stream-backed files can only be read once, so they are never compared
// against the destination and cannot be diffed.
type File struct {
	Relative string      // Path relative to the destination directory (display + join key)
	Path     string      // Resolved destination path (filled in by the resolver when empty)
	Contents []byte      // Buffered content
	Stream   io.Reader   // Non-seekable content, nil for buffered files
	Dir      bool        // Directory entry, passed through so downstream can create it
	Mode     fs.FileMode // Permissions for downstream writes (0 = default)
}

// NewFile creates a buffered candidate file.
func NewFile(relative string, contents []byte) *File {
	return &File{Relative: relative, Contents: contents}
}

// NewDir creates a directory candidate.
func NewDir(relative string) *File {
	return &File{Relative: relative, Dir: true}
}

// NewStreamFile creates a candidate whose content can only be read once.
func NewStreamFile(relative string, r io.Reader) *File {
	return &File{Relative: relative, Stream: r}
}

// IsDir reports whether the candidate is a directory entry.
func (f *File) IsDir() bool {
	return f.Dir
}

// IsStream reports whether the candidate content is a one-shot stream.
func (f *File) IsStream() bool {
	return f.Stream != nil
}

// String returns the candidate content as text. Stream content is not
// consumed and yields an empty string.
func (f *File) String() string {
	if f.IsStream() {
		return ""
	}
	return string(f.Contents)
}

// Bytes returns the candidate content, draining the stream if the file is
// stream-backed. After Bytes the file is buffered.
func (f *File) Bytes() ([]byte, error) {
	if !f.IsStream() {
		return f.Contents, nil
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f.Stream); err != nil {
		return nil, fmt.Errorf("failed to read stream for %s: %w", f.Relative, err)
	}
	if c, ok := f.Stream.(io.Closer); ok {
		_ = c.Close()
	}

	f.Stream = nil
	f.Contents = buf.Bytes()
	return f.Contents, nil
}

// Close releases the stream of a stream-backed file that will not be read.
// It is a no-op for buffered files and for streams already drained by Bytes.
func (f *File) Close() error {
	if !f.IsStream() {
		return nil
	}
	c, ok := f.Stream.(io.Closer)
	f.Stream = nil
	if !ok {
		return nil
	}
	return c.Close()
}

// FileMode returns the permissions downstream should use for the candidate.
func (f *File) FileMode() fs.FileMode {
	if f.Mode != 0 {
		return f.Mode.Perm()
	}
	if f.Dir {
		return 0755
	}
	return 0644
}
