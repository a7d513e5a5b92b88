package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"unicode/utf8"

	"github.com/simonhull/firebird-suite/conflict/generator"
	"github.com/spf13/afero"
)

// ErrNotText is returned by ReadText when a file is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Probe inspects destination paths on an afero filesystem.
type Probe struct {
	fs afero.Fs
}

// NewProbe creates a probe on the given filesystem.
func NewProbe(fsys afero.Fs) *Probe {
	return &Probe{fs: fsys}
}

// NewOSProbe creates a probe on the real filesystem.
func NewOSProbe() *Probe {
	return NewProbe(afero.NewOsFs())
}

// Stat reports whether path exists and whether it is a directory.
// A missing path is not an error, nor is a path below a regular file.
// Other failures, such as permission errors, are returned.
func (p *Probe) Stat(path string) (generator.Status, error) {
	info, err := p.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return generator.Status{}, nil
	}
	if err != nil {
		return generator.Status{}, err
	}
	return generator.Status{Exists: true, IsDir: info.IsDir()}, nil
}

// ReadText reads path as UTF-8 text.
func (p *Probe) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrNotText, path)
	}
	return string(data), nil
}
