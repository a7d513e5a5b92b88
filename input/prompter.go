package input

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/firebird-suite/conflict/generator"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Prompter kinds accepted by New.
const (
	KindExpand = "expand"
	KindMenu   = "menu"
	KindSelect = "select"
)

// Kinds lists the supported prompter kinds.
var Kinds = []string{KindExpand, KindMenu, KindSelect}

// New builds the prompter named by kind. Full-screen prompters need a
// terminal: when in is not one, New falls back to Expand. fsys and root
// locate destination files for the menu's details line.
func New(kind string, fsys afero.Fs, root string, in io.Reader, out io.Writer) (generator.Prompter, error) {
	switch kind {
	case "", KindExpand:
		return NewExpand(in, out), nil
	case KindMenu, KindSelect:
		if !IsTerminal(in) {
			return NewExpand(in, out), nil
		}
		if kind == KindMenu {
			return NewMenu(fsys, root, in, out), nil
		}
		return NewSelect(in, out), nil
	default:
		return nil, fmt.Errorf("unknown prompter %q (use: expand, menu, select)", kind)
	}
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
