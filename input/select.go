package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/simonhull/firebird-suite/conflict/generator"
)

// Select asks with a huh select form. Cancelling the form aborts.
type Select struct {
	in  io.Reader
	out io.Writer
}

// NewSelect creates a select prompter on the given terminal streams
// (nil = default).
func NewSelect(in io.Reader, out io.Writer) *Select {
	return &Select{in: in, out: out}
}

// Ask implements generator.Prompter.
func (s *Select) Ask(path string, menu []generator.Choice) (generator.Action, error) {
	var action generator.Action

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[generator.Action]().
				Title("Replace " + path + "?").
				Options(selectOptions(menu)...).
				Value(&action),
		),
	)
	if s.in != nil {
		form = form.WithInput(s.in)
	}
	if s.out != nil {
		form = form.WithOutput(s.out)
	}

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return generator.Abort, nil
		}
		return 0, fmt.Errorf("failed to show prompt: %w", err)
	}

	return action, nil
}

func selectOptions(menu []generator.Choice) []huh.Option[generator.Action] {
	options := make([]huh.Option[generator.Action], 0, len(menu))
	for _, c := range menu {
		options = append(options, huh.NewOption(fmt.Sprintf("%c) %s", c.Key, c.Name), c.Action))
	}
	return options
}
