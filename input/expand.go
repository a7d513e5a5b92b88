package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/firebird-suite/conflict/generator"
)

// helpKey lists the menu instead of answering.
const helpKey = 'h'

// Expand asks for a single-key answer on a line-oriented terminal:
//
//	Replace a.txt? (ynaxdh): _
//
// An empty answer or "h" prints the menu; unknown keys ask again.
type Expand struct {
	in  *bufio.Reader
	out io.Writer
}

// NewExpand creates an expand prompter reading answers from r and writing
// prompts to w.
func NewExpand(r io.Reader, w io.Writer) *Expand {
	return &Expand{in: bufio.NewReader(r), out: w}
}

// Ask implements generator.Prompter.
func (e *Expand) Ask(path string, menu []generator.Choice) (generator.Action, error) {
	keys := menuKeys(menu) + string(helpKey)

	for {
		fmt.Fprint(e.out, promptStyle.Render("Replace "+path+"?")+" "+
			hintStyle.Render("("+keys+")")+": ")

		line, err := e.in.ReadString('\n')
		answer := strings.TrimSpace(strings.ToLower(line))
		if err != nil && answer == "" {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("no answer for %s: %w", path, io.ErrUnexpectedEOF)
			}
			return 0, fmt.Errorf("failed to read answer: %w", err)
		}

		if answer == "" || answer == string(helpKey) {
			e.help(menu)
			continue
		}

		if action, ok := lookup(menu, []rune(answer)[0]); ok && len([]rune(answer)) == 1 {
			return action, nil
		}

		fmt.Fprintln(e.out, errorStyle.Render(">> Please enter a valid command"))
	}
}

func (e *Expand) help(menu []generator.Choice) {
	for _, c := range menu {
		fmt.Fprintf(e.out, "  %c) %s\n", c.Key, c.Name)
	}
	fmt.Fprintf(e.out, "  %c) %s\n", helpKey, "Help, list all options")
}

func menuKeys(menu []generator.Choice) string {
	var b strings.Builder
	for _, c := range menu {
		b.WriteRune(c.Key)
	}
	return b.String()
}

func lookup(menu []generator.Choice, key rune) (generator.Action, bool) {
	for _, c := range menu {
		if c.Key == key {
			return c.Action, true
		}
	}
	return 0, false
}
