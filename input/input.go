// Package input provides interactive terminal input for the conflict CLI:
// the conflict prompters and a couple of plain questions.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// SetIO redirects Prompt and Confirm. Nil keeps the current stream.
func SetIO(in io.Reader, out io.Writer) {
	if in != nil {
		stdin = in
	}
	if out != nil {
		stdout = out
	}
}

// ask prints message with a dimmed hint and reads one trimmed line.
// ok is false when nothing could be read.
func ask(message, hint string) (answer string, ok bool) {
	label := promptStyle.Render(message)
	if hint != "" {
		label += " " + hintStyle.Render(hint)
	}
	fmt.Fprint(stdout, label+": ")

	line, err := bufio.NewReader(stdin).ReadString('\n')
	line = strings.TrimSpace(line)
	return line, err == nil || line != ""
}

// Prompt asks for a line of text. An empty answer, or none at all,
// yields defaultValue.
//
//	dest := input.Prompt("Destination", ".")
//	// Destination (.): _
func Prompt(message, defaultValue string) string {
	hint := ""
	if defaultValue != "" {
		hint = "(" + defaultValue + ")"
	}

	answer, ok := ask(message, hint)
	if !ok || answer == "" {
		return defaultValue
	}
	return answer
}

// Confirm asks a yes/no question. Only y and yes (any case) count as yes;
// an empty answer yields defaultYes.
func Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	answer, ok := ask(message, hint)
	if !ok || answer == "" {
		return defaultYes
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
