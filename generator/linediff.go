package generator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DiffKind classifies a DiffPart.
type DiffKind int

const (
	Unchanged DiffKind = iota
	Added
	Removed
)

// DiffPart is a run of consecutive lines sharing the same kind.
// Value keeps the line terminators of the original text.
type DiffPart struct {
	Value string
	Kind  DiffKind
}

// maxLineDiffLines bounds the Myers search. Larger inputs are reported as
// a full replacement.
const maxLineDiffLines = 10000

// LineDiff computes an ordered line diff between old and newer.
// Lines are compared including their terminators, so a missing trailing
// newline shows up as a changed line.
func (dg *DiffGenerator) LineDiff(old, newer string) []DiffPart {
	a, b := splitLinesKeep(old), splitLinesKeep(newer)

	var script []diffLine
	if len(a) > maxLineDiffLines || len(b) > maxLineDiffLines {
		script = make([]diffLine, 0, len(a)+len(b))
		for _, l := range a {
			script = append(script, diffLine{content: l, op: opRemoved})
		}
		for _, l := range b {
			script = append(script, diffLine{content: l, op: opAdded})
		}
	} else {
		script = dg.editScript(a, b)
	}

	var parts []DiffPart
	for _, l := range script {
		kind := l.op.kind()
		if n := len(parts); n > 0 && parts[n-1].Kind == kind {
			parts[n-1].Value += l.content
			continue
		}
		parts = append(parts, DiffPart{Value: l.content, Kind: kind})
	}
	return parts
}

// LineDiff is DiffGenerator.LineDiff on a fresh generator.
func LineDiff(old, newer string) []DiffPart {
	return NewDiffGenerator().LineDiff(old, newer)
}

func (o editOp) kind() DiffKind {
	switch o {
	case opAdded:
		return Added
	case opRemoved:
		return Removed
	}
	return Unchanged
}

var (
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// diffIndent prefixes every rendered line of FormatDiff.
var diffIndent = strings.Repeat(" ", 7)

// FormatDiff renders diff parts for the conflict log: a legend line, a
// blank line, then every line of every part indented and colored by kind.
func FormatDiff(parts []DiffPart) string {
	var buf strings.Builder

	buf.WriteString("File differences: ")
	buf.WriteString(addedStyle.Render("added") + " " + removedStyle.Render("removed"))
	buf.WriteString("\n\n")

	for i, part := range parts {
		if i == 0 {
			buf.WriteString(diffIndent)
		}

		style := part.Kind.style()
		for j, line := range strings.Split(part.Value, "\n") {
			if j > 0 {
				buf.WriteString("\n" + diffIndent)
			}
			if line != "" {
				buf.WriteString(style.Render(line))
			}
		}
	}

	return buf.String()
}

func (k DiffKind) style() lipgloss.Style {
	switch k {
	case Added:
		return addedStyle
	case Removed:
		return removedStyle
	}
	return unchangedStyle
}

// splitLinesKeep splits s after every "\n". The last line has no
// terminator when s does not end in one.
func splitLinesKeep(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
