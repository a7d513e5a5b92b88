package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DiffOptions configures unified diff output. Zero fields take defaults.
type DiffOptions struct {
	ContextLines int  // Unchanged lines around each change (default: 3)
	TabWidth     int  // Spaces per tab (default: 4)
	ShowLineNums bool // Prefix lines with their number in the old file
}

func (o *DiffOptions) withDefaults() DiffOptions {
	var out DiffOptions
	if o != nil {
		out = *o
	}
	if out.ContextLines <= 0 {
		out.ContextLines = 3
	}
	if out.TabWidth <= 0 {
		out.TabWidth = 4
	}
	return out
}

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	lineNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
)

// binarySniffLen is how much of a file is searched for a NUL byte.
const binarySniffLen = 8192

// GenerateDiff renders a colored unified diff of old against newer.
// It returns "" when the two have the same lines. Line terminators are not
// compared here, unlike LineDiff.
func (dg *DiffGenerator) GenerateDiff(oldPath, newPath string, old, newer []byte, opts *DiffOptions) string {
	o := opts.withDefaults()

	if isBinary(old) || isBinary(newer) {
		return "Binary files differ\n"
	}

	a, b := splitLines(string(old)), splitLines(string(newer))
	if len(a) > maxLineDiffLines || len(b) > maxLineDiffLines {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(a), len(b))
	}

	hunks := buildHunks(dg.editScript(a, b), o.ContextLines)
	if len(hunks) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(headerStyle.Render("--- "+oldPath) + "\n")
	buf.WriteString(headerStyle.Render("+++ "+newPath) + "\n")

	width := terminalWidth() - 10
	for _, h := range hunks {
		h.write(&buf, o, width)
	}
	return buf.String()
}

// GenerateDiff is DiffGenerator.GenerateDiff on a fresh generator.
func GenerateDiff(oldPath, newPath string, old, newer []byte, opts *DiffOptions) string {
	return NewDiffGenerator().GenerateDiff(oldPath, newPath, old, newer, opts)
}

// GenerateDiffDefault calls GenerateDiff with default options.
func GenerateDiffDefault(oldPath, newPath string, old, newer []byte) string {
	return GenerateDiff(oldPath, newPath, old, newer, nil)
}

// hunk is a window of the edit script around one or more changes.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []diffLine
}

// buildHunks cuts the script into hunks. Changes whose context windows
// touch or overlap share a hunk.
func buildHunks(script []diffLine, context int) []hunk {
	var hunks []hunk
	start, end := 0, -1

	for i, l := range script {
		if l.op == opUnchanged {
			continue
		}
		lo, hi := max(i-context, 0), min(i+context+1, len(script))
		if end >= 0 && lo <= end {
			end = hi
			continue
		}
		if end >= 0 {
			hunks = append(hunks, newHunk(script[start:end]))
		}
		start, end = lo, hi
	}
	if end >= 0 {
		hunks = append(hunks, newHunk(script[start:end]))
	}
	return hunks
}

func newHunk(lines []diffLine) hunk {
	h := hunk{lines: lines}
	for _, l := range lines {
		if l.oldLineNum > 0 && h.oldStart == 0 {
			h.oldStart = l.oldLineNum
		}
		if l.newLineNum > 0 && h.newStart == 0 {
			h.newStart = l.newLineNum
		}
		if l.op != opAdded {
			h.oldCount++
		}
		if l.op != opRemoved {
			h.newCount++
		}
	}
	return h
}

func (h hunk) write(buf *strings.Builder, o DiffOptions, width int) {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
	buf.WriteString(hunkStyle.Render(header) + "\n")

	for _, l := range h.lines {
		text := truncateLine(expandTabs(l.content, o.TabWidth), width)

		switch l.op {
		case opAdded:
			text = addedStyle.Render("+" + text)
		case opRemoved:
			text = removedStyle.Render("-" + text)
		default:
			text = " " + text
		}

		if o.ShowLineNums {
			num := "    "
			if l.oldLineNum > 0 {
				num = fmt.Sprintf("%4d", l.oldLineNum)
			}
			text = lineNumStyle.Render(num) + " " + text
		}

		buf.WriteString(text + "\n")
	}
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data[:min(len(data), binarySniffLen)], 0) >= 0
}

// splitLines splits s into lines without their terminators.
func splitLines(s string) []string {
	lines := splitLinesKeep(s)
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\n")
	}
	return lines
}

func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var buf strings.Builder
	col := 0
	for _, r := range s {
		if r != '\t' {
			buf.WriteRune(r)
			col++
			continue
		}
		n := width - col%width
		buf.WriteString(strings.Repeat(" ", n))
		col += n
	}
	return buf.String()
}

// truncateLine shortens s to width runes, ending in "..." when cut.
func truncateLine(s string, width int) string {
	if width <= 0 {
		width = 80
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width < 3 {
		return "..."[:width]
	}
	return string([]rune(s)[:width-3]) + "..."
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
