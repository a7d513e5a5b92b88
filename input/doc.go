// Package input provides interactive terminal input utilities.
//
// # Conflict prompters
//
// Three generator.Prompter implementations share the same menu
// (y replace, n skip, a replace all, x abort, d diff):
//
//   - Expand: one line per answer, works on any stream (default)
//   - Menu: BubbleTea menu with file details and shortcuts
//   - Select: huh select form
//
// Use New to pick one by name; full-screen kinds fall back to Expand when
// stdin is not a terminal:
//
//	p, err := input.New("menu", afero.NewOsFs(), dest, os.Stdin, os.Stdout)
//
// Pager shows long diffs in a scrollable viewport.
//
// # Questions
//
//	name := input.Prompt("Destination", ".")
//	if input.Confirm("Overwrite .conflict.yml?", false) {
//	    // ...
//	}
package input
