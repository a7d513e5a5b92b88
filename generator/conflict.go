package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Action is the operator's answer for a conflicting file.
type Action int

const (
	Replace Action = iota + 1
	Skip
	ReplaceAll
	SkipAll
	Abort
	ShowDiff
)

// String returns the action name as shown in logs and menus.
func (a Action) String() string {
	switch a {
	case Replace:
		return "replace"
	case Skip:
		return "skip"
	case ReplaceAll:
		return "replaceAll"
	case SkipAll:
		return "skipAll"
	case Abort:
		return "abort"
	case ShowDiff:
		return "diff"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Choice is one entry of the conflict menu.
type Choice struct {
	Key    rune
	Name   string
	Action Action
}

// DefaultMenu is the fixed conflict menu. Shortcuts are stable.
//
// SkipAll has no entry: it is a valid action for custom prompters, but the
// menu only offers per-file skips.
var DefaultMenu = []Choice{
	{Key: 'y', Name: "replace", Action: Replace},
	{Key: 'n', Name: "do not replace", Action: Skip},
	{Key: 'a', Name: "replace this and all others", Action: ReplaceAll},
	{Key: 'x', Name: "abort", Action: Abort},
	{Key: 'd', Name: "show the differences between the old and the new", Action: ShowDiff},
}

// Outcome is the terminal decision for one candidate.
type Outcome int

const (
	Emit Outcome = iota + 1
	Drop
	Halt
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Emit:
		return "emit"
	case Drop:
		return "drop"
	case Halt:
		return "abort"
	default:
		return "unknown"
	}
}

// Status is the result of probing a destination path.
type Status struct {
	Exists bool
	IsDir  bool
}

// Probe inspects the destination tree.
// Stat must not treat a missing path as an error.
type Probe interface {
	Stat(path string) (Status, error)
	ReadText(path string) (string, error)
}

// Prompter asks the operator what to do with a conflicting file.
type Prompter interface {
	Ask(path string, menu []Choice) (Action, error)
}

// Differ computes a line diff between two texts.
type Differ interface {
	LineDiff(old, newer string) []DiffPart
}

// Logger receives status messages. It never affects control flow.
type Logger interface {
	Log(msg string)
}

// DiffLogger is implemented by loggers that print rendered diffs even when
// status messages are muted. A diff is output the operator asked for.
type DiffLogger interface {
	LogDiff(body string)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(msg string)

// Log calls f(msg).
func (f LoggerFunc) Log(msg string) { f(msg) }

// PagerFunc displays a long rendered diff. It is used instead of the logger
// when the rendering exceeds Options.PagerThreshold lines.
type PagerFunc func(title, body string) error

// Options configures a Resolver. Probe and Prompter are required.
type Options struct {
	Cwd            string   // Base for a relative destination (default: os.Getwd)
	Probe          Probe    // Destination inspection
	Prompter       Prompter // Operator interaction
	Differ         Differ   // Default: NewDiffGenerator()
	Logger         Logger   // Default: discard
	Menu           []Choice // Default: DefaultMenu
	Pager          PagerFunc
	PagerThreshold int // Lines; 0 disables paging
}

var abortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))

// Resolver decides, file by file, whether a candidate is written, skipped
// or ends the run. One Resolver serves exactly one stream: the blanket
// replace flag it carries is never reset.
type Resolver struct {
	dest    string
	opts    Options
	replace bool // set once by ReplaceAll
}

// NewResolver creates a resolver for the given destination directory.
// A relative dest is resolved against opts.Cwd.
func NewResolver(dest string, opts *Options) (*Resolver, error) {
	if dest == "" {
		return nil, ErrMissingDest
	}
	if opts == nil {
		opts = &Options{}
	}

	o := *opts
	if o.Probe == nil {
		return nil, fmt.Errorf("%w: probe", ErrMissingCollaborator)
	}
	if o.Prompter == nil {
		return nil, fmt.Errorf("%w: prompter", ErrMissingCollaborator)
	}
	if o.Differ == nil {
		o.Differ = NewDiffGenerator()
	}
	if o.Logger == nil {
		o.Logger = LoggerFunc(func(string) {})
	}
	if len(o.Menu) == 0 {
		o.Menu = DefaultMenu
	}
	if o.Cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		o.Cwd = wd
	}

	if !filepath.IsAbs(dest) {
		dest = filepath.Join(o.Cwd, dest)
	}

	return &Resolver{dest: dest, opts: o}, nil
}

// Dest returns the resolved destination directory.
func (r *Resolver) Dest() string {
	return r.dest
}

// ReplacingAll reports whether ReplaceAll has been chosen in this run.
func (r *Resolver) ReplacingAll() bool {
	return r.replace
}

// Resolve decides the outcome for one candidate. Halt is returned (with a
// nil error) when the operator aborts; any error is fatal for the run.
func (r *Resolver) Resolve(f *File) (Outcome, error) {
	if f.Path == "" {
		f.Path = filepath.Join(r.dest, f.Relative)
	}

	if f.IsDir() || r.replace {
		return r.keep(f), nil
	}

	st, err := r.opts.Probe.Stat(f.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", f.Path, err)
	}
	if !st.Exists || st.IsDir {
		return r.keep(f), nil
	}

	old, err := r.opts.Probe.ReadText(f.Path)
	if err != nil {
		return 0, fmt.Errorf("%w for comparison: %s: %w", ErrReadDest, f.Relative, err)
	}
	if !f.IsStream() && old == f.String() {
		r.log("Skipping " + f.Relative + " (identical)")
		return Drop, nil
	}

	for {
		action, err := r.opts.Prompter.Ask(f.Relative, r.opts.Menu)
		if err != nil {
			return 0, fmt.Errorf("prompt for %s failed: %w", f.Relative, err)
		}

		switch action {
		case ReplaceAll:
			r.replace = true
			return r.keep(f), nil
		case Replace:
			return r.keep(f), nil
		case Skip, SkipAll:
			r.log("Skipping " + f.Relative)
			return Drop, nil
		case Abort:
			r.log(abortStyle.Render("Aborting..."))
			return Halt, nil
		case ShowDiff:
			if err := r.showDiff(f); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("%w: %v", ErrUnknownAction, action)
		}
	}
}

func (r *Resolver) keep(f *File) Outcome {
	r.log("Keeping " + f.Relative)
	return Emit
}

// showDiff renders the difference between the destination's current
// content and the candidate.
func (r *Resolver) showDiff(f *File) error {
	if f.IsStream() {
		return fmt.Errorf("%w: %s", ErrStreamDiff, f.Relative)
	}

	r.log("Showing diff for " + f.Relative)

	old, err := r.opts.Probe.ReadText(f.Path)
	if err != nil {
		return fmt.Errorf("%w for diff: %s: %w", ErrReadDest, f.Relative, err)
	}

	body := FormatDiff(r.opts.Differ.LineDiff(old, f.String()))

	if r.opts.Pager != nil && r.opts.PagerThreshold > 0 &&
		strings.Count(body, "\n") > r.opts.PagerThreshold {
		if err := r.opts.Pager(f.Relative, body); err != nil {
			return fmt.Errorf("failed to show diff: %w", err)
		}
		return nil
	}

	if dl, ok := r.opts.Logger.(DiffLogger); ok {
		dl.LogDiff(body)
		return nil
	}
	r.log(body)
	return nil
}

func (r *Resolver) log(msg string) {
	r.opts.Logger.Log(msg)
}
