package generator

import "errors"

var (
	// ErrMissingDest is returned by NewResolver when no destination
	// directory is given.
	ErrMissingDest = errors.New("missing destination dir parameter")

	// ErrMissingCollaborator is returned by NewResolver when a mandatory
	// collaborator (probe or prompter) is not configured.
	ErrMissingCollaborator = errors.New("missing resolver collaborator")

	// ErrReadDest indicates the destination file exists but could not be read
	// for comparison or diffing. It is never retried: the file may have
	// changed between the stat and the read.
	ErrReadDest = errors.New("reading old file failed")

	// ErrStreamDiff indicates a diff was requested for stream-backed content.
	ErrStreamDiff = errors.New("diff does not support file streams")

	// ErrUnknownAction indicates the prompter returned an action the
	// resolver does not know.
	ErrUnknownAction = errors.New("unknown conflict action")

	// ErrAborted signals that the operator chose to abort. It is a clean
	// stop, not a failure: callers should exit with status 0.
	ErrAborted = errors.New("aborted by user")
)
