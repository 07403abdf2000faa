package pathiter

import "errors"

var (
	// ErrOptionConflict indicates that a generic selector option was
	// combined with a kind-specific one of the same polarity. It is
	// reported by New before any filesystem access.
	ErrOptionConflict = errors.New("conflicting selector options")

	// ErrNotDirectory indicates expected a directory but got a file. It
	// reaches the OnError hook when the traversal root is not a
	// directory.
	ErrNotDirectory = errors.New("not a directory")
)
