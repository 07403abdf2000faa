package pathiter

import (
	"fmt"

	"github.com/spf13/afero"
)

// Options configures one traversal. The zero value gives the default
// behavior: pre-order, directories included, root excluded, listing
// order unsorted, symlinks not followed, listing errors skipped.
type Options struct {
	// BottomUp yields each directory after its contents (post-order)
	// instead of before them
	BottomUp bool

	// IncludeRoot yields the root directory itself, first in pre-order
	// and last in post-order. The root is never tested against
	// selectors.
	IncludeRoot bool

	// FilesOnly suppresses every directory path from the output,
	// including the root, while still descending into admitted
	// directories
	FilesOnly bool

	// Sort orders each directory's children before they are consumed.
	// When false, children come back in whatever order the filesystem
	// lists them.
	Sort bool

	// SortWith is the comparator used when Sort is set; nil means
	// ascending by name. It should return a negative value when a
	// orders before b.
	SortWith func(a, b *Entry) int

	// SortReverse sorts children in descending comparator order. Only
	// meaningful when Sort is set.
	SortReverse bool

	// Filter admits only matching entries of either kind. Mutually
	// exclusive with FilterDirs and FilterFiles.
	Filter Selector

	// FilterDirs admits only matching directories; non-matching
	// directories are neither yielded nor descended into
	FilterDirs Selector

	// FilterFiles admits only matching files
	FilterFiles Selector

	// Exclude rejects matching entries of either kind, taking priority
	// over Filter. Mutually exclusive with ExcludeDirs and
	// ExcludeFiles.
	Exclude Selector

	// ExcludeDirs rejects matching directories; rejected directories
	// are neither yielded nor descended into
	ExcludeDirs Selector

	// ExcludeFiles rejects matching files
	ExcludeFiles Selector

	// FollowSymlinks treats a symlink to a directory as a directory and
	// descends into it. No cycle detection is performed: a symlink
	// chain that points back to an ancestor makes the traversal
	// unbounded.
	FollowSymlinks bool

	// Relative yields paths relative to the root instead of prefixed by
	// it; the root itself yields "."
	Relative bool

	// OnError is called whenever listing a directory fails, or when
	// resolving a symlink's target kind fails with anything other than
	// a vanished target. Returning nil skips the affected directory's
	// remaining entries and continues; returning an error aborts the
	// traversal with it. A nil hook skips silently.
	OnError func(err error) error

	// FS is the filesystem to traverse; nil means the host OS
	// filesystem
	FS afero.Fs
}

// resolve validates the selector combination and produces the two
// effective admission predicates. It performs no filesystem access.
func (o Options) resolve() (admitDir, admitFile func(*Entry) bool, err error) {
	if o.Filter != nil && o.FilterDirs != nil {
		return nil, nil, fmt.Errorf("%w: Filter and FilterDirs", ErrOptionConflict)
	}
	if o.Filter != nil && o.FilterFiles != nil {
		return nil, nil, fmt.Errorf("%w: Filter and FilterFiles", ErrOptionConflict)
	}
	if o.Exclude != nil && o.ExcludeDirs != nil {
		return nil, nil, fmt.Errorf("%w: Exclude and ExcludeDirs", ErrOptionConflict)
	}
	if o.Exclude != nil && o.ExcludeFiles != nil {
		return nil, nil, fmt.Errorf("%w: Exclude and ExcludeFiles", ErrOptionConflict)
	}

	filterDirs := pick(o.FilterDirs, o.Filter)
	filterFiles := pick(o.FilterFiles, o.Filter)
	excludeDirs := pick(o.ExcludeDirs, o.Exclude)
	excludeFiles := pick(o.ExcludeFiles, o.Exclude)

	return admission(filterDirs, excludeDirs), admission(filterFiles, excludeFiles), nil
}

func pick(specific, generic Selector) Selector {
	if specific != nil {
		return specific
	}
	return generic
}

// admission resolves one kind's include/exclude pair into a single
// predicate: included (or no include selector) and not excluded
func admission(include, exclude Selector) func(*Entry) bool {
	return func(e *Entry) bool {
		if include != nil && !include.Match(e) {
			return false
		}
		if exclude != nil && exclude.Match(e) {
			return false
		}
		return true
	}
}
