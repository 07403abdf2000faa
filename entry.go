package pathiter

import (
	"os"

	"github.com/spf13/afero"
)

// Kind classifies a filesystem entry
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindOther
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Entry is a read-only view of one filesystem object discovered while
// listing a directory. The walker holds entries only long enough to test
// selectors and decide whether to descend; selectors receive the same
// pointer and must not retain or mutate it.
type Entry struct {
	fs   afero.Fs
	name string
	path string
	info os.FileInfo

	// followed caches the symlink-resolved kind after the first query
	followed    Kind
	followedSet bool
}

// Name returns the last path segment of the entry
func (e *Entry) Name() string {
	return e.name
}

// Path returns the entry's path as constructed during listing: the
// parent directory's path joined with the entry name. It is not
// canonicalized.
func (e *Entry) Path() string {
	return e.path
}

// Kind returns the entry's kind as seen by the listing call, without
// resolving symlinks
func (e *Entry) Kind() Kind {
	return kindOf(e.info.Mode())
}

// Info returns the file metadata captured when the entry was listed
func (e *Entry) Info() os.FileInfo {
	return e.info
}

// Stat re-queries the entry's current metadata from the filesystem
// without resolving symlinks where the backend supports that
func (e *Entry) Stat() (os.FileInfo, error) {
	if lfs, ok := e.fs.(afero.Lstater); ok {
		info, _, err := lfs.LstatIfPossible(e.path)
		return info, err
	}
	return e.fs.Stat(e.path)
}

// FollowedKind returns the entry's kind after resolving symlinks. For
// non-symlink entries it is the same as Kind. The result is computed on
// first use and cached; a stat failure (e.g. a broken link) is returned
// without caching.
func (e *Entry) FollowedKind() (Kind, error) {
	if k := e.Kind(); k != KindSymlink {
		return k, nil
	}
	if e.followedSet {
		return e.followed, nil
	}
	info, err := e.fs.Stat(e.path)
	if err != nil {
		return KindOther, err
	}
	e.followed = kindOf(info.Mode())
	e.followedSet = true
	return e.followed, nil
}

func kindOf(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}
