package pathiter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// frame is one directory's bookkeeping record on the work stack
type frame struct {
	path     string // materialized path of this directory
	rel      string // path relative to the root, "" for the root itself
	entry    *Entry // nil for the synthetic root frame
	children []*Entry
	idx      int
	listed   bool
}

// Walker produces the paths under a root directory one pull at a time,
// depth-first. A Walker is single-use and must not be shared between
// goroutines without external synchronization.
//
// The usual consumption pattern:
//
//	w, err := pathiter.New(root, opts)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	for w.Next() {
//		fmt.Println(w.Path())
//	}
//	if err := w.Err(); err != nil {
//		return err
//	}
type Walker struct {
	fs   afero.Fs
	root string
	opts Options

	admitDir  func(*Entry) bool
	admitFile func(*Entry) bool

	stack    []*frame
	curPath  string
	curEntry *Entry
	err      error
	closed   bool
}

// New validates opts and prepares a traversal of the tree rooted at
// root. An empty root means the current directory. Selector conflicts
// are reported here, before any filesystem access; the root is not
// checked to exist until the first pull that needs to list it.
func New(root string, opts Options) (*Walker, error) {
	admitDir, admitFile, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if root == "" {
		root = "."
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Walker{
		fs:        fsys,
		root:      root,
		opts:      opts,
		admitDir:  admitDir,
		admitFile: admitFile,
	}, nil
}

// Walk traverses root with opts and returns every produced path in
// order. On a mid-traversal abort the paths produced so far are
// returned along with the error.
func Walk(root string, opts Options) ([]string, error) {
	w, err := New(root, opts)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	var paths []string
	for w.Next() {
		paths = append(paths, w.Path())
	}
	return paths, w.Err()
}

// Next advances to the next path, reporting false when the traversal is
// exhausted, aborted, or closed. Each call performs at most the listing
// calls needed to produce one path.
func (w *Walker) Next() bool {
	if w.err != nil || w.closed {
		return false
	}
	if w.stack == nil {
		root := &frame{path: w.root}
		w.stack = []*frame{root}
		if !w.opts.BottomUp && w.opts.IncludeRoot && !w.opts.FilesOnly {
			return w.emit(root)
		}
	}

walk:
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		if !top.listed {
			top.listed = true
			children, err := w.list(top.path)
			if err != nil {
				if !w.routeError(err) {
					return false
				}
				// treat the directory as empty and move on
			} else {
				if w.opts.Sort {
					w.sortChildren(children)
				}
				top.children = children
			}
		}

		for top.idx < len(top.children) {
			e := top.children[top.idx]
			top.idx++

			dirLike, err := w.classify(e)
			if err != nil {
				if os.IsNotExist(err) {
					// broken link: the target is gone but the link
					// itself is a real entry, so treat it as a file
					dirLike = false
				} else {
					if !w.routeError(err) {
						return false
					}
					// a swallowed status error skips the failing
					// entry and this directory's remaining children
					top.idx = len(top.children)
					continue walk
				}
			}
			if dirLike {
				if !w.admitDir(e) {
					continue
				}
				child := &frame{path: e.path, rel: join(top.rel, e.name), entry: e}
				w.stack = append(w.stack, child)
				if !w.opts.BottomUp && !w.opts.FilesOnly {
					return w.emit(child)
				}
				continue walk
			}
			if !w.admitFile(e) {
				continue
			}
			w.curPath = w.materialize(e.path, join(top.rel, e.name))
			w.curEntry = e
			return true
		}

		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.BottomUp && !w.opts.FilesOnly && (top.entry != nil || w.opts.IncludeRoot) {
			return w.emit(top)
		}
	}
	return false
}

// Path returns the path produced by the last successful Next
func (w *Walker) Path() string {
	return w.curPath
}

// Entry returns the entry behind the last produced path. It is nil when
// the last path was the root itself, which is not discovered through a
// listing call.
func (w *Walker) Entry() *Entry {
	return w.curEntry
}

// Err returns the error that aborted the traversal, if any. Errors
// swallowed by the OnError hook are not reported here.
func (w *Walker) Err() error {
	return w.err
}

// Close releases the walker's remaining state. Abandoning a traversal
// early without calling Close leaks nothing beyond the captured child
// entries, but calling it keeps the contract explicit. After Close,
// Next reports false.
func (w *Walker) Close() error {
	w.closed = true
	w.stack = nil
	return nil
}

func (w *Walker) emit(f *frame) bool {
	w.curPath = w.materialize(f.path, f.rel)
	w.curEntry = f.entry
	return true
}

func (w *Walker) materialize(path, rel string) string {
	if !w.opts.Relative {
		return path
	}
	if rel == "" {
		return "."
	}
	return rel
}

// list captures one directory's children in a single listing call. The
// directory handle is released before returning, on every path.
func (w *Walker) list(dir string) ([]*Entry, error) {
	f, err := w.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	infos, err := f.Readdir(-1)
	closeErr := f.Close()
	if err != nil {
		if info, statErr := w.fs.Stat(dir); statErr == nil && !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return nil, err
	}
	if closeErr != nil {
		return nil, closeErr
	}

	children := make([]*Entry, 0, len(infos))
	for _, info := range infos {
		children = append(children, &Entry{
			fs:   w.fs,
			name: info.Name(),
			path: join(dir, info.Name()),
			info: info,
		})
	}
	return children, nil
}

// classify decides whether an entry is directory-like, i.e. a directory
// or, when following symlinks, a symlink whose target is one
func (w *Walker) classify(e *Entry) (bool, error) {
	switch e.Kind() {
	case KindDir:
		return true, nil
	case KindSymlink:
		if !w.opts.FollowSymlinks {
			return false, nil
		}
		kind, err := e.FollowedKind()
		if err != nil {
			return false, err
		}
		return kind == KindDir, nil
	default:
		return false, nil
	}
}

// routeError routes a listing or classification error through the OnError
// hook. It reports false when the hook escalates, in which case the
// traversal is aborted and the hook's error becomes Err().
func (w *Walker) routeError(err error) bool {
	if w.opts.OnError != nil {
		if aborted := w.opts.OnError(err); aborted != nil {
			w.err = aborted
			w.stack = nil
			return false
		}
	}
	return true
}

func (w *Walker) sortChildren(children []*Entry) {
	compare := w.opts.SortWith
	if compare == nil {
		compare = func(a, b *Entry) int { return strings.Compare(a.name, b.name) }
	}
	if w.opts.SortReverse {
		inner := compare
		compare = func(a, b *Entry) int { return -inner(a, b) }
	}
	sort.SliceStable(children, func(i, j int) bool {
		return compare(children[i], children[j]) < 0
	})
}

// join appends one name to a directory path without cleaning the
// result: whatever prefix the caller gave for the root stays in every
// produced path. A "." parent is the one exception, so traversing the
// current directory yields bare relative paths.
func join(dir, name string) string {
	switch {
	case dir == "" || dir == ".":
		return name
	case strings.HasSuffix(dir, string(filepath.Separator)):
		return dir + name
	default:
		return dir + string(filepath.Separator) + name
	}
}
