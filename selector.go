package pathiter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Selector is a composable name-matching predicate usable as a filter or
// exclude option. Implementations are expected to be pure functions of
// the entry's name: matching must not mutate the entry and should not
// touch the filesystem.
type Selector interface {
	Match(e *Entry) bool
}

// SelectorFunc adapts a plain function to the Selector interface
type SelectorFunc func(e *Entry) bool

// Match calls f(e)
func (f SelectorFunc) Match(e *Entry) bool {
	return f(e)
}

// anySelector matches if any member matches. Any() keeps it flat so
// evaluation is one linear scan regardless of how selectors were chained.
type anySelector []Selector

func (s anySelector) Match(e *Entry) bool {
	for _, sel := range s {
		if sel.Match(e) {
			return true
		}
	}
	return false
}

// Any combines selectors into one that matches when any of them does,
// short-circuiting on the first match. Nested Any selectors are
// flattened into the combined selector rather than dispatched
// recursively.
func Any(selectors ...Selector) Selector {
	flat := make(anySelector, 0, len(selectors))
	for _, sel := range selectors {
		if nested, ok := sel.(anySelector); ok {
			flat = append(flat, nested...)
		} else {
			flat = append(flat, sel)
		}
	}
	return flat
}

type namesSelector struct {
	names map[string]struct{}
	fold  bool
}

// Names returns a selector matching entries whose name equals one of the
// given literals (case-sensitive)
func Names(names ...string) Selector {
	return newNamesSelector(false, names)
}

// NamesFold returns a selector matching entries whose name equals one of
// the given literals, compared case-insensitively
func NamesFold(names ...string) Selector {
	return newNamesSelector(true, names)
}

func newNamesSelector(fold bool, names []string) Selector {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if fold {
			n = strings.ToLower(n)
		}
		set[n] = struct{}{}
	}
	return &namesSelector{names: set, fold: fold}
}

func (s *namesSelector) Match(e *Entry) bool {
	name := e.Name()
	if s.fold {
		name = strings.ToLower(name)
	}
	_, ok := s.names[name]
	return ok
}

type globSelector struct {
	pattern string
}

// Glob returns a selector matching entries whose whole name matches the
// given shell-glob pattern. The pattern is validated once here.
func Glob(pattern string) (Selector, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return globSelector{pattern: pattern}, nil
}

func mustGlob(pattern string) Selector {
	sel, err := Glob(pattern)
	if err != nil {
		panic(err)
	}
	return sel
}

func (s globSelector) Match(e *Entry) bool {
	ok, err := doublestar.Match(s.pattern, e.Name())
	return err == nil && ok
}

type regexSelector struct {
	re *regexp.Regexp
}

// Regex returns a selector matching entries whose name contains a match
// of the given regular expression (search semantics: the pattern is not
// anchored to the whole name). The expression is compiled once here.
func Regex(pattern string) (Selector, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return regexSelector{re: re}, nil
}

func (s regexSelector) Match(e *Entry) bool {
	return s.re.MatchString(e.Name())
}

// Dotfiles matches entries whose name begins with a period
var Dotfiles = mustGlob(".*")

// VCSDirs matches the working directories of common version control
// systems
var VCSDirs = Names(".git", ".hg", "_darcs", ".bzr", ".svn", "_svn", "CVS", "RCS")

// VCSFiles matches version-control-specific files, including RCS ,v
// archive files
var VCSFiles = Any(
	Names(
		".gitattributes",
		".gitignore",
		".gitmodules",
		".mailmap",
		".hgignore",
		".hgsigs",
		".hgtags",
		".binaries",
		".boring",
		".bzrignore",
	),
	mustGlob("?*,v"),
)

// VCS matches anything matched by VCSDirs or VCSFiles
var VCS = Any(VCSDirs, VCSFiles)
