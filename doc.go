// Package pathiter walks a directory tree depth-first and produces its
// entry paths lazily, one pull at a time. Inclusion and exclusion are
// expressed as composable name selectors, ordering is configurable per
// directory, and listing failures are routed through a caller-supplied
// hook that decides between skipping the unreadable subtree and
// aborting the traversal.
//
// The walker descends into a symlinked directory only when
// Options.FollowSymlinks is set. In that mode nothing guards against
// symlink cycles: a link pointing back at an ancestor of itself makes
// the traversal unbounded, so enable it only on trees you trust.
package pathiter
