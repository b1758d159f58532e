// Package pathlist normalizes and edits search-path strings such as $PATH,
// $MANPATH and $INFOPATH.
//
// A path string is a list of directory tokens joined by a Separator. The
// package splits messy input into normalized tokens, re-joins them into a
// canonical string, and offers membership, filtering, prepend, append and
// join operations on top of that.
//
// Normalization rules:
//
//   - whitespace around a separator belongs to the delimiter, whitespace
//     inside a token is kept
//   - runs of separators collapse, leading and trailing separators are dropped
//   - each token is trimmed, runs of '/' collapse to one, and a trailing '/'
//     is removed unless the token is the root "/"
//
// All functions are pure except Filter, which consults an injected
// ExistsFunc.
package pathlist
