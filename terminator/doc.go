// Package terminator provides literal terminator patterns, the character walk locating
// the first pattern occurrence over a lexer, and a parsly matcher for the same search.
package terminator
