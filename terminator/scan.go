package terminator

import "github.com/viant/neopolitan/lexer"

// Scan walks lexer till the first complete pattern occurrence.
// On mismatch the current position is marked as fallback boundary and the same
// lookahead is re-tested against the longest still matching pattern prefix,
// so overlapping candidates (e.g. "--- /code") are never skipped.
// On success the end is marked right after the pattern, otherwise lexer is left at EOF.
func Scan(lx lexer.Lexer, pattern *Pattern) bool {
	matched := 0
	for !lx.EOF() {
		if lx.Lookahead() == pattern.runes[matched] {
			lx.Advance(false)
			if matched++; matched == len(pattern.runes) {
				lx.MarkEnd()
				return true
			}
			continue
		}
		lx.MarkEnd()
		if matched > 0 {
			matched = pattern.restart(matched)
			continue
		}
		lx.Advance(false)
		lx.MarkEnd()
	}
	lx.MarkEnd()
	return false
}
