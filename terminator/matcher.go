package terminator

import (
	"github.com/viant/neopolitan/lexer"
	"github.com/viant/parsly"
)

const (
	codeEndToken = iota
)

// Token represents code block terminator token, matched text includes the preceding body
var Token = parsly.NewToken(codeEndToken, CodeEnd, NewMatcher(Default))

type matcher struct {
	pattern *Pattern
}

// Match returns number of bytes up to and including the first pattern occurrence, or 0
func (m *matcher) Match(cursor *parsly.Cursor) (matched int) {
	probe := *cursor
	lx := lexer.NewAt(&probe)
	if !Scan(lx, m.pattern) {
		return 0
	}
	return lx.End() - cursor.Pos
}

// NewMatcher creates a parsly matcher for supplied pattern
func NewMatcher(pattern *Pattern) parsly.Matcher {
	return &matcher{pattern: pattern}
}
