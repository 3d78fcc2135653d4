package neopolitan

import (
	"github.com/viant/neopolitan/lexer"
	"github.com/viant/neopolitan/terminator"
)

// Scanner represents neopolitan external scanner, one instance per parse session
type Scanner struct {
	pattern *terminator.Pattern
	tracer  Tracer
}

// Pattern returns terminator pattern
func (s *Scanner) Pattern() *terminator.Pattern {
	return s.pattern
}

// Scan consumes lexer input till the first terminator occurrence, valid symbols are only traced,
// the scanner recognizes its single token kind unconditionally
func (s *Scanner) Scan(lx lexer.Lexer, valid ValidSymbols) bool {
	if s.tracer == nil {
		return terminator.Scan(lx, s.pattern)
	}
	counter := &countingLexer{Lexer: lx}
	matched := terminator.Scan(counter, s.pattern)
	s.tracer.Trace(&Event{
		Token:    CodeStartTerminator.String(),
		Pattern:  s.pattern.String(),
		Expected: valid.IsValid(CodeStartTerminator),
		Matched:  matched,
		Consumed: counter.advanced,
		Marks:    counter.marks,
	})
	return matched
}

// Destroy releases scanner resources
func (s *Scanner) Destroy() {
	s.tracer = nil
}

// New creates a scanner
func New(opts ...Option) *Scanner {
	ret := &Scanner{pattern: terminator.Default}
	Options(opts).Apply(ret)
	return ret
}
