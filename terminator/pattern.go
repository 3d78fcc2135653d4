package terminator

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// CodeEnd closes neopolitan code sections and containers
const CodeEnd = "-- /code"

// Default represents code block terminator pattern
var Default = MustPattern(CodeEnd)

// Pattern represents literal terminator with its restart table
type Pattern struct {
	literal  string
	runes    []rune
	fallback []int //fallback[i]: longest proper prefix that is also suffix of runes[:i+1]
}

// String returns pattern literal
func (p *Pattern) String() string {
	return p.literal
}

// Len returns pattern length in runes
func (p *Pattern) Len() int {
	return len(p.runes)
}

// Size returns pattern length in bytes
func (p *Pattern) Size() int {
	return len(p.literal)
}

// restart returns number of runes still matched after a mismatch following matched runes
func (p *Pattern) restart(matched int) int {
	if matched == 0 {
		return 0
	}
	return p.fallback[matched-1]
}

func (p *Pattern) init() {
	p.fallback = make([]int, len(p.runes))
	k := 0
	for i := 1; i < len(p.runes); i++ {
		for k > 0 && p.runes[i] != p.runes[k] {
			k = p.fallback[k-1]
		}
		if p.runes[i] == p.runes[k] {
			k++
		}
		p.fallback[i] = k
	}
}

// NewPattern creates a pattern for supplied literal
func NewPattern(literal string) (*Pattern, error) {
	if literal == "" {
		return nil, errors.New("terminator pattern was empty")
	}
	if !utf8.ValidString(literal) {
		return nil, errors.Errorf("terminator pattern %q was not valid utf-8", literal)
	}
	ret := &Pattern{literal: literal, runes: []rune(literal)}
	ret.init()
	return ret, nil
}

// MustPattern creates a pattern or panics
func MustPattern(literal string) *Pattern {
	ret, err := NewPattern(literal)
	if err != nil {
		panic(err)
	}
	return ret
}
