package lexer

import (
	"unicode/utf8"

	"github.com/viant/parsly"
)

// Invalid is returned by Lookahead for a byte that does not start a valid utf-8 sequence,
// it never equals a rune decoded from valid input
const Invalid rune = -1

// Lexer represents the cursor a host engine hands to an external scanner
type Lexer interface {
	//Lookahead returns next unread rune, 0 at end of input or Invalid for a malformed byte
	Lookahead() rune
	//Advance consumes lookahead, skip excludes it from the token
	Advance(skip bool)
	//MarkEnd marks current position as the token end
	MarkEnd()
	//EOF returns true when input is exhausted
	EOF() bool
}

// Cursor represents parsly cursor backed lexer
type Cursor struct {
	cursor *parsly.Cursor
	start  int
	end    int
	marked bool
}

// Lookahead returns next unread rune
func (c *Cursor) Lookahead() rune {
	if c.EOF() {
		return 0
	}
	r, size := utf8.DecodeRune(c.cursor.Input[c.cursor.Pos:c.cursor.InputSize])
	if r == utf8.RuneError && size == 1 {
		return Invalid
	}
	return r
}

// Advance consumes one rune
func (c *Cursor) Advance(skip bool) {
	if c.EOF() {
		return
	}
	_, size := utf8.DecodeRune(c.cursor.Input[c.cursor.Pos:c.cursor.InputSize])
	c.cursor.Pos += size
	if skip {
		c.start = c.cursor.Pos
		c.end = c.cursor.Pos
	}
}

// MarkEnd marks current position as token end
func (c *Cursor) MarkEnd() {
	c.end = c.cursor.Pos
	c.marked = true
}

// EOF returns true if all input was consumed
func (c *Cursor) EOF() bool {
	return c.cursor.Pos >= c.cursor.InputSize
}

// Pos returns current byte offset
func (c *Cursor) Pos() int {
	return c.cursor.Pos
}

// Start returns token start byte offset
func (c *Cursor) Start() int {
	return c.start
}

// End returns marked token end, or current position when end was never marked
func (c *Cursor) End() int {
	if !c.marked {
		return c.cursor.Pos
	}
	if c.end < c.start {
		return c.start
	}
	return c.end
}

// Text returns token text
func (c *Cursor) Text() string {
	return string(c.cursor.Input[c.start:c.End()])
}

// Reset moves token start to current position and clears marked end
func (c *Cursor) Reset() {
	c.start = c.cursor.Pos
	c.end = c.cursor.Pos
	c.marked = false
}

// Parsly returns underlying parsly cursor
func (c *Cursor) Parsly() *parsly.Cursor {
	return c.cursor
}

// New creates a lexer cursor for supplied input
func New(input []byte) *Cursor {
	return NewAt(parsly.NewCursor("", input, 0))
}

// NewAt creates a lexer cursor starting at parsly cursor position, advancing lexer moves the parsly cursor
func NewAt(cursor *parsly.Cursor) *Cursor {
	if cursor.InputSize > len(cursor.Input) || cursor.InputSize == 0 {
		cursor.InputSize = len(cursor.Input)
	}
	return &Cursor{cursor: cursor, start: cursor.Pos, end: cursor.Pos}
}
