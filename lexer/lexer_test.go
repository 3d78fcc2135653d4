package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/parsly"
)

func TestCursor(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		skip        int
		advance     int
		mark        bool
		expectText  string
		expectPos   int
		expectAhead rune
	}{
		{description: "no mark defaults to position", input: "abc", advance: 2, expectText: "ab", expectPos: 2, expectAhead: 'c'},
		{description: "mark end", input: "abc", advance: 1, mark: true, expectText: "a", expectPos: 1, expectAhead: 'b'},
		{description: "skip moves start", input: "  ab", skip: 2, advance: 1, expectText: "a", expectPos: 3, expectAhead: 'b'},
		{description: "multibyte", input: "żx", advance: 1, expectText: "ż", expectPos: 2, expectAhead: 'x'},
		{description: "advance past eof", input: "a", advance: 3, expectText: "a", expectPos: 1, expectAhead: 0},
		{description: "empty", input: "", advance: 1, expectText: "", expectPos: 0, expectAhead: 0},
		{description: "invalid utf-8", input: "\xffa", advance: 0, expectText: "", expectPos: 0, expectAhead: Invalid},
	}

	for _, testCase := range testCases {
		cursor := New([]byte(testCase.input))
		for i := 0; i < testCase.skip; i++ {
			cursor.Advance(true)
		}
		for i := 0; i < testCase.advance; i++ {
			cursor.Advance(false)
		}
		if testCase.mark {
			cursor.MarkEnd()
			cursor.Advance(false)
			cursor.Advance(false)
			assert.EqualValues(t, testCase.expectPos, cursor.End(), testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.expectText, cursor.Text(), testCase.description)
		assert.EqualValues(t, testCase.expectPos, cursor.Pos(), testCase.description)
		assert.EqualValues(t, testCase.expectAhead, cursor.Lookahead(), testCase.description)
		assert.EqualValues(t, testCase.expectAhead == 0, cursor.EOF(), testCase.description)
	}
}

func TestCursor_Reset(t *testing.T) {
	cursor := New([]byte("ab-- /code"))
	cursor.Advance(false)
	cursor.MarkEnd()
	cursor.Advance(false)
	assert.EqualValues(t, "a", cursor.Text())
	cursor.Reset()
	assert.EqualValues(t, 2, cursor.Start())
	assert.EqualValues(t, 2, cursor.End())
	assert.EqualValues(t, '-', cursor.Lookahead())
}

func TestNewAt(t *testing.T) {
	pCursor := parsly.NewCursor("", []byte("x-- /code"), 0)
	pCursor.Pos = 1
	cursor := NewAt(pCursor)
	assert.EqualValues(t, '-', cursor.Lookahead())
	cursor.Advance(false)
	assert.EqualValues(t, 2, pCursor.Pos)
	assert.Same(t, pCursor, cursor.Parsly())
	assert.EqualValues(t, "-", cursor.Text())
}
