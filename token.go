package neopolitan

// TokenType represents external token kind
type TokenType int

const (
	//CodeStartTerminator closes code section and code container body
	CodeStartTerminator TokenType = iota
)

// String returns token name
func (t TokenType) String() string {
	switch t {
	case CodeStartTerminator:
		return "code_start_terminator"
	}
	return "unknown"
}

// ValidSymbols represents token kinds the host engine accepts at the current position, indexed by TokenType
type ValidSymbols []bool

// IsValid returns true if token type is accepted, empty symbols accept all
func (v ValidSymbols) IsValid(t TokenType) bool {
	if len(v) == 0 {
		return true
	}
	if int(t) < 0 || int(t) >= len(v) {
		return false
	}
	return v[t]
}
