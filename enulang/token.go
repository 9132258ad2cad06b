package enulang

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenIdentifier
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenAssign
	TokenLeftParen
	TokenRightParen
	TokenNewline
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid:    "invalid",
	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenPlus:       "'+'",
	TokenMinus:      "'-'",
	TokenStar:       "'*'",
	TokenSlash:      "'/'",
	TokenAssign:     "'='",
	TokenLeftParen:  "'('",
	TokenRightParen: "')'",
	TokenNewline:    "newline",
	TokenEOF:        "end of input",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// IsOperator reports whether the token is one of + - * /.
func (k TokenKind) IsOperator() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash:
		return true
	}
	return false
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenIdentifier:
		return fmt.Sprintf("Identifier(%s)", t.Text)
	case TokenNumber:
		return fmt.Sprintf("Number(%s)", t.Text)
	case TokenNewline:
		return "Newline"
	case TokenEOF:
		return "EOF"
	}
	return t.Text
}

// Pos is a location in the source. Offset is the zero-based rune offset,
// Line and Column are one-based.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
