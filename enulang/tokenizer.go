package enulang

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

type Tokenizer struct {
	source *bufio.Reader
	tokens []*Token

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source io.Reader) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(source),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize scans src into tokens terminated by an EOF token.
func Tokenize(src string) ([]*Token, error) {
	return NewTokenizer(strings.NewReader(src)).Tokenize()
}

// Tokenize scans the whole source. The returned slice always ends with an EOF token.
// The first unexpected character aborts tokenization.
func (t *Tokenizer) Tokenize() ([]*Token, error) {
	for {
		token, err := t.next()
		if err != nil {
			return nil, err
		}
		t.tokens = append(t.tokens, token)
		if token.Kind == TokenEOF {
			return t.tokens, nil
		}
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	t.currPos.Offset++
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

// peekRune returns the next rune without consuming it. ok is false at end of input.
func (t *Tokenizer) peekRune() (r rune, ok bool, err error) {
	r, err = t.readRune()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	t.unreadRune()
	return r, true, nil
}

func (t *Tokenizer) next() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	switch {
	case r == '\n':
		return &Token{Kind: TokenNewline, Text: "\n", Pos: startPos}, nil
	case r == '+':
		return t.single(TokenPlus, r, startPos), nil
	case r == '-':
		if t.signAllowed() {
			next, ok, err := t.peekRune()
			if err != nil {
				return nil, err
			}
			if ok && isDigit(next) {
				return t.parseNumber(startPos, "-")
			}
		}
		return t.single(TokenMinus, r, startPos), nil
	case r == '*':
		return t.single(TokenStar, r, startPos), nil
	case r == '/':
		return t.single(TokenSlash, r, startPos), nil
	case r == '=':
		return t.single(TokenAssign, r, startPos), nil
	case r == '(':
		return t.single(TokenLeftParen, r, startPos), nil
	case r == ')':
		return t.single(TokenRightParen, r, startPos), nil
	case isDigit(r):
		t.unreadRune()
		return t.parseNumber(startPos, "")
	case unicode.IsLetter(r) || r == '_':
		t.unreadRune()
		return t.parseIdentifier(startPos)
	}

	// separators are only valid right after the digits of a number
	return nil, &UnexpectedCharacterError{
		Char:   r,
		Offset: startPos.Offset,
		Pos:    startPos,
	}
}

func (t *Tokenizer) single(kind TokenKind, r rune, pos Pos) *Token {
	return &Token{
		Kind: kind,
		Text: string(r),
		Pos:  pos,
	}
}

// signAllowed reports whether a '-' at this point may start a negative literal:
// at the start of the stream, or after an operator, '=' or '('.
func (t *Tokenizer) signAllowed() bool {
	if len(t.tokens) == 0 {
		return true
	}
	last := t.tokens[len(t.tokens)-1].Kind
	return last.IsOperator() ||
		last == TokenAssign ||
		last == TokenLeftParen
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r != ' ' && r != '\t' && r != '\r' {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) parseIdentifier(startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

// parseNumber reads digits, at most one separator ('.', ';' or ','), then digits.
// The text is kept verbatim; numerals are validated at evaluation.
func (t *Tokenizer) parseNumber(startPos Pos, prefix string) (*Token, error) {
	var buf bytes.Buffer
	buf.WriteString(prefix)
	hasSeparator := false
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isDigit(r) {
			buf.WriteRune(r)
		} else if isSeparator(r) && !hasSeparator {
			hasSeparator = true
			buf.WriteRune(r)
		} else {
			t.unreadRune()
			break
		}
	}
	return &Token{
		Kind: TokenNumber,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSeparator(r rune) bool {
	return r == '.' || r == ';' || r == ','
}
