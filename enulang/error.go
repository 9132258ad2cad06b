package enulang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/enu/numerals"
)

// tokenize errors

type UnexpectedCharacterError struct {
	Char   rune
	Offset int
	Pos    Pos
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character: '%c' at position %d", e.Char, e.Offset)
}

// parse errors

type ParseError struct {
	Expected string
	Got      *Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, describeToken(e.Got))
}

func describeToken(token *Token) string {
	switch token.Kind {
	case TokenIdentifier:
		return fmt.Sprintf("identifier '%s'", token.Text)
	case TokenNumber:
		return fmt.Sprintf("number '%s'", token.Text)
	}
	return token.Kind.String()
}

// evaluation errors

var ErrDivisionByZero = errors.New("division by zero")

type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: '%s'", e.Name)
}

// TypeError wraps a numeral that failed to parse.
type TypeError struct {
	Err error
}

func (e *TypeError) Error() string {
	return "type error: " + e.Err.Error()
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// InvalidOperatorError has a zero Left for unary operators.
type InvalidOperatorError struct {
	Op    Op
	Left  numerals.Kind
	Right numerals.Kind
}

func (e *InvalidOperatorError) Error() string {
	if e.Left == 0 {
		return fmt.Sprintf("invalid operator for type: %s%s", e.Op, e.Right)
	}
	return fmt.Sprintf("invalid operator for types: %s %s %s", e.Left, e.Op, e.Right)
}

// phases

type Phase uint8

const (
	PhaseTokenize Phase = iota + 1
	PhaseParse
	PhaseEvaluate
)

func (p Phase) String() string {
	switch p {
	case PhaseTokenize:
		return "tokenize"
	case PhaseParse:
		return "parse"
	case PhaseEvaluate:
		return "evaluate"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// PhaseError records which stage of Exec failed.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (p *PhaseError) Error() string {
	return p.Phase.String() + " error: " + p.Err.Error()
}

func (p *PhaseError) Unwrap() error {
	return p.Err
}

// PhaseOf returns the failed phase of an error returned by Exec, or zero.
func PhaseOf(err error) Phase {
	var phaseErr *PhaseError
	if errors.As(err, &phaseErr) {
		return phaseErr.Phase
	}
	return 0
}

// positions

type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p *PosError) Error() string {
	if p.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	if p.Source.Name != "" {
		sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Pos.Line, p.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", p.Err.Error(), p.Pos.Line, p.Pos.Column))
	}

	// line content
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Source.Lines) {
		line := p.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^")
	}

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos, source *Source) error {
	if err == nil {
		return nil
	}
	var posErr *PosError
	if errors.As(err, &posErr) {
		return err
	}
	return &PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
