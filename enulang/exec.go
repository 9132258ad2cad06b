package enulang

import (
	"errors"

	"github.com/reusee/enu/numerals"
)

// Compile tokenizes and parses src. Errors are *PhaseError values with
// PhaseTokenize or PhaseParse.
func Compile(src string) (*Program, []*Token, error) {
	source := NewSource("", src)

	tokens, err := Tokenize(src)
	if err != nil {
		var charErr *UnexpectedCharacterError
		if errors.As(err, &charErr) {
			err = WithPos(err, charErr.Pos, source)
		}
		return nil, nil, &PhaseError{
			Phase: PhaseTokenize,
			Err:   err,
		}
	}

	program, err := Parse(NewSliceTokenStream(tokens))
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			err = WithPos(err, parseErr.Got.Pos, source)
		}
		return nil, tokens, &PhaseError{
			Phase: PhaseParse,
			Err:   err,
		}
	}

	return program, tokens, nil
}

// Run evaluates a compiled program. Errors are *PhaseError values with PhaseEvaluate.
func (e *Env) Run(program *Program) (numerals.Value, error) {
	value, err := e.Evaluate(program)
	if err != nil {
		return nil, &PhaseError{
			Phase: PhaseEvaluate,
			Err:   err,
		}
	}
	return value, nil
}

// Exec tokenizes, parses and evaluates src against env.
// A failed phase stops the pipeline; the error reports which phase failed.
func Exec(src string, env *Env) (numerals.Value, error) {
	program, _, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return env.Run(program)
}
