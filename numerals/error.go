package numerals

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyNumber      = errors.New("empty number string")
	ErrMultipleDecimals = errors.New("multiple decimal points in number")
)

type InvalidFormatError struct {
	Text string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid number format: '%s'", e.Text)
}

type InvalidSexagesimalDigitError struct {
	Char rune
}

func (e InvalidSexagesimalDigitError) Error() string {
	return fmt.Sprintf("invalid digit in base-60 number: '%c'", e.Char)
}
