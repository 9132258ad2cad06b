package numerals

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse classifies numeral text and parses it.
//
// "a;b" is a Sexagesimal, "a,b" is a Float equal to a + b/60, text with one '.'
// is a Float and plain digits are an Integer.
func Parse(text string) (Value, error) {
	if text == "" {
		return nil, ErrEmptyNumber
	}
	if strings.Contains(text, ";") {
		return parseSemicolon(text)
	}
	if strings.Contains(text, ",") {
		return parseComma(text)
	}
	return parseBase10(text)
}

func parseBase10(text string) (Value, error) {
	switch strings.Count(text, ".") {
	case 0:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, InvalidFormatError{Text: text}
		}
		return Integer(i), nil
	case 1:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, InvalidFormatError{Text: text}
		}
		return Float(f), nil
	}
	return nil, ErrMultipleDecimals
}

func parseSemicolon(text string) (Value, error) {
	parts := strings.Split(text, ";")
	if len(parts) != 2 {
		return nil, InvalidFormatError{
			Text: fmt.Sprintf("sexagesimal numbers must have exactly one ';' separator, got: %s", text),
		}
	}
	integer, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, InvalidFormatError{Text: parts[0]}
	}
	if err := checkSexagesimalDigits(parts[1]); err != nil {
		return nil, err
	}
	fraction, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, InvalidFormatError{Text: parts[1]}
	}
	ret, err := NewSexagesimal(integer, fraction)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// parseComma handles the comma notation. Only one integer group and one
// fractional group are supported, and the result is a Float.
func parseComma(text string) (Value, error) {
	parts := strings.Split(text, ",")
	switch len(parts) {
	case 1:
		return parseBase10(parts[0])
	case 2:
		integer, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, InvalidFormatError{Text: parts[0]}
		}
		fraction, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, InvalidFormatError{Text: parts[1]}
		}
		if fraction < 0 || fraction >= 60 {
			return nil, InvalidFormatError{
				Text: fmt.Sprintf("fractional part must be between 0 and 59, got %d", fraction),
			}
		}
		return Float(float64(integer) + float64(fraction)/60), nil
	}
	// TODO: positional base-60 with more than two groups, e.g. 1,30,15
	return nil, InvalidFormatError{
		Text: "multi-position base-60 numbers not yet supported",
	}
}

func checkSexagesimalDigits(group string) error {
	for i, r := range group {
		if r >= '0' && r <= '9' {
			continue
		}
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		return InvalidSexagesimalDigitError{Char: r}
	}
	return nil
}
