package numerals

import (
	"fmt"
	"strconv"
)

type Kind uint8

const (
	KindInteger Kind = iota + 1
	KindFloat
	KindSexagesimal
)

// Kinds lists every value kind, in declaration order.
var Kinds = []Kind{
	KindInteger,
	KindFloat,
	KindSexagesimal,
}

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindSexagesimal:
		return "sexagesimal"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is one of Integer, Float or Sexagesimal.
type Value interface {
	Kind() Kind
	// Real returns the base-10 floating equivalent.
	Real() float64
	String() string
	numeral()
}

type Integer int64

var _ Value = Integer(0)

func (Integer) Kind() Kind {
	return KindInteger
}

func (i Integer) Real() float64 {
	return float64(i)
}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Integer) numeral() {}

type Float float64

var _ Value = Float(0)

func (Float) Kind() Kind {
	return KindFloat
}

func (f Float) Real() float64 {
	return float64(f)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (Float) numeral() {}
