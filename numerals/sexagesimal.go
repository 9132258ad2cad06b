package numerals

import (
	"fmt"
	"math"
)

// Sexagesimal is a base-60 numeral with one integer group and one group of sixtieths.
// Its real equivalent is Integer + Fraction/60; Fraction is always in [0, 60).
type Sexagesimal struct {
	Integer     int64
	Fraction    int64
	HasFraction bool
}

var _ Value = Sexagesimal{}

// 2^63, the first float64 past math.MaxInt64
const maxInt64Float = float64(1 << 63)

func NewSexagesimal(integer int64, fraction int64) (Sexagesimal, error) {
	if fraction < 0 || fraction >= 60 {
		return Sexagesimal{}, InvalidFormatError{
			Text: fmt.Sprintf("fractional part must be between 0 and 59, got %d", fraction),
		}
	}
	return Sexagesimal{
		Integer:     integer,
		Fraction:    fraction,
		HasFraction: fraction != 0,
	}, nil
}

// SexagesimalFromReal rounds f to the nearest sixtieth.
// A fraction that rounds up to 60 carries into the integer part.
// Values outside the int64 range saturate; NaN is zero.
func SexagesimalFromReal(f float64) Sexagesimal {
	switch {
	case math.IsNaN(f):
		return Sexagesimal{}
	case f >= maxInt64Float:
		return Sexagesimal{Integer: math.MaxInt64}
	case f < -maxInt64Float:
		return Sexagesimal{Integer: math.MinInt64}
	}

	floor := math.Floor(f)
	integer := int64(floor)
	fraction := int64(math.Round((f - floor) * 60))
	if fraction >= 60 {
		integer++
		fraction = 0
	}
	return Sexagesimal{
		Integer:     integer,
		Fraction:    fraction,
		HasFraction: fraction != 0,
	}
}

func (Sexagesimal) Kind() Kind {
	return KindSexagesimal
}

func (s Sexagesimal) Real() float64 {
	return float64(s.Integer) + float64(s.Fraction)/60
}

func (s Sexagesimal) String() string {
	if s.HasFraction {
		return fmt.Sprintf("%d;%02d", s.Integer, s.Fraction)
	}
	return fmt.Sprintf("%d", s.Integer)
}

func (Sexagesimal) numeral() {}
