package enulang

import (
	"github.com/reusee/enu/numerals"
)

type binaryFunc func(left, right numerals.Value) numerals.Value

type opKey struct {
	op    Op
	left  numerals.Kind
	right numerals.Kind
}

const (
	kInt = numerals.KindInteger
	kFlt = numerals.KindFloat
	kSex = numerals.KindSexagesimal
)

// binaryOps is the promotion matrix. Every (operator, left kind, right kind)
// triple has an entry; a new kind must be added here for each operator.
//
// Integer op Integer stays Integer, except inexact division which is Float.
// Any Float operand gives Float. Sexagesimal with Integer stays Sexagesimal for
// all four operators. Sexagesimal with Sexagesimal stays Sexagesimal for + and -
// but gives Float for * and /.
var binaryOps = map[opKey]binaryFunc{
	{OpAdd, kInt, kInt}: integers(add[int64]),
	{OpAdd, kInt, kFlt}: floats(add[float64]),
	{OpAdd, kInt, kSex}: sexagesimals(add[float64]),
	{OpAdd, kFlt, kInt}: floats(add[float64]),
	{OpAdd, kFlt, kFlt}: floats(add[float64]),
	{OpAdd, kFlt, kSex}: floats(add[float64]),
	{OpAdd, kSex, kInt}: sexagesimals(add[float64]),
	{OpAdd, kSex, kFlt}: floats(add[float64]),
	{OpAdd, kSex, kSex}: sexagesimals(add[float64]),

	{OpSub, kInt, kInt}: integers(sub[int64]),
	{OpSub, kInt, kFlt}: floats(sub[float64]),
	{OpSub, kInt, kSex}: sexagesimals(sub[float64]),
	{OpSub, kFlt, kInt}: floats(sub[float64]),
	{OpSub, kFlt, kFlt}: floats(sub[float64]),
	{OpSub, kFlt, kSex}: floats(sub[float64]),
	{OpSub, kSex, kInt}: sexagesimals(sub[float64]),
	{OpSub, kSex, kFlt}: floats(sub[float64]),
	{OpSub, kSex, kSex}: sexagesimals(sub[float64]),

	{OpMul, kInt, kInt}: integers(mul[int64]),
	{OpMul, kInt, kFlt}: floats(mul[float64]),
	{OpMul, kInt, kSex}: sexagesimals(mul[float64]),
	{OpMul, kFlt, kInt}: floats(mul[float64]),
	{OpMul, kFlt, kFlt}: floats(mul[float64]),
	{OpMul, kFlt, kSex}: floats(mul[float64]),
	{OpMul, kSex, kInt}: sexagesimals(mul[float64]),
	{OpMul, kSex, kFlt}: floats(mul[float64]),
	{OpMul, kSex, kSex}: floats(mul[float64]),

	{OpDiv, kInt, kInt}: divideIntegers,
	{OpDiv, kInt, kFlt}: floats(div[float64]),
	{OpDiv, kInt, kSex}: sexagesimals(div[float64]),
	{OpDiv, kFlt, kInt}: floats(div[float64]),
	{OpDiv, kFlt, kFlt}: floats(div[float64]),
	{OpDiv, kFlt, kSex}: floats(div[float64]),
	{OpDiv, kSex, kInt}: sexagesimals(div[float64]),
	{OpDiv, kSex, kFlt}: floats(div[float64]),
	{OpDiv, kSex, kSex}: floats(div[float64]),
}

type number interface {
	~int64 | ~float64
}

func add[T number](a, b T) T { return a + b }
func sub[T number](a, b T) T { return a - b }
func mul[T number](a, b T) T { return a * b }
func div[T number](a, b T) T { return a / b }

func integers(fn func(a, b int64) int64) binaryFunc {
	return func(left, right numerals.Value) numerals.Value {
		return numerals.Integer(fn(
			int64(left.(numerals.Integer)),
			int64(right.(numerals.Integer)),
		))
	}
}

func floats(fn func(a, b float64) float64) binaryFunc {
	return func(left, right numerals.Value) numerals.Value {
		return numerals.Float(fn(left.Real(), right.Real()))
	}
}

func sexagesimals(fn func(a, b float64) float64) binaryFunc {
	return func(left, right numerals.Value) numerals.Value {
		return numerals.SexagesimalFromReal(fn(left.Real(), right.Real()))
	}
}

// divideIntegers is exact when the divisor divides evenly, Float otherwise.
// The divisor is non-zero.
func divideIntegers(left, right numerals.Value) numerals.Value {
	a := int64(left.(numerals.Integer))
	b := int64(right.(numerals.Integer))
	if a%b == 0 {
		return numerals.Integer(a / b)
	}
	return numerals.Float(float64(a) / float64(b))
}

// Binary applies op to two values.
func Binary(op Op, left, right numerals.Value) (numerals.Value, error) {
	if op == OpDiv && isZero(right) {
		return nil, ErrDivisionByZero
	}
	fn, ok := binaryOps[opKey{op, left.Kind(), right.Kind()}]
	if !ok {
		return nil, &InvalidOperatorError{
			Op:    op,
			Left:  left.Kind(),
			Right: right.Kind(),
		}
	}
	return fn(left, right), nil
}

// Unary applies a prefix operator. Only OpAdd and OpSub are unary.
func Unary(op Op, value numerals.Value) (numerals.Value, error) {
	switch op {
	case OpAdd:
		return value, nil
	case OpSub:
		switch value := value.(type) {
		case numerals.Integer:
			return -value, nil
		case numerals.Float:
			return -value, nil
		case numerals.Sexagesimal:
			return numerals.SexagesimalFromReal(-value.Real()), nil
		}
	}
	return nil, &InvalidOperatorError{
		Op:    op,
		Right: value.Kind(),
	}
}

func isZero(v numerals.Value) bool {
	switch v := v.(type) {
	case numerals.Integer:
		return v == 0
	case numerals.Float:
		return v == 0
	case numerals.Sexagesimal:
		return v.Real() == 0
	}
	return false
}
