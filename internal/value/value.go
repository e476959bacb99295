package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the two runtime value variants.
type Kind int

const (
	NUMBER Kind = iota
	STRING
)

// Value is an immutable runtime value, either a 64-bit integer or a
// string. Values are passed and stored by copy; nothing ever aliases
// the contents of a scope entry.
type Value struct {
	Kind Kind
	Num  int64
	Str  string
}

func Number(n int64) Value {
	return Value{Kind: NUMBER, Num: n}
}

func String(s string) Value {
	return Value{Kind: STRING, Str: s}
}

// String renders the tagged debug form, e.g. Number(6) or String("ab").
func (v Value) String() string {
	switch v.Kind {
	case NUMBER:
		return fmt.Sprintf("Number(%d)", v.Num)
	case STRING:
		return fmt.Sprintf("String(%q)", v.Str)
	default:
		return fmt.Sprintf("Value(kind=%d)", v.Kind)
	}
}

// Add applies the '+' coercion table:
//
//	Number + Number -> Number
//	Number + String -> String (decimal form prepended)
//	String + Number -> String (decimal form appended)
//	String + String -> error
func Add(left, right Value) (Value, error) {
	switch {
	case left.Kind == NUMBER && right.Kind == NUMBER:
		return Number(left.Num + right.Num), nil
	case left.Kind == NUMBER && right.Kind == STRING:
		return String(strconv.FormatInt(left.Num, 10) + right.Str), nil
	case left.Kind == STRING && right.Kind == NUMBER:
		return String(left.Str + strconv.FormatInt(right.Num, 10)), nil
	default:
		return Value{}, fmt.Errorf("'+' between %s and %s is not supported", left, right)
	}
}

// Mul applies the '*' coercion table:
//
//	Number * Number -> Number
//	Number * String -> String repeated
//	String * Number -> String repeated
//	String * String -> error
//
// A negative repetition count is rejected rather than cast unsigned.
func Mul(left, right Value) (Value, error) {
	switch {
	case left.Kind == NUMBER && right.Kind == NUMBER:
		return Number(left.Num * right.Num), nil
	case left.Kind == NUMBER && right.Kind == STRING:
		return repeat(right.Str, left.Num)
	case left.Kind == STRING && right.Kind == NUMBER:
		return repeat(left.Str, right.Num)
	default:
		return Value{}, fmt.Errorf("'*' between %s and %s is not supported", left, right)
	}
}

func repeat(s string, count int64) (Value, error) {
	if count < 0 {
		return Value{}, fmt.Errorf("cannot repeat a string a negative number of times (%d)", count)
	}
	return String(strings.Repeat(s, int(count))), nil
}
