package table

import (
	"fmt"
	"strconv"

	"tabstat/domain/core"
)

// Kind identifies the variant carried by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a single scalar cell. It is a closed tagged variant so numeric
// assertion and ordering can handle every case exhaustively. The zero Value
// is the null marker. Values are comparable and usable as map keys.
type Value struct {
	kind Kind
	num  float64
	text string
	flag bool
}

// Null returns the missing-observation marker.
func Null() Value { return Value{} }

// Number wraps a float64 observation. Integer observations use the same
// representation.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int wraps an integer observation as a Number.
func Int(i int) Value { return Number(float64(i)) }

// Text wraps a categorical/string observation.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool wraps a boolean observation.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsNumeric() bool { return v.kind == KindNumber }

// Float returns the numeric payload. Only meaningful for KindNumber.
func (v Value) Float() float64 { return v.num }

// Equal reports exact scalar equality. Values of different kinds are never
// equal; two nulls are equal.
func (v Value) Equal(o Value) bool { return v == o }

// Less orders two values of the same orderable kind: numbers numerically,
// text lexically, bools with false before true. Mixed kinds and nulls are
// not orderable.
func (v Value) Less(o Value) (bool, error) {
	if v.kind != o.kind {
		return false, core.NewTypeError("compare", fmt.Sprintf("cannot order %s against %s", v.kind, o.kind))
	}
	switch v.kind {
	case KindNumber:
		return v.num < o.num, nil
	case KindText:
		return v.text < o.text, nil
	case KindBool:
		return !v.flag && o.flag, nil
	default:
		return false, core.NewTypeError("compare", fmt.Sprintf("%s values have no ordering", v.kind))
	}
}

// String renders the scalar for display and for derived column names.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return "null"
	}
}
