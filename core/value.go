package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// ValueType represents the JSON kind of a record value
type ValueType uint8

const (
	// NullType marks an absent field or a JSON null
	NullType ValueType = iota
	StringType
	NumberType
	BoolType
	ObjectType
	ArrayType
)

// Value is an optional field taken from a record. The zero Value is absent.
type Value struct {
	Type ValueType
	Str  string
	Num  float64
	Bool bool
	// Raw holds the compact JSON text of objects and arrays
	Raw string
}

// ValueOf copies v into a Value. A nil v yields the zero Value.
func ValueOf(v *fastjson.Value) Value {
	if v == nil {
		return Value{}
	}
	switch v.Type() {
	case fastjson.TypeString:
		return Value{Type: StringType, Str: string(v.GetStringBytes())}
	case fastjson.TypeNumber:
		return Value{Type: NumberType, Num: v.GetFloat64()}
	case fastjson.TypeTrue:
		return Value{Type: BoolType, Bool: true}
	case fastjson.TypeFalse:
		return Value{Type: BoolType}
	case fastjson.TypeObject:
		return Value{Type: ObjectType, Raw: v.String()}
	case fastjson.TypeArray:
		return Value{Type: ArrayType, Raw: v.String()}
	default:
		return Value{}
	}
}

// StringValue wraps s as a string Value.
func StringValue(s string) Value { return Value{Type: StringType, Str: s} }

// NumberValue wraps n as a number Value.
func NumberValue(n float64) Value { return Value{Type: NumberType, Num: n} }

// IsNull reports whether the value is absent or JSON null.
func (v Value) IsNull() bool {
	return v.Type == NullType
}

// Truthy follows JavaScript truthiness: empty strings, zero, NaN, false
// and null are falsy; objects and arrays are always truthy.
func (v Value) Truthy() bool {
	switch v.Type {
	case StringType:
		return v.Str != ""
	case NumberType:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case BoolType:
		return v.Bool
	case ObjectType, ArrayType:
		return true
	default:
		return false
	}
}

// String returns the display form of the value
func (v Value) String() string {
	switch v.Type {
	case StringType:
		return v.Str
	case NumberType:
		return formatNumber(v.Num)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case ObjectType, ArrayType:
		return v.Raw
	default:
		return ""
	}
}

// Int parses the leading decimal integer of the value's string form, the
// way parseInt(s, 10) does. Trailing garbage such as "12ms" is ignored.
func (v Value) Int() (int64, bool) {
	if v.Type == NumberType {
		if math.IsNaN(v.Num) || v.Num > maxExact || v.Num < -maxExact {
			return 0, false
		}
		return int64(v.Num), true
	}
	if v.Type != StringType {
		return 0, false
	}

	s := strings.TrimLeft(v.Str, " \t\n\r\f\v")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// largest float64 that converts to int64 without overflow
const maxExact = 1 << 62

func formatNumber(f float64) string {
	if f < maxExact && f > -maxExact && f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
