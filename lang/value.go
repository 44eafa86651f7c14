package lang

import "strconv"

// ValueKind identifies the runtime type of a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindChar
	KindString
)

// Value is the runtime representation of a dynamix value. The binding stack
// stores Values as opaque handles; it never inspects them.
type Value struct {
	Kind ValueKind
	num  float64
	str  string
	ch   rune
	b    bool
}

// Null returns the null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, b: b}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, num: f}
}

// Char returns a character value.
func Char(c rune) Value {
	return Value{Kind: KindChar, ch: c}
}

// String returns a string value.
func String(s string) Value {
	return Value{Kind: KindString, str: s}
}

// AsNumber returns the numeric payload. Valid only for KindNumber.
func (v Value) AsNumber() float64 { return v.num }

// AsBool returns the boolean payload. Valid only for KindBool.
func (v Value) AsBool() bool { return v.b }

// AsChar returns the character payload. Valid only for KindChar.
func (v Value) AsChar() rune { return v.ch }

// AsString returns the string payload. Valid only for KindString.
func (v Value) AsString() string { return v.str }

// TypeName returns the display name of the value's runtime type.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Format returns the canonical textual form of the value, as produced by the
// print statement.
func (v Value) Format() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindChar:
		return string(v.ch)
	case KindString:
		return v.str
	case KindNull:
		return "null"
	default:
		return "<invalid>"
	}
}

// Equal reports whether two values have the same type and payload.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindChar:
		return v.ch == other.ch
	case KindString:
		return v.str == other.str
	case KindNull:
		return true
	default:
		return false
	}
}

// Falsey reports whether the value is considered false in a condition:
// null and false are falsey, every other value is truthy.
func (v Value) Falsey() bool {
	return v.Kind == KindNull || (v.Kind == KindBool && !v.b)
}
