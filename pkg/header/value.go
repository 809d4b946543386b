package header

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

type valueKind uint8

const (
	kindString valueKind = iota
	kindNumber
)

// Value is a single directive value. It's either a number or a string.
type Value struct {
	kind valueKind
	num  float64
	str  string
}

func NumberValue(n float64) Value {
	return Value{kind: kindNumber, num: n}
}

func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// ParseValue turns raw into a number if the whole string is numeric and a
// string otherwise.
//
// Numeric means a decimal literal (optionally signed, with exponent), an
// unsigned 0x / 0o / 0b integer or "Infinity". Empty strings, NaN, hex floats
// and digit separators stay strings. Decimals too large for a float64 become
// infinities.
func ParseValue(raw string) Value {
	if raw == "" || strings.ContainsRune(raw, '_') {
		return StringValue(raw)
	}

	if n, ok := parseRadixInt(raw); ok {
		return NumberValue(n)
	}

	switch raw {
	case "Infinity", "+Infinity":
		return NumberValue(math.Inf(1))
	case "-Infinity":
		return NumberValue(math.Inf(-1))
	}

	if !isDecimal(raw) {
		return StringValue(raw)
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil && !eris.Is(err, strconv.ErrRange) {
		return StringValue(raw)
	}

	return NumberValue(n)
}

var radixPrefixes = map[string]int{
	"0x": 16, "0X": 16,
	"0o": 8, "0O": 8,
	"0b": 2, "0B": 2,
}

func parseRadixInt(raw string) (float64, bool) {
	if len(raw) < 3 {
		return 0, false
	}

	base, ok := radixPrefixes[raw[:2]]
	if !ok {
		return 0, false
	}

	digits := raw[2:]
	// big.Int accepts a sign here, a literal doesn't
	if digits[0] == '+' || digits[0] == '-' {
		return 0, false
	}

	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}

	n, _ := new(big.Float).SetInt(i).Float64()
	return n, true
}

// isDecimal rejects everything ParseFloat accepts beyond plain decimal
// literals (inf, nan and hex floats).
func isDecimal(raw string) bool {
	digits := false
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.':
		case r == 'e' || r == 'E':
			if !digits {
				return false
			}
		case r == '+' || r == '-':
			if i != 0 && raw[i-1] != 'e' && raw[i-1] != 'E' {
				return false
			}
		default:
			return false
		}
	}
	return digits
}

func (v Value) IsNumber() bool {
	return v.kind == kindNumber
}

// Number returns the numeric value and false if v holds a string.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == kindNumber
}

// String returns the string value or the shortest decimal form of a number.
func (v Value) String() string {
	switch {
	case v.kind != kindNumber:
		return v.str
	case math.IsInf(v.num, 1):
		return "Infinity"
	case math.IsInf(v.num, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

func (v Value) GoString() string {
	if v.kind == kindNumber {
		return "header.NumberValue(" + v.String() + ")"
	}
	return "header.StringValue(" + strconv.Quote(v.str) + ")"
}
