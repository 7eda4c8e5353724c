// Package tripid decodes trip ids sent by clients as JSON numbers, strings or
// arrays. The value is turned into text the way a browser would print it and
// the leading integer of that text is used, so "2", 2, 2.7, " 2abc", "0x2"
// and [2] all refer to trip 2, while 1e30 (printed "1e+30") refers to trip 1.
package tripid

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type ID struct {
	Value int
	// Valid is false when no integer could be read. No trip matches such an id.
	Valid bool
}

func (id *ID) UnmarshalJSON(b []byte) error {
	*id = ID{}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	if v == nil {
		return nil
	}

	*id = Parse(text(v))

	return nil
}

// Parse reads an optionally signed integer from the start of s, ignoring
// leading whitespace and anything after the digits. A 0x or 0X prefix
// switches to hexadecimal. Values outside the int range are not valid.
func Parse(s string) ID {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}

	if end == 0 {
		return ID{}
	}

	n, err := strconv.ParseInt(sign+s[:end], base, strconv.IntSize)
	if err != nil {
		return ID{}
	}

	return ID{Value: int(n), Valid: true}
}

// text prints a decoded JSON value the way JavaScript's String() does.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return number(t)
	case []any:
		parts := make([]string, len(t))
		for i, el := range t {
			parts[i] = text(el)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

func number(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 0):
		return "Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
