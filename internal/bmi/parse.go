// ABOUTME: Lenient parsing of user-entered numeric fields
// ABOUTME: Malformed text coerces to zero instead of failing

package bmi

import (
	"math"
	"strconv"
	"strings"
)

// ParseRawInput builds a RawInput from form text. Every field is parsed with ParseNumber.
func ParseRawInput(heightCm, heightFt, heightIn, weight string) RawInput {
	return RawInput{
		HeightCm: ParseNumber(heightCm),
		HeightFt: ParseNumber(heightFt),
		HeightIn: ParseNumber(heightIn),
		Weight:   ParseNumber(weight),
	}
}

// ParseNumber parses the longest leading decimal number in s ("170cm" -> 170).
// Empty, malformed, NaN, or infinite input yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := numericPrefix(s)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// numericPrefix returns the length of the leading [+-]digits[.digits][e[+-]digits] run.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
