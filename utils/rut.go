package utils

import (
	"strconv"
	"strings"
)

// CleanRUT strips everything but digits and the K check digit
func CleanRUT(rut string) string {
	var b strings.Builder
	for _, r := range rut {
		if (r >= '0' && r <= '9') || r == 'k' || r == 'K' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatRUT renders a RUT as 12.345.678-5
func FormatRUT(rut string) string {
	cleaned := CleanRUT(rut)
	if cleaned == "" {
		return ""
	}
	dv := strings.ToLower(cleaned[len(cleaned)-1:])
	number := cleaned[:len(cleaned)-1]
	if number == "" {
		return dv
	}

	rem := len(number) % 3
	if rem == 0 {
		rem = 3
	}
	var b strings.Builder
	b.WriteString(number[:rem])
	for i := rem; i < len(number); i += 3 {
		b.WriteByte('.')
		b.WriteString(number[i : i+3])
	}
	return b.String() + "-" + dv
}

// ValidateRUT checks the modulo 11 check digit of a Chilean RUT
func ValidateRUT(rut string) bool {
	cleaned := strings.ToLower(CleanRUT(rut))
	if len(cleaned) < 2 {
		return false
	}
	dv := cleaned[len(cleaned)-1:]
	number := cleaned[:len(cleaned)-1]

	sum := 0
	multiplier := 2
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if digit < 0 || digit > 9 {
			return false
		}
		sum += digit * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	expected := 11 - sum%11
	switch expected {
	case 11:
		return dv == "0"
	case 10:
		return dv == "k"
	default:
		return dv == strconv.Itoa(expected)
	}
}
