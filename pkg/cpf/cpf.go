package cpf

import "strings"

// Normalize strips everything that is not a digit.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders an 11-digit CPF as XXX.XXX.XXX-XX.
// Anything that is not exactly 11 digits is returned unchanged.
func Format(raw string) string {
	d := Normalize(raw)
	if len(d) != 11 {
		return raw
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// IsValid reports whether raw is a valid CPF: 11 digits after stripping
// separators, not all identical, and both check digits correct.
//
// Check digit t (t = 9, 10): sum digit[c] * (t+2-c) for c in [0,t),
// digit = ((10*sum) % 11) % 10.
func IsValid(raw string) bool {
	d := Normalize(raw)
	if len(d) != 11 {
		return false
	}
	allSame := true
	for i := 1; i < 11; i++ {
		if d[i] != d[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}
	for t := 9; t < 11; t++ {
		sum := 0
		for c := 0; c < t; c++ {
			sum += int(d[c]-'0') * (t + 1 - c)
		}
		check := ((10 * sum) % 11) % 10
		if int(d[t]-'0') != check {
			return false
		}
	}
	return true
}
