package utils

import "strings"

// OnlyDigits drops every character that is not an ASCII decimal digit
func OnlyDigits(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)
}
