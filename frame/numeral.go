package frame

import (
	"strconv"
	"strings"
)

var (
	subscriptDigits   = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}
	superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}
)

const (
	subscriptMinus   = '₋'
	superscriptMinus = '⁻'
	hourSeparator    = '˙'
)

// StyleNumber renders n with subscript or superscript digits
func StyleNumber(n int, subscript bool) string {
	digits, minus := &superscriptDigits, superscriptMinus
	if subscript {
		digits, minus = &subscriptDigits, subscriptMinus
	}

	plain := strconv.Itoa(n)
	var b strings.Builder
	b.Grow(len(plain) * 3)
	for _, c := range plain {
		if c == '-' {
			b.WriteRune(minus)
			continue
		}
		b.WriteRune(digits[c-'0'])
	}
	return b.String()
}

// StyleHour renders an hour of day as a styled hh˙00 label
func StyleHour(hour int, subscript bool) string {
	hour %= 24
	if hour < 0 {
		hour += 24
	}
	zero := StyleNumber(0, subscript)
	label := StyleNumber(hour, subscript)
	if hour < 10 {
		label = zero + label
	}
	return label + string(hourSeparator) + zero + zero
}
