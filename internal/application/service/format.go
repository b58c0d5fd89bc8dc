package service

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// formatAmount renders a monetary value with thousands grouping.
// Zero-decimal amounts round half away from zero first, so 1234.5
// prints as "1,235"; all other amounts keep two decimals.
func formatAmount(v float64, decimals int) string {
	if decimals == 0 {
		return moneyPrinter.Sprintf("%.0f", math.Round(v))
	}
	return moneyPrinter.Sprintf("%.2f", v)
}

func padRight(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

func padLeft(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}

func padCenter(s string, width int) string {
	count := utf8.RuneCountInString(s)
	if count >= width {
		return s
	}
	left := (width - count) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-count-left)
}

// truncate cuts on rune boundaries so multibyte descriptions never
// split mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
