package application

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PowerValue is the result of FormatPower. Formatted is false when the input
// could not be read as an integer and Value is the raw input.
type PowerValue struct {
	Value     string
	Formatted bool
}

// FormatPower strips thousands separators and a trailing M, then re-renders
// the integer with separators ("12000" -> "12,000"). Anything else passes
// through unchanged ("1.5M" -> "1.5M").
func FormatPower(raw string) PowerValue {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if strings.HasSuffix(s, "M") || strings.HasSuffix(s, "m") {
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return PowerValue{Value: raw}
	}
	p := message.NewPrinter(language.English)
	return PowerValue{Value: p.Sprintf("%d", n), Formatted: true}
}
