package num

import (
	"strconv"
	"strings"
)

// ParseComma parses a decimal that may use a comma as the decimal
// separator, which is how the hours cells arrive from the spreadsheet.
func ParseComma(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// ParseCommaOr returns def when s is empty or unparseable.
func ParseCommaOr(s string, def float64) float64 {
	f, err := ParseComma(s)
	if err != nil {
		return def
	}
	return f
}
