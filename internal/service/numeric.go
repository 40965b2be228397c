package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// ToNumber converts a metric value into an integer. Strings may carry thousands
// separators ("1,247"); anything that does not start with a number yields 0.
func ToNumber(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(n)
	case model.MetricValue:
		return parseLeadingInt(string(n))
	case string:
		return parseLeadingInt(n)
	case fmt.Stringer:
		return parseLeadingInt(n.String())
	}
	return 0
}

// parseLeadingInt reads an optional sign and the leading decimal digits of s,
// after dropping commas and leading whitespace. Trailing characters are ignored.
func parseLeadingInt(s string) int {
	s = strings.TrimLeft(strings.ReplaceAll(s, ",", ""), " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n > (math.MaxInt-9)/10 {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}

// FormatAbbr renders n with a K or M suffix and one decimal place.
func FormatAbbr(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}
