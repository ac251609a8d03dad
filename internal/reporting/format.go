// Package reporting provides the formatting helpers shared by the console
// report: duration scaling, digit grouping, and display-width padding.
package reporting

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatSeconds renders an average in the most readable unit: microseconds
// under 1ms, milliseconds under 1s, whole seconds beyond that. A nil average
// renders as "N/A".
func FormatSeconds(seconds *float64) string {
	if seconds == nil {
		return "N/A"
	}
	s := *seconds
	switch {
	case s < 0.001:
		return fmt.Sprintf("%.1f us", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.2f ms", s*1e3)
	default:
		return fmt.Sprintf("%.2f s", s)
	}
}

var englishPrinter = message.NewPrinter(language.English)

// FormatCount renders an integer with digit grouping ("12,345").
func FormatCount(n int) string {
	return englishPrinter.Sprintf("%d", n)
}

// PadRight pads s with spaces so its terminal display width reaches width.
func PadRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// PadLeft prefixes s with spaces so its terminal display width reaches width.
func PadLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", width-sw) + s
}
