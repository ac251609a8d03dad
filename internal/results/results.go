// Package results aggregates per-tool outcomes and relates each one to the
// primary tool's baseline.
package results

import (
	"fmt"

	"github.com/bodiam/rstbench/internal/models"
)

// Aggregate collects outcomes into a set keyed by tool name. Tools that were
// never attempted do not appear at all, which is what keeps undetected tools
// out of the report.
func Aggregate(outcomes []models.Outcome) models.ResultSet {
	rs := make(models.ResultSet, len(outcomes))
	for _, o := range outcomes {
		rs[o.Tool] = o
	}
	return rs
}

// Baseline returns the primary tool's average, or nil when the primary is
// missing or failed. Relative labels exist only while this is non-nil.
func Baseline(rs models.ResultSet, primary string) *float64 {
	o, ok := rs[primary]
	if !ok || !o.Succeeded() {
		return nil
	}
	return o.AverageSeconds
}

// Relative renders how an outcome compares to the baseline: "baseline" for
// the primary itself or an exact tie, a slowdown factor otherwise, and ""
// when either side lacks a usable average. Factors from 1.5 up round to a
// whole multiple; closer races keep one decimal so near-parity never
// displays as "1x slower".
func Relative(o models.Outcome, primary string, baseline *float64) string {
	if baseline == nil || !o.Succeeded() {
		return ""
	}
	if o.Tool == primary || *o.AverageSeconds == *baseline {
		return "baseline"
	}
	ratio := *o.AverageSeconds / *baseline
	if ratio >= 1.5 {
		return fmt.Sprintf("%.0fx slower", ratio)
	}
	return fmt.Sprintf("%.1fx slower", ratio)
}

// SpeedupFactor returns how many times slower o is than the baseline, for
// the summary lines. The second return is false when no comparison exists.
func SpeedupFactor(o models.Outcome, baseline *float64) (float64, bool) {
	if baseline == nil || *baseline <= 0 || !o.Succeeded() {
		return 0, false
	}
	return *o.AverageSeconds / *baseline, true
}
