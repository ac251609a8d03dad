package models

// Outcome is the measured result for one tool. AverageSeconds is nil when the
// run failed; Err then carries the first failure message.
type Outcome struct {
	Tool           string
	AverageSeconds *float64
	Err            string
}

// Succeeded reports whether the tool produced a usable average.
func (o Outcome) Succeeded() bool {
	return o.Err == "" && o.AverageSeconds != nil
}

// ResultSet maps tool name to outcome for one benchmark run. Only tools that
// were detected and attempted appear here; presentation order comes from the
// configured tool list, never from map iteration.
type ResultSet map[string]Outcome

// Successes counts outcomes that produced an average.
func (rs ResultSet) Successes() int {
	n := 0
	for _, o := range rs {
		if o.Succeeded() {
			n++
		}
	}
	return n
}
