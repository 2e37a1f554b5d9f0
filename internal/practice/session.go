package practice

// SessionResult aggregates one practice session's per-item outcomes.
// Correctness is binary per question; there is no partial credit.
type SessionResult struct {
	Results []bool `json:"results"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
}

// Score aggregates per-item results into a session score. The percentage is
// rounded half-up on correct/total*100; an empty session scores zero.
func Score(results []bool) SessionResult {
	correct := 0
	for _, ok := range results {
		if ok {
			correct++
		}
	}

	percent := 0
	if len(results) > 0 {
		percent = int(float64(correct)/float64(len(results))*100 + 0.5)
	}

	return SessionResult{
		Results: results,
		Correct: correct,
		Total:   len(results),
		Percent: percent,
	}
}
