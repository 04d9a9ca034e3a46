// Package score holds the shared candidate-selection utility used by the
// place, mood, and weather extractors.
package score

// #region candidate

// Candidate is a hypothesized field value with a confidence score in [0,1].
type Candidate struct {
	Value string
	Score float64
}

// DefaultMinScore is the minimum-acceptance threshold shared by the
// text-derived fields.
const DefaultMinScore = 0.6

// #endregion candidate

// #region choose-best

// ChooseBest returns the highest-scoring candidate when its score reaches
// minScore. Ties resolve to the earliest candidate in generation order, so
// selection is stable for identical inputs. Returns false for an empty set
// or when the maximum falls below the threshold.
func ChooseBest(candidates []Candidate, minScore float64) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	if best.Score < minScore {
		return Candidate{}, false
	}
	return best, true
}

// #endregion choose-best
