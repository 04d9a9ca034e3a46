package extract

// #region imports
import (
	"regexp"
	"strings"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/lexicon"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/score"
)

// #endregion

// #region patterns

// feelingPattern anchors on a first-person or feeling verb and captures the
// short phrase that follows it.
var feelingPattern = regexp.MustCompile(
	`(?i)\b(?:i\s+am|i'm|i\s+was|feeling|feels|felt|feel)\s+` +
		`((?:[A-Za-z'\-]+\s+){0,4}[A-Za-z'\-]+)`)

var moodScanPattern = regexp.MustCompile(
	`(?i)\b(?:` + buildAlternation(lexicon.MoodScanTerms) + `)\b`)

// #endregion patterns

// #region extract

func (e *Engine) extractMood(text string) string {
	cands := append(e.moodPatternCandidates(text), e.moodScanCandidates(text)...)
	best, ok := score.ChooseBest(cands, e.weights.MinScore)
	if !ok {
		return ""
	}
	return best.Value
}

// #endregion extract

// #region strategies

// moodPatternCandidates resolves the phrase after a feeling anchor against
// the mood vocabulary, trying the longest prefix first so multi-word moods
// ("on edge") survive trailing words.
func (e *Engine) moodPatternCandidates(text string) []score.Candidate {
	var cands []score.Candidate
	for _, m := range feelingPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		words := strings.Fields(strings.ToLower(text[start:end]))
		words = stripLeadingFillers(words)
		if len(words) == 0 || negationWordSet[words[0]] {
			continue
		}
		canonical, matched := "", ""
		for n := minInt(3, len(words)); n >= 1; n-- {
			probe := strings.Join(words[:n], " ")
			if c, ok := lexicon.NormalizeMood(probe); ok {
				canonical, matched = c, probe
				break
			}
		}
		if canonical == "" {
			continue
		}
		if negatedAround(text, start, end) {
			continue
		}
		if blacklistSuppressed(matched, remainderAfter(words, matched)+text[end:]) {
			continue
		}
		cands = append(cands, e.moodCandidate(canonical, e.weights.MoodFeelingPattern))
	}
	return cands
}

// moodScanCandidates sweeps the full vocabulary over the raw text. Each hit
// must survive the negation window and the per-word context blacklist.
func (e *Engine) moodScanCandidates(text string) []score.Candidate {
	var cands []score.Candidate
	for _, loc := range moodScanPattern.FindAllStringIndex(text, -1) {
		token := strings.ToLower(text[loc[0]:loc[1]])
		canonical, ok := lexicon.NormalizeMood(token)
		if !ok {
			continue
		}
		if negatedAround(text, loc[0], loc[1]) {
			continue
		}
		if blacklistSuppressed(token, text[loc[1]:]) {
			continue
		}
		cands = append(cands, e.moodCandidate(canonical, e.weights.MoodVocabScan))
	}
	return cands
}

// #endregion strategies

// #region scoring

// moodCandidate scales the strategy base by how emphatic the canonical mood
// is, so "furious" outranks "annoyed" when both appear.
func (e *Engine) moodCandidate(canonical string, base float64) score.Candidate {
	s := base + (lexicon.MoodIntensity(canonical)-0.5)*e.weights.MoodIntensityScale
	return score.Candidate{Value: canonical, Score: clamp01(s)}
}

// remainderAfter returns the captured words that trail the matched phrase,
// so a blacklist word inside the capture still suppresses the hit.
func remainderAfter(words []string, matched string) string {
	n := len(strings.Fields(matched))
	if n >= len(words) {
		return ""
	}
	return strings.Join(words[n:], " ") + " "
}

// #endregion scoring
