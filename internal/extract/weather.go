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

// weatherPhrasePattern anchors on an ambient subject plus copula and
// captures the short description that follows ("it's pouring rain",
// "the room was warm").
var weatherPhrasePattern = regexp.MustCompile(
	`(?i)\b(?:it's|it\s+is|it\s+was|it\s+feels|it\s+felt|` +
		`the\s+weather\s+(?:is|was)|the\s+sky\s+(?:is|was)|` +
		`the\s+skies\s+(?:are|were)|skies\s+(?:are|were)|` +
		`the\s+air\s+(?:is|was|feels|felt)|the\s+room\s+(?:is|was|feels|felt)|` +
		`the\s+night\s+(?:is|was)|the\s+day\s+(?:is|was))\s+` +
		`((?:[A-Za-z'\-]+\s+){0,2}[A-Za-z'\-]+)`)

var (
	weatherScanPattern = regexp.MustCompile(
		`(?i)\b(?:` + buildAlternation(lexicon.WeatherScanTerms) + `)\b`)

	weatherAnchorPattern = regexp.MustCompile(
		`(?i)\b(?:` + buildAlternation(lexicon.WeatherAnchors) + `)\b`)
)

// anchorWindow is the character span within which a condition word and a
// weather anchor count as adjacent.
const anchorWindow = 24

// #endregion patterns

// #region extract

func (e *Engine) extractWeather(text string) string {
	cands := append(e.weatherPhraseCandidates(text), e.weatherScanCandidates(text)...)
	best, ok := score.ChooseBest(cands, e.weights.MinScore)
	if !ok {
		return ""
	}
	return best.Value
}

// #endregion extract

// #region strategies

func (e *Engine) weatherPhraseCandidates(text string) []score.Candidate {
	var cands []score.Candidate
	for _, m := range weatherPhrasePattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		words := strings.Fields(strings.ToLower(text[start:end]))
		words = stripLeadingFillers(words)
		if len(words) == 0 || negationWordSet[words[0]] {
			continue
		}
		canonical := ""
		for n := minInt(3, len(words)); n >= 1; n-- {
			if c, ok := lexicon.NormalizeWeather(strings.Join(words[:n], " ")); ok {
				canonical = c
				break
			}
		}
		if canonical == "" {
			continue
		}
		if negatedAround(text, start, end) {
			continue
		}
		cands = append(cands, score.Candidate{
			Value: canonical,
			Score: e.weights.WeatherPhrase,
		})
	}
	return cands
}

// weatherScanCandidates sweeps the weather vocabulary over the raw text.
// Event nouns (storm, rain) carry their own evidence; condition adjectives
// (cold, warm) only count near a distinct weather anchor, which keeps
// "I have a cold" and "cold shoulder" out.
func (e *Engine) weatherScanCandidates(text string) []score.Candidate {
	anchors := weatherAnchorPattern.FindAllStringIndex(text, -1)
	var cands []score.Candidate
	for _, loc := range weatherScanPattern.FindAllStringIndex(text, -1) {
		token := strings.ToLower(text[loc[0]:loc[1]])
		canonical, ok := lexicon.NormalizeWeather(token)
		if !ok {
			continue
		}
		if negatedAround(text, loc[0], loc[1]) {
			continue
		}
		if !lexicon.IsWeatherEvent(canonical) && !anchoredNearby(anchors, loc) {
			continue
		}
		cands = append(cands, score.Candidate{
			Value: canonical,
			Score: e.weights.WeatherAnchoredScan,
		})
	}
	return cands
}

// anchoredNearby reports whether any anchor occurrence other than the match
// itself falls within the window.
func anchoredNearby(anchors [][]int, loc []int) bool {
	for _, a := range anchors {
		if a[0] == loc[0] && a[1] == loc[1] {
			continue
		}
		if a[1] >= loc[0]-anchorWindow && a[0] <= loc[1]+anchorWindow {
			return true
		}
	}
	return false
}

// #endregion strategies
