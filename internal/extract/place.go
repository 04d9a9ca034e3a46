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

const (
	placeDeterminerAlt = `the|a|an`
	placePrepAlt       = `at|in|inside|outside|by|near|around|on|through|into|to|toward|towards`
	placeDescriptor    = `(?:[\w'-]+\s+){0,3}`
)

var (
	// determinerTailPattern matches a determiner immediately before a known
	// noun, scanned against an 8-char lookback slice.
	determinerTailPattern = regexp.MustCompile(`(?:^|\s)(the|my|our|his|her|their|a|an)\s+$`)

	properNounPattern = regexp.MustCompile(
		`\b(?i:` + placePrepAlt + `)\s+(?:(?i:the|a|an|my|our|his|her|their)\s+)?` +
			`((?:[A-Z][A-Za-z'\-]+)(?:\s+(?:of|the|[A-Z][A-Za-z'\-]+)){0,3})`)

	quotedPlacePattern = regexp.MustCompile(
		`\b(?i:` + placePrepAlt + `)\s+["“]([^"”\n]{2,60})["”]`)

	genericPrepPattern = regexp.MustCompile(
		`(?i)\b(?:at|in|on|inside|by|near|around|outside|behind|beside|under|over|between)\s+` +
			`(?:(?:the|a|an|my|our|his|her|their)\s+)?([^\n.,;:!?]{3,60})`)

	ambiguousNounAlt = buildAlternation(lexicon.AmbiguousPlaceNouns)

	ambiguousDeterminerPattern = regexp.MustCompile(
		`\b((?:` + placeDeterminerAlt + `)\s+` + placeDescriptor + `(?:` + ambiguousNounAlt + `))\b`)

	ambiguousPrepositionPattern = regexp.MustCompile(
		`\b(?:in|at|near|outside|inside|by|around|on|under|over|behind|beside)\s+` +
			`((?:(?:` + placeDeterminerAlt + `)\s+)?` + placeDescriptor + `(?:` + ambiguousNounAlt + `))\b`)

	ambiguousVerbPattern = regexp.MustCompile(
		`\b(?:` + buildAlternation(lexicon.MotionVerbs) + `)\b(?:\s+[\w'-]+){0,3}\s+` +
			`(?:to|at|into|toward|towards|from|past)?\s*` +
			`((?:(?:` + placeDeterminerAlt + `)\s+)?` + placeDescriptor + `(?:` + ambiguousNounAlt + `))\b`)

	// temporalProperNouns blocks day and month names from reading as places
	// after a preposition ("on Monday", "in December").
	temporalProperNouns = map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
		"friday": true, "saturday": true, "sunday": true,
		"january": true, "february": true, "march": true, "april": true,
		"may": true, "june": true, "july": true, "august": true,
		"september": true, "october": true, "november": true, "december": true,
	}
)

// #endregion patterns

// #region extract

func (e *Engine) extractPlace(text string) string {
	best, ok := score.ChooseBest(e.placeCandidates(text), e.weights.MinScore)
	if !ok {
		return ""
	}
	if isGenericPlace(best.Value) {
		return ""
	}
	return best.Value
}

func (e *Engine) placeCandidates(text string) []score.Candidate {
	var cands []score.Candidate
	cands = append(cands, e.knownNounCandidates(text)...)
	cands = append(cands, e.properNounCandidates(text)...)
	cands = append(cands, e.quotedCandidates(text)...)
	cands = append(cands, e.genericPrepCandidates(text)...)
	cands = append(cands, e.ambiguousNounCandidates(text)...)
	return cands
}

// #endregion extract

// #region strategies

// knownNounCandidates matches curated place nouns anywhere in the text,
// re-attaching a determiner found just before the noun.
func (e *Engine) knownNounCandidates(text string) []score.Candidate {
	lower := strings.ToLower(text)
	var cands []score.Candidate
	for _, noun := range lexicon.PlaceNouns {
		idx := indexWholeWord(lower, noun)
		if idx < 0 {
			continue
		}
		value := noun
		lo := idx - 8
		if lo < 0 {
			lo = 0
		}
		if m := determinerTailPattern.FindStringSubmatch(lower[lo:idx]); m != nil {
			value = m[1] + " " + noun
		}
		if c, ok := e.placeCandidate(value, e.weights.PlaceKnownNoun); ok {
			cands = append(cands, c)
		}
	}
	return cands
}

// properNounCandidates matches capitalized phrases after a location
// preposition ("at the Grand Library", "through Kyoto").
func (e *Engine) properNounCandidates(text string) []score.Candidate {
	var cands []score.Candidate
	for _, m := range properNounPattern.FindAllStringSubmatch(text, -1) {
		value := trimDanglingConnectors(m[1])
		fields := strings.Fields(value)
		if len(fields) == 0 {
			continue
		}
		if temporalProperNouns[strings.ToLower(fields[0])] {
			continue
		}
		if c, ok := e.placeCandidate(value, e.weights.PlaceProperNoun); ok {
			cands = append(cands, c)
		}
	}
	return cands
}

func (e *Engine) quotedCandidates(text string) []score.Candidate {
	var cands []score.Candidate
	for _, m := range quotedPlacePattern.FindAllStringSubmatch(text, -1) {
		if c, ok := e.placeCandidate(m[1], e.weights.PlaceQuoted); ok {
			cands = append(cands, c)
		}
	}
	return cands
}

// genericPrepCandidates takes the free span after a location preposition up
// to clause punctuation. Lowest-precision strategy besides the ambiguous
// noun patterns, so only the first occurrence is considered.
func (e *Engine) genericPrepCandidates(text string) []score.Candidate {
	m := genericPrepPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	value := trimTrailingTemporal(strings.TrimSpace(m[1]))
	if len(value) < 3 {
		return nil
	}
	if temporalProperNouns[strings.ToLower(strings.Fields(value)[0])] {
		return nil
	}
	if c, ok := e.placeCandidate(value, e.weights.PlaceGenericPrep); ok {
		return []score.Candidate{c}
	}
	return nil
}

// ambiguousNounCandidates salvages nouns that only read as places with
// nearby context: a determiner, a location preposition, or a motion verb.
func (e *Engine) ambiguousNounCandidates(text string) []score.Candidate {
	lower := strings.ToLower(text)
	var cands []score.Candidate
	type probe struct {
		pattern *regexp.Regexp
		base    float64
	}
	for _, p := range []probe{
		{ambiguousPrepositionPattern, e.weights.PlaceAmbiguousPreposition},
		{ambiguousDeterminerPattern, e.weights.PlaceAmbiguousDeterminer},
		{ambiguousVerbPattern, e.weights.PlaceAmbiguousVerb},
	} {
		m := p.pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if c, ok := e.placeCandidate(strings.TrimSpace(m[1]), p.base); ok {
			cands = append(cands, c)
		}
	}
	return cands
}

// #endregion strategies

// #region scoring

func (e *Engine) placeCandidate(value string, base float64) (score.Candidate, bool) {
	value = strings.TrimSpace(value)
	if value == "" || isGenericPlace(value) {
		return score.Candidate{}, false
	}
	s := base
	if hasProperToken(value) || hasLocationalAdjective(value) {
		s += e.weights.PlaceDescriptorBoost
	}
	return score.Candidate{Value: value, Score: clamp01(s)}, true
}

// isGenericPlace rejects captures too vague to commit: bare ambiguous nouns,
// blocklisted phrases, and short lowercase single words outside the curated
// noun list.
func isGenericPlace(value string) bool {
	lower := strings.Trim(strings.ToLower(strings.TrimSpace(value)), `"'`)
	stripped := stripLeadingDeterminer(lower)
	if stripped == "" {
		return true
	}
	if lexicon.IsAmbiguousPlaceNoun(stripped) || lexicon.IsGenericPlacePhrase(stripped) {
		return true
	}
	words := strings.Fields(stripped)
	if len(words) == 1 && len(words[0]) <= 5 &&
		!lexicon.IsPlaceNoun(words[0]) && !hasProperToken(value) {
		return true
	}
	return false
}

func stripLeadingDeterminer(lower string) string {
	for _, d := range lexicon.Determiners {
		if strings.HasPrefix(lower, d+" ") {
			return strings.TrimSpace(strings.TrimPrefix(lower, d+" "))
		}
	}
	return lower
}

func hasProperToken(value string) bool {
	for _, w := range strings.Fields(value) {
		if len(w) >= 2 && w[0] >= 'A' && w[0] <= 'Z' && w[1] >= 'a' && w[1] <= 'z' {
			return true
		}
	}
	return false
}

var locationalAdjectiveSet = func() map[string]bool {
	m := make(map[string]bool, len(lexicon.LocationalAdjectives))
	for _, w := range lexicon.LocationalAdjectives {
		m[w] = true
	}
	return m
}()

func hasLocationalAdjective(value string) bool {
	for _, w := range strings.Fields(strings.ToLower(value)) {
		if locationalAdjectiveSet[w] {
			return true
		}
	}
	return false
}

var temporalFillerSet = func() map[string]bool {
	m := make(map[string]bool, len(lexicon.TemporalFillers))
	for _, w := range lexicon.TemporalFillers {
		m[w] = true
	}
	return m
}()

// trimTrailingTemporal drops trailing time words from a captured span, so
// "the cafe tonight" keeps only the place. Checks the trailing bigram first
// to catch "this morning".
func trimTrailingTemporal(value string) string {
	words := strings.Fields(value)
	for len(words) > 0 {
		if len(words) >= 2 {
			bigram := strings.ToLower(words[len(words)-2] + " " + words[len(words)-1])
			if temporalFillerSet[bigram] {
				words = words[:len(words)-2]
				continue
			}
		}
		if temporalFillerSet[strings.ToLower(words[len(words)-1])] {
			words = words[:len(words)-1]
			continue
		}
		break
	}
	return strings.Join(words, " ")
}

func trimDanglingConnectors(value string) string {
	words := strings.Fields(value)
	for len(words) > 0 {
		last := strings.ToLower(words[len(words)-1])
		if last != "of" && last != "the" {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// #endregion scoring
