package extract

// #region imports
import (
	"regexp"
	"sort"
	"strings"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/lexicon"
)

// #endregion

// #region alternation

// buildAlternation joins terms into a regex alternation, longest first so a
// multi-word term beats its own suffix.
func buildAlternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	escaped := make([]string, len(sorted))
	for i, w := range sorted {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(escaped, "|")
}

// #endregion alternation

// #region word-boundaries

func isWordByte(b byte) bool {
	return b == '\'' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// indexWholeWord finds term in lower at a word boundary on both sides.
func indexWholeWord(lower, term string) int {
	from := 0
	for {
		i := strings.Index(lower[from:], term)
		if i < 0 {
			return -1
		}
		i += from
		if boundaryAt(lower, i, i+len(term)) {
			return i
		}
		from = i + 1
	}
}

func boundaryAt(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

// #endregion word-boundaries

// #region negation

// negationWindow is the character span inspected on each side of a match.
const negationWindow = 18

var negationPattern = regexp.MustCompile(
	`(?i)\b(?:` + buildAlternation(lexicon.NegationMarkers) + `)\b`)

// negatedAround reports whether a negation marker appears within the window
// on either side of the match at [start,end).
func negatedAround(text string, start, end int) bool {
	lo := start - negationWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + negationWindow
	if hi > len(text) {
		hi = len(text)
	}
	return negationPattern.MatchString(text[lo:start]) ||
		negationPattern.MatchString(text[end:hi])
}

// #endregion negation

// #region blacklist

// blacklistWindow is the character span inspected after a match for a
// context word that marks it a false positive.
const blacklistWindow = 16

// blacklistSuppressed reports whether the matched token is a known false
// positive given the text that follows it.
func blacklistSuppressed(token, following string) bool {
	blocked, ok := lexicon.MoodContextBlacklist[token]
	if !ok {
		return false
	}
	f := strings.ToLower(following)
	if len(f) > blacklistWindow {
		f = f[:blacklistWindow]
	}
	for _, b := range blocked {
		if strings.Contains(f, b) {
			return true
		}
	}
	return false
}

// #endregion blacklist

// #region fillers

var fillerSet = func() map[string]bool {
	m := make(map[string]bool, len(lexicon.IntensityFillers))
	for _, w := range lexicon.IntensityFillers {
		m[w] = true
	}
	return m
}()

var negationWordSet = func() map[string]bool {
	m := make(map[string]bool, len(lexicon.NegationMarkers))
	for _, w := range lexicon.NegationMarkers {
		m[w] = true
	}
	return m
}()

// stripLeadingFillers drops hedging words from the front of a phrase.
func stripLeadingFillers(words []string) []string {
	for len(words) > 0 && fillerSet[words[0]] {
		words = words[1:]
	}
	return words
}

// #endregion fillers

// #region misc

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// #endregion misc
