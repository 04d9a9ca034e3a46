package extract

// #region imports
import (
	"regexp"
	"strings"
	"time"
)

// #endregion

// #region patterns

var (
	hourIshPattern = regexp.MustCompile(
		`(?i)\b(?:around\s+|about\s+)?(\d{1,2})\s*(am|pm)?\s*-?ish\b`)

	hourAmPmPattern = regexp.MustCompile(
		`(?i)\b(?:around\s+|about\s+)?(\d{1,2})(?::\d{2})?\s*(am|pm)\b`)

	tomorrowPattern = regexp.MustCompile(`(?i)\btomorrow\b`)
	tonightPattern  = regexp.MustCompile(`(?i)\btonight\b`)
)

// dayPartHours maps a day-part mention to a default hour. Ordered so that
// "midnight" resolves before "night".
var dayPartHours = []struct {
	word string
	hour int
}{
	{"midnight", 0},
	{"sunrise", 9},
	{"dawn", 9},
	{"morning", 9},
	{"noon", 12},
	{"afternoon", 15},
	{"sunset", 19},
	{"dusk", 19},
	{"evening", 19},
	{"tonight", 22},
	{"night", 22},
}

// #endregion patterns

// #region extract

func (e *Engine) extractDateTime(text string, ref time.Time, g Granularity) string {
	resolved, ok := e.resolveInstant(text, ref, g)
	if !ok {
		return ""
	}
	return formatInstant(resolved, g)
}

// resolveInstant asks the natural-language parser first, then falls back to
// light regex heuristics for phrasings the parser misses.
func (e *Engine) resolveInstant(text string, ref time.Time, g Granularity) (time.Time, bool) {
	if e.parser != nil {
		results, err := e.parser.Parse(text, ref)
		if err == nil && len(results) > 0 {
			r := results[0]
			t := r.Time
			if g == GranularityDateTime && !r.HourCertain {
				if h, ok := dayPartHour(text); ok {
					t = atHour(t, h)
				}
			}
			return t, true
		}
	}
	if h, ok := clockHour(text); ok {
		return atHour(ref, h), true
	}
	if tomorrowPattern.MatchString(text) {
		t := ref.AddDate(0, 0, 1)
		if h, ok := dayPartHour(text); ok {
			t = atHour(t, h)
		}
		return t, true
	}
	if tonightPattern.MatchString(text) {
		return atHour(ref, 22), true
	}
	return time.Time{}, false
}

// #endregion extract

// #region helpers

func dayPartHour(text string) (int, bool) {
	lower := strings.ToLower(text)
	for _, dp := range dayPartHours {
		if indexWholeWord(lower, dp.word) >= 0 {
			return dp.hour, true
		}
	}
	return 0, false
}

// clockHour parses loose clock mentions ("around 7pm", "8ish").
func clockHour(text string) (int, bool) {
	m := hourIshPattern.FindStringSubmatch(text)
	if m == nil {
		m = hourAmPmPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, false
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	if n > 23 {
		return 0, false
	}
	h := n % 12
	if strings.EqualFold(m[2], "pm") {
		h += 12
	} else if m[2] == "" && n <= 23 && n > 12 {
		h = n
	}
	return h, true
}

func atHour(t time.Time, h int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), h, 0, 0, 0, t.Location())
}

// formatInstant renders the resolved instant at the configured granularity.
// Minutes are dropped: scene time is coarse on purpose.
func formatInstant(t time.Time, g Granularity) string {
	if g == GranularityDateTime {
		return atHour(t, t.Hour()).Format("Jan 02, 2006, 3 PM")
	}
	return t.Format("Jan 02, 2006")
}

// #endregion helpers
