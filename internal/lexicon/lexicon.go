// Package lexicon is the single source of truth for the extraction
// vocabularies: canonical mood/place/weather terms, synonym maps, affect
// metadata, and the word lists the pattern matchers are built from. All
// tables are immutable after package init.
package lexicon

import (
	"sort"
	"strings"
)

// #region normalization

// NormKey lowers a term and strips every non-letter rune, so that spacing
// and punctuation variants share one lookup key.
func NormKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// #endregion normalization

// #region derived-indexes

var (
	canonicalMoodSet   = toSet(CanonicalMoods)
	canonicalMoodByKey = byNormKey(CanonicalMoods)
	moodSynonymByKey   = synonymsByNormKey(MoodSynonyms)

	canonicalWeatherSet   = toSet(CanonicalWeather)
	canonicalWeatherByKey = byNormKey(CanonicalWeather)
	weatherSynonymByKey   = synonymsByNormKey(WeatherSynonyms)

	placeNounSet     = toSet(PlaceNouns)
	ambiguousNounSet = toSet(AmbiguousPlaceNouns)
	genericPhraseSet = toSet(GenericPlacePhrases)

	// MoodScanTerms and WeatherScanTerms hold every matchable surface form in
	// a deterministic order: canonical terms in declaration order, then
	// synonym keys sorted lexically.
	MoodScanTerms    = scanTerms(CanonicalMoods, MoodSynonyms)
	WeatherScanTerms = scanTerms(CanonicalWeather, WeatherSynonyms)
)

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func byNormKey(words []string) map[string]string {
	m := make(map[string]string, len(words))
	for _, w := range words {
		if _, ok := m[NormKey(w)]; !ok {
			m[NormKey(w)] = w
		}
	}
	return m
}

func synonymsByNormKey(syn map[string]string) map[string]string {
	m := make(map[string]string, len(syn))
	for k, v := range syn {
		m[NormKey(k)] = v
	}
	return m
}

func scanTerms(canonical []string, syn map[string]string) []string {
	seen := toSet(canonical)
	terms := make([]string, 0, len(canonical)+len(syn))
	terms = append(terms, canonical...)
	keys := make([]string, 0, len(syn))
	for k := range syn {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return append(terms, keys...)
}

// #endregion derived-indexes

// #region mood-lookup

// NormalizeMood resolves an arbitrary token or phrase to a canonical mood.
// Tries, in order: exact canonical, exact synonym, normalized-key canonical,
// normalized-key synonym. Returns false when nothing resolves.
func NormalizeMood(input string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(input))
	if t == "" {
		return "", false
	}
	if canonicalMoodSet[t] {
		return t, true
	}
	if c, ok := MoodSynonyms[t]; ok {
		return c, true
	}
	key := NormKey(t)
	if c, ok := canonicalMoodByKey[key]; ok {
		return c, true
	}
	if c, ok := moodSynonymByKey[key]; ok {
		return c, true
	}
	return "", false
}

// MoodFeatures bundles everything known about a resolved mood.
type MoodFeatures struct {
	Canonical string
	Known     bool
	Intensity float64
	Axes      Axes
}

// GetMoodFeatures composes normalization with intensity and axis lookup.
// Never fails: unresolved input yields the neutral fallback.
func GetMoodFeatures(input string) MoodFeatures {
	canonical, ok := NormalizeMood(input)
	if !ok {
		return MoodFeatures{Intensity: 0.5, Axes: NeutralAxes}
	}
	return MoodFeatures{
		Canonical: canonical,
		Known:     true,
		Intensity: MoodIntensity(canonical),
		Axes:      MoodAxesFor(canonical),
	}
}

// MoodIntensity returns the intensity hint for a canonical mood, 0.5 when no
// entry exists.
func MoodIntensity(canonical string) float64 {
	if v, ok := moodIntensity[NormKey(canonical)]; ok {
		return v
	}
	if v, ok := moodIntensity[canonical]; ok {
		return v
	}
	return 0.5
}

// MoodAxesFor returns the affect axes for a canonical mood, NeutralAxes when
// no entry exists.
func MoodAxesFor(canonical string) Axes {
	if a, ok := moodAxes[canonical]; ok {
		return a
	}
	return NeutralAxes
}

// #endregion mood-lookup

// #region weather-lookup

// NormalizeWeather resolves a token or phrase to a canonical weather term,
// with the same lookup order as NormalizeMood.
func NormalizeWeather(input string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(input))
	if t == "" {
		return "", false
	}
	if canonicalWeatherSet[t] {
		return t, true
	}
	if c, ok := WeatherSynonyms[t]; ok {
		return c, true
	}
	key := NormKey(t)
	if c, ok := canonicalWeatherByKey[key]; ok {
		return c, true
	}
	if c, ok := weatherSynonymByKey[key]; ok {
		return c, true
	}
	return "", false
}

// IsWeatherEvent reports whether a canonical weather term names weather by
// itself (rain, storm, ...) rather than describing it (cold, clear, ...).
func IsWeatherEvent(canonical string) bool {
	return weatherEvents[canonical]
}

// #endregion weather-lookup

// #region place-lookup

// IsPlaceNoun reports membership in the unambiguous place vocabulary.
func IsPlaceNoun(w string) bool { return placeNounSet[w] }

// IsAmbiguousPlaceNoun reports membership in the context-dependent noun list.
func IsAmbiguousPlaceNoun(w string) bool { return ambiguousNounSet[w] }

// IsGenericPlacePhrase reports membership in the over-generic reject list.
func IsGenericPlacePhrase(w string) bool { return genericPhraseSet[w] }

// #endregion place-lookup
