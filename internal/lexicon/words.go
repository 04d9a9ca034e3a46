package lexicon

// #region determiners

// Determiners and possessives that may precede a place noun.
var Determiners = []string{"the", "my", "our", "his", "her", "their", "a", "an"}

// #endregion determiners

// #region prepositions

// LocationPrepositions introduce a place phrase.
var LocationPrepositions = []string{
	"at", "in", "inside", "outside", "by", "near", "around", "on",
	"through", "into", "to", "toward", "towards", "behind", "beside",
	"under", "over", "between",
}

// #endregion prepositions

// #region motion-verbs

// MotionVerbs qualify an ambiguous noun as a place when nearby.
var MotionVerbs = []string{
	"arrive", "arrived", "arrives", "leave", "left", "leaves",
	"walk", "walked", "walks", "drive", "drove", "drives",
	"go", "goes", "went", "head", "headed", "heads",
	"enter", "entered", "enters", "exit", "exited", "exits",
	"wander", "wandered", "wanders", "step", "stepped", "steps",
}

// #endregion motion-verbs

// #region negation

// NegationMarkers suppress a mood or weather match when they appear within
// the negation window around it.
var NegationMarkers = []string{
	"not", "never", "no longer", "isn't", "isnt", "ain't", "aint",
	"wasn't", "wasnt", "aren't", "arent", "without", "hardly", "barely",
}

// #endregion negation

// #region fillers

// IntensityFillers are hedging words stripped from the front of a captured
// feeling phrase before normalization.
var IntensityFillers = []string{
	"a", "an", "the", "bit", "little", "so", "very", "quite", "really",
	"rather", "pretty", "kind", "sort", "of", "somewhat", "slightly",
	"feeling", "getting",
}

// TemporalFillers are trailing time words trimmed from a captured place span.
var TemporalFillers = []string{
	"now", "today", "tonight", "this morning", "this afternoon",
	"this evening", "this night",
}

// #endregion fillers

// #region mood-blacklist

// MoodContextBlacklist lists follow words that turn a mood token into a false
// positive (checked within a short window after the match). Keyed by the
// matched token, pre-normalization.
var MoodContextBlacklist = map[string][]string{
	"happy":   {"birthday", "hour", "anniversary", "holidays", "new year"},
	"blue":    {"sky", "skies", "eyes", "dress", "shirt", "light"},
	"content": {"of", "warning", "type"},
	"down":    {"the", "a", "to", "stairs", "street", "road", "hill"},
	"fine":    {"print", "line", "art", "dining"},
	"mad":     {"scientist", "dash", "house"},
}

// #endregion mood-blacklist
