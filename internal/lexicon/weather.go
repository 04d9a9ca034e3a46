package lexicon

// #region canonical-weather

// CanonicalWeather is the closed vocabulary of weather values the extractor
// may emit. Event nouns name weather outright; condition adjectives describe
// it and need an environmental anchor nearby to count.
var CanonicalWeather = []string{
	// Events
	"rain", "storm", "snow", "blizzard", "hail", "hailstorm", "fog", "wind",
	"breeze", "thunder", "lightning", "drizzle", "shower", "downpour",
	"sleet", "heatwave", "thunderstorm", "mist",
	// Conditions
	"sunny", "rainy", "stormy", "cloudy", "overcast", "clear", "snowy",
	"foggy", "windy", "breezy", "misty", "humid", "muggy", "hot", "cold",
	"warm", "chilly", "freezing", "icy",
}

// weatherEvents marks the canonical terms that are weather by themselves.
var weatherEvents = map[string]bool{
	"rain": true, "storm": true, "snow": true, "blizzard": true, "hail": true,
	"hailstorm": true, "fog": true, "wind": true, "breeze": true,
	"thunder": true, "lightning": true, "drizzle": true, "shower": true,
	"downpour": true, "sleet": true, "heatwave": true, "thunderstorm": true,
	"mist": true,
}

// #endregion canonical-weather

// #region weather-synonyms

// WeatherSynonyms maps inflections and variants onto canonical weather terms.
// Every value must be a member of CanonicalWeather.
var WeatherSynonyms = map[string]string{
	"raining":       "rain",
	"pouring":       "rain",
	"drizzling":     "drizzle",
	"showers":       "shower",
	"snowing":       "snow",
	"storming":      "storm",
	"thundering":    "thunder",
	"clear skies":   "clear",
	"blue skies":    "clear",
	"heat wave":     "heatwave",
	"freezing rain": "sleet",
	"scorching":     "hot",
	"sweltering":    "hot",
	"frigid":        "freezing",
	"frosty":        "icy",
	"gusty":         "windy",
	"blustery":      "windy",
	"hazy":          "misty",
	"damp":          "humid",
	"sticky":        "muggy",
}

// #endregion weather-synonyms

// #region weather-anchors

// WeatherAnchors are environmental cue words that let a condition adjective
// count as weather. An anchor occurrence must be distinct from the matched
// term's own occurrence.
var WeatherAnchors = []string{
	"outside", "outdoors", "weather", "sky", "skies", "air", "temperature",
	"forecast", "storm", "rain", "snow", "wind", "sun", "heat", "cold",
	"breeze", "clouds", "horizon",
}

// #endregion weather-anchors
