package lexicon

// #region canonical-moods

// CanonicalMoods is the closed vocabulary of mood values the extractor may emit.
var CanonicalMoods = []string{
	"happy", "sad", "angry", "excited", "nervous", "calm", "anxious", "tired",
	"relaxed", "romantic", "scared", "fearful", "confident", "playful",
	"serious", "flirty", "melancholy", "joyful", "furious", "hopeful",
	"okay", "ok", "fine", "meh", "bored", "curious", "lonely", "guilty",
	"ashamed", "embarrassed", "surprised", "shocked", "annoyed", "frustrated",
	"focused", "determined", "content", "satisfied", "worried", "terrified",
	"cheerful", "miserable",
}

// #endregion canonical-moods

// #region mood-synonyms

// MoodSynonyms maps mood words and phrases onto canonical moods. Every value
// must be a member of CanonicalMoods.
var MoodSynonyms = map[string]string{
	"thrilled": "excited", "ecstatic": "excited", "pumped": "excited",
	"stoked": "excited", "exhilarated": "excited",
	"delighted": "happy", "glad": "happy", "elated": "happy", "overjoyed": "happy",
	"depressed": "sad", "down": "sad", "blue": "sad", "heartbroken": "sad",
	"gloomy": "sad", "dejected": "sad",
	"pissed": "angry", "mad": "angry", "irate": "angry", "livid": "furious",
	"enraged": "furious", "fuming": "angry",
	"tense": "nervous", "jittery": "nervous", "on edge": "nervous",
	"uneasy": "anxious", "apprehensive": "anxious",
	"chill": "relaxed", "at ease": "relaxed", "serene": "calm", "peaceful": "calm",
	"exhausted": "tired", "sleepy": "tired", "weary": "tired", "drained": "tired",
	"affectionate": "romantic", "loving": "romantic",
	"afraid": "scared", "frightened": "scared", "petrified": "terrified",
	"self-assured": "confident", "assured": "confident",
	"mortified": "embarrassed", "remorseful": "guilty",
	"alright": "okay", "so-so": "meh",
	"irritated": "annoyed", "exasperated": "frustrated",
	"attentive": "focused", "resolute": "determined",
	"pleased": "content", "fulfilled": "satisfied",
	"wistful": "melancholy", "somber": "melancholy",
	"optimistic": "hopeful", "stern": "serious", "mischievous": "playful",
	"startled": "surprised", "stunned": "shocked", "isolated": "lonely",
	"intrigued": "curious", "dull": "bored", "concerned": "worried",
	"upbeat": "cheerful", "wretched": "miserable",
}

// #endregion mood-synonyms

// #region mood-intensity

// moodIntensity hints how emotionally extreme each canonical mood is, on a
// 0..1 scale centered at 0.5. Missing entries fall back to 0.5.
var moodIntensity = map[string]float64{
	"furious":    0.95,
	"terrified":  0.95,
	"shocked":    0.85,
	"miserable":  0.85,
	"excited":    0.80,
	"angry":      0.78,
	"scared":     0.75,
	"fearful":    0.72,
	"anxious":    0.70,
	"frustrated": 0.68,
	"joyful":     0.68,
	"worried":    0.65,
	"hopeful":    0.65,
	"surprised":  0.65,
	"embarrassed": 0.62,
	"ashamed":    0.62,
	"guilty":     0.60,
	"nervous":    0.60,
	"determined": 0.60,
	"happy":      0.60,
	"cheerful":   0.60,
	"lonely":     0.60,
	"sad":        0.58,
	"annoyed":    0.58,
	"melancholy": 0.56,
	"tired":      0.55,
	"flirty":     0.55,
	"romantic":   0.55,
	"playful":    0.55,
	"confident":  0.55,
	"curious":    0.52,
	"focused":    0.50,
	"serious":    0.50,
	"relaxed":    0.42,
	"calm":       0.40,
	"content":    0.45,
	"satisfied":  0.45,
	"bored":      0.40,
	"fine":       0.32,
	"okay":       0.30,
	"ok":         0.30,
	"meh":        0.25,
}

// #endregion mood-intensity

// #region mood-axes

// Axes is a four-dimensional affect summary attached to canonical moods.
// Valence, dominance and attachment run -1..1; arousal runs 0..1.
type Axes struct {
	Valence    float64
	Arousal    float64
	Dominance  float64
	Attachment float64
}

// NeutralAxes is the fallback vector for moods with no explicit mapping.
var NeutralAxes = Axes{Valence: 0, Arousal: 0.5, Dominance: 0, Attachment: 0}

var moodAxes = map[string]Axes{
	"happy":      {Valence: 0.8, Arousal: 0.6, Dominance: 0.4, Attachment: 0.3},
	"joyful":     {Valence: 0.9, Arousal: 0.7, Dominance: 0.4, Attachment: 0.4},
	"cheerful":   {Valence: 0.7, Arousal: 0.6, Dominance: 0.3, Attachment: 0.3},
	"excited":    {Valence: 0.7, Arousal: 0.9, Dominance: 0.4, Attachment: 0.2},
	"hopeful":    {Valence: 0.6, Arousal: 0.5, Dominance: 0.3, Attachment: 0.2},
	"content":    {Valence: 0.5, Arousal: 0.3, Dominance: 0.2, Attachment: 0.3},
	"satisfied":  {Valence: 0.5, Arousal: 0.3, Dominance: 0.3, Attachment: 0.2},
	"calm":       {Valence: 0.3, Arousal: 0.1, Dominance: 0.2, Attachment: 0.1},
	"relaxed":    {Valence: 0.4, Arousal: 0.1, Dominance: 0.2, Attachment: 0.1},
	"romantic":   {Valence: 0.7, Arousal: 0.6, Dominance: 0.1, Attachment: 0.9},
	"flirty":     {Valence: 0.6, Arousal: 0.7, Dominance: 0.3, Attachment: 0.7},
	"playful":    {Valence: 0.6, Arousal: 0.7, Dominance: 0.3, Attachment: 0.4},
	"confident":  {Valence: 0.5, Arousal: 0.5, Dominance: 0.8, Attachment: 0},
	"focused":    {Valence: 0.2, Arousal: 0.6, Dominance: 0.5, Attachment: -0.1},
	"determined": {Valence: 0.3, Arousal: 0.7, Dominance: 0.7, Attachment: 0},
	"curious":    {Valence: 0.4, Arousal: 0.6, Dominance: 0.2, Attachment: 0.1},
	"surprised":  {Valence: 0.1, Arousal: 0.8, Dominance: -0.1, Attachment: 0},
	"sad":        {Valence: -0.7, Arousal: 0.3, Dominance: -0.4, Attachment: 0.1},
	"melancholy": {Valence: -0.5, Arousal: 0.2, Dominance: -0.3, Attachment: 0.2},
	"miserable":  {Valence: -0.9, Arousal: 0.4, Dominance: -0.6, Attachment: 0},
	"lonely":     {Valence: -0.6, Arousal: 0.3, Dominance: -0.4, Attachment: -0.8},
	"bored":      {Valence: -0.3, Arousal: 0.1, Dominance: -0.1, Attachment: -0.2},
	"tired":      {Valence: -0.3, Arousal: 0.1, Dominance: -0.2, Attachment: 0},
	"angry":      {Valence: -0.7, Arousal: 0.8, Dominance: 0.5, Attachment: -0.4},
	"furious":    {Valence: -0.9, Arousal: 0.95, Dominance: 0.6, Attachment: -0.5},
	"annoyed":    {Valence: -0.5, Arousal: 0.6, Dominance: 0.2, Attachment: -0.3},
	"frustrated": {Valence: -0.6, Arousal: 0.7, Dominance: 0.1, Attachment: -0.2},
	"nervous":    {Valence: -0.4, Arousal: 0.7, Dominance: -0.4, Attachment: 0},
	"anxious":    {Valence: -0.5, Arousal: 0.8, Dominance: -0.5, Attachment: 0},
	"worried":    {Valence: -0.5, Arousal: 0.6, Dominance: -0.4, Attachment: 0.2},
	"scared":     {Valence: -0.7, Arousal: 0.85, Dominance: -0.6, Attachment: 0.1},
	"fearful":    {Valence: -0.7, Arousal: 0.8, Dominance: -0.6, Attachment: 0.1},
	"terrified":  {Valence: -0.9, Arousal: 1.0, Dominance: -0.8, Attachment: 0},
	"guilty":     {Valence: -0.6, Arousal: 0.5, Dominance: -0.5, Attachment: 0.3},
	"ashamed":    {Valence: -0.7, Arousal: 0.5, Dominance: -0.6, Attachment: 0.2},
	"embarrassed": {Valence: -0.5, Arousal: 0.6, Dominance: -0.5, Attachment: 0.2},
	"shocked":    {Valence: -0.4, Arousal: 0.9, Dominance: -0.3, Attachment: 0},
}

// #endregion mood-axes
