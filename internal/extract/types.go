package extract

// #region imports
import (
	"context"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/score"
)

// #endregion

// #region granularity

// Granularity selects how a resolved date/time is rendered.
type Granularity string

const (
	GranularityDate     Granularity = "date"
	GranularityDateTime Granularity = "datetime"
)

// #endregion granularity

// #region extractor-interface

// Extractor produces a scene patch from one text block. Implementations are
// fail-open: a field with no confident value is simply absent.
type Extractor interface {
	Extract(ctx context.Context, text string, prev scene.State, g Granularity) scene.Patch
}

// #endregion extractor-interface

// #region weights

// Weights holds every scoring constant in one overridable bundle. The
// defaults are empirically chosen; they are preserved, not derived.
type Weights struct {
	// MinScore is the acceptance threshold shared by place, mood, weather.
	MinScore float64

	// Place strategy base scores.
	PlaceKnownNoun            float64
	PlaceProperNoun           float64
	PlaceQuoted               float64
	PlaceGenericPrep          float64
	PlaceAmbiguousDeterminer  float64
	PlaceAmbiguousPreposition float64
	PlaceAmbiguousVerb        float64
	// PlaceDescriptorBoost rewards proper-noun tokens and locational
	// adjectives in a captured phrase.
	PlaceDescriptorBoost float64

	// Mood strategy base scores and intensity scaling.
	MoodFeelingPattern float64
	MoodVocabScan      float64
	// MoodIntensityScale multiplies (intensity - 0.5); 0.3 gives ±0.15.
	MoodIntensityScale float64

	// Weather strategy base scores.
	WeatherPhrase       float64
	WeatherAnchoredScan float64
}

// DefaultWeights returns the standard tuning.
func DefaultWeights() Weights {
	return Weights{
		MinScore:                  score.DefaultMinScore,
		PlaceKnownNoun:            0.70,
		PlaceProperNoun:           0.90,
		PlaceQuoted:               0.85,
		PlaceGenericPrep:          0.60,
		PlaceAmbiguousDeterminer:  0.50,
		PlaceAmbiguousPreposition: 0.48,
		PlaceAmbiguousVerb:        0.45,
		PlaceDescriptorBoost:      0.10,
		MoodFeelingPattern:        0.85,
		MoodVocabScan:             0.65,
		MoodIntensityScale:        0.30,
		WeatherPhrase:             0.80,
		WeatherAnchoredScan:       0.60,
	}
}

// #endregion weights
