// Package extract turns a raw narrative turn into a scene patch using scored
// heuristic strategies. Each field is extracted independently; candidates
// below the minimum score are discarded rather than guessed at.
package extract

// #region imports
import (
	"context"
	"time"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/datetext"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// #endregion

// #region engine

// Engine is the heuristic Extractor. It is stateless between calls and safe
// for concurrent use.
type Engine struct {
	weights Weights
	parser  datetext.Parser
	clock   func() time.Time
}

// NewEngine builds an Engine around the given date parser. A nil parser
// disables natural-language dates; the regex fallbacks still apply.
func NewEngine(parser datetext.Parser, weights Weights) *Engine {
	return &Engine{
		weights: weights,
		parser:  parser,
		clock:   time.Now,
	}
}

// Extract scans text against the previous state using the wall clock as the
// reference instant.
func (e *Engine) Extract(ctx context.Context, text string, prev scene.State, g Granularity) scene.Patch {
	return e.ExtractAt(ctx, text, prev, g, e.clock())
}

// ExtractAt is Extract with an explicit reference instant, for replay and
// tests. The previous state is accepted for interface symmetry with remote
// extractors; the heuristics read only the text.
func (e *Engine) ExtractAt(ctx context.Context, text string, prev scene.State, g Granularity, ref time.Time) scene.Patch {
	_ = ctx
	_ = prev
	patch := scene.Patch{}
	if v := e.extractDateTime(text, ref, g); v != "" {
		patch[scene.FieldDateTime] = v
	}
	if v := e.extractPlace(text); v != "" {
		patch[scene.FieldPlace] = v
	}
	if v := e.extractMood(text); v != "" {
		patch[scene.FieldMood] = v
	}
	if v := e.extractWeather(text); v != "" {
		patch[scene.FieldWeather] = v
	}
	return patch
}

// #endregion engine
