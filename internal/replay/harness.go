// Package replay runs recorded turns through the extraction engine against a
// fixed reference instant and checks each turn's patch expectations.
package replay

import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// #region types

// TurnResult captures the outcome of replaying one turn.
type TurnResult struct {
	TurnID   string
	Patch    scene.Patch
	Scene    scene.State
	Diff     scene.Diff
	Failures []string
}

// Passed reports whether every expectation held for this turn.
func (r TurnResult) Passed() bool {
	return len(r.Failures) == 0
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTurns int
	Passed     int
	Failed     int
	FinalScene scene.State
}

// #endregion types

// #region replay

// Run replays every turn through the engine, threading the evolving scene
// state and checking expectations per turn. Operates entirely in-memory.
func Run(engine *extract.Engine, f *Fixture, maxNoteChars int) ([]TurnResult, error) {
	ref, err := f.Reference()
	if err != nil {
		return nil, err
	}
	g, err := f.GranularityValue()
	if err != nil {
		return nil, err
	}

	current := f.StartScene
	results := make([]TurnResult, 0, len(f.Turns))

	for _, turn := range f.Turns {
		patch := engine.ExtractAt(context.Background(), turn.Text, current, g, ref)
		next := current.Apply(patch, maxNoteChars)

		results = append(results, TurnResult{
			TurnID:   turn.TurnID,
			Patch:    patch,
			Scene:    next,
			Diff:     scene.DiffStates(current, next),
			Failures: checkExpectations(turn.Expect, patch),
		})
		current = next
	}

	return results, nil
}

func checkExpectations(expect []FieldExpectation, patch scene.Patch) []string {
	var failures []string
	for _, ex := range expect {
		got, ok := patch[ex.Field]
		switch {
		case !ex.Present && ok:
			failures = append(failures, fmt.Sprintf("%s: expected absent, got %q", ex.Field, got))
		case ex.Present && !ok:
			failures = append(failures, fmt.Sprintf("%s: expected present, got nothing", ex.Field))
		case ex.Present && ex.Value != "" && got != ex.Value:
			failures = append(failures, fmt.Sprintf("%s: expected %q, got %q", ex.Field, ex.Value, got))
		}
	}
	return failures
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []TurnResult) Summary {
	s := Summary{TotalTurns: len(results)}
	for _, r := range results {
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	if len(results) > 0 {
		s.FinalScene = results[len(results)-1].Scene
	}
	return s
}

// #endregion replay
