package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/datetext"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/replay"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	maxNoteChars := flag.Int("max-note-chars", 280, "note clamp applied when patches merge")
	verbose := flag.Bool("v", false, "print every turn, not just failures")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--max-note-chars N] [-v]")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	engine := extract.NewEngine(datetext.NewNaturalParser(), extract.DefaultWeights())
	results, err := replay.Run(engine, f, *maxNoteChars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(2)
	}

	os.Exit(report(f, results, *verbose))
}

// #endregion main

// #region output

func report(f *replay.Fixture, results []replay.TurnResult, verbose bool) int {
	if f.Description != "" {
		fmt.Println(f.Description)
		fmt.Println()
	}

	for _, r := range results {
		if r.Passed() {
			if verbose {
				fmt.Printf("ok   %-10s %s\n", r.TurnID, summarizeOrNone(r.Diff))
			}
			continue
		}
		fmt.Printf("FAIL %-10s\n", r.TurnID)
		for _, failure := range r.Failures {
			fmt.Printf("     %s\n", failure)
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d turns, %d passed, %d failed\n", s.TotalTurns, s.Passed, s.Failed)
	if verbose {
		fmt.Printf("\nFinal scene:\n%s\n", scene.StateBlock("SCENE_STATE", s.FinalScene))
	}

	if s.Failed > 0 {
		return 1
	}
	return 0
}

func summarizeOrNone(d scene.Diff) string {
	if len(d) == 0 {
		return "no changes"
	}
	return scene.Summarize(d)
}

// #endregion output
