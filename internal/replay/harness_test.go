package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

func testEngine() *extract.Engine {
	return extract.NewEngine(nil, extract.DefaultWeights())
}

func TestRunScenesFixture(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "scenes.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results, err := Run(testEngine(), f, 280)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(f.Turns) {
		t.Fatalf("expected %d results, got %d", len(f.Turns), len(results))
	}
	for _, r := range results {
		for _, failure := range r.Failures {
			t.Errorf("%s: %s", r.TurnID, failure)
		}
	}

	// State threads across turns: the mood from turn-1 survives turn-2.
	if results[1].Scene.Mood != "anxious" {
		t.Errorf("turn-2 scene mood = %q, want carried-over %q", results[1].Scene.Mood, "anxious")
	}
	if results[1].Scene.Place != "the cafe" {
		t.Errorf("turn-2 scene place = %q", results[1].Scene.Place)
	}
	// Turn-3 overwrites mood and weather but keeps the place.
	if results[2].Scene.Mood != "tired" {
		t.Errorf("turn-3 scene mood = %q, want %q", results[2].Scene.Mood, "tired")
	}
	if results[2].Scene.Place != "the cafe" {
		t.Errorf("turn-3 scene place = %q, want carried-over %q", results[2].Scene.Place, "the cafe")
	}

	s := Summarize(results)
	if s.Failed != 0 || s.Passed != len(f.Turns) {
		t.Errorf("summary = %+v, want all passed", s)
	}
	if s.FinalScene != results[len(results)-1].Scene {
		t.Error("summary final scene should match the last turn's scene")
	}
}

func TestRunReportsFailedExpectation(t *testing.T) {
	f := &Fixture{
		ReferenceTime: "2024-03-15T10:00:00Z",
		Granularity:   "date",
		Turns: []FixtureTurn{
			{
				TurnID: "turn-1",
				Text:   "We finally reached the cafe.",
				Expect: []FieldExpectation{
					{Field: scene.FieldPlace, Present: true, Value: "the harbor"},
					{Field: scene.FieldMood, Present: true},
				},
			},
		},
	}

	results, err := Run(testEngine(), f, 280)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Passed() {
		t.Fatal("expected turn to fail")
	}
	if len(results[0].Failures) != 2 {
		t.Fatalf("expected 2 failures, got %v", results[0].Failures)
	}

	s := Summarize(results)
	if s.Failed != 1 {
		t.Errorf("summary failed = %d, want 1", s.Failed)
	}
}

func TestLoadFixtureRejectsBadReferenceTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	writeFile(t, path, `{"reference_time": "yesterday", "turns": []}`)
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for bad reference_time")
	}
}

func TestLoadFixtureRejectsBadGranularity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	writeFile(t, path, `{"reference_time": "2024-03-15T10:00:00Z", "granularity": "hour", "turns": []}`)
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for bad granularity")
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
