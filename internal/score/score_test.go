package score

import "testing"

func TestChooseBest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		minScore   float64
		wantValue  string
		wantOK     bool
	}{
		{"empty", nil, 0.6, "", false},
		{"single-above", []Candidate{{"cafe", 0.7}}, 0.6, "cafe", true},
		{"single-at-threshold", []Candidate{{"cafe", 0.6}}, 0.6, "cafe", true},
		{"single-below", []Candidate{{"cafe", 0.59}}, 0.6, "", false},
		{"max-wins", []Candidate{{"a", 0.65}, {"b", 0.9}, {"c", 0.7}}, 0.6, "b", true},
		{"tie-first-wins", []Candidate{{"first", 0.8}, {"second", 0.8}}, 0.6, "first", true},
		{"all-below", []Candidate{{"a", 0.2}, {"b", 0.5}}, 0.6, "", false},
		{"zero-threshold", []Candidate{{"a", 0.1}}, 0, "a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ChooseBest(tt.candidates, tt.minScore)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.Value != tt.wantValue {
				t.Errorf("value = %q, want %q", got.Value, tt.wantValue)
			}
		})
	}
}

func TestChooseBestStable(t *testing.T) {
	cands := []Candidate{{"x", 0.7}, {"y", 0.7}, {"z", 0.7}}
	for i := 0; i < 10; i++ {
		got, ok := ChooseBest(cands, 0.6)
		if !ok || got.Value != "x" {
			t.Fatalf("run %d: got (%q, %v), want stable first candidate", i, got.Value, ok)
		}
	}
}
