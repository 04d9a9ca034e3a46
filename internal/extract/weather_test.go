package extract

import "testing"

func TestExtractWeather(t *testing.T) {
	e := NewEngine(nil, DefaultWeights())
	cases := []struct {
		name string
		text string
		want string
	}{
		{"phrase with synonym", "It's pouring rain outside.", "rain"},
		{"phrase condition", "The room was warm despite everything.", "warm"},
		{"phrase with hedge", "It was a bit chilly on the walk.", "chilly"},
		{"event self anchors", "The storm is rolling in.", "storm"},
		{"snow event", "Snow kept falling all afternoon.", "snow"},
		{"condition with anchor", "Cold wind cut through the alley.", "cold"},
		{"condition without anchor", "I caught a cold last week.", ""},
		{"idiom suppressed", "She gave me the cold shoulder.", ""},
		{"negated phrase", "It's not raining anymore.", ""},
		{"synonym scan", "Clear skies above the ridge.", "clear"},
		{"no weather", "We talked about the project.", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.extractWeather(tc.text)
			if got != tc.want {
				t.Fatalf("extractWeather(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestAnchoredNearby(t *testing.T) {
	// Anchor spans at [0,4) and [30,37); match at [10,14).
	anchors := [][]int{{0, 4}, {30, 37}}
	if !anchoredNearby(anchors, []int{10, 14}) {
		t.Fatal("anchor within window not detected")
	}
	// The match's own span must not anchor itself.
	if anchoredNearby([][]int{{10, 14}}, []int{10, 14}) {
		t.Fatal("match anchored itself")
	}
	if anchoredNearby(anchors, []int{70, 74}) {
		t.Fatal("distant anchor should not count")
	}
}
