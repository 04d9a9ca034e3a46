package scene

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestApply(t *testing.T) {
	prev := State{Place: "cafe", Mood: "calm", Notes: "quiet evening"}
	patch := Patch{FieldPlace: "station", FieldWeather: "rain"}

	next := prev.Apply(patch, 0)
	if next.Place != "station" {
		t.Errorf("place = %q, want station", next.Place)
	}
	if next.Weather != "rain" {
		t.Errorf("weather = %q, want rain", next.Weather)
	}
	if next.Mood != "calm" {
		t.Errorf("mood = %q, patch must not clear untouched fields", next.Mood)
	}
	if prev.Place != "cafe" {
		t.Errorf("receiver mutated: %+v", prev)
	}
}

func TestApplyIgnoresEmptyValues(t *testing.T) {
	prev := State{Mood: "happy"}
	next := prev.Apply(Patch{FieldMood: ""}, 0)
	if next.Mood != "happy" {
		t.Errorf("empty patch value must not clear a field, got %q", next.Mood)
	}
}

func TestApplyClampsNotes(t *testing.T) {
	long := strings.Repeat("x", 400)
	next := State{}.Apply(Patch{FieldNotes: long}, 280)
	if len(next.Notes) != 280 {
		t.Errorf("notes length = %d, want 280", len(next.Notes))
	}
}

func TestClampRuneBoundary(t *testing.T) {
	got := Clamp("ééé", 3)
	if got != "é" {
		t.Errorf("Clamp mid-rune = %q, want %q", got, "é")
	}
	if !utf8.ValidString(got) {
		t.Errorf("Clamp produced invalid UTF-8: %q", got)
	}
	if got := Clamp("ééé", 4); got != "éé" {
		t.Errorf("Clamp on boundary = %q, want %q", got, "éé")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp("hello", 3); got != "hel" {
		t.Errorf("Clamp = %q", got)
	}
	if got := Clamp("hello", 0); got != "hello" {
		t.Errorf("Clamp with 0 = %q, want unchanged", got)
	}
	if got := Clamp("", 5); got != "" {
		t.Errorf("Clamp empty = %q", got)
	}
}

func TestDiffStates(t *testing.T) {
	prev := State{Place: "cafe", Mood: "calm"}
	next := State{Place: "station", Mood: "calm", Weather: "rain"}

	d := DiffStates(prev, next)
	if len(d) != 2 {
		t.Fatalf("diff size = %d, want 2: %+v", len(d), d)
	}
	if c := d[FieldPlace]; c.From != "cafe" || c.To != "station" {
		t.Errorf("place change = %+v", c)
	}
	if c := d[FieldWeather]; c.From != "" || c.To != "rain" {
		t.Errorf("weather change = %+v", c)
	}
	if _, ok := d[FieldMood]; ok {
		t.Error("unchanged field must not appear in diff")
	}
}

func TestDiffIdentical(t *testing.T) {
	s := State{Place: "cafe"}
	if d := DiffStates(s, s); len(d) != 0 {
		t.Errorf("identical states diff = %+v", d)
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(Diff{}); got != "No changes." {
		t.Errorf("empty diff = %q, want \"No changes.\"", got)
	}

	d := Diff{
		FieldPlace: {From: "cafe", To: "station"},
		FieldMood:  {From: "", To: "anxious"},
	}
	got := Summarize(d)
	want := "place: \"cafe\" → \"station\"\nmood: \"\" → \"anxious\""
	if got != want {
		t.Errorf("Summarize = %q, want %q", got, want)
	}
}

func TestStateBlock(t *testing.T) {
	s := State{Place: "the cafe"}
	got := StateBlock("SCENE_STATE", s)
	if !strings.HasPrefix(got, "[SCENE_STATE]\n") || !strings.HasSuffix(got, "[/SCENE_STATE]") {
		t.Errorf("block delimiters wrong:\n%s", got)
	}
	if !strings.Contains(got, "Place: the cafe\n") {
		t.Errorf("missing place line:\n%s", got)
	}
	if !strings.Contains(got, "Mood: (unset)\n") {
		t.Errorf("missing unset placeholder:\n%s", got)
	}
}

func TestSystemBox(t *testing.T) {
	s := State{Place: "station"}
	d := Diff{FieldPlace: {From: "cafe", To: "station"}}
	got := SystemBox("SCENE_STATE", s, d)
	if !strings.Contains(got, "Changes:\n- place: \"cafe\" → \"station\"") {
		t.Errorf("missing changes section:\n%s", got)
	}

	// Empty diff: no Changes section.
	got = SystemBox("SCENE_STATE", s, Diff{})
	if strings.Contains(got, "Changes:") {
		t.Errorf("unexpected changes section:\n%s", got)
	}
}
