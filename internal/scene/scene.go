// Package scene defines the scene-state record, patches against it, and the
// pure diff/summarize/render helpers built on both.
package scene

import (
	"strings"
	"unicode/utf8"
)

// #region fields

// Field names a single scene-state field.
type Field string

const (
	FieldDateTime Field = "dateTime"
	FieldPlace    Field = "place"
	FieldMood     Field = "mood"
	FieldWeather  Field = "weather"
	FieldNotes    Field = "notes"
)

// Fields returns the state fields in their canonical order.
func Fields() []Field {
	return []Field{FieldDateTime, FieldPlace, FieldMood, FieldWeather, FieldNotes}
}

// #endregion fields

// #region state

// State is the current known scene facts. All fields default to empty.
type State struct {
	DateTime string `json:"dateTime"`
	Place    string `json:"place"`
	Mood     string `json:"mood"`
	Weather  string `json:"weather"`
	Notes    string `json:"notes"`
}

// Get returns the value of the named field.
func (s State) Get(f Field) string {
	switch f {
	case FieldDateTime:
		return s.DateTime
	case FieldPlace:
		return s.Place
	case FieldMood:
		return s.Mood
	case FieldWeather:
		return s.Weather
	case FieldNotes:
		return s.Notes
	}
	return ""
}

func (s *State) set(f Field, v string) {
	switch f {
	case FieldDateTime:
		s.DateTime = v
	case FieldPlace:
		s.Place = v
	case FieldMood:
		s.Mood = v
	case FieldWeather:
		s.Weather = v
	case FieldNotes:
		s.Notes = v
	}
}

// #endregion state

// #region patch

// Patch is a partial state update: only the fields an extraction call is
// confident about appear. A missing key means "no new information", never
// "clear this field".
type Patch map[Field]string

// Apply merges a patch into a state and clamps notes to maxNoteChars
// (0 disables clamping). The receiver is unchanged.
func (s State) Apply(p Patch, maxNoteChars int) State {
	next := s
	for _, f := range Fields() {
		if v, ok := p[f]; ok && v != "" {
			next.set(f, v)
		}
	}
	next.Notes = Clamp(next.Notes, maxNoteChars)
	return next
}

// Clamp truncates s to at most max bytes without splitting a rune.
// max <= 0 means no limit.
func Clamp(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// #endregion patch

// #region render

// StateBlock renders a compact, parse-friendly block for prompt injection:
//
//	[LABEL]
//	DateTime: ...
//	[/LABEL]
func StateBlock(label string, s State) string {
	var b strings.Builder
	b.WriteString("[" + label + "]\n")
	writeFieldLines(&b, s)
	b.WriteString("[/" + label + "]")
	return b.String()
}

// SystemBox renders the state block plus a Changes section when the diff is
// non-empty. Intended for human-facing change reporting.
func SystemBox(label string, s State, d Diff) string {
	var b strings.Builder
	b.WriteString("[" + label + "]\n")
	writeFieldLines(&b, s)
	if len(d) > 0 {
		b.WriteString("\nChanges:\n")
		for _, f := range Fields() {
			if c, ok := d[f]; ok {
				b.WriteString("- " + string(f) + ": \"" + c.From + "\" → \"" + c.To + "\"\n")
			}
		}
	}
	b.WriteString("[/" + label + "]")
	return b.String()
}

var fieldLabels = map[Field]string{
	FieldDateTime: "DateTime",
	FieldPlace:    "Place",
	FieldMood:     "Mood",
	FieldWeather:  "Weather",
	FieldNotes:    "Notes",
}

func writeFieldLines(b *strings.Builder, s State) {
	for _, f := range Fields() {
		v := s.Get(f)
		if v == "" {
			v = "(unset)"
		}
		b.WriteString(fieldLabels[f] + ": " + v + "\n")
	}
}

// #endregion render
