package scene

import "strings"

// #region diff

// Change records one field transition.
type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Diff maps each changed field to its transition.
type Diff map[Field]Change

// DiffStates compares two snapshots field by field. Empty strings are the
// default value, so "" → "" never registers.
func DiffStates(prev, next State) Diff {
	d := Diff{}
	for _, f := range Fields() {
		if prev.Get(f) != next.Get(f) {
			d[f] = Change{From: prev.Get(f), To: next.Get(f)}
		}
	}
	return d
}

// #endregion diff

// #region summarize

// Summarize renders a diff one line per changed field, in canonical field
// order, or "No changes." for an empty diff.
func Summarize(d Diff) string {
	if len(d) == 0 {
		return "No changes."
	}
	var lines []string
	for _, f := range Fields() {
		if c, ok := d[f]; ok {
			lines = append(lines, string(f)+": \""+c.From+"\" → \""+c.To+"\"")
		}
	}
	return strings.Join(lines, "\n")
}

// #endregion summarize
