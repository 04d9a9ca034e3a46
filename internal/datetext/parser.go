// Package datetext wraps natural-language date/time parsing behind a small
// interface so the extraction engine can be tested without the real parser.
package datetext

import (
	"fmt"
	"regexp"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// #region types

// Result is one resolved date/time match.
type Result struct {
	Time time.Time
	// Text is the matched fragment from the input.
	Text string
	// Index is the byte offset of the fragment in the input.
	Index int
	// HourCertain reports whether the fragment stated a time of day
	// explicitly rather than having the hour inferred.
	HourCertain bool
}

// Parser resolves natural-language date/time expressions against a reference
// instant. Implementations return zero or more matches, best first.
type Parser interface {
	Parse(text string, ref time.Time) ([]Result, error)
}

// #endregion types

// #region natural-parser

// NaturalParser is the production Parser, backed by the olebedev/when
// rules engine with English and common rule sets.
type NaturalParser struct {
	w *when.Parser
}

// NewNaturalParser builds a parser with the English and common rules loaded.
func NewNaturalParser() *NaturalParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &NaturalParser{w: w}
}

// Parse resolves the first date/time expression in text relative to ref.
func (p *NaturalParser) Parse(text string, ref time.Time) ([]Result, error) {
	r, err := p.w.Parse(text, ref)
	if err != nil {
		return nil, fmt.Errorf("parse datetime: %w", err)
	}
	if r == nil {
		return nil, nil
	}
	return []Result{{
		Time:        r.Time,
		Text:        r.Text,
		Index:       r.Index,
		HourCertain: HourExplicit(r.Text),
	}}, nil
}

// #endregion natural-parser

// #region hour-certainty

// explicitHourPattern matches fragments that state a clock time outright.
var explicitHourPattern = regexp.MustCompile(
	`(?i)(?:\b\d{1,2}:\d{2}\b|\b\d{1,2}\s*(?:am|pm|a\.m\.|p\.m\.)|\bo'?clock\b|\bnoon\b|\bmidnight\b)`)

// HourExplicit reports whether a matched fragment names a specific time of
// day, as opposed to a purely calendar expression like "tomorrow".
func HourExplicit(fragment string) bool {
	return explicitHourPattern.MatchString(fragment)
}

// #endregion hour-certainty
