package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture. The
// reference time pins date resolution so runs are reproducible.
type Fixture struct {
	Description   string        `json:"description"`
	ReferenceTime string        `json:"reference_time"` // RFC 3339
	Granularity   string        `json:"granularity"`    // "date" | "datetime"
	StartScene    scene.State   `json:"start_scene"`
	Turns         []FixtureTurn `json:"turns"`
}

// FixtureTurn is one recorded text block plus its expectations.
type FixtureTurn struct {
	TurnID string             `json:"turn_id"`
	Text   string             `json:"text"`
	Expect []FieldExpectation `json:"expect"`
}

// FieldExpectation asserts on one patch field. Present=false means the field
// must be absent; an empty Value with Present=true accepts any value.
type FieldExpectation struct {
	Field   scene.Field `json:"field"`
	Present bool        `json:"present"`
	Value   string      `json:"value,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if _, err := f.Reference(); err != nil {
		return nil, err
	}
	if _, err := f.GranularityValue(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Reference parses the fixture's reference instant.
func (f *Fixture) Reference() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, f.ReferenceTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse reference_time: %w", err)
	}
	return t, nil
}

// GranularityValue maps the fixture's granularity string onto the extract type.
func (f *Fixture) GranularityValue() (extract.Granularity, error) {
	switch f.Granularity {
	case "", "date":
		return extract.GranularityDate, nil
	case "datetime":
		return extract.GranularityDateTime, nil
	}
	return "", fmt.Errorf("unknown granularity %q", f.Granularity)
}

// #endregion fixture-loader
