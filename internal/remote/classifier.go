// Package remote posts a turn to an external extraction endpoint and falls
// back to the local heuristics whenever the call does not produce a usable
// patch. The caller never sees a remote failure.
package remote

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// #endregion

// #region types

// extractRequest is the wire shape posted to the endpoint.
type extractRequest struct {
	Text string      `json:"text"`
	Prev scene.State `json:"prev"`
}

// extractResponse is the wire shape expected back. Absent fields mean no new
// information; explicit empty strings are ignored the same way.
type extractResponse struct {
	DateTime *string `json:"dateTime"`
	Place    *string `json:"place"`
	Mood     *string `json:"mood"`
	Weather  *string `json:"weather"`
	Notes    *string `json:"notes"`
}

// Classifier is the remote Extractor. Fallback is consulted on any transport
// or decode failure.
type Classifier struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	fallback extract.Extractor
}

// #endregion types

// #region constructor

// NewClassifier builds a Classifier. fallback must not be nil.
func NewClassifier(endpoint string, timeout time.Duration, fallback extract.Extractor) *Classifier {
	return &Classifier{
		endpoint: endpoint,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		fallback: fallback,
	}
}

// #endregion constructor

// #region extract

// Extract posts the turn to the endpoint and maps the response to a patch.
// Any failure degrades to the fallback extractor.
func (c *Classifier) Extract(ctx context.Context, text string, prev scene.State, g extract.Granularity) scene.Patch {
	patch, err := c.call(ctx, text, prev)
	if err != nil {
		return c.fallback.Extract(ctx, text, prev, g)
	}
	return patch
}

func (c *Classifier) call(ctx context.Context, text string, prev scene.State) (scene.Patch, error) {
	body, err := json.Marshal(extractRequest{Text: text, Prev: prev})
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &statusError{code: resp.StatusCode}
	}

	var decoded extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	patch := scene.Patch{}
	setIfPresent(patch, scene.FieldDateTime, decoded.DateTime)
	setIfPresent(patch, scene.FieldPlace, decoded.Place)
	setIfPresent(patch, scene.FieldMood, decoded.Mood)
	setIfPresent(patch, scene.FieldWeather, decoded.Weather)
	setIfPresent(patch, scene.FieldNotes, decoded.Notes)
	return patch, nil
}

func setIfPresent(p scene.Patch, f scene.Field, v *string) {
	if v != nil && *v != "" {
		p[f] = *v
	}
}

// #endregion extract

// #region errors

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return http.StatusText(e.code)
}

// #endregion errors
