package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// fixedExtractor is a fallback stub that always returns the same patch.
type fixedExtractor struct {
	patch scene.Patch
}

func (f fixedExtractor) Extract(ctx context.Context, text string, prev scene.State, g extract.Granularity) scene.Patch {
	return f.patch
}

var fallbackPatch = scene.Patch{scene.FieldMood: "calm"}

func TestClassifierMapsResponse(t *testing.T) {
	var gotReq extractRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"place":   "the cafe",
			"weather": "rain",
			"mood":    "",
		})
	}))
	defer srv.Close()

	c := NewClassifier(srv.URL, time.Second, fixedExtractor{patch: fallbackPatch})
	prev := scene.State{Place: "home"}
	patch := c.Extract(context.Background(), "rainy cafe day", prev, extract.GranularityDate)

	if gotReq.Text != "rainy cafe day" {
		t.Errorf("posted text = %q", gotReq.Text)
	}
	if gotReq.Prev.Place != "home" {
		t.Errorf("posted prev.place = %q", gotReq.Prev.Place)
	}
	if patch[scene.FieldPlace] != "the cafe" {
		t.Errorf("place = %q, want %q", patch[scene.FieldPlace], "the cafe")
	}
	if patch[scene.FieldWeather] != "rain" {
		t.Errorf("weather = %q, want %q", patch[scene.FieldWeather], "rain")
	}
	if _, ok := patch[scene.FieldMood]; ok {
		t.Error("empty mood should be dropped from the patch")
	}
}

func TestClassifierFallsBackOnStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClassifier(srv.URL, time.Second, fixedExtractor{patch: fallbackPatch})
	patch := c.Extract(context.Background(), "anything", scene.State{}, extract.GranularityDate)
	if patch[scene.FieldMood] != "calm" {
		t.Fatalf("expected fallback patch, got %v", patch)
	}
}

func TestClassifierFallsBackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClassifier(srv.URL, time.Second, fixedExtractor{patch: fallbackPatch})
	patch := c.Extract(context.Background(), "anything", scene.State{}, extract.GranularityDate)
	if patch[scene.FieldMood] != "calm" {
		t.Fatalf("expected fallback patch, got %v", patch)
	}
}

func TestClassifierFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClassifier(srv.URL, 20*time.Millisecond, fixedExtractor{patch: fallbackPatch})
	patch := c.Extract(context.Background(), "anything", scene.State{}, extract.GranularityDate)
	if patch[scene.FieldMood] != "calm" {
		t.Fatalf("expected fallback patch, got %v", patch)
	}
}

func TestClassifierFallsBackOnConnectionError(t *testing.T) {
	// Closed server: the address refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClassifier(url, time.Second, fixedExtractor{patch: fallbackPatch})
	patch := c.Extract(context.Background(), "anything", scene.State{}, extract.GranularityDate)
	if patch[scene.FieldMood] != "calm" {
		t.Fatalf("expected fallback patch, got %v", patch)
	}
}
