package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/config"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/datetext"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/extract"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/logging"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/remote"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/store"
)

// #region main
func main() {
	configPath := flag.String("config", os.Getenv("SCENE_CONFIG"), "path to scene.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	// Ensure initial scene exists. Only a missing active pointer means an
	// empty store; any other error must not fork a fresh scene over real data.
	_, err = st.GetCurrent()
	if errors.Is(err, store.ErrNoActiveScene) {
		log.Println("No active scene found, creating initial scene...")
		if _, err = st.CreateInitialScene(); err != nil {
			log.Fatalf("failed to create initial scene: %v", err)
		}
	} else if err != nil {
		log.Fatalf("failed to read active scene: %v", err)
	}

	engine := extract.NewEngine(datetext.NewNaturalParser(), extract.DefaultWeights())
	var extractor extract.Extractor = engine
	source := "heuristic"
	if cfg.Strategy == "remote" {
		extractor = remote.NewClassifier(cfg.RemoteEndpoint, cfg.RemoteTimeout(), engine)
		source = "remote"
	}

	fmt.Println("Scene state engine ready.")
	fmt.Printf("  DB: %s | Strategy: %s | Granularity: %s\n", cfg.DBPath, cfg.Strategy, cfg.Granularity)
	fmt.Println("Type a narrative line (or 'state' to show the block, 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		current, err := st.GetCurrent()
		if err != nil {
			log.Printf("error getting current scene: %v", err)
			continue
		}

		if line == "state" {
			fmt.Println(scene.StateBlock(cfg.BlockLabel, current.Scene))
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		patch := extractor.Extract(ctx, line, current.Scene, cfg.GranularityValue())
		cancel()

		next := current.Scene.Apply(patch, cfg.MaxNoteChars)
		diff := scene.DiffStates(current.Scene, next)

		if len(diff) == 0 {
			if !cfg.OnlyShowOnChange {
				fmt.Println(scene.StateBlock(cfg.BlockLabel, current.Scene))
			}
			continue
		}

		rec := store.SceneRecord{
			VersionID: uuid.New().String(),
			ParentID:  current.VersionID,
			Scene:     next,
			CreatedAt: time.Now().UTC(),
		}
		if err := st.CommitScene(rec); err != nil {
			log.Printf("commit error: %v", err)
			continue
		}

		patchJSON, _ := json.Marshal(patch)
		err = logging.LogExtraction(st.DB(), logging.ExtractionEntry{
			VersionID: rec.VersionID,
			Source:    source,
			PatchJSON: string(patchJSON),
			Summary:   scene.Summarize(diff),
			CreatedAt: rec.CreatedAt,
		})
		if err != nil {
			log.Printf("logging error: %v", err)
		}

		fmt.Println(scene.SystemBox(cfg.BlockLabel, next, diff))
	}
}
// #endregion main
