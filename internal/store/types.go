package store

import (
	"time"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// #region types

// SceneRecord is one immutable version of the scene state. Versions form a
// parent chain; the active pointer may move backwards along it on rollback.
type SceneRecord struct {
	VersionID string
	ParentID  string
	Scene     scene.State
	CreatedAt time.Time
}

// #endregion types
