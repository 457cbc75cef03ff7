package component

import "github.com/lixenwraith/tachyon/core"

// TerminalCollider opts an entity into collision detection. Inactive
// colliders are skipped entirely.
type TerminalCollider struct {
	IsActive bool
}

// CollisionBody captures one side of a collision at detection time: the
// entity and a copy of its collider.
type CollisionBody struct {
	Entity   core.Entity
	Collider TerminalCollider
}

// TerminalCollision is spawned as its own entity for every colliding pair
// found in a frame. Collision-processing systems query for it during the
// update phase; the collision generator destroys all instances again in
// after-update.
type TerminalCollision struct {
	Bodies [2]CollisionBody
}
