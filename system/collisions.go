package system

import (
	"github.com/lixenwraith/tachyon/component"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
)

// CollisionsGenerator produces the collision lifecycle: detection in
// before-update, so collision entities exist for the whole update phase,
// and removal in after-update once game systems have seen them.
//
// Detection is cell-exact: two active colliders collide when their
// transforms land on the same coordinates. One TerminalCollision entity is
// spawned per colliding pair.
type CollisionsGenerator struct{}

func NewCollisionsGenerator() *CollisionsGenerator {
	return &CollisionsGenerator{}
}

func (g *CollisionsGenerator) Generate() []engine.PhasedSystem {
	bodies := engine.Has[component.TerminalTransform](
		engine.HasWhere(engine.NewQuery(), func(c *component.TerminalCollider) bool { return c.IsActive }))
	collisions := engine.Has[component.TerminalCollision](engine.NewQuery())

	return []engine.PhasedSystem{
		{
			Phase: engine.PhaseBeforeUpdate,
			System: engine.NewSystemWithPriority(core.PriorityHighest,
				[]*engine.Query{bodies}, detectCollisions).Named("collisions-detect"),
		},
		{
			Phase: engine.PhaseAfterUpdate,
			System: engine.NewSystem(
				[]*engine.Query{collisions}, wipeCollisions).Named("collisions-wipe"),
		},
	}
}

func detectCollisions(results []engine.ResultList, args *engine.Args) {
	occupied := make(map[core.IntCoords2d][]component.CollisionBody)

	for _, r := range results[0] {
		body := component.CollisionBody{
			Entity:   r.Entity(),
			Collider: *engine.Get[component.TerminalCollider](r),
		}
		pos := engine.Get[component.TerminalTransform](r).Coords

		for _, other := range occupied[pos] {
			args.Commands().Issue(engine.AddEntity{Components: []engine.Component{
				&component.TerminalCollision{Bodies: [2]component.CollisionBody{other, body}},
			}})
		}
		occupied[pos] = append(occupied[pos], body)
	}
}

func wipeCollisions(results []engine.ResultList, args *engine.Args) {
	for _, r := range results[0] {
		args.Commands().Issue(engine.DestroyEntity{Entity: r.Entity()})
	}
}
