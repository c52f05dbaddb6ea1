package systems

import (
	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death sequences. Enemies are removed when the
// timer runs out; downed players keep their body and stay terminal.
func UpdateDeaths(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer--
		}
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if !e.Valid() {
			continue
		}
		if e.HasComponent(tags.Player) {
			// Leave the body down; the death cue has played
			donburi.Remove[components.DeathData](e, components.Death)
			continue
		}
		factory.DestroyActor(ecs.World, e.Entity())
	}
}
