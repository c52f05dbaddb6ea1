package systems

import (
	"github.com/automoto/arenacore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCooldowns ticks every actor's timer table once per fixed tick.
func UpdateCooldowns(ecs *ecs.ECS) {
	components.Cooldowns.Each(ecs.World, func(e *donburi.Entry) {
		components.Cooldowns.Get(e).Tick()
	})
}
