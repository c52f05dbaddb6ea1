package systems

import (
	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateClock advances the frame counter once per fixed tick.
func UpdateClock(ecs *ecs.ECS) {
	if entry, ok := components.Clock.First(ecs.World); ok {
		components.Clock.Get(entry).Frame++
	}
}

// isLiving validates a weak entity handle: it must still exist, carry a
// health pool that is not terminal, and not be in its death sequence.
func isLiving(w donburi.World, e donburi.Entity) bool {
	if e == donburi.Null || !w.Valid(e) {
		return false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(components.Health) || entry.HasComponent(components.Death) {
		return false
	}
	return !components.Health.Get(entry).Terminal
}

// livingFilter adapts isLiving to spatial.Query.Nearest.
func livingFilter(w donburi.World) func(donburi.Entity) bool {
	return func(e donburi.Entity) bool {
		return isLiving(w, e)
	}
}

func positionOf(w donburi.World, e donburi.Entity) (math.Vec2, bool) {
	services := factory.ServicesOf(w)
	if services == nil || services.Query == nil {
		return math.Vec2{}, false
	}
	return services.Query.Position(e)
}
