package factory

import (
	"math/rand/v2"

	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the spatial index for a width x height arena (world units).
func CreateSpace(ecs *ecs.ECS, width, height float64, rng *rand.Rand) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := spatial.NewSpace(width, height, float64(cfg.Sim.CellSize), cfg.Viewer.PixelsPerUnit, rng)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

// CreateServices installs the collaborator singleton. Query and Nav default
// to the arena's space when left nil.
func CreateServices(ecs *ecs.ECS, services components.ServicesData) *donburi.Entry {
	if space := SpaceOf(ecs.World); space != nil {
		if services.Query == nil {
			services.Query = space
		}
		if services.Nav == nil {
			services.Nav = space
		}
	}
	entry := archetypes.Services.Spawn(ecs)
	components.Services.SetValue(entry, services)
	components.Clock.SetValue(entry, components.ClockData{})
	return entry
}

// SpaceOf returns the arena's spatial index, or nil before CreateSpace.
func SpaceOf(w donburi.World) *spatial.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}

// ServicesOf returns the collaborator singleton, or nil before CreateServices.
func ServicesOf(w donburi.World) *components.ServicesData {
	entry, ok := components.Services.First(w)
	if !ok {
		return nil
	}
	return components.Services.Get(entry)
}
