package components

import (
	"time"

	"github.com/automoto/arenacore/loot"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EnemySourceData spawns a leader with a ring of followers and tracks the
// agents still alive from its last spawn.
type EnemySourceData struct {
	Position       math.Vec2
	LeaderType     string
	FollowerType   string
	FollowerCount  int
	FollowerRadius float64

	Alive []donburi.Entity
}

// Prune forgets agents for which alive returns false.
func (s *EnemySourceData) Prune(alive func(donburi.Entity) bool) {
	kept := s.Alive[:0]
	for _, e := range s.Alive {
		if alive(e) {
			kept = append(kept, e)
		}
	}
	s.Alive = kept
}

// Cleared reports whether nothing from the last spawn is left.
func (s *EnemySourceData) Cleared() bool {
	return len(s.Alive) == 0
}

var EnemySource = donburi.NewComponentType[EnemySourceData]()

// ItemSourceData drops loot somewhere inside its area when a wave starts.
type ItemSourceData struct {
	Min, Max math.Vec2
	Level    int // 0 uses the arena's level
	Chance   *loot.Chance
}

var ItemSource = donburi.NewComponentType[ItemSourceData]()

// WaveCoordinatorData is the singleton that paces waves.
type WaveCoordinatorData struct {
	Delay     time.Duration
	Countdown time.Duration
	Waiting   bool
	Wave      int
}

var WaveCoordinator = donburi.NewComponentType[WaveCoordinatorData]()
