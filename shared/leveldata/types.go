// Package leveldata parses TMX arena layouts into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
// All coordinates are in world units (one map tile per unit).
package leveldata

// Arena holds everything the arena scene needs from a TMX file.
type Arena struct {
	Name          string
	Width, Height float64

	Floors       []Floor
	PlayerSpawns []SpawnPoint
	EnemySources []EnemySource
	ItemSources  []ItemSource
}

// Floor is a walkable rectangle at a given height.
type Floor struct {
	X, Y, W, H float64
	Height     float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySource is a leader spawn point with an optional follower ring.
// Empty fields fall back to the wave config.
type EnemySource struct {
	X, Y           float64
	Leader         string
	Follower       string
	Followers      int
	FollowerRadius float64
}

// ItemSource is a loot drop area.
type ItemSource struct {
	X, Y, W, H float64
	Level      int
	Chance     string // number or tengo expression; empty uses the wave config
}
