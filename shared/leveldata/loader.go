package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

var ErrNoFloors = errors.New("arena has no walkable floors")

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
//
// Object groups read:
//   - Floors: rectangles, optional float property "height"
//   - PlayerSpawn: points, int property "spawnIndex"
//   - EnemySources: points, properties "leader", "follower", "followers", "radius"
//   - ItemSources: rectangles, properties "level", "chance"
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	// One tile is one world unit
	unitX := float64(levelMap.TileWidth)
	unitY := float64(levelMap.TileHeight)

	arena := &Arena{
		Name:   tmxPath,
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Floors":
			for _, o := range og.Objects {
				arena.Floors = append(arena.Floors, Floor{
					X:      o.X / unitX,
					Y:      o.Y / unitY,
					W:      o.Width / unitX,
					H:      o.Height / unitY,
					Height: o.Properties.GetFloat("height"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, SpawnPoint{
					X:     o.X / unitX,
					Y:     o.Y / unitY,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "EnemySources":
			for _, o := range og.Objects {
				arena.EnemySources = append(arena.EnemySources, EnemySource{
					X:              o.X / unitX,
					Y:              o.Y / unitY,
					Leader:         o.Properties.GetString("leader"),
					Follower:       o.Properties.GetString("follower"),
					Followers:      o.Properties.GetInt("followers"),
					FollowerRadius: o.Properties.GetFloat("radius"),
				})
			}
		case "ItemSources":
			for _, o := range og.Objects {
				arena.ItemSources = append(arena.ItemSources, ItemSource{
					X:      o.X / unitX,
					Y:      o.Y / unitY,
					W:      o.Width / unitX,
					H:      o.Height / unitY,
					Level:  o.Properties.GetInt("level"),
					Chance: o.Properties.GetString("chance"),
				})
			}
		}
	}

	if len(arena.Floors) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoFloors)
	}

	// Stable player order regardless of object order in the file
	sort.Slice(arena.PlayerSpawns, func(i, j int) bool {
		return arena.PlayerSpawns[i].Index < arena.PlayerSpawns[j].Index
	})

	return arena, nil
}
