package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scaledArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Floors">
  <object id="1" x="0" y="0" width="320" height="256"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="64" y="32">
   <properties><property name="spawnIndex" type="int" value="1"/></properties>
   <point/>
  </object>
  <object id="3" x="32" y="32">
   <properties><property name="spawnIndex" type="int" value="0"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Decoration">
  <object id="4" x="0" y="0" width="32" height="32"/>
 </objectgroup>
</map>`

func TestLoadArenaScalesByTileSize(t *testing.T) {
	fsys := fstest.MapFS{"a.tmx": &fstest.MapFile{Data: []byte(scaledArena)}}

	arena, err := LoadArena(fsys, "a.tmx")
	require.NoError(t, err)

	assert.Equal(t, 10.0, arena.Width)
	require.Len(t, arena.Floors, 1)
	assert.Equal(t, Floor{X: 0, Y: 0, W: 10, H: 8}, arena.Floors[0])

	require.Len(t, arena.PlayerSpawns, 2)
	assert.Equal(t, SpawnPoint{X: 1, Y: 1, Index: 0}, arena.PlayerSpawns[0])
	assert.Equal(t, SpawnPoint{X: 2, Y: 1, Index: 1}, arena.PlayerSpawns[1])
	assert.Empty(t, arena.EnemySources)
}

func TestLoadArenaMissing(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "missing.tmx")
	assert.ErrorContains(t, err, "missing.tmx")
}
