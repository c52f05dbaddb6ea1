package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/automoto/arenacore/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultArena is the embedded arena used when no map path is configured.
const DefaultArena = "levels/arena.tmx"

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads from the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewDirLevelLoader reads levels from disk, rooted at dir.
func NewDirLevelLoader(dir string) *LevelLoader {
	return &LevelLoader{fsys: os.DirFS(dir)}
}

// LoadArena loads the arena at levelPath, relative to the loader root.
func (l *LevelLoader) LoadArena(levelPath string) (*leveldata.Arena, error) {
	return leveldata.LoadArena(l.fsys, levelPath)
}

// MustLoadLevels loads every .tmx under levels/, sorted by file name.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Arena {
	entries, err := fs.ReadDir(l.fsys, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var arenas []*leveldata.Arena
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		arena, err := l.LoadArena(path.Join("levels", entry.Name()))
		if err != nil {
			panic(err)
		}
		arenas = append(arenas, arena)
	}

	if len(arenas) == 0 {
		panic("No level files found in assets/levels directory")
	}
	return arenas
}

// LoadConfiguredArena picks the embedded arena when mapPath is empty,
// otherwise loads mapPath from disk.
func LoadConfiguredArena(mapPath string) (*leveldata.Arena, error) {
	if mapPath == "" || mapPath == DefaultArena {
		return NewLevelLoader().LoadArena(DefaultArena)
	}
	dir, file := filepath.Split(mapPath)
	if dir == "" {
		dir = "."
	}
	return NewDirLevelLoader(dir).LoadArena(file)
}
