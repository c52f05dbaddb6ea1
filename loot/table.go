// Package loot answers "give me an item for this level": per-level loot
// tables built from the item catalog, plus scripted spawn chances.
package loot

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/arenacore/config"
)

var (
	ErrNoLootTable = errors.New("no loot table for level")
	ErrEmptyTable  = errors.New("loot table is empty")
)

// Picker hands out an item definition for a level.
type Picker interface {
	PickRandomItem(level int) (*config.ItemDef, error)
}

// Table is a uniform pool of item definitions.
type Table struct {
	Items []*config.ItemDef
}

// PickRandom returns one item with equal probability.
func (t *Table) PickRandom(rng *rand.Rand) (*config.ItemDef, bool) {
	if t == nil || len(t.Items) == 0 {
		return nil, false
	}
	return t.Items[rng.IntN(len(t.Items))], true
}

// LevelConfig maps level numbers to their tables.
type LevelConfig struct {
	tables map[int]*Table
}

// NewLevelConfig builds the level tables listed in a catalog.
func NewLevelConfig(catalog *config.ItemCatalog) (*LevelConfig, error) {
	lc := &LevelConfig{tables: make(map[int]*Table, len(catalog.Levels))}
	for _, lvl := range catalog.Levels {
		table := &Table{}
		for _, name := range lvl.Items {
			def, ok := catalog.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("level %d: %w: %s", lvl.Level, config.ErrUnknownItem, name)
			}
			table.Items = append(table.Items, def)
		}
		lc.tables[lvl.Level] = table
	}
	return lc, nil
}

// TableFor returns the table for level, if one is configured.
func (lc *LevelConfig) TableFor(level int) (*Table, bool) {
	t, ok := lc.tables[level]
	return t, ok
}

// TablePicker is the Picker backed by a LevelConfig.
type TablePicker struct {
	levels *LevelConfig
	rng    *rand.Rand
}

func NewTablePicker(levels *LevelConfig, rng *rand.Rand) *TablePicker {
	return &TablePicker{levels: levels, rng: rng}
}

// SetLevels swaps in reloaded tables.
func (p *TablePicker) SetLevels(levels *LevelConfig) {
	p.levels = levels
}

func (p *TablePicker) PickRandomItem(level int) (*config.ItemDef, error) {
	table, ok := p.levels.TableFor(level)
	if !ok {
		return nil, fmt.Errorf("level %d: %w", level, ErrNoLootTable)
	}
	def, ok := table.PickRandom(p.rng)
	if !ok {
		return nil, fmt.Errorf("level %d: %w", level, ErrEmptyTable)
	}
	return def, nil
}
