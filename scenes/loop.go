package scenes

import (
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/arenacore/config"
)

// Loop runs an ArenaScene at cfg.Sim.TPS without a window. Every tick runs
// on the goroutine that called Run.
type Loop struct {
	scene *ArenaScene

	// Ticks stops the loop after that many ticks; 0 runs until Stop or game over.
	Ticks int
	// Catalogs delivers hot-reloaded item definitions, applied between ticks.
	Catalogs <-chan *cfg.ItemCatalog

	stop chan struct{}
	once sync.Once
}

func NewLoop(scene *ArenaScene, ticks int) *Loop {
	return &Loop{scene: scene, Ticks: ticks, stop: make(chan struct{})}
}

// Run blocks until the loop finishes and returns the number of ticks run.
func (l *Loop) Run() int {
	interval := time.Second / time.Duration(cfg.Sim.TPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	ticks := 0
	for {
		select {
		case <-l.stop:
			return ticks
		case catalog, ok := <-l.Catalogs:
			if !ok {
				l.Catalogs = nil
				continue
			}
			if err := l.scene.ReloadItems(catalog); err != nil {
				log.Printf("[arena] %v", err)
			}
		case now := <-ticker.C:
			l.scene.FixedUpdate()
			l.scene.Update(now.Sub(last))
			last = now
			ticks++

			if l.scene.GameOver() {
				log.Printf("[arena] game over after %d ticks, wave %d", ticks, l.scene.Wave())
				return ticks
			}
			if l.Ticks > 0 && ticks >= l.Ticks {
				return ticks
			}
		}
	}
}

// Stop ends Run after the current tick. It is safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stop) })
}
