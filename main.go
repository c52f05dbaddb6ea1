package main

import (
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/arenacore/assets"
	"github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Game adapts an ArenaScene to ebiten's fixed-rate update loop.
type Game struct {
	bounds   image.Rectangle
	scene    *scenes.ArenaScene
	catalogs <-chan *config.ItemCatalog
}

func (g *Game) Update() error {
	select {
	case catalog, ok := <-g.catalogs:
		if ok {
			if err := g.scene.ReloadItems(catalog); err != nil {
				log.Printf("[arena] %v", err)
			}
		}
	default:
	}

	if g.scene.GameOver() {
		return ebiten.Termination
	}
	g.scene.PollInput()
	g.scene.Step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Viewer.Width, config.Viewer.Height)
	return config.Viewer.Width, config.Viewer.Height
}

func main() {
	overrides, err := config.ApplyEnv()
	if err != nil {
		log.Fatalf("[config] %v", err)
	}

	catalog := config.Items
	var watcher *config.ItemWatcher
	if overrides.ItemsFile != "" {
		if catalog, err = config.LoadItemCatalog(overrides.ItemsFile); err != nil {
			log.Fatalf("[config] %v", err)
		}
		if watcher, err = config.WatchItems(overrides.ItemsFile); err != nil {
			log.Printf("[config] hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	arena, err := assets.LoadConfiguredArena(config.Sim.MapPath)
	if err != nil {
		log.Fatalf("[arena] %v", err)
	}

	humans := 1
	if config.Viewer.Headless {
		humans = 0
	}
	scene, err := scenes.NewArenaScene(scenes.ArenaConfig{
		Arena:     arena,
		Catalog:   catalog,
		Players:   2,
		Humans:    humans,
		Seed:      config.Sim.Seed,
		WaveDelay: config.Waves.Delay,
		Visuals:   scenes.NewLogVisuals(),
	})
	if err != nil {
		log.Fatalf("[arena] %v", err)
	}
	logEvents(scene.ECS().World)

	var catalogs <-chan *config.ItemCatalog
	if watcher != nil {
		catalogs = watcher.Catalogs
	}

	if config.Viewer.Headless {
		loop := scenes.NewLoop(scene, config.Viewer.Ticks)
		loop.Catalogs = catalogs

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		go func() {
			<-interrupt
			loop.Stop()
		}()

		ticks := loop.Run()
		log.Printf("[arena] stopped after %d ticks, wave %d", ticks, scene.Wave())
		return
	}

	ebiten.SetWindowSize(config.Viewer.Width, config.Viewer.Height)
	ebiten.SetWindowTitle("arenacore")
	ebiten.SetTPS(config.Sim.TPS)
	if err := ebiten.RunGame(&Game{scene: scene, catalogs: catalogs}); err != nil {
		log.Fatal(err)
	}
}

// logEvents prints the outbound events an operator cares about.
func logEvents(w donburi.World) {
	events.WaveCleared.Subscribe(w, func(w donburi.World, ev events.WaveClearedEvent) {
		log.Printf("[spawn] wave %d cleared", ev.Wave)
	})
	events.Died.Subscribe(w, func(w donburi.World, ev events.DiedEvent) {
		log.Printf("[arena] %v killed by %v", ev.Entity, ev.Source)
	})
	events.ItemBroken.Subscribe(w, func(w donburi.World, ev events.ItemBrokenEvent) {
		log.Printf("[inventory] %v broke %s", ev.Entity, ev.Item.Def.Name)
	})
}
