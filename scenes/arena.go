package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/loot"
	"github.com/automoto/arenacore/shared/leveldata"
	"github.com/automoto/arenacore/systems"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaConfig describes one arena session.
type ArenaConfig struct {
	Arena     *leveldata.Arena
	Catalog   *cfg.ItemCatalog
	Players   int
	Humans    int // the first Humans players take device input, the rest are bots
	Level     int
	Seed      uint64
	WaveDelay time.Duration
	Visuals   components.HeldVisuals
}

// ArenaScene owns one world and runs its systems. FixedUpdate advances the
// simulation by one tick; Update runs the variable-rate work.
type ArenaScene struct {
	ecs      *ecs.ECS
	picker   *loot.TablePicker
	gameOver bool
}

func NewArenaScene(c ArenaConfig) (*ArenaScene, error) {
	if c.Arena == nil {
		return nil, fmt.Errorf("new arena scene: no arena")
	}
	if c.Catalog == nil {
		c.Catalog = cfg.Items
	}
	if c.Level == 0 {
		c.Level = cfg.Sim.StartLevel
	}

	rng := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	levels, err := loot.NewLevelConfig(c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("new arena scene: %w", err)
	}

	s := &ArenaScene{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		picker: loot.NewTablePicker(levels, rng),
	}
	s.configure()

	err = factory.CreateArena(s.ecs, c.Arena, rng, factory.ArenaOptions{
		Level:     c.Level,
		Players:   c.Players,
		WaveDelay: c.WaveDelay,
		Services: components.ServicesData{
			Loot:    s.picker,
			Visuals: c.Visuals,
			Rand:    rng,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("new arena scene: %w", err)
	}

	components.Player.Each(s.ecs.World, func(e *donburi.Entry) {
		if components.Player.Get(e).Index < c.Humans {
			systems.BindInput(e, nil)
		} else {
			systems.AttachBot(e, cfg.Bot.Default)
		}
	})

	systems.ShakeOnPlayerDamage(s.ecs.World)
	events.PlayersDown.Subscribe(s.ecs.World, func(w donburi.World, ev events.PlayersDownEvent) {
		s.gameOver = true
		log.Printf("[arena] all players down in wave %d", ev.Wave)
	})

	log.Printf("[arena] %s ready: %d players, loot level %d", c.Arena.Name, c.Players, c.Level)
	return s, nil
}

func (s *ArenaScene) configure() {
	// Order matters: intents, then actors, then hurtboxes resolve what the
	// actors spawned this tick, then pools and timers tick down
	s.ecs.AddSystem(systems.UpdateClock)
	s.ecs.AddSystem(systems.UpdateBots)
	s.ecs.AddSystem(systems.UpdatePlayers)
	s.ecs.AddSystem(systems.UpdateEnemies)
	s.ecs.AddSystem(systems.UpdateFlyingEnemies)
	s.ecs.AddSystem(systems.UpdateHurtboxes)
	s.ecs.AddSystem(systems.UpdateHealth)
	s.ecs.AddSystem(systems.UpdateCooldowns)
	s.ecs.AddSystem(systems.UpdateDeaths)
	s.ecs.AddSystem(systems.UpdateCamera)

	s.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}

// FixedUpdate advances the simulation by one tick.
func (s *ArenaScene) FixedUpdate() {
	s.ecs.Update()
}

// Update runs wave pacing and flushes queued events. dt is the wall time
// since the previous call.
func (s *ArenaScene) Update(dt time.Duration) {
	if clock, ok := components.Clock.First(s.ecs.World); ok {
		components.Clock.Get(clock).Delta = dt
	}
	systems.UpdateWaves(s.ecs)
	events.ProcessAllEvents(s.ecs.World)
}

// Step runs one fixed tick followed by one variable tick of dt.
func (s *ArenaScene) Step(dt time.Duration) {
	s.FixedUpdate()
	s.Update(dt)
}

// PollInput reads bound devices. Only the windowed viewer calls it.
func (s *ArenaScene) PollInput() {
	systems.UpdateInput(s.ecs)
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}

// GameOver reports whether every player is down.
func (s *ArenaScene) GameOver() bool {
	return s.gameOver
}

// ReloadItems swaps the loot tables for ones built from catalog. Items
// already in the world keep their old definitions.
func (s *ArenaScene) ReloadItems(catalog *cfg.ItemCatalog) error {
	levels, err := loot.NewLevelConfig(catalog)
	if err != nil {
		return fmt.Errorf("reload items: %w", err)
	}
	s.picker.SetLevels(levels)
	cfg.Items = catalog
	return nil
}

func (s *ArenaScene) ECS() *ecs.ECS {
	return s.ecs
}

// Wave returns the current wave number, 0 before the first one starts.
func (s *ArenaScene) Wave() int {
	if entry, ok := components.WaveCoordinator.First(s.ecs.World); ok {
		return components.WaveCoordinator.Get(entry).Wave
	}
	return 0
}
