package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/shared/leveldata"
	"github.com/automoto/arenacore/spatial"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

type fakeVisuals struct {
	next    components.VisualHandle
	live    map[components.VisualHandle]string
	spawned []string
}

func newFakeVisuals() *fakeVisuals {
	return &fakeVisuals{live: make(map[components.VisualHandle]string)}
}

func (f *fakeVisuals) Spawn(owner donburi.Entity, item *components.ItemInstance) components.VisualHandle {
	f.next++
	f.live[f.next] = item.Def.Name
	f.spawned = append(f.spawned, item.Def.Name)
	return f.next
}

func (f *fakeVisuals) Release(h components.VisualHandle) {
	delete(f.live, h)
}

type fakePicker struct {
	def    *cfg.ItemDef
	err    error
	levels []int
}

func (p *fakePicker) PickRandomItem(level int) (*cfg.ItemDef, error) {
	p.levels = append(p.levels, level)
	return p.def, p.err
}

// testArena is a 40 x 30 flat arena with one raised block in the far corner.
type testArena struct {
	ecs     *ecs.ECS
	w       donburi.World
	space   *spatial.Space
	visuals *fakeVisuals
	picker  *fakePicker
}

func newTestArena(t *testing.T) *testArena {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	rng := rand.New(rand.NewPCG(1, 2))

	factory.CreateLevel(e, "test", 1, 1)
	factory.CreateSpace(e, 40, 30, rng)
	factory.CreateFloor(e, leveldata.Floor{X: 0, Y: 0, W: 40, H: 30})
	factory.CreateFloor(e, leveldata.Floor{X: 36, Y: 26, W: 4, H: 4, Height: 5})

	a := &testArena{
		ecs:     e,
		w:       e.World,
		space:   factory.SpaceOf(e.World),
		visuals: newFakeVisuals(),
		picker:  &fakePicker{},
	}
	factory.CreateServices(e, components.ServicesData{Loot: a.picker, Visuals: a.visuals, Rand: rng})
	require.NotNil(t, a.space)
	return a
}

func (a *testArena) player(x, y float64) *donburi.Entry {
	index := 0
	components.Player.Each(a.w, func(*donburi.Entry) { index++ })
	return factory.CreatePlayer(a.ecs, math.Vec2{X: x, Y: y}, index)
}

func (a *testArena) enemy(typeName string, x, y float64) *donburi.Entry {
	e := factory.CreateEnemy(a.ecs, math.Vec2{X: x, Y: y}, typeName, donburi.Null)
	if e.HasComponent(components.Flyer) {
		components.Cooldowns.Get(e).Clear(components.CooldownFlyerStart)
	}
	return e
}

func (a *testArena) pos(e *donburi.Entry) math.Vec2 {
	p, _ := a.space.Position(e.Entity())
	return p
}

func (a *testArena) setDelta(d time.Duration) {
	if clock, ok := components.Clock.First(a.w); ok {
		components.Clock.Get(clock).Delta = d
	}
}

// tick runs one fixed tick of the combat systems in scene order.
func (a *testArena) tick() {
	UpdateClock(a.ecs)
	UpdateBots(a.ecs)
	UpdatePlayers(a.ecs)
	UpdateEnemies(a.ecs)
	UpdateFlyingEnemies(a.ecs)
	UpdateHurtboxes(a.ecs)
	UpdateHealth(a.ecs)
	UpdateCooldowns(a.ecs)
	UpdateDeaths(a.ecs)
}

func (a *testArena) flush() {
	events.ProcessAllEvents(a.w)
}

func item(t *testing.T, name string) *cfg.ItemDef {
	t.Helper()
	def, ok := cfg.Items.Lookup(name)
	require.True(t, ok, "item %q", name)
	return def
}

// record collects every event of one type delivered by flush.
func record[T any](w donburi.World, et *devents.EventType[T]) *[]T {
	got := &[]T{}
	et.Subscribe(w, func(w donburi.World, ev T) {
		*got = append(*got, ev)
	})
	return got
}

func countHurtboxes(w donburi.World) int {
	n := 0
	components.Hurtbox.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func countPickups(w donburi.World) int {
	n := 0
	components.Pickup.Each(w, func(*donburi.Entry) { n++ })
	return n
}
