package systems

import (
	"image/color"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// debugView maps space pixels to the screen through the camera.
type debugView struct {
	screen *ebiten.Image
	ox, oy float64
}

func (v debugView) fill(obj *resolv.Object, lift float64, c color.Color) {
	vector.FillRect(v.screen, float32(obj.X+v.ox), float32(obj.Y-lift+v.oy), float32(obj.W), float32(obj.H), c, false)
}

func (v debugView) stroke(obj *resolv.Object, lift float64, width float32, c color.Color) {
	vector.StrokeRect(v.screen, float32(obj.X+v.ox), float32(obj.Y-lift+v.oy), float32(obj.W), float32(obj.H), width, c, false)
}

// DrawDebug renders the arena top-down straight from the collision space:
// floors shaded by height, bodies outlined by kind, hurtboxes filled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	space := factory.SpaceOf(ecs.World)
	if space == nil {
		return
	}
	screen.Fill(color.Black)

	ox, oy := cameraView(ecs.World)
	v := debugView{screen: screen, ox: ox, oy: oy}

	for _, floor := range space.Floors() {
		height, _ := floor.Data.(float64)
		c := cfg.Floor
		shade := uint8(min(height*24, 120))
		c.R, c.G, c.B = c.R+shade, c.G+shade, c.B+shade
		v.fill(floor, 0, c)
	}

	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		if obj, ok := space.Object(e.Entity()); ok {
			v.stroke(obj, 0, 1, cfg.Yellow)
		}
	})

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		obj, ok := space.Object(e.Entity())
		if !ok {
			return
		}
		enemy := components.Enemy.Get(e)
		lift := 0.0
		if e.HasComponent(tags.FlyingEnemy) {
			lift = components.Flyer.Get(e).Altitude * space.Scale()
		}
		c := enemy.TypeConfig.TintColor
		if e.HasComponent(components.Death) {
			c = cfg.White
		}
		v.drawBody(obj, lift, c)
		v.drawHealthBar(obj, lift, components.Health.Get(e))
	})

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj, ok := space.Object(e.Entity())
		if !ok {
			return
		}
		c := cfg.Blue
		if components.Player.Get(e).Down {
			c = cfg.White
		}
		v.drawBody(obj, 0, c)
		v.drawHealthBar(obj, 0, components.Health.Get(e))
	})

	components.Hurtbox.Each(ecs.World, func(e *donburi.Entry) {
		obj, ok := space.Object(e.Entity())
		if !ok {
			return
		}
		c := cfg.Magenta
		if components.Hurtbox.Get(e).Faction == components.FactionPlayers {
			c = cfg.Green
		}
		c.A = 160
		v.fill(obj, 0, c)
	})
}

func (v debugView) drawBody(obj *resolv.Object, lift float64, c color.RGBA) {
	if lift > 0 {
		// Shadow on the ground
		v.stroke(obj, 0, 1, color.RGBA{A: 120})
	}
	v.stroke(obj, lift, 2, c)
}

func (v debugView) drawHealthBar(obj *resolv.Object, lift float64, health *components.HealthData) {
	if health.Max <= 0 {
		return
	}
	x, y := float32(obj.X+v.ox), float32(obj.Y-lift+v.oy)-4
	w := float32(obj.W)
	vector.FillRect(v.screen, x, y, w, 2, cfg.Red, false)
	vector.FillRect(v.screen, x, y, w*float32(health.Current)/float32(health.Max), 2, cfg.Green, false)
}
