package factory

import (
	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/shared/gamemath"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// HurtboxSpec describes one attack volume.
type HurtboxSpec struct {
	Kind      components.HurtboxKind
	Damage    int
	Direction math.Vec2
	Speed     float64
	Reach     float64
	Width     float64
	Height    float64
	Piercing  bool
	LifeTime  int
	Item      uint64
}

// FactionOf reports which side an actor fights for.
func FactionOf(e *donburi.Entry) components.Faction {
	switch {
	case e.HasComponent(components.Player):
		return components.FactionPlayers
	case e.HasComponent(components.Enemy):
		return components.FactionEnemies
	default:
		return components.FactionNone
	}
}

// HurtboxCenter is where a hurtbox sits relative to its owner's center.
func HurtboxCenter(ownerPos, direction math.Vec2, reach float64) math.Vec2 {
	return gamemath.Add(ownerPos, gamemath.Scale(gamemath.Normalize(direction), reach))
}

// CreateHurtbox spawns an attack volume in front of owner. Melee boxes
// follow the owner; projectiles travel along Direction.
func CreateHurtbox(ecs *ecs.ECS, owner *donburi.Entry, spec HurtboxSpec) *donburi.Entry {
	space := SpaceOf(ecs.World)
	ownerPos, _ := space.Position(owner.Entity())

	hurtbox := archetypes.Hurtbox.Spawn(ecs)

	obj := space.AddBody(hurtbox.Entity(), HurtboxCenter(ownerPos, spec.Direction, spec.Reach),
		spec.Width, spec.Height, tags.ResolvHurtbox)
	components.Object.SetValue(hurtbox, components.ObjectData{Object: obj})

	components.Hurtbox.SetValue(hurtbox, components.HurtboxData{
		Owner:       owner.Entity(),
		Faction:     FactionOf(owner),
		Kind:        spec.Kind,
		Damage:      spec.Damage,
		Direction:   gamemath.Normalize(spec.Direction),
		Speed:       spec.Speed,
		Reach:       spec.Reach,
		Width:       spec.Width,
		Height:      spec.Height,
		Piercing:    spec.Piercing,
		LifeTime:    spec.LifeTime,
		HitEntities: make(map[donburi.Entity]bool),
		Item:        spec.Item,
	})

	if owner.HasComponent(components.Enemy) && spec.Kind == components.HurtboxMelee {
		components.Enemy.Get(owner).ActiveHurtbox = hurtbox.Entity()
	}

	return hurtbox
}

// RetireHurtbox removes a hurtbox and clears its owner's reference to it.
func RetireHurtbox(w donburi.World, e donburi.Entity) {
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	hurtbox := components.Hurtbox.Get(entry)

	if w.Valid(hurtbox.Owner) {
		owner := w.Entry(hurtbox.Owner)
		if owner.HasComponent(components.Enemy) {
			enemy := components.Enemy.Get(owner)
			if enemy.ActiveHurtbox == e {
				enemy.ActiveHurtbox = donburi.Null
			}
		}
	}

	if space := SpaceOf(w); space != nil {
		space.Remove(e)
	}
	w.Remove(e)
}
