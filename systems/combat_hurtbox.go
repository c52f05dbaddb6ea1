package systems

import (
	"sort"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/shared/gamemath"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateHurtboxes moves every live attack volume, resolves it against
// hittable bodies and retires it on hit or expiry. It is the only place
// attacks land.
func UpdateHurtboxes(ecs *ecs.ECS) {
	services := factory.ServicesOf(ecs.World)
	if services == nil {
		return
	}

	// Resolving can retire hurtboxes, so iterate over a snapshot
	var hurtboxes []donburi.Entity
	tags.Hurtbox.Each(ecs.World, func(e *donburi.Entry) {
		hurtboxes = append(hurtboxes, e.Entity())
	})

	for _, h := range hurtboxes {
		if !ecs.World.Valid(h) {
			continue
		}
		updateHurtbox(ecs.World, services, ecs.World.Entry(h))
	}
}

func updateHurtbox(w donburi.World, services *components.ServicesData, entry *donburi.Entry) {
	hurtbox := components.Hurtbox.Get(entry)

	// Orphaned: the owner is gone
	if !w.Valid(hurtbox.Owner) {
		factory.RetireHurtbox(w, entry.Entity())
		return
	}
	owner := w.Entry(hurtbox.Owner)
	if hurtbox.Kind == components.HurtboxMelee && owner.HasComponent(components.Death) {
		factory.RetireHurtbox(w, entry.Entity())
		return
	}

	center, ok := moveHurtbox(w, services, entry, hurtbox, owner)
	if !ok {
		factory.RetireHurtbox(w, entry.Entity())
		return
	}

	half := math.Vec2{X: hurtbox.Width / 2, Y: hurtbox.Height / 2}
	candidates := services.Query.OverlapRect(gamemath.Sub(center, half), gamemath.Add(center, half), tags.ResolvHittable)
	sortByDistance(services, center, candidates)

	for _, target := range candidates {
		if !shouldHitTarget(w, hurtbox, target) {
			continue
		}

		hurtbox.HitEntities[target] = true
		applied := ApplyDamage(w, target, hurtbox.Damage, hurtbox.Owner)

		// Durability wears once per attack, on the first hit that lands
		if applied > 0 && hurtbox.Item != 0 && !hurtbox.Landed {
			hurtbox.Landed = true
			RecordWeaponUse(w, hurtbox.Owner, hurtbox.Item)
		}

		if !hurtbox.Piercing {
			factory.RetireHurtbox(w, entry.Entity())
			return
		}
	}

	hurtbox.LifeTime--
	if hurtbox.LifeTime <= 0 {
		factory.RetireHurtbox(w, entry.Entity())
	}
}

// moveHurtbox keeps melee volumes in front of their owner and advances
// projectiles. It reports false once a projectile leaves the arena.
func moveHurtbox(w donburi.World, services *components.ServicesData, entry *donburi.Entry, hurtbox *components.HurtboxData, owner *donburi.Entry) (math.Vec2, bool) {
	pos, ok := services.Query.Position(entry.Entity())
	if !ok {
		return math.Vec2{}, false
	}

	switch hurtbox.Kind {
	case components.HurtboxProjectile:
		pos = gamemath.Add(pos, gamemath.Scale(hurtbox.Direction, hurtbox.Speed*cfg.Dt()))
		if space := factory.SpaceOf(w); space != nil {
			width, height := space.Size()
			if pos.X < 0 || pos.Y < 0 || pos.X > width || pos.Y > height {
				return pos, false
			}
		}
	default:
		ownerPos, ok := services.Query.Position(owner.Entity())
		if !ok {
			return pos, false
		}
		if facing, ok := facingOf(owner); ok {
			hurtbox.Direction = facing
		}
		pos = factory.HurtboxCenter(ownerPos, hurtbox.Direction, hurtbox.Reach)
	}

	services.Nav.Place(entry.Entity(), pos)
	return pos, true
}

func shouldHitTarget(w donburi.World, hurtbox *components.HurtboxData, target donburi.Entity) bool {
	// Don't hit the owner of the hurtbox
	if target == hurtbox.Owner {
		return false
	}

	// Don't hit if already hit this target
	if hurtbox.HitEntities[target] {
		return false
	}

	if !isLiving(w, target) {
		return false
	}

	entry := w.Entry(target)
	if faction := factory.FactionOf(entry); faction != components.FactionNone && faction == hurtbox.Faction {
		return false
	}

	// Invulnerable targets don't consume the swing
	return !components.Health.Get(entry).IsInvulnerable()
}

func facingOf(e *donburi.Entry) (math.Vec2, bool) {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Facing, true
	case e.HasComponent(components.Enemy):
		return components.Enemy.Get(e).Facing, true
	}
	return math.Vec2{}, false
}

// sortByDistance orders candidates nearest first, ties by entity.
func sortByDistance(services *components.ServicesData, from math.Vec2, es []donburi.Entity) {
	dist := make(map[donburi.Entity]float64, len(es))
	for _, e := range es {
		if p, ok := services.Query.Position(e); ok {
			dist[e] = gamemath.Distance(from, p)
		}
	}
	sort.Slice(es, func(i, j int) bool {
		if dist[es[i]] != dist[es[j]] {
			return dist[es[i]] < dist[es[j]]
		}
		return es[i] < es[j]
	})
}
