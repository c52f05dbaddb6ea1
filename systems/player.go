package systems

import (
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/shared/gamemath"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers is the combat controller. It consumes the intents the
// input collaborator wrote since the last fixed tick.
func UpdatePlayers(ecs *ecs.ECS) {
	services := factory.ServicesOf(ecs.World)
	if services == nil || services.Query == nil || services.Nav == nil {
		return
	}

	var players []*donburi.Entry
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	for _, e := range players {
		intent := components.Intent.Get(e)
		if isLiving(ecs.World, e.Entity()) {
			updatePlayer(ecs, services, e, intent)
		}
		// Buttons are one-shot; movement is rewritten every frame by input
		*intent = components.IntentData{Move: intent.Move}
	}
}

func updatePlayer(ecs *ecs.ECS, services *components.ServicesData, e *donburi.Entry, intent *components.IntentData) {
	handleMovement(services, e, intent)

	switch {
	case intent.Next:
		CycleNext(ecs.World, e)
	case intent.Previous:
		CyclePrevious(ecs.World, e)
	}

	if intent.Interact {
		TryPickup(ecs, e)
	}
	if intent.Use {
		UseSelected(ecs.World, e)
	}

	if intent.Attack {
		handleAttack(ecs, e, false)
	}
	if intent.Secondary {
		handleAttack(ecs, e, true)
	}
}

func handleMovement(services *components.ServicesData, e *donburi.Entry, intent *components.IntentData) {
	if intent.Move.X == 0 && intent.Move.Y == 0 {
		return
	}
	player := components.Player.Get(e)
	dir := gamemath.Normalize(intent.Move)
	player.Facing = dir

	pos, ok := services.Query.Position(e.Entity())
	if !ok {
		return
	}
	step := cfg.Player.MoveSpeed * cfg.Dt()
	next := gamemath.Add(pos, gamemath.Scale(dir, step))

	// Stay on walkable ground
	if _, ok := services.Query.GroundHeight(next); !ok {
		return
	}
	services.Nav.MoveToward(e.Entity(), next, step)
}

// handleAttack spawns the equipped weapon's hurtbox. Attacking unarmed or
// on cooldown does nothing.
func handleAttack(ecs *ecs.ECS, e *donburi.Entry, secondary bool) {
	inv := components.Inventory.Get(e)
	weapon := inv.Weapon
	if weapon == nil {
		return
	}

	cooldown := components.CooldownAttack
	if secondary {
		cooldown = components.CooldownSecondary
	}
	if !components.Cooldowns.Get(e).TryConsume(cooldown, weapon.CooldownFrames(secondary)) {
		return
	}

	spec := factory.HurtboxSpec{
		Kind:      components.HurtboxMelee,
		Damage:    weapon.AttackDamage(secondary),
		Direction: components.Player.Get(e).Facing,
		LifeTime:  swingFrames(weapon),
		Item:      inv.HeldItem,
	}

	switch weapon.Type {
	case cfg.LightMelee:
		spec.Width, spec.Height = cfg.Combat.LightHurtboxWidth, cfg.Combat.LightHurtboxHeight
	case cfg.HeavyMelee:
		spec.Width, spec.Height = cfg.Combat.HeavyHurtboxWidth, cfg.Combat.HeavyHurtboxHeight
	case cfg.Ranged:
		spec.Kind = components.HurtboxProjectile
		spec.Width, spec.Height = cfg.Combat.ProjectileSize, cfg.Combat.ProjectileSize
		spec.Speed = weapon.ProjectileSpeed
		spec.LifeTime = cfg.Combat.ProjectileLifetime
		spec.Piercing = cfg.Combat.ProjectilePiercing
	}
	spec.Reach = cfg.Player.Radius + spec.Width/2

	factory.CreateHurtbox(ecs, e, spec)
	PlaySFX(ecs.World, cfg.SoundSwing, e.Entity())
}

// swingFrames scales the melee active window by the weapon's swing speed.
func swingFrames(weapon *cfg.WeaponDef) int {
	if weapon.SwingSpeed <= 0 {
		return cfg.Combat.HurtboxLifetime
	}
	frames := int(float64(cfg.Combat.HurtboxLifetime) / weapon.SwingSpeed)
	if frames < 1 {
		frames = 1
	}
	return frames
}
