package systems

import (
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth advances every invulnerability window by one frame.
func UpdateHealth(ecs *ecs.ECS) {
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		components.Health.Get(e).Tick()
	})
}

// ApplyDamage hurts target on behalf of source and returns the amount
// removed. Invulnerable, terminal and unknown targets take nothing.
func ApplyDamage(w donburi.World, target donburi.Entity, amount int, source donburi.Entity) int {
	if !w.Valid(target) {
		return 0
	}
	entry := w.Entry(target)
	if !entry.HasComponent(components.Health) {
		return 0
	}

	health := components.Health.Get(entry)
	applied, died := health.ApplyDamage(amount)
	if applied == 0 {
		return 0
	}

	events.HealthChanged.Publish(w, events.HealthChangedEvent{Entity: target, Current: health.Current, Max: health.Max})
	events.Damaged.Publish(w, events.DamagedEvent{Entity: target, Source: source, Amount: applied})

	if entry.HasComponent(tags.Player) {
		PlaySFX(w, cfg.SoundHurt, target)
	} else {
		PlaySFX(w, cfg.SoundHit, target)
	}

	if died {
		startDeath(w, entry, source)
		return applied
	}

	if entry.HasComponent(components.Enemy) {
		startHitReaction(w, entry, source)
	}
	return applied
}

// Heal restores up to amount and returns what was restored.
func Heal(w donburi.World, target donburi.Entity, amount int) int {
	if !w.Valid(target) {
		return 0
	}
	entry := w.Entry(target)
	if !entry.HasComponent(components.Health) {
		return 0
	}

	health := components.Health.Get(entry)
	restored := health.Heal(amount)
	if restored == 0 {
		return 0
	}

	events.HealthChanged.Publish(w, events.HealthChangedEvent{Entity: target, Current: health.Current, Max: health.Max})
	events.Healed.Publish(w, events.HealedEvent{Entity: target, Amount: restored})
	if entry.HasComponent(tags.Player) {
		PlaySFX(w, cfg.SoundHeal, target)
	}
	return restored
}

// startHitReaction sets the aggro memory of an enemy that was just hit.
func startHitReaction(w donburi.World, entry *donburi.Entry, source donburi.Entity) {
	enemy := components.Enemy.Get(entry)
	components.Cooldowns.Get(entry).Start(components.CooldownHitReaction, enemy.TypeConfig.HitReactionFrames)

	if pos, ok := positionOf(w, source); ok {
		enemy.LastAggressorPos = pos
	}
}

func startDeath(w donburi.World, entry *donburi.Entry, source donburi.Entity) {
	events.Died.Publish(w, events.DiedEvent{Entity: entry.Entity(), Source: source})
	PlaySFX(w, cfg.SoundDeath, entry.Entity())

	frames := cfg.Combat.EnemyDeathFrames
	switch {
	case entry.HasComponent(components.Enemy):
		enemy := components.Enemy.Get(entry)
		if enemy.ActiveHurtbox != donburi.Null {
			factory.RetireHurtbox(w, enemy.ActiveHurtbox)
		}
		enemy.Target = donburi.Null
		setState(entry, cfg.StateDead)
	case entry.HasComponent(components.Player):
		frames = cfg.Combat.PlayerDeathFrames
		components.Player.Get(entry).Down = true
	}

	donburi.Add(entry, components.Death, &components.DeathData{Timer: frames})

	if entry.HasComponent(components.Player) {
		checkPlayersDown(w)
	}
}

// checkPlayersDown publishes PlayersDown once when no player is left standing.
func checkPlayersDown(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.PlayersDown {
		return
	}

	standing, total := 0, 0
	components.Player.Each(w, func(e *donburi.Entry) {
		total++
		if !components.Player.Get(e).Down {
			standing++
		}
	})
	if total == 0 || standing > 0 {
		return
	}

	level.PlayersDown = true
	wave := 0
	if coord, ok := components.WaveCoordinator.First(w); ok {
		wave = components.WaveCoordinator.Get(coord).Wave
	}
	events.PlayersDown.Publish(w, events.PlayersDownEvent{Wave: wave})
}
