package systems

import (
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/shared/gamemath"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// AttachBot hands player to the autopilot.
func AttachBot(player *donburi.Entry, difficulty cfg.BotDifficulty) {
	if player.HasComponent(components.PlayerInput) {
		donburi.Remove[components.PlayerInputData](player, components.PlayerInput)
	}
	if !player.HasComponent(components.Bot) {
		player.AddComponent(components.Bot)
	}
	components.Bot.SetValue(player, components.BotData{Difficulty: difficulty, Target: donburi.Null})
}

// UpdateBots writes intents for autopilot players. Must run BEFORE
// UpdatePlayers.
func UpdateBots(ecs *ecs.ECS) {
	w := ecs.World
	services := factory.ServicesOf(w)
	if services == nil || services.Query == nil {
		return
	}

	components.Bot.Each(w, func(entry *donburi.Entry) {
		if !isLiving(w, entry.Entity()) {
			return
		}
		updateBotAI(w, services, entry)
	})
}

func updateBotAI(w donburi.World, services *components.ServicesData, entry *donburi.Entry) {
	bot := components.Bot.Get(entry)
	intent := components.Intent.Get(entry)
	difficulty := cfg.Bot.Difficulties[bot.Difficulty]

	pos, ok := services.Query.Position(entry.Entity())
	if !ok {
		return
	}

	health := components.Health.Get(entry)
	inv := components.Inventory.Get(entry)
	if float64(health.Current) < float64(health.Max)*difficulty.RetreatThreshold {
		if item := inv.SelectedItem(); item != nil && item.Def.RestoresHealth() {
			intent.Use = true
		}
	}

	// Reaction delay: only re-plan every few frames
	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	} else {
		bot.DecisionTimer = difficulty.ReactionDelay
		decideBotGoal(w, services, bot, intent, inv, pos, difficulty)
	}

	switch bot.Goal {
	case components.BotFight:
		if !isLiving(w, bot.Target) {
			bot.Goal, bot.Target = components.BotIdle, donburi.Null
			intent.Move = math.Vec2{}
			return
		}
		targetPos, _ := services.Query.Position(bot.Target)
		toTarget := gamemath.Sub(targetPos, pos)
		distance := gamemath.Distance(pos, targetPos)

		// Keep stepping in until close; the step also turns us to face it
		intent.Move = math.Vec2{}
		if distance > difficulty.AttackRange*0.6 {
			intent.Move = toTarget
		}
		if distance <= difficulty.AttackRange {
			intent.Attack = true
		}
	case components.BotLoot:
		if !entryValid(w, bot.Target) {
			bot.Goal, bot.Target = components.BotIdle, donburi.Null
			intent.Move = math.Vec2{}
			return
		}
		targetPos, _ := services.Query.Position(bot.Target)
		if gamemath.Distance(pos, targetPos) <= cfg.Player.InteractRange {
			intent.Move = math.Vec2{}
			intent.Interact = true
			return
		}
		intent.Move = gamemath.Sub(targetPos, pos)
	default:
		intent.Move = math.Vec2{}
	}
}

// decideBotGoal arms up first, then fights the nearest enemy in range,
// then collects loot.
func decideBotGoal(w donburi.World, services *components.ServicesData, bot *components.BotData, intent *components.IntentData, inv *components.InventoryData, pos math.Vec2, difficulty cfg.BotDifficultyConfig) {
	if inv.Weapon == nil {
		if hasWeapon(inv) {
			intent.Next = true
		} else if pickup, d, ok := services.Query.Nearest(pos, tags.ResolvPickup, nil); ok && d <= difficulty.LootRange {
			bot.Goal, bot.Target = components.BotLoot, pickup
			return
		}
	}

	if inv.Weapon != nil {
		if enemy, d, ok := services.Query.Nearest(pos, tags.ResolvEnemy, livingFilter(w)); ok && d <= difficulty.ChaseRange {
			bot.Goal, bot.Target = components.BotFight, enemy
			return
		}
	}

	if pickup, d, ok := services.Query.Nearest(pos, tags.ResolvPickup, nil); ok && d <= difficulty.LootRange && inv.Count() < len(inv.Slots) {
		bot.Goal, bot.Target = components.BotLoot, pickup
		return
	}
	bot.Goal, bot.Target = components.BotIdle, donburi.Null
}

func hasWeapon(inv *components.InventoryData) bool {
	for _, item := range inv.Slots {
		if item != nil && item.Def.Kind == cfg.ItemWeapon && item.Def.Weapon != nil {
			return true
		}
	}
	return false
}

func entryValid(w donburi.World, e donburi.Entity) bool {
	return e != donburi.Null && w.Valid(e)
}
