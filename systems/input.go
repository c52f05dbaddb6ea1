package systems

import (
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// BindInput lets a device drive player. A nil gamepad means the keyboard.
func BindInput(player *donburi.Entry, gamepad *ebiten.GamepadID) {
	if player.HasComponent(components.Bot) {
		donburi.Remove[components.BotData](player, components.Bot)
	}
	if !player.HasComponent(components.PlayerInput) {
		player.AddComponent(components.PlayerInput)
	}
	components.PlayerInput.SetValue(player, components.PlayerInputData{BoundGamepadID: gamepad})
}

// UpdateInput polls every bound device and turns it into player intents.
// Must run BEFORE UpdatePlayers.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.PreviousInput = input.CurrentInput
		input.CurrentInput = [cfg.ActionCount]bool{}

		if input.BoundGamepadID != nil {
			pollGamepadForPlayer(input, *input.BoundGamepadID)
		} else {
			pollKeyboardForPlayer(input)
		}
		applyInput(input, components.Intent.Get(entry))
	})
}

// applyInput writes held directions and newly pressed buttons. Buttons are
// OR-ed in so a press survives until the next fixed tick consumes it.
func applyInput(input *components.PlayerInputData, intent *components.IntentData) {
	var move math.Vec2
	if input.CurrentInput[cfg.ActionMoveLeft] {
		move.X--
	}
	if input.CurrentInput[cfg.ActionMoveRight] {
		move.X++
	}
	if input.CurrentInput[cfg.ActionMoveUp] {
		move.Y--
	}
	if input.CurrentInput[cfg.ActionMoveDown] {
		move.Y++
	}
	intent.Move = move

	intent.Attack = intent.Attack || input.JustPressed(cfg.ActionAttack)
	intent.Secondary = intent.Secondary || input.JustPressed(cfg.ActionSecondary)
	intent.Next = intent.Next || input.JustPressed(cfg.ActionNextItem)
	intent.Previous = intent.Previous || input.JustPressed(cfg.ActionPreviousItem)
	intent.Interact = intent.Interact || input.JustPressed(cfg.ActionInteract)
	intent.Use = intent.Use || input.JustPressed(cfg.ActionUse)
}

// pollGamepadForPlayer reads input from a specific gamepad into PlayerInputData.
func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, binding := range cfg.Input.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		input.CurrentInput[cfg.ActionMoveLeft] = true
	}
	if horizontal > deadzone {
		input.CurrentInput[cfg.ActionMoveRight] = true
	}
	if vertical < -deadzone {
		input.CurrentInput[cfg.ActionMoveUp] = true
	}
	if vertical > deadzone {
		input.CurrentInput[cfg.ActionMoveDown] = true
	}
}

func pollKeyboardForPlayer(input *components.PlayerInputData) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
			}
		}
	}
}
