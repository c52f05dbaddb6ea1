package systems

import (
	"math"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the camera toward the standing players' centroid and
// keeps the arena filling the screen where it is large enough to.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	space := factory.SpaceOf(e.World)
	if space == nil {
		return
	}

	var sum dmath.Vec2
	n := 0
	components.Player.Each(e.World, func(p *donburi.Entry) {
		if components.Player.Get(p).Down {
			return
		}
		if pos, ok := space.Position(p.Entity()); ok {
			sum.X += pos.X
			sum.Y += pos.Y
			n++
		}
	})
	if n == 0 {
		return // everyone is down, hold the last framing
	}

	scale := space.Scale()
	targetX := sum.X / float64(n) * scale
	targetY := sum.Y / float64(n) * scale

	width, height := space.Size()
	targetX = clampAxis(targetX, float64(cfg.Viewer.Width), width*scale)
	targetY = clampAxis(targetY, float64(cfg.Viewer.Height), height*scale)

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// clampAxis keeps a camera coordinate inside the level on one axis. A level
// smaller than the screen is centered instead.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}

// updateScreenShake sets this frame's offset and decrements the duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Offset = dmath.Vec2{}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	camera.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake, keeping a stronger one already running.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
		}
		return
	}
	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// ShakeOnPlayerDamage subscribes the camera to player hits.
func ShakeOnPlayerDamage(w donburi.World) {
	events.Damaged.Subscribe(w, func(w donburi.World, ev events.DamagedEvent) {
		if !w.Valid(ev.Entity) || !w.Entry(ev.Entity).HasComponent(components.Player) {
			return
		}
		TriggerScreenShake(w, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeFrames)
	})
}

// cameraView returns the translation from space pixels to screen pixels.
func cameraView(w donburi.World) (float64, float64) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(entry)
	return float64(cfg.Viewer.Width)/2 - camera.Position.X + camera.Offset.X,
		float64(cfg.Viewer.Height)/2 - camera.Position.Y + camera.Offset.Y
}
