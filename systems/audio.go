package systems

import (
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a sound cue for the audio collaborator. e is the entity
// the sound comes from, or donburi.Null for global cues.
func PlaySFX(w donburi.World, sound cfg.SoundID, e donburi.Entity) {
	if sound == cfg.SoundNone {
		return
	}
	events.PlaySound.Publish(w, events.PlaySoundEvent{Sound: sound, Entity: e})
}
