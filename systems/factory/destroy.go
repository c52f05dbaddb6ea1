package factory

import (
	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
)

// DestroyActor removes e with its body and every hurtbox it owns. Timers
// live on the entity and go with it.
func DestroyActor(w donburi.World, e donburi.Entity) {
	if !w.Valid(e) {
		return
	}

	var owned []donburi.Entity
	tags.Hurtbox.Each(w, func(entry *donburi.Entry) {
		if components.Hurtbox.Get(entry).Owner == e {
			owned = append(owned, entry.Entity())
		}
	})
	for _, h := range owned {
		RetireHurtbox(w, h)
	}

	if space := SpaceOf(w); space != nil {
		space.Remove(e)
	}
	w.Remove(e)
}
