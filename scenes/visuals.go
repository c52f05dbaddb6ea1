package scenes

import (
	"log"

	"github.com/automoto/arenacore/components"
	"github.com/yohamta/donburi"
)

// LogVisuals stands in for a renderer's held-item visuals: it hands out
// handles and logs what would be shown.
type LogVisuals struct {
	next  components.VisualHandle
	live  map[components.VisualHandle]string
	Quiet bool
}

func NewLogVisuals() *LogVisuals {
	return &LogVisuals{live: make(map[components.VisualHandle]string)}
}

func (v *LogVisuals) Spawn(owner donburi.Entity, item *components.ItemInstance) components.VisualHandle {
	v.next++
	v.live[v.next] = item.Def.Name
	if !v.Quiet {
		log.Printf("[inventory] %v holds %s", owner, item.Def.Name)
	}
	return v.next
}

func (v *LogVisuals) Release(h components.VisualHandle) {
	delete(v.live, h)
}

// Live returns how many visuals are currently shown.
func (v *LogVisuals) Live() int {
	return len(v.live)
}
