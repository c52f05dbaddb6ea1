package components

import "github.com/yohamta/donburi"

// HealthData is a damageable pool counted in quarter units. Once Current
// reaches 0 the pool is terminal and ignores every further call.
type HealthData struct {
	Current int
	Max     int

	// InvulnFrames counts down the window opened by the last hit;
	// InvulnDuration is the window length for this actor type.
	InvulnFrames   int
	InvulnDuration int

	Terminal bool
}

// NewHealth returns a full pool.
func NewHealth(max, invulnDuration int) HealthData {
	return HealthData{
		Current:        max,
		Max:            max,
		InvulnDuration: invulnDuration,
	}
}

func (h *HealthData) IsInvulnerable() bool {
	return h.InvulnFrames > 0
}

// ApplyDamage subtracts amount unless the pool is invulnerable or terminal.
// It returns the amount actually removed and whether this call killed it.
func (h *HealthData) ApplyDamage(amount int) (applied int, died bool) {
	if amount <= 0 || h.Terminal || h.Current <= 0 || h.IsInvulnerable() {
		return 0, false
	}

	before := h.Current
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.InvulnFrames = h.InvulnDuration

	if h.Current == 0 {
		h.Terminal = true
		return before, true
	}
	return before - h.Current, false
}

// Heal adds amount up to Max and returns what was restored.
func (h *HealthData) Heal(amount int) int {
	if amount <= 0 || h.Terminal {
		return 0
	}
	before := h.Current
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

// Tick advances the invulnerability window by one frame.
func (h *HealthData) Tick() {
	if h.InvulnFrames > 0 {
		h.InvulnFrames--
	}
}

var Health = donburi.NewComponentType[HealthData]()
