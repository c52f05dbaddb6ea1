package components

import "github.com/yohamta/donburi"

// CooldownID names an entry in an actor's cooldown table.
type CooldownID int

const (
	CooldownAttack CooldownID = iota
	CooldownSecondary
	CooldownHitReaction
	CooldownFlyerStart
	cooldownCount
)

// CooldownData is a per-actor timer table counted in frames. Nothing
// blocks on it; callers poll Ready or TryConsume each tick.
type CooldownData struct {
	remaining [cooldownCount]int
}

// TryConsume reports whether id is available and, if so, starts it for
// frames ticks.
func (c *CooldownData) TryConsume(id CooldownID, frames int) bool {
	if c.remaining[id] > 0 {
		return false
	}
	c.remaining[id] = frames
	return true
}

func (c *CooldownData) Ready(id CooldownID) bool {
	return c.remaining[id] <= 0
}

// Active is the inverse of Ready.
func (c *CooldownData) Active(id CooldownID) bool {
	return c.remaining[id] > 0
}

func (c *CooldownData) Remaining(id CooldownID) int {
	return c.remaining[id]
}

// Start (re)starts id regardless of its current state.
func (c *CooldownData) Start(id CooldownID, frames int) {
	c.remaining[id] = frames
}

func (c *CooldownData) Clear(id CooldownID) {
	c.remaining[id] = 0
}

// Tick decrements every running timer.
func (c *CooldownData) Tick() {
	for i := range c.remaining {
		if c.remaining[i] > 0 {
			c.remaining[i]--
		}
	}
}

var Cooldowns = donburi.NewComponentType[CooldownData]()
