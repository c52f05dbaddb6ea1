package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCooldownTryConsume(t *testing.T) {
	var c CooldownData

	assert.True(t, c.TryConsume(CooldownAttack, 3))
	assert.False(t, c.TryConsume(CooldownAttack, 3), "still counting down")
	assert.True(t, c.Ready(CooldownSecondary), "timers are independent")

	c.Tick()
	c.Tick()
	assert.Equal(t, 1, c.Remaining(CooldownAttack))
	assert.True(t, c.Active(CooldownAttack))

	c.Tick()
	assert.True(t, c.Ready(CooldownAttack))
	assert.True(t, c.TryConsume(CooldownAttack, 3))
}

func TestCooldownStartAndClear(t *testing.T) {
	var c CooldownData
	c.Start(CooldownHitReaction, 10)
	c.Start(CooldownHitReaction, 4)
	assert.Equal(t, 4, c.Remaining(CooldownHitReaction))

	c.Clear(CooldownHitReaction)
	assert.True(t, c.Ready(CooldownHitReaction))

	c.Tick()
	assert.Zero(t, c.Remaining(CooldownHitReaction), "ticking an idle timer stays at zero")
}

func TestCooldownZeroFramesIsImmediatelyReady(t *testing.T) {
	var c CooldownData
	assert.True(t, c.TryConsume(CooldownAttack, 0))
	assert.True(t, c.TryConsume(CooldownAttack, 0))
}
