package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacefold/galaxy/pkg/game"
)

func TestSteerClampsAndCancels(t *testing.T) {
	p := game.NewPlayer(0.1, 36, 18)

	for i := 0; i < 50; i++ {
		p.Steer(true, false, 1)
	}
	assert.Equal(t, -1.0, p.Lateral())

	p.Steer(true, true, 1)
	assert.Equal(t, -1.0, p.Lateral(), "holding both directions cancels out")

	for i := 0; i < 100; i++ {
		p.Steer(false, true, 1)
	}
	assert.Equal(t, 1.0, p.Lateral())
}

func TestJumpLifecycle(t *testing.T) {
	p := game.NewPlayer(0.1, 10, 5)

	require.True(t, p.TryJump())
	assert.True(t, p.Airborne())
	assert.False(t, p.TryJump(), "no double jump while airborne")

	for i := 0; i < 10; i++ {
		p.UpdateTimers(1)
	}
	assert.False(t, p.Airborne(), "jump ends after its duration")
	assert.False(t, p.TryJump(), "still cooling down right after landing")

	for i := 0; i < 5; i++ {
		p.UpdateTimers(1)
	}
	assert.True(t, p.TryJump(), "cooldown elapsed, jump allowed again")
}

func TestPlayerResetClearsState(t *testing.T) {
	p := game.NewPlayer(0.5, 10, 5)
	p.Steer(false, true, 1)
	p.TryJump()

	p.Reset()
	assert.Equal(t, 0.0, p.Lateral())
	assert.False(t, p.Airborne())
	assert.True(t, p.TryJump(), "reset clears cooldown")
}
