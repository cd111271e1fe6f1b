package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacefold/galaxy/pkg/game"
)

func TestAdvanceAccumulatesPosition(t *testing.T) {
	s := game.NewScroll(1.0, 0.08, 100)
	for i := 0; i < 100; i++ {
		s.Advance(1.0)
	}
	assert.Equal(t, 100.0, s.Position())
	assert.Equal(t, 1.0, s.Speed(), "speed must not change without score events")
	assert.Equal(t, 0, s.Level())
}

func TestPositionMonotonicallyNonDecreasing(t *testing.T) {
	s := game.NewScroll(0.8, 0.08, 100)
	prev := s.Position()
	for i := 0; i < 500; i++ {
		s.Advance(1.0)
		if i%50 == 0 {
			s.RecordScoreEvent(30)
		}
		assert.GreaterOrEqual(t, s.Position(), prev)
		prev = s.Position()
	}
}

func TestLevelCrossingAppliesSpeedOnce(t *testing.T) {
	t.Run("single crossing in one event", func(t *testing.T) {
		s := game.NewScroll(0.8, 0.08, 100)
		crossed := s.RecordScoreEvent(100)
		assert.Equal(t, 1, crossed)
		assert.Equal(t, 1, s.Level())
		assert.InDelta(t, 0.8*1.08, s.Speed(), 1e-12)
		assert.Equal(t, 1, s.ThemeIndex())
	})

	t.Run("double crossing in one event applies the factor twice", func(t *testing.T) {
		s := game.NewScroll(1.0, 0.08, 100)
		s.RecordScoreEvent(95)
		assert.Equal(t, 0, s.Level())
		assert.Equal(t, 1.0, s.Speed())

		crossed := s.RecordScoreEvent(110) // 95 -> 205 crosses 100 and 200
		assert.Equal(t, 2, crossed)
		assert.Equal(t, 2, s.Level())
		assert.InDelta(t, 1.08*1.08, s.Speed(), 1e-12)
	})

	t.Run("increment granularity does not matter", func(t *testing.T) {
		coarse := game.NewScroll(1.0, 0.08, 100)
		coarse.RecordScoreEvent(500)

		fine := game.NewScroll(1.0, 0.08, 100)
		for i := 0; i < 500; i++ {
			fine.RecordScoreEvent(1)
		}

		assert.Equal(t, coarse.Level(), fine.Level())
		assert.InDelta(t, coarse.Speed(), fine.Speed(), 1e-9)
	})
}

func TestThemeIndexCyclesFourThemes(t *testing.T) {
	s := game.NewScroll(1.0, 0.08, 100)
	for level := 0; level < 12; level++ {
		assert.Equal(t, level%4, s.ThemeIndex(), "level %d", s.Level())
		s.RecordScoreEvent(100)
	}
}

func TestResetRestoresInitialValues(t *testing.T) {
	s := game.NewScroll(0.8, 0.08, 100)
	for i := 0; i < 50; i++ {
		s.Advance(1.0)
	}
	s.RecordScoreEvent(250)
	require.NotEqual(t, 0.8, s.Speed())

	s.Reset()
	assert.Equal(t, 0.0, s.Position())
	assert.Equal(t, 0.8, s.Speed())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Level())
}

func TestSetInitialSpeedTakesEffectOnReset(t *testing.T) {
	s := game.NewScroll(0.8, 0.08, 100)
	s.SetInitialSpeed(1.1)
	assert.Equal(t, 0.8, s.Speed(), "speed changes only on reset")
	s.Reset()
	assert.Equal(t, 1.1, s.Speed())
}
