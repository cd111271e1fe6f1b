package game

import (
	"math"

	"github.com/spacefold/galaxy/pkg/road"
)

// Scroll tracks forward position, speed, score and difficulty level for one
// session. Position and speed are only mutated through Advance,
// RecordScoreEvent and Reset, which keeps the monotonicity invariants in
// one place.
type Scroll struct {
	position float64
	speed    float64
	score    int
	level    int

	initialSpeed   float64
	growthPerLevel float64
	unitsPerLevel  int
}

// NewScroll creates scroll state at the start of a run.
func NewScroll(initialSpeed, growthPerLevel float64, unitsPerLevel int) *Scroll {
	if unitsPerLevel <= 0 {
		unitsPerLevel = 100
	}
	return &Scroll{
		speed:          initialSpeed,
		initialSpeed:   initialSpeed,
		growthPerLevel: growthPerLevel,
		unitsPerLevel:  unitsPerLevel,
	}
}

// Advance moves the scroll position forward by speed*dt. dt is measured in
// ticks so a full-rate frame advances exactly one speed unit.
func (s *Scroll) Advance(dt float64) {
	s.position += s.speed * dt
}

// RecordScoreEvent adds delta to the score and applies the per-level speed
// multiplier once for every level boundary the score crossed, regardless of
// how many boundaries a single event jumps. It returns the number of levels
// crossed.
func (s *Scroll) RecordScoreEvent(delta int) int {
	s.score += delta
	newLevel := s.score / s.unitsPerLevel
	crossed := newLevel - s.level
	for i := 0; i < crossed; i++ {
		s.speed *= 1 + s.growthPerLevel
	}
	if crossed > 0 {
		s.level = newLevel
	}
	return crossed
}

// SetInitialSpeed changes the speed the scroll resets to. Takes effect on
// the next Reset.
func (s *Scroll) SetInitialSpeed(v float64) {
	s.initialSpeed = v
}

// Reset returns the scroll to its initial values for a new game.
func (s *Scroll) Reset() {
	s.position = 0
	s.speed = s.initialSpeed
	s.score = 0
	s.level = 0
}

func (s *Scroll) Position() float64 { return s.position }
func (s *Scroll) Speed() float64    { return s.speed }
func (s *Scroll) Score() int        { return s.score }
func (s *Scroll) Level() int        { return s.level }

// ThemeIndex returns the color theme for the current level.
func (s *Scroll) ThemeIndex() int {
	return s.level % road.ThemeCount
}

// Corrupted reports unrecoverable state: negative speed or a position that
// is no longer a number.
func (s *Scroll) Corrupted() bool {
	return s.speed < 0 || math.IsNaN(s.position) || math.IsInf(s.position, 0)
}
