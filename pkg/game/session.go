package game

import (
	"log"
	"math"

	"github.com/spacefold/galaxy/pkg/config"
	"github.com/spacefold/galaxy/pkg/road"
)

// State is the session's top-level state machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// Persistence is the high-score collaborator. The session saves only on the
// GAME_OVER transition when the score beats the loaded value.
type Persistence interface {
	Load() (int, error)
	Save(value int) error
}

// Session orchestrates one game: input, scroll advance, generation refill,
// collision, and the menu/playing/paused/game-over transitions. It is plain
// simulation state with a synchronous Tick, independent of any windowing or
// event loop.
type Session struct {
	cfg config.Config

	state   State
	scroll  *Scroll
	player  *Player
	gen     *road.Generator
	persist Persistence

	difficulty int // Index into cfg.Difficulties
	highScore  int

	scoredAt       float64 // Position at which the last score point was awarded
	collisionArmed bool
	lastHit        Verdict
	hitObstacle    road.Obstacle
	hitResolved    bool

	listeners []Listener
}

// NewSession wires a session from config, a seeded generator and a
// persistence collaborator. The high score is loaded once up front; a load
// failure degrades to 0 with a warning.
func NewSession(cfg config.Config, gen *road.Generator, persist Persistence) *Session {
	diff := defaultDifficulty(cfg)
	d := cfg.Difficulties[diff]
	s := &Session{
		cfg:        cfg,
		state:      StateMenu,
		scroll:     NewScroll(d.InitialSpeed, cfg.Rules.SpeedGrowthPerLevel, cfg.Rules.ScoreUnitsPerLevel),
		player:     NewPlayer(d.SteerRate, cfg.Rules.JumpDuration, cfg.Rules.JumpCooldown),
		gen:        gen,
		persist:    persist,
		difficulty: diff,
	}
	best, err := persist.Load()
	if err != nil {
		log.Printf("high score unavailable, starting from 0: %v", err)
		s.emit(EventPersistenceWarning)
	}
	s.highScore = best
	return s
}

func defaultDifficulty(cfg config.Config) int {
	for i, d := range cfg.Difficulties {
		if d.Name == "Normal" {
			return i
		}
	}
	return 0
}

// AddListener registers an event listener.
func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}

// Tick advances the session by dt ticks using a read-only input snapshot.
// Simulation only runs while playing; the other states just handle their
// transition inputs. A panic inside a tick is logged and the frame skipped
// so the loop never dies mid-session.
func (s *Session) Tick(in Input, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tick skipped: %v", r)
		}
	}()

	switch s.state {
	case StateMenu:
		if in.LeftPressed {
			s.selectDifficulty(s.difficulty - 1)
		}
		if in.RightPressed {
			s.selectDifficulty(s.difficulty + 1)
		}
		if in.Confirm {
			s.start()
		}
	case StatePaused:
		if in.PauseToggled {
			s.state = StatePlaying
		}
	case StateGameOver:
		if in.Confirm {
			s.state = StateMenu
		}
	case StatePlaying:
		if in.PauseToggled {
			s.state = StatePaused
			return
		}
		s.tickPlaying(in, dt)
	}
}

func (s *Session) tickPlaying(in Input, dt float64) {
	s.player.UpdateTimers(dt)
	if in.Jump {
		s.player.TryJump()
	}
	s.player.Steer(in.LeftHeld, in.RightHeld, dt)

	s.scroll.Advance(dt)
	if s.scroll.Corrupted() {
		log.Printf("scroll state corrupt (speed=%f position=%f), ending game", s.scroll.Speed(), s.scroll.Position())
		s.gameOver()
		return
	}

	// One score point per ScoreDistanceUnit traveled. The level multiplier
	// is applied inside RecordScoreEvent, once per boundary crossed.
	for s.scroll.Position()-s.scoredAt >= s.cfg.Rules.ScoreDistanceUnit {
		s.scoredAt += s.cfg.Rules.ScoreDistanceUnit
		if s.scroll.RecordScoreEvent(1) > 0 {
			s.emit(EventScoreMilestone)
		}
	}

	if !s.collisionArmed && s.scroll.Score() >= s.cfg.Rules.CollisionGrace {
		s.collisionArmed = true
	}

	s.gen.EnsureBuffered(s.scroll.Position()+s.cfg.Track.HorizonDistance, s.scroll.Level(), s.scroll.Speed())
	s.gen.Prune(s.scroll.Position())

	if s.collisionArmed && !s.player.Airborne() {
		epsilon := math.Max(s.cfg.Rules.CollisionEpsilonMin, s.scroll.Speed()*dt)
		v := CheckCollision(s.player.Lateral(), s.gen.ActiveObstacles(), s.scroll.Position(), epsilon, s.cfg.Rules.CollisionThreshold)
		if v.Hit {
			s.lastHit = v
			s.hitObstacle, s.hitResolved = s.gen.ObstacleByID(v.ObstacleID)
			s.emit(EventCollision)
			s.gameOver()
		}
	}
}

// start resets all per-run state and transitions MENU -> PLAYING.
func (s *Session) start() {
	d := s.cfg.Difficulties[s.difficulty]
	s.scroll.SetInitialSpeed(d.InitialSpeed)
	s.player.SetSteerRate(d.SteerRate)
	s.scroll.Reset()
	s.player.Reset()
	s.gen.Reset()
	s.gen.EnsureBuffered(s.cfg.Track.HorizonDistance, 0, d.InitialSpeed)
	s.scoredAt = 0
	s.collisionArmed = false
	s.lastHit = Verdict{}
	s.hitObstacle = road.Obstacle{}
	s.hitResolved = false
	s.state = StatePlaying
	s.emit(EventGameStarted)
}

// gameOver transitions PLAYING -> GAME_OVER and persists a new high score.
func (s *Session) gameOver() {
	s.state = StateGameOver
	if s.scroll.Score() > s.highScore {
		s.highScore = s.scroll.Score()
		if err := s.persist.Save(s.highScore); err != nil {
			log.Printf("saving high score failed: %v", err)
			s.emit(EventPersistenceWarning)
		}
	}
}

func (s *Session) selectDifficulty(i int) {
	if i < 0 {
		i = len(s.cfg.Difficulties) - 1
	}
	if i >= len(s.cfg.Difficulties) {
		i = 0
	}
	s.difficulty = i
}

func (s *Session) State() State               { return s.state }
func (s *Session) Scroll() *Scroll            { return s.scroll }
func (s *Session) Player() *Player            { return s.player }
func (s *Session) Generator() *road.Generator { return s.gen }
func (s *Session) HighScore() int             { return s.highScore }
func (s *Session) LastHit() Verdict           { return s.lastHit }

// HitObstacle returns the obstacle that ended the last run, resolved from
// the active window at the moment of impact.
func (s *Session) HitObstacle() (road.Obstacle, bool) {
	return s.hitObstacle, s.hitResolved
}

// Difficulty returns the currently selected difficulty preset.
func (s *Session) Difficulty() config.Difficulty {
	return s.cfg.Difficulties[s.difficulty]
}
