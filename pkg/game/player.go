package game

// Player holds the ship's lateral position and jump state. It is owned by
// the Session and mutated only from input handling inside a tick.
type Player struct {
	lateral   float64 // Offset from lane center, clamped to [-1, 1]
	steerRate float64 // Lateral units moved per tick while a key is held

	jumpActive    bool
	jumpTimer     float64 // Ticks of airtime remaining
	cooldownTimer float64 // Ticks until the next jump is allowed
	jumpDuration  float64
	jumpCooldown  float64
}

// NewPlayer creates a centered player. Durations are in ticks.
func NewPlayer(steerRate, jumpDuration, jumpCooldown float64) *Player {
	return &Player{
		steerRate:    steerRate,
		jumpDuration: jumpDuration,
		jumpCooldown: jumpCooldown,
	}
}

// Steer moves the player laterally for held left/right input. Holding both
// cancels out.
func (p *Player) Steer(left, right bool, dt float64) {
	if left {
		p.lateral -= p.steerRate * dt
	}
	if right {
		p.lateral += p.steerRate * dt
	}
	if p.lateral < -1 {
		p.lateral = -1
	}
	if p.lateral > 1 {
		p.lateral = 1
	}
}

// TryJump activates a jump unless one is active or cooling down. Reports
// whether the jump started.
func (p *Player) TryJump() bool {
	if p.jumpActive || p.cooldownTimer > 0 {
		return false
	}
	p.jumpActive = true
	p.jumpTimer = p.jumpDuration
	p.cooldownTimer = p.jumpDuration + p.jumpCooldown
	return true
}

// UpdateTimers advances the jump and cooldown timers by dt ticks.
func (p *Player) UpdateTimers(dt float64) {
	if p.jumpActive {
		p.jumpTimer -= dt
		if p.jumpTimer <= 0 {
			p.jumpActive = false
			p.jumpTimer = 0
		}
	}
	if p.cooldownTimer > 0 {
		p.cooldownTimer -= dt
		if p.cooldownTimer < 0 {
			p.cooldownTimer = 0
		}
	}
}

// Airborne reports whether the player is mid-jump and passes over
// obstacles.
func (p *Player) Airborne() bool {
	return p.jumpActive
}

// Lateral returns the current lane offset in [-1, 1].
func (p *Player) Lateral() float64 {
	return p.lateral
}

// SetSteerRate changes how fast the player moves laterally. Applied when
// the difficulty changes.
func (p *Player) SetSteerRate(v float64) {
	p.steerRate = v
}

// Reset recenters the player and clears jump state.
func (p *Player) Reset() {
	p.lateral = 0
	p.jumpActive = false
	p.jumpTimer = 0
	p.cooldownTimer = 0
}
