package game

import (
	"math"

	"github.com/spacefold/galaxy/pkg/road"
)

// Verdict is the result of a collision check.
type Verdict struct {
	Hit        bool
	ObstacleID int64
}

// CheckCollision tests the player's lateral position against obstacles in
// the near-field window [forward-epsilon, forward+epsilon]. epsilon must be
// sized to at least one tick's travel distance so fast obstacles cannot
// tunnel through the window between checks. When several obstacles qualify
// the lowest id wins.
func CheckCollision(lateral float64, obstacles []road.Obstacle, forward, epsilon, threshold float64) Verdict {
	best := Verdict{}
	for _, o := range obstacles {
		if o.Distance < forward-epsilon || o.Distance > forward+epsilon {
			continue
		}
		if math.Abs(lateral-o.Lateral) >= threshold {
			continue
		}
		if !best.Hit || o.ID < best.ObstacleID {
			best = Verdict{Hit: true, ObstacleID: o.ID}
		}
	}
	return best
}
