package road

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when projection is called with inputs
// outside its domain. Callers are expected to filter geometry behind the
// camera before projecting it.
var ErrInvalidArgument = errors.New("road: argument out of domain")

// ProjectedPoint is the screen-space result of projecting a track-relative
// position. It is recomputed every frame and never stored.
type ProjectedPoint struct {
	X     float64
	Y     float64
	Scale float64 // 1.0 at the camera, approaching 0 at the horizon
}

// Camera holds the parameters of the perspective projection.
type Camera struct {
	Depth         float64 // Perspective divide constant, must be > 0
	LaneHalfWidth float64 // Half track width in pixels at scale 1
	ScreenWidth   float64
	ScreenHeight  float64
	HorizonY      float64 // Vanishing point Y in pixels from the top
}

// Project maps a track-relative position to screen space.
//
// lateral is the offset from lane center in [-1, 1], forward the distance
// ahead of the camera, and drift the accumulated curvature offset (in
// pixels at scale 1) at that forward distance. The perspective divide
// scale = Depth / (Depth + forward) shrinks geometry toward the vanishing
// point as forward grows.
func (c Camera) Project(lateral, forward, drift float64) (ProjectedPoint, error) {
	if forward < 0 {
		return ProjectedPoint{}, fmt.Errorf("%w: forward distance %f is negative", ErrInvalidArgument, forward)
	}
	if c.Depth <= 0 {
		return ProjectedPoint{}, fmt.Errorf("%w: camera depth %f must be positive", ErrInvalidArgument, c.Depth)
	}
	scale := c.Depth / (c.Depth + forward)
	return ProjectedPoint{
		X:     c.ScreenWidth/2 + (lateral*c.LaneHalfWidth+drift)*scale,
		Y:     c.HorizonY + (1-scale)*(c.ScreenHeight-c.HorizonY),
		Scale: scale,
	}, nil
}
