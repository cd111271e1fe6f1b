package render

import (
	"math"

	"github.com/spacefold/galaxy/pkg/road"
)

// rowLength is the depth of one projected track band in distance units.
// Segments are sliced into bands so curvature reads as a smooth bend
// rather than a hinged quad.
const rowLength = 8.0

// obstacleHalfWidth and obstacleDepth size the projected obstacle quad, in
// lateral units and distance units respectively.
const (
	obstacleHalfWidth = 0.12
	obstacleDepth     = 2.0
)

// shipForward places the ship's base a little ahead of the camera so its
// projected scale stays below 1.
const shipForward = 4.0

// SegmentQuad is one projected track band.
type SegmentQuad struct {
	Depth      float64 // Near-edge forward distance, for ordering
	NearLeft   road.ProjectedPoint
	NearRight  road.ProjectedPoint
	FarRight   road.ProjectedPoint
	FarLeft    road.ProjectedPoint
	ThemeIndex int
	Band       bool // Alternating band flag
}

// ObstacleQuad is one projected obstacle.
type ObstacleQuad struct {
	Depth  float64
	Points [4]road.ProjectedPoint
	Kind   road.ObstacleKind
}

// Ship is the projected player triangle.
type Ship struct {
	Left  road.ProjectedPoint
	Nose  road.ProjectedPoint
	Right road.ProjectedPoint
}

// DriftFunc returns the accumulated lane-center drift at an absolute
// forward distance; the generator's DriftAt satisfies it.
type DriftFunc func(distance float64) float64

// ProjectTrack slices the active segments into bands and projects each one.
// scrollPos is the camera position; geometry behind it is skipped, which
// keeps every projection call inside the camera's domain. Drift is taken
// relative to the lane center at the camera so the track bends around the
// player.
func ProjectTrack(cam road.Camera, segs []road.Segment, drift DriftFunc, scrollPos, horizon float64) []SegmentQuad {
	baseDrift := drift(scrollPos)
	quads := make([]SegmentQuad, 0, int(horizon/rowLength)+len(segs))

	for _, seg := range segs {
		start := math.Max(seg.StartDistance, scrollPos)
		end := math.Min(seg.EndDistance(), scrollPos+horizon)
		for rowStart := start; rowStart < end; {
			rowEnd := math.Min(rowStart+rowLength, end)

			nearDrift := drift(rowStart) - baseDrift
			farDrift := drift(rowEnd) - baseDrift

			nl, err := cam.Project(-1, rowStart-scrollPos, nearDrift)
			if err != nil {
				break
			}
			nr, _ := cam.Project(1, rowStart-scrollPos, nearDrift)
			fr, _ := cam.Project(1, rowEnd-scrollPos, farDrift)
			fl, _ := cam.Project(-1, rowEnd-scrollPos, farDrift)

			quads = append(quads, SegmentQuad{
				Depth:      rowStart - scrollPos,
				NearLeft:   nl,
				NearRight:  nr,
				FarRight:   fr,
				FarLeft:    fl,
				ThemeIndex: seg.ThemeIndex,
				Band:       int(math.Floor(rowStart/rowLength))%2 == 0,
			})
			rowStart = rowEnd
		}
	}
	return quads
}

// ProjectObstacles projects the obstacles ahead of the camera within the
// horizon.
func ProjectObstacles(cam road.Camera, obstacles []road.Obstacle, drift DriftFunc, scrollPos, horizon float64) []ObstacleQuad {
	baseDrift := drift(scrollPos)
	out := make([]ObstacleQuad, 0, len(obstacles))

	for _, o := range obstacles {
		if o.Distance < scrollPos || o.Distance > scrollPos+horizon {
			continue
		}
		near := o.Distance - scrollPos
		far := near + obstacleDepth
		nearDrift := drift(o.Distance) - baseDrift
		farDrift := drift(o.Distance+obstacleDepth) - baseDrift

		nl, err := cam.Project(o.Lateral-obstacleHalfWidth, near, nearDrift)
		if err != nil {
			continue
		}
		nr, _ := cam.Project(o.Lateral+obstacleHalfWidth, near, nearDrift)
		fr, _ := cam.Project(o.Lateral+obstacleHalfWidth, far, farDrift)
		fl, _ := cam.Project(o.Lateral-obstacleHalfWidth, far, farDrift)

		out = append(out, ObstacleQuad{
			Depth:  near,
			Points: [4]road.ProjectedPoint{nl, nr, fr, fl},
			Kind:   o.Kind,
		})
	}
	return out
}

// ProjectShip projects the player triangle just ahead of the camera.
func ProjectShip(cam road.Camera, lateral float64) Ship {
	const halfWidth = 0.14
	left, _ := cam.Project(lateral-halfWidth, shipForward, 0)
	nose, _ := cam.Project(lateral, shipForward-3, 0)
	right, _ := cam.Project(lateral+halfWidth, shipForward, 0)
	return Ship{Left: left, Nose: nose, Right: right}
}
