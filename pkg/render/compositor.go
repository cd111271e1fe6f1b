package render

import (
	"sort"

	"github.com/spacefold/galaxy/pkg/road"
)

// Compose builds the frame's draw list: track bands and obstacles sorted
// back-to-front, then the ship on top. It is a pure function of its inputs.
func Compose(segs []SegmentQuad, obstacles []ObstacleQuad, ship Ship, theme Theme) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(segs)+len(obstacles)+1)

	for _, q := range segs {
		clr := theme.Road
		if q.Band {
			clr = theme.RoadAlt
		}
		cmds = append(cmds, DrawCommand{
			Points: quadPoints(q.NearLeft, q.NearRight, q.FarRight, q.FarLeft),
			Color:  clr,
			Depth:  q.Depth,
		})
	}

	for _, o := range obstacles {
		clr := theme.Obstacle
		if o.Kind == road.ObstacleHazard {
			clr = theme.Hazard
		}
		cmds = append(cmds, DrawCommand{
			Points: quadPoints(o.Points[0], o.Points[1], o.Points[2], o.Points[3]),
			Color:  clr,
			// Obstacles sit on the track, so break depth ties in their favor.
			Depth: o.Depth - 0.5,
		})
	}

	sort.SliceStable(cmds, func(i, j int) bool {
		return cmds[i].Depth > cmds[j].Depth
	})

	cmds = append(cmds, DrawCommand{
		Points: []Point{
			{X: ship.Left.X, Y: ship.Left.Y},
			{X: ship.Nose.X, Y: ship.Nose.Y},
			{X: ship.Right.X, Y: ship.Right.Y},
		},
		Color: theme.Ship,
		Depth: 0,
	})

	return cmds
}

func quadPoints(a, b, c, d road.ProjectedPoint) []Point {
	return []Point{
		{X: a.X, Y: a.Y},
		{X: b.X, Y: b.Y},
		{X: c.X, Y: c.Y},
		{X: d.X, Y: d.Y},
	}
}
