package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacefold/galaxy/pkg/render"
	"github.com/spacefold/galaxy/pkg/road"
)

func testCamera() road.Camera {
	return road.Camera{
		Depth:         60,
		LaneHalfWidth: 360,
		ScreenWidth:   1024,
		ScreenHeight:  800,
		HorizonY:      200,
	}
}

func flatDrift(float64) float64 { return 0 }

func straightSegments(total float64) []road.Segment {
	return []road.Segment{
		{ID: 0, StartDistance: 0, Length: total, Curvature: 0, WidthAtStart: 2},
	}
}

func TestProjectTrackBandsAreDepthOrdered(t *testing.T) {
	quads := render.ProjectTrack(testCamera(), straightSegments(240), flatDrift, 0, 240)
	require.NotEmpty(t, quads)

	for i := 1; i < len(quads); i++ {
		assert.Greater(t, quads[i].Depth, quads[i-1].Depth)
	}
	// Farther bands shrink toward the vanishing point.
	first, last := quads[0], quads[len(quads)-1]
	assert.Greater(t, first.NearLeft.Scale, last.NearLeft.Scale)
	assert.Less(t, first.NearLeft.Y, last.NearLeft.Y)
}

func TestProjectTrackSkipsGeometryBehindCamera(t *testing.T) {
	quads := render.ProjectTrack(testCamera(), straightSegments(240), flatDrift, 100, 240)
	require.NotEmpty(t, quads)
	for _, q := range quads {
		assert.GreaterOrEqual(t, q.Depth, 0.0)
	}
}

func TestProjectTrackCurvatureBendsRows(t *testing.T) {
	cam := testCamera()
	segs := []road.Segment{
		{ID: 0, StartDistance: 0, Length: 200, Curvature: 1.5, WidthAtStart: 2},
	}
	// Drift grows linearly with distance, like a constant right-hand bend.
	drift := func(d float64) float64 { return 0.004 * d }

	quads := render.ProjectTrack(cam, segs, drift, 0, 200)
	require.Greater(t, len(quads), 2)

	straight := render.ProjectTrack(cam, straightSegments(200), flatDrift, 0, 200)
	require.Greater(t, len(straight), 2)

	// The far end of the bent track sits right of the straight one.
	bentFar := quads[len(quads)-1].FarLeft.X
	straightFar := straight[len(straight)-1].FarLeft.X
	assert.Greater(t, bentFar, straightFar)
}

func TestProjectObstaclesRespectsWindow(t *testing.T) {
	cam := testCamera()
	obstacles := []road.Obstacle{
		{ID: 1, Distance: 50, Lateral: -0.5},
		{ID: 2, Distance: 150, Lateral: 0.5},
		{ID: 3, Distance: 500, Lateral: 0}, // Beyond the horizon
		{ID: 4, Distance: 10, Lateral: 0},  // Behind the camera
	}
	quads := render.ProjectObstacles(cam, obstacles, flatDrift, 20, 240)
	assert.Len(t, quads, 2)
}

func TestProjectShipIsSymmetricAtCenter(t *testing.T) {
	cam := testCamera()
	ship := render.ProjectShip(cam, 0)

	center := float64(cam.ScreenWidth) / 2
	assert.InDelta(t, center, ship.Nose.X, 1e-9)
	assert.InDelta(t, center-ship.Left.X, ship.Right.X-center, 1e-9)
	assert.Less(t, ship.Nose.Y, ship.Left.Y, "the nose points up the screen")
}

func TestComposeOrdersBackToFront(t *testing.T) {
	cam := testCamera()
	segs := render.ProjectTrack(cam, straightSegments(240), flatDrift, 0, 240)
	obstacles := render.ProjectObstacles(cam, []road.Obstacle{
		{ID: 1, Distance: 40, Lateral: 0.25, Kind: road.ObstacleBlock},
		{ID: 2, Distance: 120, Lateral: -0.25, Kind: road.ObstacleHazard},
	}, flatDrift, 0, 240)
	ship := render.ProjectShip(cam, 0)
	theme := render.ThemeFor(0)

	cmds := render.Compose(segs, obstacles, ship, theme)
	require.Len(t, cmds, len(segs)+len(obstacles)+1)

	// Everything except the ship is sorted far-to-near.
	for i := 1; i < len(cmds)-1; i++ {
		assert.GreaterOrEqual(t, cmds[i-1].Depth, cmds[i].Depth)
	}

	last := cmds[len(cmds)-1]
	assert.Len(t, last.Points, 3, "the ship triangle draws last")
	assert.Equal(t, theme.Ship, last.Color)
}

func TestComposeObstacleDrawsOverItsBand(t *testing.T) {
	cam := testCamera()
	segs := render.ProjectTrack(cam, straightSegments(240), flatDrift, 0, 240)
	obstacles := render.ProjectObstacles(cam, []road.Obstacle{
		{ID: 1, Distance: 40, Lateral: 0, Kind: road.ObstacleBlock},
	}, flatDrift, 0, 240)
	theme := render.ThemeFor(0)

	cmds := render.Compose(segs, obstacles, render.ProjectShip(cam, 0), theme)

	obstacleAt, bandAt := -1, -1
	for i, c := range cmds {
		if c.Color == theme.Obstacle {
			obstacleAt = i
		}
		if (c.Color == theme.Road || c.Color == theme.RoadAlt) && c.Depth == 40 {
			bandAt = i
		}
	}
	require.NotEqual(t, -1, obstacleAt)
	require.NotEqual(t, -1, bandAt)
	assert.Greater(t, obstacleAt, bandAt, "obstacles paint after the band they sit on")
}

func TestComposeColorsByKind(t *testing.T) {
	cam := testCamera()
	theme := render.ThemeFor(2)
	obstacles := render.ProjectObstacles(cam, []road.Obstacle{
		{ID: 1, Distance: 40, Lateral: 0, Kind: road.ObstacleHazard},
	}, flatDrift, 0, 240)

	cmds := render.Compose(nil, obstacles, render.ProjectShip(cam, 0), theme)
	require.Len(t, cmds, 2)
	assert.Equal(t, theme.Hazard, cmds[0].Color)
}

func TestThemeForCycles(t *testing.T) {
	for level := 0; level < 12; level++ {
		assert.Equal(t, render.ThemeFor(level%road.ThemeCount), render.ThemeFor(level))
	}
	assert.NotEqual(t, render.ThemeFor(0), render.ThemeFor(1))
}

func TestComposeIsPure(t *testing.T) {
	cam := testCamera()
	segs := render.ProjectTrack(cam, straightSegments(80), flatDrift, 0, 80)
	ship := render.ProjectShip(cam, 0.3)
	theme := render.ThemeFor(1)

	a := render.Compose(segs, nil, ship, theme)
	b := render.Compose(segs, nil, ship, theme)
	assert.Equal(t, a, b)
}
