// Package render turns projected track geometry into an ordered draw list.
// It is pure: no ebiten types, no internal state, so the whole frame
// pipeline is testable without a display.
package render

import (
	"image/color"

	"github.com/spacefold/galaxy/pkg/road"
)

// Point is a screen-space vertex.
type Point struct {
	X, Y float64
}

// DrawCommand is one filled polygon in the frame's draw list. Commands are
// emitted back-to-front so nearer geometry overpaints farther geometry.
type DrawCommand struct {
	Points []Point
	Color  color.RGBA
	Depth  float64 // Forward distance used for ordering; larger is farther
}

// Theme is one of the color sets the track cycles through, one per level.
type Theme struct {
	Name     string
	Sky      color.RGBA
	Road     color.RGBA
	RoadAlt  color.RGBA // Alternating band color for motion feedback
	Obstacle color.RGBA
	Hazard   color.RGBA
	Ship     color.RGBA
}

// Themes holds the four level themes. ThemeFor picks by level.
var Themes = [road.ThemeCount]Theme{
	{
		Name:     "Steel",
		Sky:      color.RGBA{8, 8, 16, 255},
		Road:     color.RGBA{170, 170, 170, 255},
		RoadAlt:  color.RGBA{140, 140, 140, 255},
		Obstacle: color.RGBA{255, 68, 68, 255},
		Hazard:   color.RGBA{255, 140, 0, 255},
		Ship:     color.RGBA{179, 0, 255, 255},
	},
	{
		Name:     "Amber",
		Sky:      color.RGBA{18, 10, 4, 255},
		Road:     color.RGBA{255, 204, 0, 255},
		RoadAlt:  color.RGBA{210, 168, 0, 255},
		Obstacle: color.RGBA{255, 68, 68, 255},
		Hazard:   color.RGBA{200, 40, 220, 255},
		Ship:     color.RGBA{179, 0, 255, 255},
	},
	{
		Name:     "Mint",
		Sky:      color.RGBA{2, 14, 10, 255},
		Road:     color.RGBA{0, 255, 153, 255},
		RoadAlt:  color.RGBA{0, 204, 122, 255},
		Obstacle: color.RGBA{255, 68, 68, 255},
		Hazard:   color.RGBA{255, 140, 0, 255},
		Ship:     color.RGBA{179, 0, 255, 255},
	},
	{
		Name:     "Ice",
		Sky:      color.RGBA{4, 10, 18, 255},
		Road:     color.RGBA{0, 204, 255, 255},
		RoadAlt:  color.RGBA{0, 160, 204, 255},
		Obstacle: color.RGBA{255, 68, 68, 255},
		Hazard:   color.RGBA{255, 140, 0, 255},
		Ship:     color.RGBA{179, 0, 255, 255},
	},
}

// ThemeFor returns the theme for a difficulty level.
func ThemeFor(level int) Theme {
	if level < 0 {
		level = 0
	}
	return Themes[level%road.ThemeCount]
}
