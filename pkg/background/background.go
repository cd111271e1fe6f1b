// Package background procedurally generates the starfield drawn behind the
// track. Images are built once per theme and cached by the caller; the
// generator itself is stateless apart from its dimensions.
package background

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator builds starfield textures at a fixed size.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a generator for the given screen size.
func NewGenerator(width, height int) *Generator {
	return &Generator{Width: width, Height: height}
}

// Generate builds a starfield over the given sky color. The same seed and
// sky always produce the same image.
func (g *Generator) Generate(seed int64, sky color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(sky)

	// Faint color noise so large sky areas don't read as flat fill.
	for i := 0; i < g.Width*g.Height/160; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		img.Set(x, y, lighten(sky, uint8(4+rng.Intn(10))))
	}

	// A handful of soft nebula patches.
	for i := 0; i < 3+rng.Intn(3); i++ {
		g.drawNebula(img, rng.Intn(g.Width), rng.Intn(g.Height), rng, sky)
	}

	// Stars, most dim, a few bright.
	for i := 0; i < g.Width*g.Height/900; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		if rng.Float64() < 0.12 {
			g.drawBrightStar(img, x, y, rng)
		} else {
			v := uint8(90 + rng.Intn(110))
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}

	return img
}

// drawBrightStar draws a small plus-shaped star with a white core.
func (g *Generator) drawBrightStar(img *ebiten.Image, x, y int, rng *rand.Rand) {
	arm := 1 + rng.Intn(2)
	glow := uint8(120 + rng.Intn(60))
	for d := -arm; d <= arm; d++ {
		g.set(img, x+d, y, color.RGBA{glow, glow, glow, 255})
		g.set(img, x, y+d, color.RGBA{glow, glow, glow, 255})
	}
	g.set(img, x, y, color.RGBA{235, 235, 245, 255})
}

// drawNebula scatters lightened pixels in a rough disc.
func (g *Generator) drawNebula(img *ebiten.Image, x, y int, rng *rand.Rand, sky color.RGBA) {
	radius := 30 + rng.Intn(60)
	tint := lighten(sky, uint8(10+rng.Intn(14)))
	for i := 0; i < radius*radius/3; i++ {
		dx := rng.Intn(2*radius) - radius
		dy := rng.Intn(2*radius) - radius
		if dx*dx+dy*dy > radius*radius {
			continue
		}
		g.set(img, x+dx, y+dy, tint)
	}
}

func (g *Generator) set(img *ebiten.Image, x, y int, c color.Color) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.Set(x, y, c)
	}
}

func lighten(c color.RGBA, by uint8) color.RGBA {
	add := func(v, d uint8) uint8 {
		if int(v)+int(d) > 255 {
			return 255
		}
		return v + d
	}
	return color.RGBA{add(c.R, by), add(c.G, by), add(c.B, by), 255}
}
