// Package ui renders the menu, pause and game-over overlays plus the HUD.
package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/spacefold/galaxy/pkg/data"
)

var face = text.NewGoXFace(bitmapfont.Face)

var (
	cyan   = color.RGBA{0, 255, 255, 255}
	dimmed = color.RGBA{136, 136, 136, 255}
	white  = color.RGBA{240, 240, 240, 255}
)

// Overlay draws full-screen text states. It keeps a start time for blink
// animations and the session's ship callsign, nothing else.
type Overlay struct {
	startTime time.Time
	callsign  string
}

// NewOverlay creates an overlay renderer with a callsign picked for this
// run of the program.
func NewOverlay() *Overlay {
	now := time.Now()
	return &Overlay{
		startTime: now,
		callsign:  data.Callsign(now.UnixNano()),
	}
}

// DrawMenu renders the main menu: title, best score, difficulty selector
// and control hints.
func (o *Overlay) DrawMenu(screen *ebiten.Image, bestScore int, difficulty string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx := float64(w) / 2

	drawCentered(screen, "G A L A X Y", cx, float64(h)/3, 6, cyan)
	drawCentered(screen, fmt.Sprintf("BEST: %d", bestScore), cx, float64(h)/3+70, 2, cyan)
	drawCentered(screen, fmt.Sprintf("< %s >", difficulty), cx, float64(h)/3+110, 2, white)
	drawCentered(screen, fmt.Sprintf("SHIP: %s", o.callsign), cx, float64(h)/3+150, 1.5, dimmed)

	// Start prompt blinks on a half-second cadence.
	if int(time.Since(o.startTime).Seconds()*2)%2 == 0 {
		drawCentered(screen, "Press ENTER to start", cx, float64(h)-120, 2, white)
	}
	drawCentered(screen, "Arrows steer - SPACE jumps - P pauses", cx, float64(h)-80, 1.5, dimmed)
}

// DrawPaused renders the pause overlay on top of the frozen frame.
func (o *Overlay) DrawPaused(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawCentered(screen, "PAUSED", float64(w)/2, float64(h)/2, 4, cyan)
}

// DrawGameOver renders the game-over overlay. cause names what ended the
// run and may be empty.
func (o *Overlay) DrawGameOver(screen *ebiten.Image, score, bestScore int, cause string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx := float64(w) / 2

	drawCentered(screen, "G A M E  O V E R", cx, float64(h)/3, 5, cyan)
	if cause != "" {
		drawCentered(screen, cause, cx, float64(h)/3+40, 1.5, dimmed)
	}
	drawCentered(screen, fmt.Sprintf("SCORE: %d", score), cx, float64(h)/3+70, 2, white)
	if score >= bestScore && score > 0 {
		drawCentered(screen, "NEW BEST!", cx, float64(h)/3+110, 2, cyan)
	} else {
		drawCentered(screen, fmt.Sprintf("BEST: %d", bestScore), cx, float64(h)/3+110, 2, dimmed)
	}
	if int(time.Since(o.startTime).Seconds()*2)%2 == 0 {
		drawCentered(screen, "Press ENTER for menu", cx, float64(h)-120, 2, white)
	}
}

// DrawHUD renders the in-game score line.
func (o *Overlay) DrawHUD(screen *ebiten.Image, score, bestScore, level int) {
	drawAt(screen, fmt.Sprintf("SCORE: %d", score), 20, 16, 2, cyan)
	drawAt(screen, fmt.Sprintf("LEVEL %d", level+1), 20, 44, 1.5, white)

	best := fmt.Sprintf("BEST: %d", bestScore)
	w := screen.Bounds().Dx()
	bestWidth := text.Advance(best, face) * 2
	drawAt(screen, best, float64(w)-bestWidth-20, 16, 2, cyan)
}

func drawCentered(screen *ebiten.Image, str string, cx, y, scale float64, clr color.RGBA) {
	width := text.Advance(str, face) * scale
	drawAt(screen, str, cx-width/2, y, scale, clr)
}

func drawAt(screen *ebiten.Image, str string, x, y, scale float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
