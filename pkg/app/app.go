// Package app is the ebiten shell around the game session: it polls input
// into a per-tick snapshot, advances the session, and draws the composed
// frame. All simulation lives in pkg/game; all geometry in pkg/road and
// pkg/render.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacefold/galaxy/pkg/background"
	"github.com/spacefold/galaxy/pkg/config"
	"github.com/spacefold/galaxy/pkg/game"
	"github.com/spacefold/galaxy/pkg/render"
	"github.com/spacefold/galaxy/pkg/road"
	"github.com/spacefold/galaxy/pkg/ui"
)

// App implements ebiten.Game.
type App struct {
	cfg     config.Config
	session *game.Session
	cam     road.Camera
	overlay *ui.Overlay

	skyGen *background.Generator
	skies  [road.ThemeCount]*ebiten.Image // Lazily built, one per theme
}

// New wires the shell around a session.
func New(cfg config.Config, session *game.Session) *App {
	return &App{
		cfg:     cfg,
		session: session,
		cam: road.Camera{
			Depth:         cfg.Camera.Depth,
			LaneHalfWidth: cfg.Camera.LaneHalfWidth,
			ScreenWidth:   float64(cfg.Window.Width),
			ScreenHeight:  float64(cfg.Window.Height),
			HorizonY:      cfg.Camera.HorizonY,
		},
		overlay: ui.NewOverlay(),
		skyGen:  background.NewGenerator(cfg.Window.Width, cfg.Window.Height),
	}
}

// Update polls input and runs exactly one simulation tick. Ebiten calls it
// at a fixed 60 TPS, so dt is one tick.
func (a *App) Update() error {
	in := game.Input{
		LeftHeld:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		RightHeld:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		LeftPressed:  inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		RightPressed: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		PauseToggled: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Confirm:      inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Jump:         inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	a.session.Tick(in, 1.0)
	return nil
}

// Draw renders the world for the current state plus the matching overlay.
func (a *App) Draw(screen *ebiten.Image) {
	scroll := a.session.Scroll()
	theme := render.ThemeFor(scroll.Level())
	screen.DrawImage(a.sky(scroll.Level()), nil)

	switch a.session.State() {
	case game.StateMenu:
		a.overlay.DrawMenu(screen, a.session.HighScore(), a.session.Difficulty().Name)
	case game.StatePlaying:
		a.drawWorld(screen, theme)
		a.overlay.DrawHUD(screen, scroll.Score(), a.session.HighScore(), scroll.Level())
	case game.StatePaused:
		a.drawWorld(screen, theme)
		a.overlay.DrawHUD(screen, scroll.Score(), a.session.HighScore(), scroll.Level())
		a.overlay.DrawPaused(screen)
	case game.StateGameOver:
		a.drawWorld(screen, theme)
		a.overlay.DrawGameOver(screen, scroll.Score(), a.session.HighScore(), a.crashCause())
	}
}

// crashCause names the obstacle that ended the run, when one did.
func (a *App) crashCause() string {
	obs, ok := a.session.HitObstacle()
	if !ok {
		return ""
	}
	if obs.Kind == road.ObstacleHazard {
		return "STRUCK A HAZARD"
	}
	return "STRUCK A BLOCK"
}

func (a *App) drawWorld(screen *ebiten.Image, theme render.Theme) {
	gen := a.session.Generator()
	pos := a.session.Scroll().Position()
	horizon := a.cfg.Track.HorizonDistance

	segs := render.ProjectTrack(a.cam, gen.ActiveSegments(), gen.DriftAt, pos, horizon)
	obstacles := render.ProjectObstacles(a.cam, gen.ActiveObstacles(), gen.DriftAt, pos, horizon)
	ship := render.ProjectShip(a.cam, a.session.Player().Lateral())

	for _, cmd := range render.Compose(segs, obstacles, ship, theme) {
		fillPolygon(screen, cmd.Points, cmd.Color)
	}
}

// sky returns the starfield for the level's theme, generating it on first
// use. Generation is deterministic per theme so the sky doesn't flicker
// when the level wraps back around.
func (a *App) sky(level int) *ebiten.Image {
	idx := level % road.ThemeCount
	if a.skies[idx] == nil {
		a.skies[idx] = a.skyGen.Generate(int64(idx)+1, render.ThemeFor(idx).Sky)
	}
	return a.skies[idx]
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
