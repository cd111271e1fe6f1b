package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacefold/galaxy/pkg/app"
	"github.com/spacefold/galaxy/pkg/audio"
	"github.com/spacefold/galaxy/pkg/config"
	"github.com/spacefold/galaxy/pkg/game"
	"github.com/spacefold/galaxy/pkg/highscore"
	"github.com/spacefold/galaxy/pkg/road"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("using default config: %v", err)
	}

	gen := road.NewGenerator(road.GenConfig{
		SegmentMinLength:        cfg.Track.SegmentMinLength,
		SegmentMaxLength:        cfg.Track.SegmentMaxLength,
		MaxCurvature:            cfg.Track.MaxCurvature,
		SharpTurnRatio:          cfg.Track.SharpTurnRatio,
		CurvatureRetries:        cfg.Track.CurvatureRetries,
		TrackWidth:              cfg.Track.Width,
		ObstacleBaseDensity:     cfg.Track.ObstacleDensity,
		ObstacleDensityPerLevel: cfg.Track.DensityPerLevel,
		ObstacleMaxDensity:      cfg.Track.MaxDensity,
		ObstacleLanes:           cfg.Track.ObstacleLanes,
		ObstacleHazardChance:    cfg.Track.HazardChance,
		ReactionWindow:          cfg.Track.ReactionWindow,
		RetentionMargin:         cfg.Track.RetentionMargin,
	}, time.Now().UnixNano())

	session := game.NewSession(cfg, gen, highscore.NewStore(cfg.HighScoreFile))

	sounds := audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}
	session.AddListener(sounds.HandleEvent)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(app.New(cfg, session)); err != nil {
		log.Fatal(err)
	}
}
