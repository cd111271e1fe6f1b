// Package config provides YAML-based game configuration with sensible
// defaults, so the game runs with no config file present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Difficulty is a named speed preset selectable on the menu.
type Difficulty struct {
	Name         string  `yaml:"name"`
	InitialSpeed float64 `yaml:"initial_speed"` // Distance units per tick
	SteerRate    float64 `yaml:"steer_rate"`    // Lateral units per tick
}

// Window holds display parameters.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Camera holds the perspective projection parameters.
type Camera struct {
	Depth         float64 `yaml:"depth"`
	LaneHalfWidth float64 `yaml:"lane_half_width"` // Pixels at scale 1
	HorizonY      float64 `yaml:"horizon_y"`       // Pixels from the top
}

// Track holds procedural generation tunables.
type Track struct {
	SegmentMinLength float64   `yaml:"segment_min_length"`
	SegmentMaxLength float64   `yaml:"segment_max_length"`
	MaxCurvature     float64   `yaml:"max_curvature"`
	SharpTurnRatio   float64   `yaml:"sharp_turn_ratio"`
	CurvatureRetries int       `yaml:"curvature_retries"`
	Width            float64   `yaml:"width"`
	HorizonDistance  float64   `yaml:"horizon_distance"` // Buffered lookahead in distance units
	RetentionMargin  float64   `yaml:"retention_margin"`
	ObstacleDensity  float64   `yaml:"obstacle_density"`           // Per unit distance at level 0
	DensityPerLevel  float64   `yaml:"obstacle_density_per_level"` // Added each level
	MaxDensity       float64   `yaml:"obstacle_max_density"`
	ObstacleLanes    []float64 `yaml:"obstacle_lanes"`
	HazardChance     float64   `yaml:"obstacle_hazard_chance"`
	ReactionWindow   float64   `yaml:"reaction_window"` // Ticks of travel between same-lane obstacles
}

// Rules holds scoring, level and collision parameters.
type Rules struct {
	SpeedGrowthPerLevel float64 `yaml:"speed_growth_per_level"`
	ScoreUnitsPerLevel  int     `yaml:"score_units_per_level"`
	ScoreDistanceUnit   float64 `yaml:"score_distance_unit"` // Distance traveled per score point
	CollisionGrace      int     `yaml:"collision_grace"`     // Score before collisions arm
	CollisionThreshold  float64 `yaml:"collision_threshold"`
	CollisionEpsilonMin float64 `yaml:"collision_epsilon_min"`
	JumpDuration        float64 `yaml:"jump_duration"` // Ticks
	JumpCooldown        float64 `yaml:"jump_cooldown"` // Ticks
}

// Audio holds sound settings.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Config is the full game configuration.
type Config struct {
	Window        Window       `yaml:"window"`
	Camera        Camera       `yaml:"camera"`
	Track         Track        `yaml:"track"`
	Rules         Rules        `yaml:"rules"`
	Audio         Audio        `yaml:"audio"`
	Difficulties  []Difficulty `yaml:"difficulties"`
	HighScoreFile string       `yaml:"high_score_file"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Window: Window{Width: 1024, Height: 800, Title: "Galaxy"},
		Camera: Camera{Depth: 60, LaneHalfWidth: 360, HorizonY: 200},
		Track: Track{
			SegmentMinLength: 40,
			SegmentMaxLength: 120,
			MaxCurvature:     2.5,
			SharpTurnRatio:   0.6,
			CurvatureRetries: 8,
			Width:            2.0,
			HorizonDistance:  240,
			RetentionMargin:  20,
			ObstacleDensity:  0.003,
			DensityPerLevel:  0.001,
			MaxDensity:       0.007,
			ObstacleLanes:    []float64{-0.75, -0.25, 0.25, 0.75},
			HazardChance:     0.25,
			ReactionWindow:   54, // ~0.9s of travel at 60 ticks/s
		},
		Rules: Rules{
			SpeedGrowthPerLevel: 0.08,
			ScoreUnitsPerLevel:  100,
			ScoreDistanceUnit:   2.0,
			CollisionGrace:      5,
			CollisionThreshold:  0.25,
			CollisionEpsilonMin: 1.0,
			JumpDuration:        36, // 0.6s at 60 ticks/s
			JumpCooldown:        18,
		},
		Audio: Audio{Enabled: true, Volume: 0.7},
		Difficulties: []Difficulty{
			{Name: "Easy", InitialSpeed: 0.6, SteerRate: 0.025},
			{Name: "Normal", InitialSpeed: 0.8, SteerRate: 0.035},
			{Name: "Hard", InitialSpeed: 1.1, SteerRate: 0.045},
		},
		HighScoreFile: "highscore.json",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Camera.Depth <= 0 {
		return fmt.Errorf("config: camera depth must be positive, got %f", c.Camera.Depth)
	}
	if c.Rules.ScoreUnitsPerLevel <= 0 {
		return fmt.Errorf("config: score units per level must be positive, got %d", c.Rules.ScoreUnitsPerLevel)
	}
	if c.Track.SegmentMinLength <= 0 || c.Track.SegmentMaxLength < c.Track.SegmentMinLength {
		return fmt.Errorf("config: invalid segment length range [%f, %f]", c.Track.SegmentMinLength, c.Track.SegmentMaxLength)
	}
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("config: at least one difficulty is required")
	}
	return nil
}
