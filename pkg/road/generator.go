package road

import (
	"errors"
	"math"
	"math/rand"

	"github.com/kamstrup/intmap"
)

// ErrGenerationExhausted signals that the curvature reroll budget ran out
// and the generator fell back to a straight segment. It is never fatal.
var ErrGenerationExhausted = errors.New("road: curvature rerolls exhausted")

// ThemeCount is the number of color themes the track cycles through,
// one per level.
const ThemeCount = 4

// GenConfig holds the tunable parameters of track generation.
type GenConfig struct {
	SegmentMinLength float64
	SegmentMaxLength float64
	MaxCurvature     float64 // Curvature is drawn from [-MaxCurvature, MaxCurvature]
	SharpTurnRatio   float64 // Fraction of MaxCurvature above which a turn counts as sharp
	CurvatureRetries int     // Reroll budget before falling back to a straight segment
	TrackWidth       float64 // Width in lane units, constant for now

	ObstacleBaseDensity     float64   // Spawn probability per unit distance at level 0
	ObstacleDensityPerLevel float64   // Density added per difficulty level
	ObstacleMaxDensity      float64   // Density cap
	ObstacleLanes           []float64 // Lateral slots obstacles may occupy
	ObstacleHazardChance    float64   // Chance a spawned obstacle is a hazard rather than a block
	ReactionWindow          float64   // Ticks of travel guaranteed between same-slot obstacles

	RetentionMargin float64 // Distance kept behind the camera before pruning
}

// Generator produces an endless track as a finite rolling window of
// segments and obstacle placements. It is the sole owner of the window;
// consumers read snapshots.
type Generator struct {
	cfg GenConfig
	rng *rand.Rand

	segments    []Segment
	obstacles   []Obstacle
	obstacleIdx *intmap.Map[int64, int]

	nextSegmentID  int64
	nextObstacleID int64
	end            float64         // End distance of the newest segment
	prunedDrift    float64         // Curvature drift contributed by pruned segments
	lastSpawn      map[int]float64 // Newest obstacle distance per lateral slot
	fallbacks      int
}

// NewGenerator creates an empty generator. The seed makes generation
// deterministic for a given run.
func NewGenerator(cfg GenConfig, seed int64) *Generator {
	return &Generator{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(seed)),
		obstacleIdx: intmap.New[int64, int](64),
		lastSpawn:   make(map[int]float64),
	}
}

// EnsureBuffered appends segments and obstacle placements until the active
// window covers at least upTo. level and speed come from the live scroll
// state at call time so difficulty coupling is never stale.
func (g *Generator) EnsureBuffered(upTo float64, level int, speed float64) {
	for g.end < upTo {
		seg := g.appendSegment(level)
		g.spawnObstacles(seg, level, speed)
	}
}

func (g *Generator) appendSegment(level int) Segment {
	length := g.cfg.SegmentMinLength + g.rng.Float64()*(g.cfg.SegmentMaxLength-g.cfg.SegmentMinLength)
	curvature, err := g.rollCurvature()
	if err != nil {
		g.fallbacks++
	}
	seg := Segment{
		ID:            g.nextSegmentID,
		StartDistance: g.end,
		Length:        length,
		Curvature:     curvature,
		WidthAtStart:  g.cfg.TrackWidth,
		ThemeIndex:    level % ThemeCount,
	}
	g.segments = append(g.segments, seg)
	g.nextSegmentID++
	g.end = seg.EndDistance()
	return seg
}

// rollCurvature draws a curvature that never continues a sharp turn in the
// same direction as the previous segment. When the reroll budget runs out
// it returns a straight segment and ErrGenerationExhausted.
func (g *Generator) rollCurvature() (float64, error) {
	var prev float64
	if n := len(g.segments); n > 0 {
		prev = g.segments[n-1].Curvature
	}
	sharp := g.cfg.SharpTurnRatio * g.cfg.MaxCurvature
	for i := 0; i <= g.cfg.CurvatureRetries; i++ {
		c := (g.rng.Float64()*2 - 1) * g.cfg.MaxCurvature
		if c*prev > 0 && math.Abs(c) > sharp && math.Abs(prev) > sharp {
			continue
		}
		return c, nil
	}
	return 0, ErrGenerationExhausted
}

// spawnObstacles rolls obstacle placements along a fresh segment. Spacing
// between obstacles in the same lateral slot is at least
// ReactionWindow*speed, so a navigable gap always exists at the current
// speed.
func (g *Generator) spawnObstacles(seg Segment, level int, speed float64) {
	density := g.cfg.ObstacleBaseDensity + g.cfg.ObstacleDensityPerLevel*float64(level)
	if density > g.cfg.ObstacleMaxDensity {
		density = g.cfg.ObstacleMaxDensity
	}
	if density <= 0 || len(g.cfg.ObstacleLanes) == 0 {
		return
	}
	minGap := g.cfg.ReactionWindow * speed
	for d := math.Ceil(seg.StartDistance); d < seg.EndDistance(); d++ {
		if g.rng.Float64() >= density {
			continue
		}
		slot := g.rng.Intn(len(g.cfg.ObstacleLanes))
		if last, seen := g.lastSpawn[slot]; seen && d-last < minGap {
			continue
		}
		g.lastSpawn[slot] = d
		kind := ObstacleBlock
		if g.rng.Float64() < g.cfg.ObstacleHazardChance {
			kind = ObstacleHazard
		}
		obs := Obstacle{
			ID:       g.nextObstacleID,
			Distance: d,
			Lateral:  g.cfg.ObstacleLanes[slot],
			Kind:     kind,
		}
		g.obstacleIdx.Put(obs.ID, len(g.obstacles))
		g.obstacles = append(g.obstacles, obs)
		g.nextObstacleID++
	}
}

// Prune drops segments and obstacles fully behind the camera, minus the
// retention margin so geometry straddling the bottom edge does not pop.
func (g *Generator) Prune(before float64) {
	cut := before - g.cfg.RetentionMargin

	i := 0
	for i < len(g.segments) && g.segments[i].EndDistance() < cut {
		g.prunedDrift += g.segments[i].Curvature * g.segments[i].Length
		i++
	}
	if i > 0 {
		g.segments = append(g.segments[:0], g.segments[i:]...)
	}

	j := 0
	for j < len(g.obstacles) && g.obstacles[j].Distance < cut {
		j++
	}
	if j > 0 {
		g.obstacles = append(g.obstacles[:0], g.obstacles[j:]...)
		g.obstacleIdx.Clear()
		for idx, o := range g.obstacles {
			g.obstacleIdx.Put(o.ID, idx)
		}
	}
}

// ActiveSegments returns a snapshot of the current window, ordered by
// start distance ascending.
func (g *Generator) ActiveSegments() []Segment {
	out := make([]Segment, len(g.segments))
	copy(out, g.segments)
	return out
}

// ActiveObstacles returns a snapshot of obstacles in the current window,
// ordered by distance ascending.
func (g *Generator) ActiveObstacles() []Obstacle {
	out := make([]Obstacle, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// ObstacleByID resolves an obstacle id from the active window.
func (g *Generator) ObstacleByID(id int64) (Obstacle, bool) {
	idx, ok := g.obstacleIdx.Get(id)
	if !ok {
		return Obstacle{}, false
	}
	return g.obstacles[idx], true
}

// SegmentAt returns the segment containing a forward distance.
func (g *Generator) SegmentAt(distance float64) (Segment, bool) {
	for _, s := range g.segments {
		if s.Contains(distance) {
			return s, true
		}
	}
	return Segment{}, false
}

// DriftAt returns the accumulated lane-center drift at an absolute forward
// distance: full contributions of all earlier segments plus the partial
// contribution of the segment containing the distance. Pruned segments
// keep contributing through a running base so turns never reset.
func (g *Generator) DriftAt(forward float64) float64 {
	drift := g.prunedDrift
	for _, s := range g.segments {
		if forward >= s.EndDistance() {
			drift += s.Curvature * s.Length
			continue
		}
		if forward > s.StartDistance {
			drift += s.Curvature * (forward - s.StartDistance)
		}
		break
	}
	return drift
}

// End returns the end distance covered by the active window.
func (g *Generator) End() float64 {
	return g.end
}

// Fallbacks returns how many segments fell back to zero curvature after
// exhausting the reroll budget.
func (g *Generator) Fallbacks() int {
	return g.fallbacks
}

// Reset clears the window so generation restarts from segment id 0.
func (g *Generator) Reset() {
	g.segments = g.segments[:0]
	g.obstacles = g.obstacles[:0]
	g.obstacleIdx.Clear()
	g.nextSegmentID = 0
	g.nextObstacleID = 0
	g.end = 0
	g.prunedDrift = 0
	g.fallbacks = 0
	g.lastSpawn = make(map[int]float64)
}
