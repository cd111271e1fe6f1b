package road

// Segment is a single stretch of track. Segments are immutable once the
// generator creates them; the active window holds a contiguous run of IDs.
type Segment struct {
	ID            int64
	StartDistance float64 // World distance where this segment begins
	Length        float64
	Curvature     float64 // Signed lane-center drift per unit distance
	WidthAtStart  float64 // Track width in lane units at the segment start
	ThemeIndex    int     // Color theme the segment was generated under
}

// EndDistance returns the world distance where this segment ends.
func (s Segment) EndDistance() float64 {
	return s.StartDistance + s.Length
}

// Contains reports whether a forward distance falls inside this segment.
func (s Segment) Contains(distance float64) bool {
	return distance >= s.StartDistance && distance < s.EndDistance()
}

// ObstacleKind identifies the obstacle variant.
type ObstacleKind int

const (
	ObstacleBlock ObstacleKind = iota
	ObstacleHazard
)

// Obstacle is a hazard placed on the track ahead of the player.
type Obstacle struct {
	ID       int64
	Distance float64 // Forward world position
	Lateral  float64 // Offset from lane center, range [-1, 1]
	Kind     ObstacleKind
}
