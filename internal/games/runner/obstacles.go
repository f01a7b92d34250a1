package runner

import (
	"math/rand"

	"github.com/vovakirdan/ninja-runner/internal/config"
	"github.com/vovakirdan/ninja-runner/internal/core"
)

// Kind tells ground obstacles from elevated (flying) ones.
type Kind int

const (
	KindGround   Kind = iota // Rests on the floor, jump over it
	KindElevated             // Floats above the floor, duck under it
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindElevated {
		return "elevated"
	}
	return "ground"
}

// Obstacle is a single obstacle. X decreases every tick; Y is fixed at spawn.
type Obstacle struct {
	X, Y   float64
	Width  float64
	Height float64
	Kind   Kind
}

// Box returns the obstacle's bounding box in world units.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order.
type ObstacleManager struct {
	obstacles      []Obstacle
	rng            *rand.Rand
	cfg            config.ObstacleConfig
	nextSpawnFrame int
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.ObstacleConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles, reseeds the RNG and schedules the first spawn
// relative to frame 0.
func (om *ObstacleManager) Reset(seed int64) {
	om.rng = rand.New(rand.NewSource(seed))
	om.Clear(0)
}

// Clear removes every obstacle and schedules the first spawn FirstSpawnFrame
// frames after frame. The RNG stream continues, so consecutive runs stay
// reproducible from one seed.
func (om *ObstacleManager) Clear(frame int) {
	om.obstacles = om.obstacles[:0]
	om.nextSpawnFrame = frame + om.cfg.FirstSpawnFrame
}

// TrySpawn adds one obstacle at the right edge when frame has reached the
// spawn threshold, then schedules the next spawn MinGap..MaxGap-1 frames later.
func (om *ObstacleManager) TrySpawn(frame int, c PhysicsConstants) bool {
	if frame < om.nextSpawnFrame {
		return false
	}

	o := Obstacle{
		X:     c.ViewportW,
		Width: c.ObstacleWidth,
		Kind:  KindGround,
	}
	if om.rng.Float64() > om.cfg.ElevatedThreshold {
		o.Kind = KindElevated
		o.Height = c.ElevatedHeight
		clearance := c.MinClearance + om.rng.Float64()*(c.MaxClearance-c.MinClearance)
		o.Y = c.FloorY - clearance - o.Height
	} else {
		o.Height = c.GroundObstacleHeight
		o.Y = c.FloorY - o.Height
	}
	om.obstacles = append(om.obstacles, o)

	om.nextSpawnFrame = frame + om.gap(c.MinGap, c.MaxGap)
	return true
}

// gap draws a spawn gap in [minGap, maxGap).
func (om *ObstacleManager) gap(minGap, maxGap int) int {
	if maxGap <= minGap {
		return minGap
	}
	return minGap + om.rng.Intn(maxGap-minGap)
}

// Advance moves every obstacle left by the obstacle speed.
func (om *ObstacleManager) Advance(c PhysicsConstants) {
	for i := range om.obstacles {
		om.obstacles[i].X -= c.ObstacleSpeed
	}
}

// Cull removes obstacles whose right edge has passed the left viewport edge
// and returns how many were removed.
func (om *ObstacleManager) Cull() int {
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	removed := len(om.obstacles) - len(kept)
	om.obstacles = kept
	return removed
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the manager; use Snapshot for a stable copy.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// NextSpawnFrame returns the frame at which the next obstacle spawns.
func (om *ObstacleManager) NextSpawnFrame() int {
	return om.nextSpawnFrame
}
