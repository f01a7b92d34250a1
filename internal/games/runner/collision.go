package runner

import "github.com/vovakirdan/ninja-runner/internal/core"

// Intersects reports whether two boxes overlap after each is shrunk by inset
// of its size on every side. It is pure and symmetric.
func Intersects(a, b core.Box, inset float64) bool {
	return a.Inset(inset).Intersects(b.Inset(inset))
}

// Collisions tests the player against every obstacle and returns how many
// it touches. Every obstacle is tested exactly once.
func Collisions(p Player, obstacles []Obstacle, inset float64) int {
	pb := p.Box()
	hits := 0
	for _, o := range obstacles {
		if Intersects(pb, o.Box(), inset) {
			hits++
		}
	}
	return hits
}
