package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ninja-runner/internal/core"
)

func TestIntersectsInset(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Box
		expected bool
	}{
		{
			name:     "deep overlap",
			a:        core.NewBox(0, 0, 10, 10),
			b:        core.NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			// Raw boxes overlap by 3 but each hitbox loses 2 on that side
			name:     "sprite padding overlap is forgiven",
			a:        core.NewBox(0, 0, 10, 10),
			b:        core.NewBox(7, 0, 10, 10),
			expected: false,
		},
		{
			// Hitboxes are [2,8] and [7.5,13.5]
			name:     "hitboxes just overlap",
			a:        core.NewBox(0, 0, 10, 10),
			b:        core.NewBox(5.5, 0, 10, 10),
			expected: true,
		},
		{
			// Hitboxes meet exactly at x=8
			name:     "touching hitboxes",
			a:        core.NewBox(0, 0, 10, 10),
			b:        core.NewBox(6, 0, 10, 10),
			expected: false,
		},
		{
			name:     "vertical separation",
			a:        core.NewBox(0, 0, 10, 10),
			b:        core.NewBox(0, 20, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersects(tc.a, tc.b, 0.2); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := Intersects(tc.b, tc.a, 0.2); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIntersectsSymmetricRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	box := func() core.Box {
		return core.NewBox(rng.Float64()*50, rng.Float64()*50, 1+rng.Float64()*20, 1+rng.Float64()*20)
	}

	for i := 0; i < 5000; i++ {
		a, b := box(), box()
		if Intersects(a, b, 0.2) != Intersects(b, a, 0.2) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	}
}

func TestIntersectsIsPure(t *testing.T) {
	a := core.NewBox(0, 0, 10, 10)
	b := core.NewBox(5, 5, 10, 10)
	aBefore, bBefore := a, b

	Intersects(a, b, 0.2)

	if a != aBefore || b != bBefore {
		t.Error("Intersects must not modify its inputs")
	}
}

func TestCollisionsCountsEveryObstacle(t *testing.T) {
	p := Player{X: 0, Y: 0, Width: 10, NormalHeight: 10, Height: 10}
	obstacles := []Obstacle{
		{X: 2, Y: 2, Width: 10, Height: 10},
		{X: 100, Y: 0, Width: 10, Height: 10},
		{X: 1, Y: 1, Width: 5, Height: 5},
	}

	if got := Collisions(p, obstacles, 0.2); got != 2 {
		t.Errorf("Collisions() = %d, expected 2", got)
	}
	if got := Collisions(p, nil, 0.2); got != 0 {
		t.Errorf("Collisions() with no obstacles = %d, expected 0", got)
	}
}

func TestDuckingAvoidsElevatedObstacle(t *testing.T) {
	c := PhysicsConstants{
		GroundY:      100,
		FloorY:       110,
		PlayerWidth:  8,
		NormalHeight: 10,
		DuckedHeight: 5,
	}
	var p Player
	p.Reset(c)

	// Bottom 5 above the floor: hits a standing player, clears a ducked one
	bird := Obstacle{X: 0, Y: c.FloorY - 5 - 6, Width: 8, Height: 6, Kind: KindElevated}

	if Collisions(p, []Obstacle{bird}, 0.2) != 1 {
		t.Error("standing player should hit the elevated obstacle")
	}
	p.Duck()
	if Collisions(p, []Obstacle{bird}, 0.2) != 0 {
		t.Error("ducked player should pass under the elevated obstacle")
	}
}
