package runner

import (
	"testing"

	"github.com/vovakirdan/ninja-runner/internal/config"
)

func testObstacleManager(seed int64) (*ObstacleManager, PhysicsConstants) {
	cfg := config.DefaultRunnerConfig()
	return NewObstacleManager(seed, cfg.Obstacles), DeriveConstants(80, 24, false, cfg)
}

func TestObstacleAdvanceAndCull(t *testing.T) {
	om, _ := testObstacleManager(1)
	om.obstacles = append(om.obstacles, Obstacle{X: 5, Width: 10})

	c := PhysicsConstants{ObstacleSpeed: 20}
	om.Advance(c)
	removed := om.Cull()

	if removed != 1 {
		t.Errorf("Cull() = %d, expected 1", removed)
	}
	if len(om.Obstacles()) != 0 {
		t.Errorf("obstacle should be removed, %d left", len(om.Obstacles()))
	}
}

func TestObstacleCullKeepsOrderAndPartialObstacles(t *testing.T) {
	om, _ := testObstacleManager(1)
	om.obstacles = append(om.obstacles,
		Obstacle{X: -20, Width: 10}, // gone
		Obstacle{X: -5, Width: 10},  // still partly visible
		Obstacle{X: -10, Width: 10}, // right edge exactly at 0 stays
		Obstacle{X: 40, Width: 10},
	)

	if removed := om.Cull(); removed != 1 {
		t.Errorf("Cull() = %d, expected 1", removed)
	}

	got := om.Obstacles()
	if len(got) != 3 || got[0].X != -5 || got[1].X != -10 || got[2].X != 40 {
		t.Errorf("Cull should keep spawn order, got %+v", got)
	}
}

func TestObstacleSpawnThreshold(t *testing.T) {
	om, c := testObstacleManager(7)

	if om.NextSpawnFrame() != 100 {
		t.Fatalf("first spawn frame = %d, expected 100", om.NextSpawnFrame())
	}
	if om.TrySpawn(99, c) {
		t.Error("should not spawn before the threshold")
	}
	if !om.TrySpawn(100, c) {
		t.Fatal("should spawn at the threshold")
	}

	o := om.Obstacles()[0]
	if o.X != c.ViewportW {
		t.Errorf("spawn x = %v, expected right edge %v", o.X, c.ViewportW)
	}
	next := om.NextSpawnFrame()
	if next < 100+c.MinGap || next >= 100+c.MaxGap {
		t.Errorf("next spawn %d outside [%d, %d)", next, 100+c.MinGap, 100+c.MaxGap)
	}
}

func TestObstacleSpawnGapBounds(t *testing.T) {
	om, c := testObstacleManager(12345)

	last := -1
	for frame := 0; frame < 20000; frame++ {
		if !om.TrySpawn(frame, c) {
			continue
		}
		if last >= 0 {
			gap := frame - last
			if gap < c.MinGap || gap >= c.MaxGap {
				t.Fatalf("gap %d outside [%d, %d)", gap, c.MinGap, c.MaxGap)
			}
		}
		last = frame
	}
	if last < 0 {
		t.Fatal("nothing spawned")
	}
}

func TestObstacleKindsAndPlacement(t *testing.T) {
	om, c := testObstacleManager(99)

	var ground, elevated int
	for frame := 0; frame < 200000 && ground+elevated < 1000; frame++ {
		if !om.TrySpawn(frame, c) {
			continue
		}
		o := om.obstacles[len(om.obstacles)-1]
		switch o.Kind {
		case KindGround:
			ground++
			if !approx(o.Y+o.Height, c.FloorY) {
				t.Fatalf("ground obstacle bottom %v should rest on floor %v", o.Y+o.Height, c.FloorY)
			}
			if !approx(o.Height, c.GroundObstacleHeight) {
				t.Fatalf("ground obstacle height %v, expected %v", o.Height, c.GroundObstacleHeight)
			}
		case KindElevated:
			elevated++
			clearance := c.FloorY - (o.Y + o.Height)
			if clearance < c.MinClearance-eps || clearance > c.MaxClearance+eps {
				t.Fatalf("elevated clearance %v outside [%v, %v)", clearance, c.MinClearance, c.MaxClearance)
			}
			if o.Height >= c.GroundObstacleHeight {
				t.Fatalf("elevated obstacle should be smaller than ground ones")
			}
		}
	}

	total := ground + elevated
	share := float64(elevated) / float64(total)
	// Threshold 0.7 gives about 30% elevated
	if share < 0.2 || share > 0.4 {
		t.Errorf("elevated share = %.2f over %d spawns, expected about 0.3", share, total)
	}
}

func TestObstacleDeterminism(t *testing.T) {
	a, c := testObstacleManager(42)
	b, _ := testObstacleManager(42)

	for frame := 0; frame < 2000; frame++ {
		a.TrySpawn(frame, c)
		b.TrySpawn(frame, c)
		a.Advance(c)
		b.Advance(c)
		a.Cull()
		b.Cull()
	}

	if len(a.Obstacles()) != len(b.Obstacles()) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Obstacles()), len(b.Obstacles()))
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a.Obstacles()[i], b.Obstacles()[i])
		}
	}
}

func TestObstacleClearReschedules(t *testing.T) {
	om, c := testObstacleManager(3)
	om.TrySpawn(100, c)

	om.Clear(500)

	if len(om.Obstacles()) != 0 {
		t.Error("Clear should remove obstacles")
	}
	if om.NextSpawnFrame() != 600 {
		t.Errorf("next spawn = %d, expected 600", om.NextSpawnFrame())
	}
}
