package engine

import "math"

// Snapshot is a quantized copy of the world for determinism tests.
// Positions and velocities are stored in thousandths of a unit.
type Snapshot struct {
	Tick        uint64
	Score       int
	Phase       int
	TargetData  []int // x, y, tag, active per target
	BulletData  []int // x, y, vx, vy, tag per projectile
	BallData    []int // x, y, vx, vy, resting
	ShooterMil  int   // shooter angle in milliradians
	GridData    []int // count, revealed per cell, row-major
	TargetCount int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current world as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	w := &e.world
	snap := Snapshot{
		Tick:        e.tick,
		Score:       w.Score,
		Phase:       int(w.Phase),
		ShooterMil:  milli(w.Shooter.Angle),
		TargetCount: len(w.Targets),
	}

	snap.TargetData = make([]int, 0, len(w.Targets)*4)
	for _, t := range w.Targets {
		snap.TargetData = append(snap.TargetData, milli(t.Box.X), milli(t.Box.Y), int(t.Tag), flag(t.Active))
	}

	snap.BulletData = make([]int, 0, len(w.Projectiles)*5)
	for _, p := range w.Projectiles {
		snap.BulletData = append(snap.BulletData,
			milli(p.Pos.X()), milli(p.Pos.Y()), milli(p.Vel.X()), milli(p.Vel.Y()), int(p.Tag))
	}

	b := w.Ball
	snap.BallData = []int{milli(b.Pos.X()), milli(b.Pos.Y()), milli(b.Vel.X()), milli(b.Vel.Y()), flag(b.Resting)}

	if g := w.Grid; g != nil {
		snap.GridData = make([]int, 0, g.Rows*g.Cols*2)
		for r := range g.Rows {
			for c := range g.Cols {
				snap.GridData = append(snap.GridData, g.Counts[r][c], flag(g.Revealed[r][c]))
			}
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShooterMil)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TargetCount) //#nosec G115 -- hash computation

	for _, v := range snap.TargetData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.GridData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
