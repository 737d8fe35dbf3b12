package breakout

import "math"

// Snapshot is a flat copy of the world state for determinism checks and
// headless reports. Float fields are stored as their IEEE-754 bits so two
// snapshots compare exactly.
type Snapshot struct {
	Frame uint64
	Tier  int
	Score int
	Lives int
	Level int

	PaddleX     float64
	PaddleWidth float64

	BallVX float64
	BallVY float64

	Explosive bool
	SpeedMult float64
	OrigWidth float64

	// Each ball is 6 values: X, Y, VX, VY, BaseVX, BaseVY; resting flags
	// are kept separately.
	BallData    []float64
	BallResting []bool

	// Each block is 4 values: X, Y, HP, Indestructible (0/1).
	BlockData []float64

	// Each pickup is 3 values: Kind, X, Y.
	PowerUpData []float64

	// RNGState is set when the world uses a SimpleRNG.
	RNGState uint64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       w.frame,
		Tier:        int(w.tier),
		Score:       w.score,
		Lives:       w.lives,
		Level:       w.level,
		PaddleX:     w.paddle.X,
		PaddleWidth: w.paddle.Width,
		BallVX:      w.ballVX,
		BallVY:      w.ballVY,
		Explosive:   w.fx.explosive,
		SpeedMult:   w.fx.speedMult,
		OrigWidth:   w.fx.origPaddleW,
		BallData:    make([]float64, 0, len(w.balls)*6),
		BallResting: make([]bool, 0, len(w.balls)),
		BlockData:   make([]float64, 0, len(w.blocks)*4),
		PowerUpData: make([]float64, 0, len(w.powerUps)*3),
	}

	for _, b := range w.balls {
		snap.BallData = append(snap.BallData, b.X, b.Y, b.VX, b.VY, b.BaseVX, b.BaseVY)
		snap.BallResting = append(snap.BallResting, b.Resting)
	}
	for _, bl := range w.blocks {
		flag := 0.0
		if bl.Indestructible {
			flag = 1
		}
		snap.BlockData = append(snap.BlockData, bl.X, bl.Y, float64(bl.HP), flag)
	}
	for _, p := range w.powerUps {
		snap.PowerUpData = append(snap.PowerUpData, float64(p.Kind), p.X, p.Y)
	}
	if r, ok := w.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Tier)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.SpeedMult)
	h = h*31 + math.Float64bits(snap.OrigWidth)
	if snap.Explosive {
		h = h*31 + 1
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, r := range snap.BallResting {
		if r {
			h = h*31 + 1
		} else {
			h = h*31 + 2
		}
	}
	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState
	return h
}
