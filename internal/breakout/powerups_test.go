package breakout

import (
	"slices"
	"testing"

	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

func TestSampleKindBucketOrder(t *testing.T) {
	dist := difficulty.Distribution{
		Grow: 0.1, Shrink: 0.1, Explosive: 0.1, ExtraLife: 0.1,
		Split: 0.1, SpeedUp: 0.1, SpeedDown: 0.4,
	}
	rng := &scriptedRand{vals: []float64{0.05, 0.15, 0.25, 0.35, 0.45, 0.55, 0.65, 0.999}}

	var got []PowerUpKind
	for range 8 {
		got = append(got, SampleKind(dist, rng))
	}
	want := []PowerUpKind{PaddleGrow, PaddleShrink, ExplosiveBall, ExtraLife, SplitBall, SpeedUp, SpeedDown, SpeedDown}
	if !slices.Equal(got, want) {
		t.Errorf("SampleKind sequence = %v, want %v", got, want)
	}
}

func TestSampleKindReproducible(t *testing.T) {
	p, _ := difficulty.PolicyFor(difficulty.Hard)
	dist := p.Distribution(4)

	a, b := NewSimpleRNG(7), NewSimpleRNG(7)
	for i := range 200 {
		ka, kb := SampleKind(dist, a), SampleKind(dist, b)
		if ka != kb {
			t.Fatalf("draw %d: %v != %v", i, ka, kb)
		}
	}
}

func TestSampleKindDegenerateDistribution(t *testing.T) {
	if got := SampleKind(difficulty.Distribution{}, constRand(0.3)); got != PaddleShrink {
		t.Errorf("empty distribution = %v, want PaddleShrink", got)
	}
	neg := difficulty.Distribution{Grow: -1, Split: -0.5}
	if got := SampleKind(neg, constRand(0.3)); got != PaddleShrink {
		t.Errorf("negative distribution = %v, want PaddleShrink", got)
	}
}

func TestDropChance(t *testing.T) {
	tests := []struct {
		tier difficulty.Tier
		base float64
		want float64
	}{
		{difficulty.Easy, 0.25, 0.3125},
		{difficulty.Medium, 0.25, 0.25},
		{difficulty.Hard, 0.5, 0.35},
		{difficulty.Easy, 1, 1},
	}
	for _, tc := range tests {
		p, _ := difficulty.PolicyFor(tc.tier)
		if got := DropChance(tc.base, p); got != tc.want {
			t.Errorf("DropChance(%v, %s) = %v, want %v", tc.base, tc.tier, got, tc.want)
		}
	}
}

func TestPowerUpLifecycle(t *testing.T) {
	p := &PowerUp{X: 100, Y: 30, Size: 22, FallSpeed: 140, ActiveAt: 300}

	if p.Active(299) {
		t.Error("pickup should not be active before its spawn delay")
	}
	if !p.Active(300) {
		t.Error("pickup should be active once the delay elapsed")
	}

	p.Fall(0.25)
	if p.Y != -5 || p.Gone() {
		t.Errorf("after fall Y = %v gone=%v, want -5 and still visible", p.Y, p.Gone())
	}
	p.Fall(0.25)
	if !p.Gone() {
		t.Errorf("pickup at Y = %v should be gone", p.Y)
	}
}
