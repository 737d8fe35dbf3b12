package difficulty

import (
	"errors"
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"easy", Easy, false},
		{"EASY", Easy, false},
		{" medium ", Medium, false},
		{"normal", Medium, false},
		{"hard", Hard, false},
		{"nightmare", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTier(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownTier) {
					t.Fatalf("ParseTier(%q) error = %v, want ErrUnknownTier", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTier(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseTier(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSettingsForInvalidTier(t *testing.T) {
	if _, err := SettingsFor(Tier(7)); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("SettingsFor(7) error = %v, want ErrUnknownTier", err)
	}
	if _, err := PolicyFor(Tier(-1)); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("PolicyFor(-1) error = %v, want ErrUnknownTier", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSettings should panic on an invalid tier")
		}
	}()
	MustSettings(Tier(3))
}

func TestSettingsTable(t *testing.T) {
	easy := MustSettings(Easy)
	if easy.PaddleWidth != 160 || easy.BallVX != 2 || easy.BallVY != 3 {
		t.Errorf("easy settings = %+v", easy)
	}
	if easy.AllowUnbreak || easy.HardRate != 0 {
		t.Error("easy tier must not produce hard or unbreakable blocks")
	}

	hard := MustSettings(Hard)
	if !hard.AllowUnbreak || hard.UnbreakRate != 0.15 {
		t.Errorf("hard tier unbreakable settings = %v/%v", hard.AllowUnbreak, hard.UnbreakRate)
	}
}

func TestRowsForLevel(t *testing.T) {
	tests := []struct {
		tier  Tier
		level int
		want  int
	}{
		{Easy, 1, 3},
		{Easy, 5, 3},
		{Medium, 1, 5},
		{Medium, 3, 7},
		{Hard, 1, 7},
		{Hard, 4, 13},
		{Hard, 0, 7},
	}

	for _, tc := range tests {
		got := MustSettings(tc.tier).RowsForLevel(tc.level)
		if got != tc.want {
			t.Errorf("%v.RowsForLevel(%d) = %d, want %d", tc.tier, tc.level, got, tc.want)
		}
	}
}

func TestSettingsMerge(t *testing.T) {
	base := MustSettings(Medium)
	merged := base.Merge(Settings{Tier: Hard, PaddleWidth: 140, HardRate: 3})

	if merged.Tier != Medium {
		t.Errorf("Merge changed tier to %v", merged.Tier)
	}
	if merged.PaddleWidth != 140 {
		t.Errorf("PaddleWidth = %d, want 140", merged.PaddleWidth)
	}
	if merged.HardRate != 1 {
		t.Errorf("HardRate = %v, want clamped 1", merged.HardRate)
	}
	if merged.BallVX != base.BallVX {
		t.Errorf("BallVX = %d, want untouched %d", merged.BallVX, base.BallVX)
	}
}

func TestPolicyDurations(t *testing.T) {
	want := map[Tier]time.Duration{Easy: 7 * time.Second, Medium: 5 * time.Second, Hard: 3 * time.Second}
	for tier, d := range want {
		p, err := PolicyFor(tier)
		if err != nil {
			t.Fatal(err)
		}
		if p.EffectDuration != d {
			t.Errorf("%v duration = %v, want %v", tier, p.EffectDuration, d)
		}
	}
}

func TestExtraLifeProbability(t *testing.T) {
	medium, _ := PolicyFor(Medium)
	if got := medium.ExtraLifeProbability(2); math.Abs(got-0.15) > eps {
		t.Errorf("medium level 2 = %v, want 0.15", got)
	}
	if got := medium.ExtraLifeProbability(5); math.Abs(got-0.12) > eps {
		t.Errorf("medium level 5 = %v, want 0.12", got)
	}
	if got := medium.ExtraLifeProbability(100); math.Abs(got-0.05) > eps {
		t.Errorf("medium level 100 = %v, want floor 0.05", got)
	}

	easy, _ := PolicyFor(Easy)
	if easy.ExtraLifeProbability(2) != easy.ExtraLifeProbability(30) {
		t.Error("easy extra life probability should not decay")
	}
}

func TestLevelProgression(t *testing.T) {
	easy, _ := PolicyFor(Easy)
	if got := easy.LevelProgression(2, 3, 160); !got.ResetEffects {
		t.Errorf("easy progression = %+v, want ResetEffects", got)
	}

	medium, _ := PolicyFor(Medium)
	got := medium.LevelProgression(-4, 5, 110)
	want := Progression{VX: -5, VY: 6, PaddleWidth: 100}
	if got != want {
		t.Errorf("medium progression = %+v, want %+v", got, want)
	}

	capped := medium.LevelProgression(8, -9, 72)
	if capped.VX != 8 || capped.VY != -9 || capped.PaddleWidth != 70 {
		t.Errorf("capped progression = %+v", capped)
	}
}

func TestDistributionBucketOrder(t *testing.T) {
	// Equal weights: each bucket spans 1/7.
	d := Distribution{1, 1, 1, 1, 1, 1, 1}
	for i := 0; i < BucketCount; i++ {
		r := (float64(i) + 0.5) / BucketCount
		got, ok := d.Bucket(r)
		if !ok || got != i {
			t.Errorf("Bucket(%v) = %d,%v want %d", r, got, ok, i)
		}
	}

	// Unnormalized weights behave the same as their normalized form.
	raw := Distribution{Grow: 2, Shrink: 6}
	if got, _ := raw.Bucket(0.2); got != 0 {
		t.Errorf("Bucket(0.2) = %d, want grow", got)
	}
	if got, _ := raw.Bucket(0.3); got != 1 {
		t.Errorf("Bucket(0.3) = %d, want shrink", got)
	}

	if _, ok := (Distribution{}).Bucket(0.5); ok {
		t.Error("empty distribution should be degenerate")
	}
	if _, ok := (Distribution{Grow: -1, Shrink: -2}).Bucket(0.5); ok {
		t.Error("negative distribution should be degenerate")
	}
}

func TestSkewPreservesMass(t *testing.T) {
	hard, _ := PolicyFor(Hard)
	for level := 1; level <= 12; level++ {
		d := hard.Distribution(level)
		if math.Abs(d.Sum()-hard.Base.Sum()) > eps {
			t.Errorf("level %d mass = %v, want %v", level, d.Sum(), hard.Base.Sum())
		}
		if d.Shrink < hard.Base.Shrink-eps {
			t.Errorf("level %d shrink decreased: %v", level, d.Shrink)
		}
		if d.Explosive != hard.Base.Explosive || d.Split != hard.Base.Split || d.SpeedDown != hard.Base.SpeedDown {
			t.Errorf("level %d touched weights outside the useful cluster: %+v", level, d)
		}
	}
}

func TestSkewCap(t *testing.T) {
	medium, _ := PolicyFor(Medium)
	if d := medium.Distribution(1); d != medium.Base {
		t.Errorf("level 1 should not skew, got %+v", d)
	}

	// 0.02 per level reaches the 0.15 cap at level 9.
	at9 := medium.Distribution(9)
	at20 := medium.Distribution(20)
	if at9 != at20 {
		t.Errorf("skew should be capped: level 9 %+v, level 20 %+v", at9, at20)
	}
	moved := at20.Shrink - medium.Base.Shrink
	if math.Abs(moved-0.15*medium.Base.Sum()) > eps {
		t.Errorf("moved mass = %v, want %v", moved, 0.15*medium.Base.Sum())
	}

	easy, _ := PolicyFor(Easy)
	if d := easy.Distribution(10); d != easy.Base {
		t.Errorf("easy tier should not skew, got %+v", d)
	}
}

func TestSkewLimitedByUsefulMass(t *testing.T) {
	d := Distribution{Grow: 0.01, Shrink: 0.5, Explosive: 0.49}
	got := d.shiftToShrink(0.3)
	if got.Grow != 0 {
		t.Errorf("Grow = %v, want 0", got.Grow)
	}
	if math.Abs(got.Shrink-0.51) > eps {
		t.Errorf("Shrink = %v, want 0.51", got.Shrink)
	}
}
