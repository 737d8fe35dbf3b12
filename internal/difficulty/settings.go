package difficulty

import "fmt"

// Settings holds the static tuning for one tier. Values are in world pixels
// and pixels per tick (ball) or pixels per second (paddle).
type Settings struct {
	Tier Tier `yaml:"-"`

	PaddleWidth  int     `yaml:"paddle_width"`
	BallVX       int     `yaml:"ball_vx"`
	BallVY       int     `yaml:"ball_vy"`
	BaseRows     int     `yaml:"base_rows"`
	RowsPerLevel int     `yaml:"rows_per_level"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	BlockWidth   int     `yaml:"block_width"`
	BlockHeight  int     `yaml:"block_height"`
	SpacingH     int     `yaml:"spacing_h"`
	SpacingV     int     `yaml:"spacing_v"`
	MarginLR     int     `yaml:"margin_lr"`
	MarginTop    int     `yaml:"margin_top"`
	EasyColumns  int     `yaml:"easy_columns"`
	HardRate     float64 `yaml:"hard_rate"`
	UnbreakRate  float64 `yaml:"unbreakable_rate"`
	AllowUnbreak bool    `yaml:"allow_unbreakable"`
}

// settingsTable is indexed by Tier.
var settingsTable = [...]Settings{
	Easy: {
		Tier:         Easy,
		PaddleWidth:  160,
		BallVX:       2,
		BallVY:       3,
		BaseRows:     3,
		RowsPerLevel: 0,
		PaddleSpeed:  700,
		BlockWidth:   70,
		BlockHeight:  26,
		SpacingH:     16,
		SpacingV:     14,
		MarginLR:     20,
		MarginTop:    20,
		EasyColumns:  8,
	},
	Medium: {
		Tier:         Medium,
		PaddleWidth:  110,
		BallVX:       4,
		BallVY:       5,
		BaseRows:     5,
		RowsPerLevel: 1,
		PaddleSpeed:  1000,
		BlockWidth:   70,
		BlockHeight:  26,
		SpacingH:     10,
		SpacingV:     10,
		MarginLR:     10,
		MarginTop:    10,
		HardRate:     0.25,
	},
	Hard: {
		Tier:         Hard,
		PaddleWidth:  90,
		BallVX:       5,
		BallVY:       6,
		BaseRows:     7,
		RowsPerLevel: 2,
		PaddleSpeed:  1500,
		BlockWidth:   70,
		BlockHeight:  26,
		SpacingH:     10,
		SpacingV:     10,
		MarginLR:     10,
		MarginTop:    10,
		HardRate:     0.40,
		UnbreakRate:  0.15,
		AllowUnbreak: true,
	},
}

// SettingsFor returns the settings for a tier.
// An invalid tier is a configuration error with no fallback.
func SettingsFor(t Tier) (Settings, error) {
	if !t.Valid() {
		return Settings{}, fmt.Errorf("%w %d", ErrUnknownTier, int(t))
	}
	return settingsTable[t], nil
}

// MustSettings is like SettingsFor but panics on an invalid tier.
func MustSettings(t Tier) Settings {
	s, err := SettingsFor(t)
	if err != nil {
		panic(err)
	}
	return s
}

// RowsForLevel returns the number of block rows for a 1-based level.
func (s Settings) RowsForLevel(level int) int {
	extra := (level - 1) * s.RowsPerLevel
	if extra < 0 {
		extra = 0
	}
	return s.BaseRows + extra
}

// Merge overlays the non-zero fields of o onto s. The tier is never changed.
func (s Settings) Merge(o Settings) Settings {
	if o.PaddleWidth > 0 {
		s.PaddleWidth = o.PaddleWidth
	}
	if o.BallVX != 0 {
		s.BallVX = o.BallVX
	}
	if o.BallVY != 0 {
		s.BallVY = o.BallVY
	}
	if o.BaseRows > 0 {
		s.BaseRows = o.BaseRows
	}
	if o.RowsPerLevel > 0 {
		s.RowsPerLevel = o.RowsPerLevel
	}
	if o.PaddleSpeed > 0 {
		s.PaddleSpeed = o.PaddleSpeed
	}
	if o.BlockWidth > 0 {
		s.BlockWidth = o.BlockWidth
	}
	if o.BlockHeight > 0 {
		s.BlockHeight = o.BlockHeight
	}
	if o.SpacingH > 0 {
		s.SpacingH = o.SpacingH
	}
	if o.SpacingV > 0 {
		s.SpacingV = o.SpacingV
	}
	if o.MarginLR > 0 {
		s.MarginLR = o.MarginLR
	}
	if o.MarginTop > 0 {
		s.MarginTop = o.MarginTop
	}
	if o.EasyColumns > 0 {
		s.EasyColumns = o.EasyColumns
	}
	if o.HardRate > 0 {
		s.HardRate = clampRate(o.HardRate)
	}
	if o.UnbreakRate > 0 {
		s.UnbreakRate = clampRate(o.UnbreakRate)
	}
	if o.AllowUnbreak {
		s.AllowUnbreak = true
	}
	return s
}

func clampRate(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
