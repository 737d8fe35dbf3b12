package breakout

import (
	"math"

	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

// Layout describes the column geometry of a block grid.
type Layout struct {
	Cols   int
	BlockW float64
	BlockH float64
	StartX float64
}

// RowWidth returns the width covered by one full row.
func (l Layout) RowWidth(spacing float64) float64 {
	return float64(l.Cols)*l.BlockW + float64(l.Cols-1)*spacing
}

// LayoutFor computes the grid columns for a world width.
//
// Easy fits a fixed number of columns by stretching the blocks; the other
// tiers use fixed-size blocks and fit as many columns as the width allows.
// Rows are centred horizontally.
func LayoutFor(s difficulty.Settings, worldW float64) Layout {
	margin := float64(s.MarginLR)
	spacing := float64(s.SpacingH)

	if s.Tier == difficulty.Easy {
		cols := max(3, s.EasyColumns)
		avail := worldW - 2*margin - spacing*float64(cols-1)
		w := max(40, math.Floor(avail/float64(cols)))
		h := max(26, math.Floor(w*0.38))
		l := Layout{Cols: cols, BlockW: w, BlockH: h}
		l.StartX = math.Round((worldW - l.RowWidth(spacing)) / 2)
		return l
	}

	w := float64(s.BlockWidth)
	h := float64(s.BlockHeight)
	avail := worldW - 2*margin
	cols := max(1, int(math.Floor((avail+spacing)/(w+spacing))))
	l := Layout{Cols: cols, BlockW: w, BlockH: h}
	l.StartX = max(margin, math.Round((worldW-l.RowWidth(spacing))/2))
	return l
}

// BuildBlocks lays out up to rows rows of blocks from the top margin
// downward. Generation stops at the first row that would fall below y=0.
// Block toughness for non-easy tiers is drawn from rng.
func BuildBlocks(rows int, s difficulty.Settings, worldW, worldH float64, rng Rand) []*Block {
	l := LayoutFor(s, worldW)
	spacingH := float64(s.SpacingH)
	spacingV := float64(s.SpacingV)

	blocks := make([]*Block, 0, max(0, rows)*l.Cols)
	y := worldH - float64(s.MarginTop)
	for range rows {
		y -= l.BlockH + spacingV
		if y < 0 {
			break
		}
		for c := range l.Cols {
			x := l.StartX + float64(c)*(l.BlockW+spacingH)
			blocks = append(blocks, newGridBlock(x, y, l, s, rng))
		}
	}
	return blocks
}

func newGridBlock(x, y float64, l Layout, s difficulty.Settings, rng Rand) *Block {
	if s.Tier == difficulty.Easy {
		return NewBlock(x, y, l.BlockW, l.BlockH, 1, false)
	}
	if s.AllowUnbreak && rng.Float64() < s.UnbreakRate {
		return NewBlock(x, y, l.BlockW, l.BlockH, 1, true)
	}
	if rng.Float64() < s.HardRate {
		hp := 2
		if s.Tier == difficulty.Hard && rng.Float64() < 0.5 {
			hp = 3
		}
		return NewBlock(x, y, l.BlockW, l.BlockH, hp, false)
	}
	return NewBlock(x, y, l.BlockW, l.BlockH, 1, false)
}
