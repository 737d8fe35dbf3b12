package difficulty

import "math"

// Distribution holds relative power-up weights. The weights need not sum
// to one; Normalized divides them by their total.
type Distribution struct {
	Grow      float64 `yaml:"grow"`
	Shrink    float64 `yaml:"shrink"`
	Explosive float64 `yaml:"explosive"`
	ExtraLife float64 `yaml:"extra_life"`
	Split     float64 `yaml:"split"`
	SpeedUp   float64 `yaml:"speed_up"`
	SpeedDown float64 `yaml:"speed_down"`
}

// BucketCount is the number of power-up buckets in a Distribution.
const BucketCount = 7

// Weights returns the weights in sampling order:
// grow, shrink, explosive, extra life, split, speed up, speed down.
func (d Distribution) Weights() [BucketCount]float64 {
	return [BucketCount]float64{
		d.Grow, d.Shrink, d.Explosive, d.ExtraLife, d.Split, d.SpeedUp, d.SpeedDown,
	}
}

// Sum returns the total mass of the distribution.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, w := range d.Weights() {
		total += w
	}
	return total
}

// Normalized scales the weights so they sum to one.
// ok is false when the total mass is not positive.
func (d Distribution) Normalized() (Distribution, bool) {
	total := d.Sum()
	if total <= 0 {
		return d, false
	}
	return Distribution{
		Grow:      d.Grow / total,
		Shrink:    d.Shrink / total,
		Explosive: d.Explosive / total,
		ExtraLife: d.ExtraLife / total,
		Split:     d.Split / total,
		SpeedUp:   d.SpeedUp / total,
		SpeedDown: d.SpeedDown / total,
	}, true
}

// Bucket maps a uniform draw r in [0,1) to a bucket index using cumulative
// subtraction in Weights order. The last bucket catches any remainder.
// ok is false for a degenerate distribution.
func (d Distribution) Bucket(r float64) (idx int, ok bool) {
	n, ok := d.Normalized()
	if !ok {
		return 0, false
	}
	weights := n.Weights()
	for i := 0; i < BucketCount-1; i++ {
		if r < weights[i] {
			return i, true
		}
		r -= weights[i]
	}
	return BucketCount - 1, true
}

// shiftToShrink moves amount of mass from the useful cluster (grow, extra
// life, speed up) to shrink, proportionally to each useful weight.
func (d Distribution) shiftToShrink(amount float64) Distribution {
	useful := positive(d.Grow) + positive(d.ExtraLife) + positive(d.SpeedUp)
	if amount <= 0 || useful <= 0 {
		return d
	}
	if amount >= useful {
		d.Shrink += useful
		d.Grow = math.Min(d.Grow, 0)
		d.ExtraLife = math.Min(d.ExtraLife, 0)
		d.SpeedUp = math.Min(d.SpeedUp, 0)
		return d
	}

	take := func(w float64) float64 {
		return positive(w) / useful * amount
	}
	g, l, s := take(d.Grow), take(d.ExtraLife), take(d.SpeedUp)
	d.Grow -= g
	d.ExtraLife -= l
	d.SpeedUp -= s
	d.Shrink += g + l + s
	return d
}

func positive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
