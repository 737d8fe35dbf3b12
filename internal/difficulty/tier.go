// Package difficulty describes per-tier tuning for Cosmic Collision: the
// static Settings table read by the block grid builder and the world, and
// the Policy functions that govern power-up odds and level progression.
package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTier is returned when a tier value or name is not one of
// Easy, Medium or Hard.
var ErrUnknownTier = errors.New("difficulty: unknown tier")

// Tier selects a Settings and Policy pair.
type Tier int

const (
	Easy Tier = iota
	Medium
	Hard
)

// Tiers lists every valid tier in menu order.
var Tiers = []Tier{Easy, Medium, Hard}

// String returns the lowercase name of the tier.
func (t Tier) String() string {
	switch t {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Title returns the display name of the tier.
func (t Tier) Title() string {
	switch t {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "?"
	}
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	return t >= Easy && t <= Hard
}

// ParseTier converts a tier name to a Tier. Matching is case-insensitive.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownTier, name)
}

// UnmarshalText lets tiers be decoded from YAML and flag values.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownTier, int(t))
	}
	return []byte(t.String()), nil
}
