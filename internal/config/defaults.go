package config

import (
	_ "embed"
)

//go:embed defaults/cosmic.yaml
var defaultWorldYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultWorldYAML
}
