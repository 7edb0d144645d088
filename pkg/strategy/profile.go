package strategy

import (
	"errors"
	"fmt"
)

// Style is the general temperament of a profile
type Style string

// Style constants
const (
	StyleAggressive    Style = "aggressive"
	StyleConservative  Style = "conservative"
	StyleBalanced      Style = "balanced"
	StyleUnpredictable Style = "unpredictable"
)

// ErrInvalidProfile is returned when a profile is out of range
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is a named playing personality
type Profile struct {
	Name           string  `yaml:"name" json:"name"`
	Style          Style   `yaml:"style" json:"style"`
	RiskTolerance  float64 `yaml:"riskTolerance" json:"riskTolerance"`
	BluffFrequency float64 `yaml:"bluffFrequency" json:"bluffFrequency"`
}

// DefaultProfiles returns the built-in profiles
func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "The Shark", Style: StyleAggressive, RiskTolerance: 0.8, BluffFrequency: 0.4},
		{Name: "The Rock", Style: StyleConservative, RiskTolerance: 0.2, BluffFrequency: 0.1},
		{Name: "The Pro", Style: StyleBalanced, RiskTolerance: 0.5, BluffFrequency: 0.25},
		{Name: "The Wild Card", Style: StyleUnpredictable, RiskTolerance: 0.6, BluffFrequency: 0.6},
	}
}

// Validate ensures the profile can be used
func (p Profile) Validate() error {
	switch p.Style {
	case StyleAggressive, StyleConservative, StyleBalanced, StyleUnpredictable:
	default:
		return fmt.Errorf("%w: %s has unknown style %q", ErrInvalidProfile, p.Name, p.Style)
	}

	if p.RiskTolerance < 0 || p.RiskTolerance > 1 {
		return fmt.Errorf("%w: %s risk tolerance must be between 0 and 1", ErrInvalidProfile, p.Name)
	}

	if p.BluffFrequency < 0 || p.BluffFrequency > 1 {
		return fmt.Errorf("%w: %s bluff frequency must be between 0 and 1", ErrInvalidProfile, p.Name)
	}

	return nil
}

// ProfileForSeat assigns profiles round-robin
func ProfileForSeat(profiles []Profile, seat int) Profile {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}

	return profiles[seat%len(profiles)]
}
