package tournament

import (
	"errors"
	"fmt"
	"time"

	"holdem-tournament/pkg/blinds"
	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/strategy"
)

// ErrInvalidSettings is returned when the tournament cannot start with the given settings
var ErrInvalidSettings = errors.New("invalid tournament settings")

// Settings configures a tournament
type Settings struct {
	Players       int
	StartingChips int
	Blinds        blinds.Schedule

	// MaxActionsPerStreet aborts the tournament if a single street never completes
	MaxActionsPerStreet int
	// DecisionTimeout bounds each policy decision, zero means no limit
	DecisionTimeout time.Duration
	// EventDelay paces the events, zero disables pacing
	EventDelay time.Duration

	Seed        int64
	RandomNames bool
	Policy      string
	Profiles    []strategy.Profile
}

// DefaultSettings returns the settings for a quick four player tournament
func DefaultSettings() Settings {
	return Settings{
		Players:             4,
		StartingChips:       1000,
		Blinds:              blinds.NewSchedule(10, 20, 10),
		MaxActionsPerStreet: 100,
		DecisionTimeout:     5 * time.Second,
		Policy:              strategy.NameProfile,
		Profiles:            strategy.DefaultProfiles(),
	}
}

// Validate ensures the tournament can run
// Two hole cards per player plus the board must fit in one deck
func (s Settings) Validate() error {
	if s.Players < 2 {
		return fmt.Errorf("%w: need at least two players, got %d", ErrInvalidSettings, s.Players)
	}

	if need := s.Players*2 + 5; need > deck.Size {
		return fmt.Errorf("%w: %d players need %d cards", ErrInvalidSettings, s.Players, need)
	}

	if s.StartingChips < 1 {
		return fmt.Errorf("%w: starting chips must be at least 1", ErrInvalidSettings)
	}

	if err := s.Blinds.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if s.MaxActionsPerStreet < 1 {
		return fmt.Errorf("%w: max actions per street must be at least 1", ErrInvalidSettings)
	}

	if s.DecisionTimeout < 0 || s.EventDelay < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidSettings)
	}

	for _, p := range s.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}

	return nil
}
