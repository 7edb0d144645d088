package blinds

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMultiplier is how much the blinds grow at each new level
const DefaultMultiplier = 2

// MaxMultiplier is the largest multiplier a schedule accepts
const MaxMultiplier = 100

// ErrInvalidSchedule is returned when a schedule cannot produce blinds
var ErrInvalidSchedule = errors.New("invalid blind schedule")

// Schedule escalates the blinds every HandsPerLevel hands
type Schedule struct {
	SmallBlind    int `json:"smallBlind" yaml:"smallBlind"`
	BigBlind      int `json:"bigBlind" yaml:"bigBlind"`
	HandsPerLevel int `json:"handsPerLevel" yaml:"handsPerLevel"`
	Multiplier    int `json:"multiplier" yaml:"multiplier"`
}

// Level is a single step of the schedule
type Level struct {
	Number     int `json:"level"`
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

func (l Level) String() string {
	return fmt.Sprintf("level %d (%d/%d)", l.Number, l.SmallBlind, l.BigBlind)
}

// NewSchedule returns a schedule using the default multiplier
func NewSchedule(smallBlind, bigBlind, handsPerLevel int) Schedule {
	return Schedule{
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
		HandsPerLevel: handsPerLevel,
		Multiplier:    DefaultMultiplier,
	}
}

// Validate ensures the schedule is usable
func (s Schedule) Validate() error {
	if s.SmallBlind < 1 {
		return fmt.Errorf("%w: small blind must be at least 1", ErrInvalidSchedule)
	}

	if s.BigBlind < s.SmallBlind {
		return fmt.Errorf("%w: big blind must be at least the small blind", ErrInvalidSchedule)
	}

	if s.HandsPerLevel < 1 {
		return fmt.Errorf("%w: hands per level must be at least 1", ErrInvalidSchedule)
	}

	if s.Multiplier < 1 || s.Multiplier > MaxMultiplier {
		return fmt.Errorf("%w: multiplier must be between 1 and %d", ErrInvalidSchedule, MaxMultiplier)
	}

	return nil
}

// LevelNumber returns the level for the number of completed hands
// level = floor(completedHands / handsPerLevel) + 1
func (s Schedule) LevelNumber(completedHands int) int {
	if s.HandsPerLevel < 1 || completedHands < 0 {
		return 1
	}

	return completedHands/s.HandsPerLevel + 1
}

// LevelFor returns the level and blinds for the number of completed hands
// The blinds stop growing before they overflow
func (s Schedule) LevelFor(completedHands int) Level {
	return s.CappedLevelFor(completedHands, math.MaxInt)
}

// CappedLevelFor is LevelFor, except the blinds stop growing once the big blind reaches limit
// A table passes the chips in play, so a late level puts every player all-in
func (s Schedule) CappedLevelFor(completedHands, limit int) Level {
	n := s.LevelNumber(completedHands)
	multiplier := s.Multiplier
	if multiplier < 1 {
		multiplier = DefaultMultiplier
	}

	sb, bb := s.SmallBlind, s.BigBlind
	if multiplier > 1 {
		for i := 1; i < n && bb < limit; i++ {
			sb = grow(sb, multiplier, limit)
			bb = grow(bb, multiplier, limit)
		}
	}

	return Level{
		Number:     n,
		SmallBlind: sb,
		BigBlind:   bb,
	}
}

// grow multiplies v by m without passing limit
func grow(v, m, limit int) int {
	if v > limit/m {
		return limit
	}

	return v * m
}

// HandsUntilIncrease returns how many hands are left at the current level
func (s Schedule) HandsUntilIncrease(completedHands int) int {
	if s.HandsPerLevel < 1 {
		return 0
	}

	return s.HandsPerLevel - completedHands%s.HandsPerLevel
}
