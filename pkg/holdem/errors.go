package holdem

import (
	"errors"
	"fmt"
)

// ErrNotEnoughCards is a fatal configuration error, the deck cannot cover every hole card and the board
var ErrNotEnoughCards = errors.New("not enough cards in the deck for every player and the board")

// ErrChipConservation means chips were created or destroyed
var ErrChipConservation = errors.New("chip conservation violated")

// ErrRankSequence means eliminated players were not ranked 2, 3, 4, ... in elimination order
var ErrRankSequence = errors.New("rank sequence violated")

// ErrNotEnoughPlayers is returned when a table is created with fewer than two players
var ErrNotEnoughPlayers = errors.New("need at least two players")

// ActionError is an error caused by a player's action
// These errors are safe to show to the author of a decision policy
type ActionError string

func (a ActionError) Error() string {
	return string(a)
}

func newActionError(format string, a ...interface{}) ActionError {
	return ActionError(fmt.Sprintf(format, a...))
}

// ErrHandComplete is returned when an action is applied outside of a betting round
const ErrHandComplete = ActionError("the hand is not in a betting round")

// ErrCannotCheck is returned when a player checks while facing a bet
const ErrCannotCheck = ActionError("you cannot check with an active bet")
