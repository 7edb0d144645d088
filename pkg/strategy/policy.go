package strategy

import (
	"context"
	"errors"
	"fmt"

	"holdem-tournament/pkg/holdem"
	"holdem-tournament/pkg/poker/action"
)

// ErrUnknownPolicy is returned when a policy name is not recognized
var ErrUnknownPolicy = errors.New("unknown policy")

// Policy decides what the player on the clock does
// Implementations may block, for example while waiting on a remote player, and must honor ctx
type Policy interface {
	Decide(ctx context.Context, view *holdem.View) (action.Decision, error)
}

// PolicyFunc adapts a function to a Policy
type PolicyFunc func(ctx context.Context, view *holdem.View) (action.Decision, error)

// Decide calls f
func (f PolicyFunc) Decide(ctx context.Context, view *holdem.View) (action.Decision, error) {
	return f(ctx, view)
}

// Fallback is the decision used when a policy fails: fold if facing a bet, otherwise check
func Fallback(view *holdem.View) action.Decision {
	if view.FacingBet() {
		return action.Decision{Action: action.Fold}
	}

	return action.Decision{Action: action.Check}
}

// Policy names
const (
	NameProfile = "profile"
	NamePassive = "passive"
	NameRandom  = "random"
)

// Names lists every policy New can build
var Names = []string{NameProfile, NamePassive, NameRandom}

// New builds the named policy for a seat
func New(name string, deps Dependencies, profile Profile) (Policy, error) {
	switch name {
	case NameProfile, "":
		return NewProfilePolicy(deps.Logger, profile, deps.Random), nil
	case NamePassive:
		return PassivePolicy{}, nil
	case NameRandom:
		return NewRandomPolicy(deps.Random), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, name)
}
