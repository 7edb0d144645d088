package strategy

import (
	"context"

	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/holdem"
	"holdem-tournament/pkg/poker/action"
)

// RandomPolicy calls 70% of the time when facing a bet, otherwise checks or raises evenly
type RandomPolicy struct {
	random rng.Generator
}

// NewRandomPolicy returns a RandomPolicy
func NewRandomPolicy(random rng.Generator) *RandomPolicy {
	return &RandomPolicy{random: random}
}

// Decide picks an action at random
func (r *RandomPolicy) Decide(ctx context.Context, view *holdem.View) (action.Decision, error) {
	if err := ctx.Err(); err != nil {
		return action.Decision{}, err
	}

	if view.FacingBet() {
		if r.random.Float64() < 0.7 {
			return action.Decision{Action: action.Call}, nil
		}

		return action.Decision{Action: action.Fold}, nil
	}

	if r.random.Float64() < 0.5 {
		return action.Decision{Action: action.Check}, nil
	}

	// between one and three big blinds over the current bet
	return action.NewRaise(view.CurrentBet + view.BigBlind*(1+r.random.Intn(3))), nil
}
