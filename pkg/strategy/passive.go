package strategy

import (
	"context"

	"holdem-tournament/pkg/holdem"
	"holdem-tournament/pkg/poker/action"
)

// PassivePolicy never bets, it checks or calls
type PassivePolicy struct{}

// Decide calls any bet
func (PassivePolicy) Decide(ctx context.Context, view *holdem.View) (action.Decision, error) {
	if view.FacingBet() {
		return action.Decision{Action: action.Call}, ctx.Err()
	}

	return action.Decision{Action: action.Check}, ctx.Err()
}
