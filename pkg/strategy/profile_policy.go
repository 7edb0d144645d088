package strategy

import (
	"context"

	"github.com/sirupsen/logrus"
	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/holdem"
	"holdem-tournament/pkg/poker/action"
)

// ProfilePolicy plays by a rule of thumb shaped by a profile
type ProfilePolicy struct {
	logger  logrus.FieldLogger
	profile Profile
	random  rng.Generator
}

// NewProfilePolicy returns a policy for the profile
func NewProfilePolicy(logger logrus.FieldLogger, profile Profile, random rng.Generator) *ProfilePolicy {
	return &ProfilePolicy{
		logger:  logger,
		profile: profile,
		random:  random,
	}
}

// Profile returns the profile the policy plays
func (p *ProfilePolicy) Profile() Profile {
	return p.profile
}

// Decide bluffs some of the time, folds weak hands unless aggressive, otherwise calls
func (p *ProfilePolicy) Decide(ctx context.Context, view *holdem.View) (action.Decision, error) {
	if err := ctx.Err(); err != nil {
		return action.Decision{}, err
	}

	strength := EstimateStrength(view.Hole, view.Community)
	effective := strength * (1 + p.profile.RiskTolerance)
	log := p.logger.WithFields(logrus.Fields{
		"player":   view.Name,
		"profile":  p.profile.Name,
		"strength": strength,
	})

	if view.CanRaise && p.random.Float64() < p.profile.BluffFrequency && view.Chips > view.CurrentBet*3 {
		amount := minFloat(
			float64(view.CurrentBet*3),
			float64(view.Chips+view.Bet),
			float64(view.Pot)*(p.profile.RiskTolerance+0.5),
		)

		log.Debug("decides to bluff with a confident demeanor")
		return action.NewRaise(int(amount)), nil
	}

	if effective < 0.2 && p.profile.Style != StyleAggressive {
		if !view.FacingBet() {
			log.Debug("checks a weak hand")
			return action.Decision{Action: action.Check}, nil
		}

		log.Debug("carefully considers and decides to fold")
		return action.Decision{Action: action.Fold}, nil
	}

	log.Debug("makes a measured call")
	return action.Decision{Action: action.Call}, nil
}

func minFloat(values ...float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}

	return m
}
