package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/holdem"
	"holdem-tournament/pkg/poker/action"
)

// fixedRandom always returns the same numbers
type fixedRandom struct {
	f float64
	i int
}

func (f fixedRandom) Intn(n int) int {
	return f.i % n
}

func (f fixedRandom) Float64() float64 {
	return f.f
}

func view(hole, community string, toCall int) *holdem.View {
	v := &holdem.View{
		Name:       "Player 1",
		Hole:       deck.CardsFromString(hole),
		Street:     holdem.StreetPreflop,
		Pot:        60,
		CurrentBet: 20,
		ToCall:     toCall,
		Bet:        20 - toCall,
		Chips:      1000,
		BigBlind:   20,
		CanRaise:   true,
	}

	if community != "" {
		v.Community = deck.CardsFromString(community)
		v.Street = holdem.StreetFlop
	}

	return v
}

func TestFallback(t *testing.T) {
	a := assert.New(t)

	a.Equal(action.Decision{Action: action.Fold}, Fallback(view("2c,7d", "", 20)))
	a.Equal(action.Decision{Action: action.Check}, Fallback(view("2c,7d", "", 0)))
}

func TestEstimateStrength(t *testing.T) {
	a := assert.New(t)

	a.Equal(0.0, EstimateStrength(nil, nil))
	a.Equal(0.2, EstimateStrength(deck.CardsFromString("14c,14d"), nil))
	a.Equal(0.9, EstimateStrength(deck.CardsFromString("14c,14d"), deck.CardsFromString("14h,14s,2c")))
	a.Equal(0.65, EstimateStrength(deck.CardsFromString("5c,6d"), deck.CardsFromString("7h,8s,9c")))
	a.InDelta(0.1, EstimateStrength(deck.CardsFromString("14c,3d"), nil), 0.0001)
	a.InDelta(1.0/12, EstimateStrength(deck.CardsFromString("3c,2d"), nil), 0.0001)
}

func TestProfilePolicy_Decide(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	rock := DefaultProfiles()[1]
	shark := DefaultProfiles()[0]

	// never bluffs
	noBluff := fixedRandom{f: 0.99}

	p := NewProfilePolicy(logrus.StandardLogger(), rock, noBluff)
	d, err := p.Decide(ctx, view("2c,7d", "", 20))
	a.NoError(err)
	a.Equal(action.Fold, d.Action)

	d, err = p.Decide(ctx, view("2c,7d", "", 0))
	a.NoError(err)
	a.Equal(action.Check, d.Action)

	d, err = p.Decide(ctx, view("14c,14d", "", 20))
	a.NoError(err)
	a.Equal(action.Call, d.Action)

	// aggressive profiles never fold
	p = NewProfilePolicy(logrus.StandardLogger(), shark, noBluff)
	d, err = p.Decide(ctx, view("2c,7d", "", 20))
	a.NoError(err)
	a.Equal(action.Call, d.Action)

	// min(3 x 20, 1000, 60 x 1.3)
	p = NewProfilePolicy(logrus.StandardLogger(), shark, fixedRandom{f: 0})
	d, err = p.Decide(ctx, view("2c,7d", "", 20))
	a.NoError(err)
	a.Equal(action.NewRaise(60), d)
	a.Equal(shark, p.Profile())

	// no bluffing when only a short all-in reopened the action
	closed := view("2c,7d", "", 20)
	closed.CanRaise = false
	d, err = p.Decide(ctx, closed)
	a.NoError(err)
	a.Equal(action.Call, d.Action)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Decide(cancelled, view("2c,7d", "", 20))
	a.True(errors.Is(err, context.Canceled))
}

func TestPassivePolicy_Decide(t *testing.T) {
	a := assert.New(t)

	d, err := PassivePolicy{}.Decide(context.Background(), view("2c,7d", "", 20))
	a.NoError(err)
	a.Equal(action.Call, d.Action)

	d, err = PassivePolicy{}.Decide(context.Background(), view("2c,7d", "", 0))
	a.NoError(err)
	a.Equal(action.Check, d.Action)
}

func TestRandomPolicy_Decide(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	d, _ := NewRandomPolicy(fixedRandom{f: 0.5}).Decide(ctx, view("2c,7d", "", 20))
	a.Equal(action.Call, d.Action)

	d, _ = NewRandomPolicy(fixedRandom{f: 0.8}).Decide(ctx, view("2c,7d", "", 20))
	a.Equal(action.Fold, d.Action)

	d, _ = NewRandomPolicy(fixedRandom{f: 0.2}).Decide(ctx, view("2c,7d", "", 0))
	a.Equal(action.Check, d.Action)

	d, _ = NewRandomPolicy(fixedRandom{f: 0.8, i: 1}).Decide(ctx, view("2c,7d", "", 0))
	a.Equal(action.NewRaise(60), d)
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	deps := Dependencies{Logger: logrus.StandardLogger(), Random: rng.NewSeeded(1)}

	for _, name := range Names {
		p, err := New(name, deps, DefaultProfiles()[2])
		a.NoError(err, name)
		a.NotNil(p, name)
	}

	p, err := New("", deps, DefaultProfiles()[2])
	a.NoError(err)
	a.IsType(&ProfilePolicy{}, p)

	_, err = New("llm", deps, DefaultProfiles()[2])
	a.True(errors.Is(err, ErrUnknownPolicy))
	a.EqualError(err, "unknown policy: llm")
}

func TestProfile_Validate(t *testing.T) {
	a := assert.New(t)

	for _, p := range DefaultProfiles() {
		a.NoError(p.Validate(), p.Name)
	}

	a.True(errors.Is(Profile{Name: "x", Style: "sneaky"}.Validate(), ErrInvalidProfile))
	a.True(errors.Is(Profile{Name: "x", Style: StyleBalanced, RiskTolerance: 2}.Validate(), ErrInvalidProfile))
	a.True(errors.Is(Profile{Name: "x", Style: StyleBalanced, BluffFrequency: -1}.Validate(), ErrInvalidProfile))
}

func TestProfileForSeat(t *testing.T) {
	a := assert.New(t)

	profiles := DefaultProfiles()
	a.Equal("The Shark", ProfileForSeat(profiles, 0).Name)
	a.Equal("The Wild Card", ProfileForSeat(profiles, 3).Name)
	a.Equal("The Shark", ProfileForSeat(profiles, 4).Name)
	a.Equal("The Rock", ProfileForSeat(nil, 1).Name)
}
