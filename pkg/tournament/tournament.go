package tournament

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-tournament/internal/rng"
	"holdem-tournament/internal/util"
	"holdem-tournament/pkg/holdem"
	"holdem-tournament/pkg/poker/action"
	"holdem-tournament/pkg/strategy"
)

// ErrActionLimit is returned when a street does not complete within the allowed number of actions
var ErrActionLimit = errors.New("too many actions on a single street")

// ErrAlreadyStarted is returned when Run is called more than once
var ErrAlreadyStarted = errors.New("tournament already started")

// Tournament plays hands at a single table until one player holds every chip
type Tournament struct {
	UUID string

	logger   logrus.FieldLogger
	settings Settings
	table    *holdem.Table
	policies map[int]strategy.Policy
	sink     Sink
	state    State
}

// New seats the players and builds a policy for each of them
func New(logger logrus.FieldLogger, settings Settings, random rng.Generator, sink Sink) (*Tournament, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, settings.Players)
	if settings.RandomNames {
		names = util.RandomNames(random, settings.Players)
	} else {
		for i := range names {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}

	table, err := holdem.NewTable(logger, settings.Blinds, names, settings.StartingChips, random)
	if err != nil {
		return nil, err
	}

	deps := strategy.Dependencies{Logger: logger, Random: random}
	policies := make(map[int]strategy.Policy)
	for _, p := range table.Players() {
		policy, err := strategy.New(settings.Policy, deps, strategy.ProfileForSeat(settings.Profiles, p.Seat))
		if err != nil {
			return nil, err
		}

		policies[p.ID] = policy
	}

	if sink == nil {
		sink = LogSink{Logger: logger}
	}

	id := uuid.New().String()
	return &Tournament{
		UUID:     id,
		logger:   logger.WithField("tournament", id),
		settings: settings,
		table:    table,
		policies: policies,
		sink:     sink,
		state:    StatePending,
	}, nil
}

// SetPolicy replaces the policy of a player
func (t *Tournament) SetPolicy(playerID int, policy strategy.Policy) error {
	if _, ok := t.policies[playerID]; !ok {
		return fmt.Errorf("unknown player: %d", playerID)
	}

	t.policies[playerID] = policy
	return nil
}

// State returns the state of the tournament
func (t *Tournament) State() State {
	return t.state
}

// Snapshot returns the current table state
func (t *Tournament) Snapshot() *holdem.Snapshot {
	return t.table.Snapshot()
}

// Run plays the tournament to completion and returns the final standings
// Cancelling ctx stops the tournament between actions, the table keeps its last consistent state
func (t *Tournament) Run(ctx context.Context) ([]holdem.PlayerSnapshot, error) {
	if t.state != StatePending {
		return nil, ErrAlreadyStarted
	}

	t.state = StateRunning
	t.logger.WithFields(logrus.Fields{
		"players":       t.settings.Players,
		"startingChips": t.settings.StartingChips,
	}).Info("tournament started")

	for !t.table.IsComplete() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := t.playHand(ctx); err != nil {
			return nil, err
		}
	}

	t.state = StateComplete
	event := t.newEvent(EventTournamentComplete, "")
	event.Winners = event.Snapshot.Standings()
	event.Message = fmt.Sprintf("%s wins the tournament after %d hands", event.Winners[0].Name, event.Snapshot.HandNumber)
	t.logger.WithField("hands", event.Snapshot.HandNumber).Info(event.Message)

	if err := t.sink.Emit(ctx, event); err != nil {
		return nil, err
	}

	return event.Winners, nil
}

// playHand deals a hand and drives it action by action until it is complete
func (t *Tournament) playHand(ctx context.Context) error {
	if level, changed := t.table.UpdateBlinds(); changed {
		msg := fmt.Sprintf("Blinds increase to %d/%d", level.SmallBlind, level.BigBlind)
		if err := t.emit(ctx, t.newEvent(EventBlindLevel, msg)); err != nil {
			return err
		}
	}

	if err := t.table.DealCards(); err != nil {
		return err
	}

	if err := t.emit(ctx, t.newEvent(EventGameState, t.table.LastAction())); err != nil {
		return err
	}

	street := t.table.Street()
	actions, total := 0, 0
	for t.table.InBettingRound() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s := t.table.Street(); s != street {
			street = s
			actions = 0
		}

		actions++
		total++
		if actions > t.settings.MaxActionsPerStreet {
			t.logger.WithFields(logrus.Fields{
				"hand":   t.table.HandNumber(),
				"street": street.String(),
			}).Error("street did not complete")
			return fmt.Errorf("%w: %d actions on the %s of hand %d", ErrActionLimit, actions-1, street, t.table.HandNumber())
		}

		if err := t.takeTurn(ctx); err != nil {
			return err
		}

		eventType := EventGameState
		if !t.table.InBettingRound() {
			eventType = EventHandComplete
		}

		if err := t.emit(ctx, t.newEvent(eventType, t.table.LastAction())); err != nil {
			return err
		}
	}

	// every player was all-in after the blinds
	if total == 0 {
		return t.emit(ctx, t.newEvent(EventHandComplete, t.table.LastAction()))
	}

	return nil
}

// takeTurn asks the policy of the player on the clock and applies the decision
func (t *Tournament) takeTurn(ctx context.Context) error {
	view, err := t.table.View()
	if err != nil {
		return err
	}

	log := t.logger.WithFields(logrus.Fields{
		"hand":   view.HandNumber,
		"player": view.Name,
	})

	decision, err := t.decide(ctx, view)
	if err != nil {
		// the tournament was cancelled while waiting
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		log.WithError(err).Warn("policy failed, using fallback")
		decision = strategy.Fallback(view)
	}

	decision = normalize(view, decision)
	err = t.table.Act(decision)

	var actionErr holdem.ActionError
	if errors.As(err, &actionErr) {
		log.WithError(err).WithField("decision", decision.String()).Warn("illegal decision, using fallback")
		return t.table.Act(strategy.Fallback(view))
	}

	return err
}

// decide calls the player's policy, bounded by the decision timeout
func (t *Tournament) decide(ctx context.Context, view *holdem.View) (action.Decision, error) {
	policy := t.policies[view.PlayerID]
	if policy == nil {
		return action.Decision{}, fmt.Errorf("no policy for player %d", view.PlayerID)
	}

	if t.settings.DecisionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.settings.DecisionTimeout)
		defer cancel()
	}

	type result struct {
		decision action.Decision
		err      error
	}

	// the policy may ignore ctx, don't wait on it past the deadline
	ch := make(chan result, 1)
	go func() {
		d, err := policy.Decide(ctx, view)
		ch <- result{decision: d, err: err}
	}()

	select {
	case r := <-ch:
		return r.decision, r.err
	case <-ctx.Done():
		return action.Decision{}, ctx.Err()
	}
}

// normalize treats check and call as the same decision
func normalize(view *holdem.View, d action.Decision) action.Decision {
	if d.Action == action.Check && view.FacingBet() {
		d.Action = action.Call
	}

	return d
}

// emit sends the event and waits out the pacing delay
func (t *Tournament) emit(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := t.sink.Emit(ctx, event); err != nil {
		return err
	}

	if t.settings.EventDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(t.settings.EventDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
