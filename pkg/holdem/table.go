package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/blinds"
	"holdem-tournament/pkg/deck"
)

// holeCards is the number of cards dealt to each player
const holeCards = 2

// boardCards is the number of community cards in a full board
const boardCards = 5

// Table runs consecutive hands of No-Limit Texas Hold'em between a fixed set of players
// The table is not safe for concurrent use, it has exactly one writer
type Table struct {
	logger   logrus.FieldLogger
	random   rng.Generator
	schedule blinds.Schedule

	// players is the seating order, players[0] is the button
	players    []*Player
	deck       *deck.Deck
	community  deck.Hand
	pot        int
	currentBet int
	// acting is the index into players of who is on the clock, -1 if nobody
	acting int
	street Street
	level  blinds.Level

	completedHands int
	handNumber     int
	totalChips     int
	lastAction     string
	eliminated     []*Player
	lastResult     *HandResult
}

// NewTable seats one player per name, each with startingChips
func NewTable(logger logrus.FieldLogger, schedule blinds.Schedule, names []string, startingChips int, random rng.Generator) (*Table, error) {
	if len(names) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if len(names)*holeCards+boardCards > deck.Size {
		return nil, fmt.Errorf("%w: %d players", ErrNotEnoughCards, len(names))
	}

	if startingChips < 1 {
		return nil, fmt.Errorf("starting chips must be at least 1, got %d", startingChips)
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = newPlayer(i+1, i, name, startingChips)
	}

	return &Table{
		logger:     logger,
		random:     random,
		schedule:   schedule,
		players:    players,
		community:  make(deck.Hand, 0, boardCards),
		acting:     -1,
		street:     StreetHandComplete,
		totalChips: startingChips * len(names),
		eliminated: make([]*Player, 0, len(names)-1),
	}, nil
}

// Players returns the players in the current seating order, the button first
func (t *Table) Players() []*Player {
	players := make([]*Player, len(t.players))
	copy(players, t.players)
	return players
}

// Street returns the current street
func (t *Table) Street() Street {
	return t.street
}

// Pot returns the chips in the middle
func (t *Table) Pot() int {
	return t.pot
}

// CurrentBet returns the bet every player must match on this street
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// Community returns a copy of the community cards
func (t *Table) Community() deck.Hand {
	return t.community.Clone()
}

// Level returns the blind level of the current (or last) hand
func (t *Table) Level() blinds.Level {
	return t.level
}

// HandNumber returns the number of hands dealt so far
func (t *Table) HandNumber() int {
	return t.handNumber
}

// CompletedHands returns the number of hands that were played to completion
func (t *Table) CompletedHands() int {
	return t.completedHands
}

// TotalChips returns the number of chips in play, fixed when the table was created
func (t *Table) TotalChips() int {
	return t.totalChips
}

// LastAction describes the last thing that happened at the table
func (t *Table) LastAction() string {
	return t.lastAction
}

// LastResult returns the result of the last completed hand, or nil
func (t *Table) LastResult() *HandResult {
	return t.lastResult
}

// Eliminated returns the eliminated players in elimination order
func (t *Table) Eliminated() []*Player {
	eliminated := make([]*Player, len(t.eliminated))
	copy(eliminated, t.eliminated)
	return eliminated
}

// Remaining returns the number of players who are not eliminated
func (t *Table) Remaining() int {
	n := 0
	for _, p := range t.players {
		if !p.eliminated {
			n++
		}
	}

	return n
}

// IsComplete returns true when a single player holds every chip
func (t *Table) IsComplete() bool {
	return t.Remaining() <= 1
}

// InBettingRound returns true if a player is on the clock
func (t *Table) InBettingRound() bool {
	return t.street.IsBettingRound() && t.acting >= 0
}

// CurrentPlayer returns the player who is on the clock
func (t *Table) CurrentPlayer() (*Player, error) {
	if !t.InBettingRound() {
		return nil, ErrHandComplete
	}

	return t.players[t.acting], nil
}

// UpdateBlinds recomputes the blind level from the number of completed hands
// The big blind never grows past the chips in play
// It returns true if the level changed since the last hand
func (t *Table) UpdateBlinds() (blinds.Level, bool) {
	level := t.schedule.CappedLevelFor(t.completedHands, t.totalChips)
	changed := t.level.Number != 0 && level.Number != t.level.Number
	t.level = level

	if changed {
		t.logger.WithFields(logrus.Fields{
			"level":      level.Number,
			"smallBlind": level.SmallBlind,
			"bigBlind":   level.BigBlind,
		}).Info("blinds increased")
	}

	return level, changed
}

// HandsUntilBlindsIncrease returns how many hands remain at the current level
func (t *Table) HandsUntilBlindsIncrease() int {
	return t.schedule.HandsUntilIncrease(t.completedHands)
}

// buttonIndex returns the index of the first non-eliminated seat
func (t *Table) buttonIndex() int {
	for i, p := range t.players {
		if !p.eliminated {
			return i
		}
	}

	return 0
}

// actionOrder returns the indexes of non-eliminated players, starting left of the button
// The button is last
func (t *Table) actionOrder() []int {
	n := len(t.players)
	button := t.buttonIndex()
	order := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		j := (button + i) % n
		if !t.players[j].eliminated {
			order = append(order, j)
		}
	}

	return order
}

// nextIndex returns the first index after from that satisfies fn, checking from itself last
func (t *Table) nextIndex(from int, fn func(p *Player) bool) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		j := (from + i) % n
		if fn(t.players[j]) {
			return j
		}
	}

	return -1
}

func (t *Table) contenderCount() int {
	n := 0
	for _, p := range t.players {
		if p.isContending() {
			n++
		}
	}

	return n
}

func (t *Table) ableCount() int {
	n := 0
	for _, p := range t.players {
		if p.canAct() {
			n++
		}
	}

	return n
}

// needsAction returns true if the street cannot complete until the player acts
func (t *Table) needsAction(p *Player) bool {
	if !p.canAct() {
		return false
	}

	// nobody left to bet against
	if p.bet >= t.currentBet && t.ableCount() == 1 {
		return false
	}

	return !p.acted || p.bet < t.currentBet
}

// canRaise returns false if the player already acted and only a short all-in has raised the bet since
// Full raises clear acted, so an acted player facing a bet was only reopened by an all-in
func (t *Table) canRaise(p *Player) bool {
	return !p.acted || p.bet >= t.currentBet
}

// checkConservation verifies that no chips were created or destroyed
func (t *Table) checkConservation() error {
	sum := t.pot
	for _, p := range t.players {
		sum += p.chips
	}

	if sum != t.totalChips {
		t.logger.WithFields(logrus.Fields{
			"expected": t.totalChips,
			"actual":   sum,
			"pot":      t.pot,
		}).Error("chip conservation violated")
		return fmt.Errorf("%w: expected %d, found %d", ErrChipConservation, t.totalChips, sum)
	}

	return nil
}

// checkRanks verifies the rank invariant
func (t *Table) checkRanks() error {
	for i, p := range t.eliminated {
		if p.rank != i+2 {
			return fmt.Errorf("%w: %s eliminated in position %d has rank %d", ErrRankSequence, p.Name, i+1, p.rank)
		}
	}

	if t.Remaining() == 1 {
		winner := t.players[t.buttonIndex()]
		if winner.rank != 1 {
			return fmt.Errorf("%w: survivor %s has rank %d", ErrRankSequence, winner.Name, winner.rank)
		}

		if winner.chips != t.totalChips {
			return fmt.Errorf("%w: survivor %s has %d of %d chips", ErrChipConservation, winner.Name, winner.chips, t.totalChips)
		}
	}

	return nil
}
