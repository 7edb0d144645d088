package holdem

import (
	"sort"

	"holdem-tournament/pkg/deck"
)

// PlayerSnapshot is the state of a player at a point in time
type PlayerSnapshot struct {
	ID         int       `json:"id"`
	Seat       int       `json:"seat"`
	Name       string    `json:"name"`
	Chips      int       `json:"chips"`
	Hand       deck.Hand `json:"hand"`
	Bet        int       `json:"bet"`
	Folded     bool      `json:"folded"`
	Eliminated bool      `json:"eliminated"`
	AllIn      bool      `json:"allIn"`
	Rank       int       `json:"rank,omitempty"`
	Stats      Stats     `json:"stats"`
}

// Snapshot is an immutable copy of the table state
type Snapshot struct {
	HandNumber               int              `json:"handNumber"`
	Level                    int              `json:"level"`
	SmallBlind               int              `json:"smallBlind"`
	BigBlind                 int              `json:"bigBlind"`
	HandsUntilBlindsIncrease int              `json:"handsUntilBlindsIncrease"`
	Street                   Street           `json:"street"`
	Pot                      int              `json:"pot"`
	CurrentBet               int              `json:"currentBet"`
	Community                deck.Hand        `json:"community"`
	ActingPlayerID           int              `json:"actingPlayerId,omitempty"`
	ActingSeat               int              `json:"actingSeat"`
	LastAction               string           `json:"lastAction"`
	TotalChips               int              `json:"totalChips"`
	Players                  []PlayerSnapshot `json:"players"`
	Result                   *HandResult      `json:"result,omitempty"`
}

func (p *Player) snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		ID:         p.ID,
		Seat:       p.Seat,
		Name:       p.Name,
		Chips:      p.chips,
		Hand:       p.hand.Clone(),
		Bet:        p.bet,
		Folded:     p.folded,
		Eliminated: p.eliminated,
		AllIn:      p.isAllIn(),
		Rank:       p.rank,
		Stats:      p.Stats(),
	}
}

// Snapshot copies the current state of the table
// Players are listed in seating order, the button first
func (t *Table) Snapshot() *Snapshot {
	players := make([]PlayerSnapshot, len(t.players))
	for i, p := range t.players {
		players[i] = p.snapshot()
	}

	s := &Snapshot{
		HandNumber:               t.handNumber,
		Level:                    t.level.Number,
		SmallBlind:               t.level.SmallBlind,
		BigBlind:                 t.level.BigBlind,
		HandsUntilBlindsIncrease: t.HandsUntilBlindsIncrease(),
		Street:                   t.street,
		Pot:                      t.pot,
		CurrentBet:               t.currentBet,
		Community:                t.community.Clone(),
		ActingSeat:               -1,
		LastAction:               t.lastAction,
		TotalChips:               t.totalChips,
		Players:                  players,
		Result:                   t.lastResult,
	}

	if p, err := t.CurrentPlayer(); err == nil {
		s.ActingPlayerID = p.ID
		s.ActingSeat = p.Seat
	}

	return s
}

// Standings returns every player ordered by rank, unranked players last by chip count
func (s *Snapshot) Standings() []PlayerSnapshot {
	standings := make([]PlayerSnapshot, len(s.Players))
	copy(standings, s.Players)

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if (a.Rank == 0) != (b.Rank == 0) {
			return a.Rank != 0
		}

		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}

		return a.Chips > b.Chips
	})

	return standings
}

// ChipCount returns the sum of all stacks plus the pot
func (s *Snapshot) ChipCount() int {
	sum := s.Pot
	for _, p := range s.Players {
		sum += p.Chips
	}

	return sum
}
