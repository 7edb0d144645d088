package holdem

import (
	"holdem-tournament/pkg/deck"
)

// Player is a seat at the table
// Players are owned by the Table and must only be mutated through it
type Player struct {
	ID   int
	Seat int
	Name string

	chips     int
	hand      deck.Hand
	bet       int
	committed int
	totalBets int
	acted     bool

	folded     bool
	eliminated bool
	rank       int

	handsWon    int
	handsPlayed int
	biggestPot  int
}

func newPlayer(id, seat int, name string, chips int) *Player {
	return &Player{
		ID:    id,
		Seat:  seat,
		Name:  name,
		chips: chips,
		hand:  make(deck.Hand, 0, 2),
	}
}

// Chips returns the player's stack
func (p *Player) Chips() int {
	return p.chips
}

// Bet returns what the player has in front of them on the current street
func (p *Player) Bet() int {
	return p.bet
}

// Hand returns a copy of the player's hole cards
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Folded returns true if the player folded the current hand
func (p *Player) Folded() bool {
	return p.folded
}

// Eliminated returns true if the player is out of the tournament
func (p *Player) Eliminated() bool {
	return p.eliminated
}

// Rank returns the finishing position, or 0 if not yet ranked
func (p *Player) Rank() int {
	return p.rank
}

// Stats returns the lifetime counters
func (p *Player) Stats() Stats {
	return Stats{
		HandsWon:    p.handsWon,
		HandsPlayed: p.handsPlayed,
		BiggestPot:  p.biggestPot,
		TotalBets:   p.totalBets,
	}
}

// isContending returns true if the player can still win the current hand
func (p *Player) isContending() bool {
	return !p.eliminated && !p.folded && len(p.hand) > 0
}

// canAct returns true if the player can still make decisions this hand
func (p *Player) canAct() bool {
	return p.isContending() && p.chips > 0
}

func (p *Player) isAllIn() bool {
	return p.isContending() && p.chips == 0
}

// pay moves up to amount from the stack to the bet, and returns what was paid
func (p *Player) pay(amount int) int {
	if amount > p.chips {
		amount = p.chips
	}

	if amount < 0 {
		amount = 0
	}

	p.chips -= amount
	p.bet += amount
	p.committed += amount
	p.totalBets += amount
	return amount
}

func (p *Player) resetForHand() {
	p.hand = make(deck.Hand, 0, 2)
	p.bet = 0
	p.committed = 0
	p.acted = false
	p.folded = false
}

// Stats are lifetime counters of a player
type Stats struct {
	HandsWon    int `json:"handsWon"`
	HandsPlayed int `json:"handsPlayed"`
	BiggestPot  int `json:"biggestPot"`
	TotalBets   int `json:"totalBets"`
}
