package holdem

import "holdem-tournament/pkg/deck"

// Position is where the player sits relative to the button
type Position string

// Position constants
const (
	PositionEarly Position = "early"
	PositionLate  Position = "late"
)

// View is what the player on the clock can see when making a decision
type View struct {
	PlayerID   int       `json:"playerId"`
	Name       string    `json:"name"`
	Hole       deck.Hand `json:"hole"`
	Community  deck.Hand `json:"community"`
	Street     Street    `json:"street"`
	Pot        int       `json:"pot"`
	CurrentBet int       `json:"currentBet"`
	ToCall     int       `json:"toCall"`
	Bet        int       `json:"bet"`
	Chips      int       `json:"chips"`
	BigBlind   int       `json:"bigBlind"`
	MinRaise   int       `json:"minRaise"`
	CanRaise   bool      `json:"canRaise"`
	Position   Position  `json:"position"`
	HandNumber int       `json:"handNumber"`

	Opponents     []OpponentView `json:"opponents"`
	ActivePlayers int            `json:"activePlayers"`
}

// OpponentView is the public state of another player
type OpponentView struct {
	PlayerID   int    `json:"playerId"`
	Name       string `json:"name"`
	Chips      int    `json:"chips"`
	Bet        int    `json:"bet"`
	Folded     bool   `json:"folded"`
	Eliminated bool   `json:"eliminated"`
	AllIn      bool   `json:"allIn"`
}

// FacingBet returns true if the player must call, raise, or fold
func (v *View) FacingBet() bool {
	return v.ToCall > 0
}

// View returns the decision view of the player on the clock
func (t *Table) View() (*View, error) {
	p, err := t.CurrentPlayer()
	if err != nil {
		return nil, err
	}

	position := PositionEarly
	order := t.actionOrder()
	for i, idx := range order {
		if t.players[idx] == p && i >= len(order)-2 {
			position = PositionLate
		}
	}

	opponents := make([]OpponentView, 0, len(t.players)-1)
	active := 0
	for _, o := range t.players {
		if o.isContending() {
			active++
		}

		if o == p {
			continue
		}

		opponents = append(opponents, OpponentView{
			PlayerID:   o.ID,
			Name:       o.Name,
			Chips:      o.chips,
			Bet:        o.bet,
			Folded:     o.folded,
			Eliminated: o.eliminated,
			AllIn:      o.isAllIn(),
		})
	}

	toCall := t.currentBet - p.bet
	if toCall > p.chips {
		toCall = p.chips
	}

	return &View{
		PlayerID:      p.ID,
		Name:          p.Name,
		Hole:          p.hand.Clone(),
		Community:     t.community.Clone(),
		Street:        t.street,
		Pot:           t.pot,
		CurrentBet:    t.currentBet,
		ToCall:        toCall,
		Bet:           p.bet,
		Chips:         p.chips,
		BigBlind:      t.level.BigBlind,
		MinRaise:      t.NormalizeRaise(0),
		CanRaise:      t.canRaise(p),
		Position:      position,
		HandNumber:    t.handNumber,
		Opponents:     opponents,
		ActivePlayers: active,
	}, nil
}
