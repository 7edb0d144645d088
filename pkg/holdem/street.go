package holdem

import "encoding/json"

// Street is the state of a single hand
type Street int

// constants for Street
const (
	StreetPreflop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
	StreetHandComplete
)

// communityCards is how many community cards are dealt when entering the street
var communityCards = map[Street]int{
	StreetFlop:  3,
	StreetTurn:  1,
	StreetRiver: 1,
}

func (s Street) String() string {
	switch s {
	case StreetPreflop:
		return "preflop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	case StreetHandComplete:
		return "hand-complete"
	}

	return ""
}

// IsBettingRound returns true if players can act on the street
func (s Street) IsBettingRound() bool {
	return s >= StreetPreflop && s <= StreetRiver
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
