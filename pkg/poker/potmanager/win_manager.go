package potmanager

import (
	"errors"
	"sort"
)

// ErrNoEligibleWinner is returned when nobody ranked in the WinManager can win a pot
var ErrNoEligibleWinner = errors.New("no eligible winner for pot")

type tier struct {
	strength     int
	participants []int
}

// WinManager groups participants into tiers of equal hand strength
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant ranks a participant by their hand strength
func (w WinManager) AddParticipant(id int, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength:     handStrength,
			participants: make([]int, 0),
		}
	}

	t.participants = append(t.participants, id)
	w[handStrength] = t
}

// GetSortedTiers returns the participant IDs grouped by strength, strongest first
func (w WinManager) GetSortedTiers() [][]int {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredParticipants := make([][]int, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

// Payout is the amount a participant won from a single pot
type Payout struct {
	ID     int `json:"id"`
	Pot    int `json:"pot"`
	Amount int `json:"amount"`
}

// Award splits every pot between its strongest eligible participants
// Odd chips go to the first winner in the pot's action order
func (w WinManager) Award(pots Pots) ([]Payout, error) {
	tiers := w.GetSortedTiers()
	payouts := make([]Payout, 0, len(pots))

	for i, pot := range pots {
		if pot.Amount == 0 {
			continue
		}

		winners := w.winnersOf(pot, tiers)
		if len(winners) == 0 {
			return nil, ErrNoEligibleWinner
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for j, id := range winners {
			amount := share
			if j == 0 {
				amount += remainder
			}

			payouts = append(payouts, Payout{ID: id, Pot: i, Amount: amount})
		}
	}

	return payouts, nil
}

// winnersOf returns the eligible participants of the best tier, in pot order
func (w WinManager) winnersOf(pot *Pot, tiers [][]int) []int {
	for _, participants := range tiers {
		inTier := make(map[int]bool, len(participants))
		for _, id := range participants {
			inTier[id] = true
		}

		winners := make([]int, 0)
		for _, id := range pot.Eligible {
			if inTier[id] {
				winners = append(winners, id)
			}
		}

		if len(winners) > 0 {
			return winners
		}
	}

	return nil
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
