package potmanager

import (
	"encoding/json"
	"sort"
)

// Contribution is the amount a participant put into the pot over the whole hand
// Contributions must be supplied in action order, starting left of the button
type Contribution struct {
	ID     int
	Amount int
	Folded bool
}

// Pot is the main pot or a side pot
type Pot struct {
	Amount int
	// Eligible are the participants who can win the pot, in action order
	Eligible []int
}

type potJSON struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	return json.Marshal(potJSON{
		Amount:   p.Amount,
		Eligible: p.Eligible,
	})
}

// Pots is a collection of pots, the main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// Build splits the hand's contributions into a main pot and side pots
// Every distinct contribution level opens a new pot. A participant is eligible for every pot they
// contributed fully to and have not folded. Adjacent pots with the same eligible participants are
// merged, so an uncalled bet ends up in a pot only its owner can win.
func Build(contributions []Contribution) Pots {
	seen := make(map[int]bool)
	levels := make([]int, 0, len(contributions))
	for _, c := range contributions {
		if c.Amount > 0 && !seen[c.Amount] {
			seen[c.Amount] = true
			levels = append(levels, c.Amount)
		}
	}
	sort.Ints(levels)

	pots := make(Pots, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := &Pot{Eligible: make([]int, 0)}
		for _, c := range contributions {
			if c.Amount > prev {
				pot.Amount += minInt(c.Amount, level) - prev
			}

			if !c.Folded && c.Amount >= level {
				pot.Eligible = append(pot.Eligible, c.ID)
			}
		}
		prev = level

		if len(pots) > 0 {
			last := pots[len(pots)-1]
			// folded money above every live participant stays with the last live pot
			if len(pot.Eligible) == 0 || sameEligible(last.Eligible, pot.Eligible) {
				last.Amount += pot.Amount
				continue
			}
		}

		pots = append(pots, pot)
	}

	return pots
}

func sameEligible(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
