package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinManager_GetSortedTiers(t *testing.T) {
	a := assert.New(t)

	w := NewWinManager()
	w.AddParticipant(1, 100)
	w.AddParticipant(2, 300)
	w.AddParticipant(3, 100)
	w.AddParticipant(4, 200)

	a.Equal([][]int{{2}, {4}, {1, 3}}, w.GetSortedTiers())
}

func TestWinManager_Award_SidePots(t *testing.T) {
	a := assert.New(t)

	pots := Build([]Contribution{
		{ID: 1, Amount: 50},
		{ID: 2, Amount: 100},
		{ID: 3, Amount: 100},
	})

	// the short stack has the best hand, 3 beats 2
	w := NewWinManager()
	w.AddParticipant(1, 900)
	w.AddParticipant(2, 100)
	w.AddParticipant(3, 500)

	payouts, err := w.Award(pots)
	a.NoError(err)
	a.Equal([]Payout{
		{ID: 1, Pot: 0, Amount: 150},
		{ID: 3, Pot: 1, Amount: 100},
	}, payouts)
}

func TestWinManager_Award_SplitRemainder(t *testing.T) {
	a := assert.New(t)

	pots := Pots{{Amount: 25, Eligible: []int{3, 1, 2}}}

	w := NewWinManager()
	w.AddParticipant(1, 500)
	w.AddParticipant(2, 100)
	w.AddParticipant(3, 500)

	payouts, err := w.Award(pots)
	a.NoError(err)
	a.Equal([]Payout{
		{ID: 3, Pot: 0, Amount: 13},
		{ID: 1, Pot: 0, Amount: 12},
	}, payouts)
}

func TestWinManager_Award_NoEligible(t *testing.T) {
	a := assert.New(t)

	w := NewWinManager()
	w.AddParticipant(1, 500)

	_, err := w.Award(Pots{{Amount: 10, Eligible: []int{2}}})
	a.Equal(ErrNoEligibleWinner, err)
}
