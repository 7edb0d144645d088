package holdem

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/blinds"
	"holdem-tournament/pkg/deck"
	"holdem-tournament/pkg/poker/action"
)

func names(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = "Player " + string(rune('1'+i))
	}

	return s
}

// setupTable seats one player per stack, Player 1 is the button
func setupTable(smallBlind, bigBlind int, stacks ...int) *Table {
	table, err := NewTable(logrus.StandardLogger(), blinds.NewSchedule(smallBlind, bigBlind, 10), names(len(stacks)), 1, rng.NewSeeded(1))
	if err != nil {
		panic(err)
	}

	table.totalChips = 0
	for i, stack := range stacks {
		table.players[i].chips = stack
		table.totalChips += stack
	}

	return table
}

// rig replaces the hole cards and the board that will be dealt
func rig(table *Table, holes map[int]string, board string) {
	for id, cards := range holes {
		table.playerByID(id).hand = deck.CardsFromString(cards)
	}

	// cards are drawn from the end
	cards := deck.CardsFromString(board)
	reversed := make([]deck.Card, len(cards))
	for i, card := range cards {
		reversed[len(cards)-1-i] = card
	}

	table.deck = &deck.Deck{Cards: reversed}
}

func assertTurn(t *testing.T, table *Table, id int, msgAndArgs ...interface{}) {
	t.Helper()

	p, err := table.CurrentPlayer()
	if assert.NoError(t, err, msgAndArgs...) {
		assert.Equal(t, id, p.ID, msgAndArgs...)
	}
}

func act(t *testing.T, table *Table, id int, d action.Decision) {
	t.Helper()

	assertTurn(t, table, id, "%s", d)
	assert.NoError(t, table.Act(d), "player %d: %s", id, d)
}

// randomDecision is a legal but unpredictable decision
func randomDecision(v *View, random rng.Generator) action.Decision {
	n := random.Intn(10)
	switch {
	case n < 2 && v.FacingBet():
		return action.Decision{Action: action.Fold}
	case n < 4:
		return action.NewRaise(v.CurrentBet + v.BigBlind*(1+random.Intn(4)))
	}

	return action.Decision{Action: action.Call}
}

// playOut plays hands until one player has every chip, checking the invariants after every action
func playOut(t *testing.T, table *Table, random rng.Generator) {
	t.Helper()
	a := assert.New(t)

	for i := 0; !table.IsComplete(); i++ {
		if i > 100000 {
			t.Fatal("tournament did not finish")
		}

		table.UpdateBlinds()
		if !a.NoError(table.DealCards()) {
			t.FailNow()
		}

		for table.InBettingRound() {
			v, err := table.View()
			a.NoError(err)

			if err := table.Act(randomDecision(v, random)); err != nil {
				t.Fatalf("%v\n%s", err, spew.Sdump(table.Snapshot()))
			}

			if table.Snapshot().ChipCount() != table.TotalChips() {
				t.Fatalf("chips not conserved\n%s", spew.Sdump(table.Snapshot()))
			}
		}
	}
}
