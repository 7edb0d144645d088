package handanalyzer

import (
	"fmt"
	"testing"

	"github.com/chehsunliu/poker"
	"github.com/stretchr/testify/assert"
	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/deck"
)

func TestHandAnalyzer_bestFourOfAKind(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("2c,3c,3d,3h,3s"))
	r, ok := h.bestFourOfAKind()
	a.True(ok)
	a.Equal(3, r)
	_, ok = h.bestThreeOfAKind()
	a.False(ok)
	a.Equal(FourOfAKind, h.GetValue().Hand)
	a.Equal([]int{3, 2}, h.GetValue().Tiebreak)

	h = New(deck.CardsFromString("9s,4h,5c,4d,4c"))
	r, ok = h.bestFourOfAKind()
	a.False(ok)
	a.Equal(0, r)
}

func TestHandAnalyzer_bestFullHouse(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("14c,2c,14d,5c,14h,2d,5h"))
	r, ok := h.bestFullHouse()
	a.True(ok)
	a.Equal([]int{14, 5}, r)

	h = New(deck.CardsFromString("3c,3d,3h,4c,4d,4h,5c"))
	r, ok = h.bestFullHouse()
	a.True(ok)
	a.Equal([]int{4, 3}, r)

	// the second trips beat the pair
	h = New(deck.CardsFromString("7c,7d,7h,6c,6d,6h,5c"))
	r, ok = h.bestFullHouse()
	a.True(ok)
	a.Equal([]int{7, 6}, r)

	h = New(deck.CardsFromString("3c,3d,3h,4c,5d,6h,9c"))
	r, ok = h.bestFullHouse()
	a.False(ok)
	a.Nil(r)
}

func TestHandAnalyzer_bestFlush(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("2c,9c,4c,13c,6c,14c,3d"))
	r, ok := h.bestFlush()
	a.True(ok)
	a.Equal([]int{14, 13, 9, 6, 4}, r)
	a.Equal(Flush, h.GetValue().Hand)

	h = New(deck.CardsFromString("2c,9c,4c,13c,6d"))
	_, ok = h.bestFlush()
	a.False(ok)
}

func TestHandAnalyzer_bestStraight(t *testing.T) {
	a := assert.New(t)

	h := New(deck.CardsFromString("14c,2d,3h,4s,5c,9d,13h"))
	r, ok := h.bestStraight()
	a.True(ok)
	a.Equal(5, r)
	a.Equal([]int{5, 4, 3, 2, 1}, h.GetValue().Tiebreak)
	a.Equal("Straight, 5 high", h.GetValue().String())

	h = New(deck.CardsFromString("10c,11d,12h,13s,14c,9d,2h"))
	r, ok = h.bestStraight()
	a.True(ok)
	a.Equal(14, r)

	// no wrap around
	h = New(deck.CardsFromString("12c,13d,14h,2s,3c"))
	_, ok = h.bestStraight()
	a.False(ok)
}

func TestHandAnalyzer_bestStraightFlush(t *testing.T) {
	a := assert.New(t)

	// a straight and a flush that are not a straight flush
	h := New(deck.CardsFromString("5h,6h,7h,8c,9h,2h"))
	_, ok := h.bestStraightFlush()
	a.False(ok)
	a.Equal(Flush, h.GetValue().Hand)

	h = New(deck.CardsFromString("14d,2d,3d,4d,5d,6c"))
	r, ok := h.bestStraightFlush()
	a.True(ok)
	a.Equal(5, r)
}

func TestHandAnalyzer_TwoPairKicker(t *testing.T) {
	a := assert.New(t)

	// three pairs, the kicker may come from the third pair
	h := New(deck.CardsFromString("13c,13d,9h,9s,7c,7d,2h"))
	a.Equal(TwoPair, h.GetValue().Hand)
	a.Equal([]int{13, 9, 7}, h.GetValue().Tiebreak)
	a.Equal("Two pair, Ks and 9s", h.GetValue().String())
}

func TestEvaluate_RoyalFlushBeatsQuads(t *testing.T) {
	a := assert.New(t)

	royal := Evaluate(deck.CardsFromString("13s,14s"), deck.CardsFromString("10s,11s,12s,2h,2d"))
	quads := Evaluate(deck.CardsFromString("14c,14d"), deck.CardsFromString("14h,13h,14s,2h,2d"))

	a.Equal(StraightFlush, royal.Hand)
	a.Equal("Royal flush", royal.String())
	a.Equal(FourOfAKind, quads.Hand)
	a.True(royal.Beats(quads))
	a.Equal(-1, quads.Compare(royal))
	a.Greater(royal.Strength(), quads.Strength())
}

func TestEvaluate_SharedBoardTies(t *testing.T) {
	a := assert.New(t)

	community := deck.CardsFromString("10s,11d,12h,13c,14d")
	v1 := Evaluate(deck.CardsFromString("2c,3c"), community)
	v2 := Evaluate(deck.CardsFromString("4h,5h"), community)
	a.Equal(0, v1.Compare(v2))
	a.Equal(v1.Strength(), v2.Strength())
}

func TestEvaluate_Categories(t *testing.T) {
	tests := []struct {
		cards string
		hand  Hand
		name  string
	}{
		{"2c,5d,9h,11s,13c,3d,7h", HighCard, "High card, K J 9 7 5"},
		{"2c,2d,9h,11s,13c,3d,7h", OnePair, "Pair of 2s"},
		{"2c,2d,9h,9s,13c,3d,7h", TwoPair, "Two pair, 9s and 2s"},
		{"2c,2d,2h,9s,13c,3d,7h", ThreeOfAKind, "Three of a kind, 2s"},
		{"2c,3d,4h,5s,6c,11d,13h", Straight, "Straight, 6 high"},
		{"2c,5c,9c,11c,13c,3d,7h", Flush, "Flush, K high"},
		{"2c,2d,2h,9s,9c,3d,7h", FullHouse, "Full house, 2 over 9"},
		{"2c,2d,2h,2s,13c,3d,7h", FourOfAKind, "Four of a kind, 2s"},
		{"5h,6h,7h,8h,9h,3d,2c", StraightFlush, "Straight flush, 9 high"},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			v := New(deck.CardsFromString(test.cards)).GetValue()
			assert.Equal(t, test.hand, v.Hand)
			assert.Equal(t, test.name, v.String())
		})
	}
}

func TestEvaluate_FewerThanFiveCards(t *testing.T) {
	a := assert.New(t)

	v := New(deck.CardsFromString("14c,14d")).GetValue()
	a.Equal(OnePair, v.Hand)
	a.Equal([]int{14}, v.Tiebreak)

	v = New(deck.CardsFromString("14c,2d")).GetValue()
	a.Equal(HighCard, v.Hand)
	a.Equal([]int{14, 2}, v.Tiebreak)
}

func TestValue_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	v := New(deck.CardsFromString("13c,13d,13h,7s,7c")).GetValue()
	b, err := v.MarshalJSON()
	a.NoError(err)
	a.Contains(string(b), `"hand":"Full house"`)
	a.Contains(string(b), `"name":"Full house, K over 7"`)
	a.Contains(string(b), `"tiebreak":[13,7]`)
}

func toOracleCard(card deck.Card) poker.Card {
	ranks := "..23456789TJQKA"
	var suit string
	switch card.Suit {
	case deck.Clubs:
		suit = "c"
	case deck.Diamonds:
		suit = "d"
	case deck.Hearts:
		suit = "h"
	case deck.Spades:
		suit = "s"
	}

	return poker.NewCard(fmt.Sprintf("%c%s", ranks[card.Rank], suit))
}

func toOracleCards(cards []deck.Card) []poker.Card {
	oc := make([]poker.Card, len(cards))
	for i, card := range cards {
		oc[i] = toOracleCard(card)
	}

	return oc
}

func sign(i int) int {
	if i > 0 {
		return 1
	} else if i < 0 {
		return -1
	}

	return 0
}

// compares random seven-card showdowns against an independent evaluator
func TestEvaluate_AgreesWithReferenceEvaluator(t *testing.T) {
	a := assert.New(t)
	random := rng.NewSeeded(42)

	for i := 0; i < 5000; i++ {
		d := deck.NewShuffled(random)
		community, _ := d.DrawMany(5)
		hole1, _ := d.DrawMany(2)
		hole2, _ := d.DrawMany(2)

		v1 := Evaluate(hole1, community)
		v2 := Evaluate(hole2, community)

		cards1 := append(hole1.Clone(), community...)
		cards2 := append(hole2.Clone(), community...)

		// lower is better for the reference evaluator
		r1 := poker.Evaluate(toOracleCards(cards1))
		r2 := poker.Evaluate(toOracleCards(cards2))

		if !a.Equal(sign(int(r2)-int(r1)), v1.Compare(v2), "%s vs %s on %s", hole1, hole2, community) {
			return
		}

		a.Equal(sign(int(r2)-int(r1)), sign(v1.Strength()-v2.Strength()))
	}
}
