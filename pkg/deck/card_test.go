package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♣", Card{Rank: 2, Suit: Clubs}.String())
	a.Equal("10♥", Card{Rank: 10, Suit: Hearts}.String())
	a.Equal("J♦", Card{Rank: Jack, Suit: Diamonds}.String())
	a.Equal("Q♠", Card{Rank: Queen, Suit: Spades}.String())
	a.Equal("K♣", Card{Rank: King, Suit: Clubs}.String())
	a.Equal("A♠", Card{Rank: Ace, Suit: Spades}.String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: 14, Suit: Clubs}, CardFromString("14c"))
	a.Equal(Card{Rank: 14, Suit: Clubs}, CardFromString("Ac"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, CardFromString("th"))
	a.Equal(Card{Rank: 2, Suit: Diamonds}, CardFromString("2D"))
	a.Equal(Card{Rank: 13, Suit: Spades}, CardFromString("ks"))

	a.PanicsWithValue("could not parse card: 1c", func() {
		CardFromString("1c")
	})
	a.PanicsWithValue("could not parse card: 15c", func() {
		CardFromString("15c")
	})
	a.PanicsWithValue("could not parse card: 2x", func() {
		CardFromString("2x")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Hand{}, CardsFromString(""))

	cards := CardsFromString("2c, 14s,Qd")
	a.Equal(Hand{
		{Rank: 2, Suit: Clubs},
		{Rank: 14, Suit: Spades},
		{Rank: 12, Suit: Diamonds},
	}, cards)
	a.Equal("2c,14s,12d", CardsToString(cards))
	a.Equal([]string{"2♣", "A♠", "Q♦"}, cards.Symbols())
}

func TestCard_Equality(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("Ah") == Card{Rank: Ace, Suit: Hearts})
	a.False(CardFromString("Ah") == CardFromString("Ad"))

	hand := CardsFromString("2c,3c")
	a.True(hand.HasCard(CardFromString("3c")))
	a.False(hand.HasCard(CardFromString("3d")))
}

func TestCard_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(CardFromString("10h"))
	assert.NoError(t, err)
	assert.Equal(t, `{"rank":10,"suit":"hearts","display":"10♥"}`, string(b))
}
