package handanalyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"holdem-tournament/pkg/deck"
)

// tiebreakSize is the longest tiebreak key of any category
const tiebreakSize = 5

// Value is a comparable evaluation of a hand
// Values are ordered by Hand first, then by Tiebreak lexicographically
type Value struct {
	Hand     Hand
	Tiebreak []int
}

// Strength folds the category and tiebreak key into a single integer
// A higher strength always beats a lower strength, equal strengths tie
func (v Value) Strength() int {
	return calculateStrength(v.Hand, v.Tiebreak)
}

// Compare returns 1 if v beats o, -1 if o beats v, and 0 on a tie
func (v Value) Compare(o Value) int {
	if v.Hand != o.Hand {
		if v.Hand > o.Hand {
			return 1
		}
		return -1
	}

	for i := 0; i < tiebreakSize; i++ {
		a, b := rankAt(v.Tiebreak, i), rankAt(o.Tiebreak, i)
		if a > b {
			return 1
		} else if a < b {
			return -1
		}
	}

	return 0
}

// Beats returns true if v is strictly better than o
func (v Value) Beats(o Value) bool {
	return v.Compare(o) > 0
}

// String describes the hand, i.e., "Full house, K over 7"
func (v Value) String() string {
	if len(v.Tiebreak) == 0 {
		return v.Hand.String()
	}

	top := deck.RankString(v.Tiebreak[0])
	switch v.Hand {
	case StraightFlush:
		if v.Tiebreak[0] == deck.Ace {
			return "Royal flush"
		}
		return fmt.Sprintf("Straight flush, %s high", top)
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %ss", top)
	case FullHouse:
		return fmt.Sprintf("Full house, %s over %s", top, deck.RankString(rankAt(v.Tiebreak, 1)))
	case Flush:
		return fmt.Sprintf("Flush, %s high", top)
	case Straight:
		return fmt.Sprintf("Straight, %s high", top)
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %ss", top)
	case TwoPair:
		return fmt.Sprintf("Two pair, %ss and %ss", top, deck.RankString(rankAt(v.Tiebreak, 1)))
	case OnePair:
		return fmt.Sprintf("Pair of %ss", top)
	}

	ranks := make([]string, len(v.Tiebreak))
	for i, r := range v.Tiebreak {
		ranks[i] = deck.RankString(r)
	}
	return fmt.Sprintf("High card, %s", strings.Join(ranks, " "))
}

// MarshalJSON encodes the value
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Hand     string `json:"hand"`
		Name     string `json:"name"`
		Tiebreak []int  `json:"tiebreak"`
		Strength int    `json:"strength"`
	}{
		Hand:     v.Hand.String(),
		Name:     v.String(),
		Tiebreak: v.Tiebreak,
		Strength: v.Strength(),
	})
}

func rankAt(ranks []int, i int) int {
	if i < len(ranks) {
		return ranks[i]
	}

	return 0
}

func calculateStrength(hand Hand, ranks []int) int {
	strength := int(hand)
	for i := 0; i < tiebreakSize; i++ {
		strength = strength*15 + rankAt(ranks, i)
	}

	return strength
}
